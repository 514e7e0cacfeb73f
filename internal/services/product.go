package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/ledger"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/repos"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

// productIDAttempts bounds the retry loop when a generated id collides with
// an existing row.
const productIDAttempts = 5

// RegistrationResult is the authoritative outcome of a registration plus any
// advisory-write warnings. The product write is authoritative; the ledger
// write is best-effort and its failure surfaces only here, never as an
// error.
type RegistrationResult struct {
	Product           *types.Product `json:"product"`
	EncryptedCode     string         `json:"encryptedCode"`
	QRCode            string         `json:"qrCode"`
	BlockchainUpdated bool           `json:"blockchainUpdated"`
	Warnings          []string       `json:"warnings,omitempty"`
}

type VerificationResult struct {
	Verified        bool           `json:"verified"`
	Product         *types.Product `json:"product,omitempty"`
	TransactionHash string         `json:"transactionHash,omitempty"`
	Timestamp       time.Time      `json:"blockchainTimestamp,omitempty"`
}

type ProductService interface {
	Register(ctx context.Context, tx *gorm.DB, product *types.Product) (*RegistrationResult, error)
	Verify(ctx context.Context, tx *gorm.DB, encryptedCode string) (*VerificationResult, error)
	GetByProductID(ctx context.Context, tx *gorm.DB, productID string) (*types.Product, error)
	ListProducts(ctx context.Context, tx *gorm.DB) ([]*types.Product, error)
	ListLedgerRecords(ctx context.Context, tx *gorm.DB) ([]*types.LedgerRecord, error)
}

type productService struct {
	log              *logger.Logger
	productRepo      repos.ProductRepo
	ledgerRecordRepo repos.LedgerRecordRepo
	ledgerClient     ledger.Client
	qrService        QRCodeService
}

func NewProductService(
	baseLog *logger.Logger,
	productRepo repos.ProductRepo,
	ledgerRecordRepo repos.LedgerRecordRepo,
	ledgerClient ledger.Client,
	qrService QRCodeService,
) ProductService {
	serviceLog := baseLog.With("service", "ProductService")
	return &productService{
		log:              serviceLog,
		productRepo:      productRepo,
		ledgerRecordRepo: ledgerRecordRepo,
		ledgerClient:     ledgerClient,
		qrService:        qrService,
	}
}

func (ps *productService) Register(ctx context.Context, tx *gorm.DB, product *types.Product) (*RegistrationResult, error) {
	if product == nil {
		return nil, apperr.Validation("product payload is required")
	}
	if strings.TrimSpace(product.ProductName) == "" {
		return nil, apperr.Validation("productName is required")
	}

	if strings.TrimSpace(product.ProductID) == "" {
		generated, err := ps.generateProductID(ctx, tx)
		if err != nil {
			return nil, err
		}
		product.ProductID = generated
		ps.log.Info("Generated product id", "product_id", generated)
	}

	product.ID = uuid.New()
	product.CreatedAt = time.Now()

	if _, err := ps.productRepo.Create(ctx, tx, []*types.Product{product}); err != nil {
		ps.log.Error("Failed to persist product", "error", err, "product_id", product.ProductID)
		return nil, apperr.Persistence("create product", err)
	}

	result := &RegistrationResult{Product: product}

	// The product row is now authoritative. A ledger call failure from here
	// on is advisory: logged, reported in the result, never fatal. A failure
	// persisting a returned ledger record is still fatal.
	record, err := ps.ledgerClient.RegisterProduct(ctx, product)
	if err != nil {
		ps.log.Warn("Ledger registration failed, product kept without ledger record", "error", err, "product_id", product.ProductID)
		result.Warnings = append(result.Warnings, "ledger registration failed; verification will not resolve this product until reconciled")
		return result, nil
	}

	if _, err := ps.ledgerRecordRepo.Create(ctx, tx, []*types.LedgerRecord{record}); err != nil {
		ps.log.Error("Failed to persist ledger record", "error", err, "product_id", product.ProductID)
		return nil, apperr.Persistence("create ledger record", err)
	}

	result.BlockchainUpdated = true
	result.EncryptedCode = record.EncryptedCode

	qr, err := ps.qrService.GenerateDataURL(record.EncryptedCode, 300)
	if err != nil {
		return nil, err
	}
	result.QRCode = qr

	ps.log.Info("Product registered", "product_id", product.ProductID, "tx_hash", record.TransactionHash)
	return result, nil
}

func (ps *productService) generateProductID(ctx context.Context, tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < productIDAttempts; attempt++ {
		candidate := "AGR-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
		exists, err := ps.productRepo.ProductIDExists(ctx, tx, candidate)
		if err != nil {
			return "", apperr.Persistence("check product id", err)
		}
		if !exists {
			return candidate, nil
		}
		ps.log.Warn("Product id collision, retrying", "product_id", candidate, "attempt", attempt+1)
	}
	return "", apperr.Persistence("generate product id", fmt.Errorf("exhausted %d attempts", productIDAttempts))
}

func (ps *productService) Verify(ctx context.Context, tx *gorm.DB, encryptedCode string) (*VerificationResult, error) {
	if strings.TrimSpace(encryptedCode) == "" {
		return nil, apperr.Validation("encrypted code is required")
	}

	records, err := ps.ledgerRecordRepo.GetByEncryptedCodes(ctx, tx, []string{encryptedCode})
	if err != nil {
		return nil, apperr.Persistence("lookup ledger record", err)
	}
	if len(records) == 0 {
		return nil, apperr.NotFound("no product found for this encrypted code")
	}
	record := records[0]

	products, err := ps.productRepo.GetByProductIDs(ctx, tx, []string{record.ProductID})
	if err != nil {
		return nil, apperr.Persistence("lookup product", err)
	}
	if len(products) == 0 {
		// Ledger says yes, product store says no: a data inconsistency, still
		// reported to the caller as a plain not-found.
		ps.log.Error("Ledger record without product row", "product_id", record.ProductID)
		return nil, apperr.NotFound("product details not found")
	}

	return &VerificationResult{
		Verified:        true,
		Product:         products[0],
		TransactionHash: record.TransactionHash,
		Timestamp:       record.Timestamp,
	}, nil
}

func (ps *productService) GetByProductID(ctx context.Context, tx *gorm.DB, productID string) (*types.Product, error) {
	products, err := ps.productRepo.GetByProductIDs(ctx, tx, []string{productID})
	if err != nil {
		return nil, apperr.Persistence("lookup product", err)
	}
	if len(products) == 0 {
		return nil, apperr.NotFound("product not found: " + productID)
	}
	return products[0], nil
}

func (ps *productService) ListProducts(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	products, err := ps.productRepo.ListAll(ctx, tx)
	if err != nil {
		return nil, apperr.Persistence("list products", err)
	}
	return products, nil
}

func (ps *productService) ListLedgerRecords(ctx context.Context, tx *gorm.DB) ([]*types.LedgerRecord, error) {
	records, err := ps.ledgerRecordRepo.ListAll(ctx, tx)
	if err != nil {
		return nil, apperr.Persistence("list ledger records", err)
	}
	return records, nil
}

package services

import (
	"context"
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

// CustodyUpdateResult carries the stored custody record plus the advisory
// outcome of the ledger write, mirroring RegistrationResult.
type CustodyUpdateResult struct {
	DistributorInfo   *types.DistributorInfo `json:"distributorInfo,omitempty"`
	RetailerInfo      *types.RetailerInfo    `json:"retailerInfo,omitempty"`
	BlockchainUpdated bool                   `json:"blockchainUpdated"`
	Warnings          []string               `json:"warnings,omitempty"`
}

// ProductDetails is the combined consumer view: verification outcome plus
// the role's custody record when one exists.
type ProductDetails struct {
	Verification    *VerificationResult
	DistributorInfo *types.DistributorInfo
	RetailerInfo    *types.RetailerInfo
	HasCustodyInfo  bool
}

type DistributorService interface {
	UpdateInfo(ctx context.Context, tx *gorm.DB, productID string, payload *types.DistributorInfo) (*CustodyUpdateResult, error)
	GetInfo(ctx context.Context, tx *gorm.DB, productID string) (*types.DistributorInfo, error)
	DeleteInfo(ctx context.Context, tx *gorm.DB, productID string) error
	ProductDetails(ctx context.Context, tx *gorm.DB, encryptedCode string) (*ProductDetails, error)
}

type distributorService struct {
	log             *logger.Logger
	distributorRepo repos.DistributorInfoRepo
	productService  ProductService
	ledgerClient    ledger.Client
}

func NewDistributorService(
	baseLog *logger.Logger,
	distributorRepo repos.DistributorInfoRepo,
	productService ProductService,
	ledgerClient ledger.Client,
) DistributorService {
	serviceLog := baseLog.With("service", "DistributorService")
	return &distributorService{
		log:             serviceLog,
		distributorRepo: distributorRepo,
		productService:  productService,
		ledgerClient:    ledgerClient,
	}
}

func (ds *distributorService) UpdateInfo(ctx context.Context, tx *gorm.DB, productID string, payload *types.DistributorInfo) (*CustodyUpdateResult, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperr.Validation("product id is required")
	}
	if payload == nil {
		return nil, apperr.Validation("distributor info payload is required")
	}

	existing, err := ds.distributorRepo.GetByProductIDs(ctx, tx, []string{productID})
	if err != nil {
		return nil, apperr.Persistence("lookup distributor info", err)
	}

	now := time.Now()
	var saved *types.DistributorInfo
	if len(existing) > 0 {
		info := existing[0]
		info.DistributorName = payload.DistributorName
		info.WarehouseLocation = payload.WarehouseLocation
		info.StorageConditions = payload.StorageConditions
		info.TransportationMethod = payload.TransportationMethod
		info.DistributionPrice = payload.DistributionPrice
		info.DateOfReceiving = payload.DateOfReceiving
		info.BatchNumber = payload.BatchNumber
		info.QualityCheckStatus = payload.QualityCheckStatus
		info.UpdatedAt = now
		saved, err = ds.distributorRepo.Save(ctx, tx, info)
	} else {
		info := &types.DistributorInfo{
			ID:                   uuid.New(),
			ProductID:            productID,
			DistributorName:      payload.DistributorName,
			WarehouseLocation:    payload.WarehouseLocation,
			StorageConditions:    payload.StorageConditions,
			TransportationMethod: payload.TransportationMethod,
			DistributionPrice:    payload.DistributionPrice,
			DateOfReceiving:      payload.DateOfReceiving,
			BatchNumber:          payload.BatchNumber,
			QualityCheckStatus:   payload.QualityCheckStatus,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		var created []*types.DistributorInfo
		created, err = ds.distributorRepo.Create(ctx, tx, []*types.DistributorInfo{info})
		if err == nil {
			saved = created[0]
		}
	}
	if err != nil {
		ds.log.Error("Failed to save distributor info", "error", err, "product_id", productID)
		return nil, apperr.Persistence("save distributor info", err)
	}

	result := &CustodyUpdateResult{DistributorInfo: saved}

	// Advisory ledger write; the stored row is authoritative either way.
	if _, err := ds.ledgerClient.RecordCustodyUpdate(ctx, productID, "distributor"); err != nil {
		ds.log.Warn("Ledger custody update failed, database update kept", "error", err, "product_id", productID)
		result.Warnings = append(result.Warnings, "ledger custody update failed")
	} else {
		result.BlockchainUpdated = true
	}

	return result, nil
}

func (ds *distributorService) GetInfo(ctx context.Context, tx *gorm.DB, productID string) (*types.DistributorInfo, error) {
	infos, err := ds.distributorRepo.GetByProductIDs(ctx, tx, []string{productID})
	if err != nil {
		return nil, apperr.Persistence("lookup distributor info", err)
	}
	if len(infos) == 0 {
		return nil, apperr.NotFound("distributor information not found for product: " + productID)
	}
	return infos[0], nil
}

func (ds *distributorService) DeleteInfo(ctx context.Context, tx *gorm.DB, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return apperr.Validation("product id is required")
	}
	if _, err := ds.GetInfo(ctx, tx, productID); err != nil {
		return err
	}
	if err := ds.distributorRepo.DeleteByProductID(ctx, tx, productID); err != nil {
		return apperr.Persistence("delete distributor info", err)
	}
	ds.log.Info("Distributor info deleted", "product_id", productID)
	return nil
}

func (ds *distributorService) ProductDetails(ctx context.Context, tx *gorm.DB, encryptedCode string) (*ProductDetails, error) {
	verification, err := ds.productService.Verify(ctx, tx, encryptedCode)
	if err != nil {
		return nil, err
	}

	details := &ProductDetails{Verification: verification}
	info, err := ds.GetInfo(ctx, tx, verification.Product.ProductID)
	if err == nil {
		details.DistributorInfo = info
		details.HasCustodyInfo = true
	}
	return details, nil
}

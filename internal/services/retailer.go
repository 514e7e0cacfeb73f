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

type RetailerService interface {
	UpdateInfo(ctx context.Context, tx *gorm.DB, productID string, payload *types.RetailerInfo) (*CustodyUpdateResult, error)
	GetInfo(ctx context.Context, tx *gorm.DB, productID string) (*types.RetailerInfo, error)
	ProductDetails(ctx context.Context, tx *gorm.DB, encryptedCode string) (*ProductDetails, error)
}

type retailerService struct {
	log            *logger.Logger
	retailerRepo   repos.RetailerInfoRepo
	productService ProductService
	ledgerClient   ledger.Client
}

func NewRetailerService(
	baseLog *logger.Logger,
	retailerRepo repos.RetailerInfoRepo,
	productService ProductService,
	ledgerClient ledger.Client,
) RetailerService {
	serviceLog := baseLog.With("service", "RetailerService")
	return &retailerService{
		log:            serviceLog,
		retailerRepo:   retailerRepo,
		productService: productService,
		ledgerClient:   ledgerClient,
	}
}

func (rs *retailerService) UpdateInfo(ctx context.Context, tx *gorm.DB, productID string, payload *types.RetailerInfo) (*CustodyUpdateResult, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperr.Validation("product id is required")
	}
	if payload == nil {
		return nil, apperr.Validation("retailer info payload is required")
	}
	if strings.TrimSpace(payload.RetailerName) == "" {
		return nil, apperr.Validation("retailerName is required")
	}

	existing, err := rs.retailerRepo.GetByProductIDs(ctx, tx, []string{productID})
	if err != nil {
		return nil, apperr.Persistence("lookup retailer info", err)
	}

	now := time.Now()
	var saved *types.RetailerInfo
	if len(existing) > 0 {
		info := existing[0]
		info.RetailerName = payload.RetailerName
		info.StorageConditions = payload.StorageConditions
		info.RetailPrice = payload.RetailPrice
		info.RetailerLocation = payload.RetailerLocation
		info.DateOfArrival = payload.DateOfArrival
		info.RetailerAddress = payload.RetailerAddress
		info.UpdatedAt = now
		saved, err = rs.retailerRepo.Save(ctx, tx, info)
	} else {
		info := &types.RetailerInfo{
			ID:                uuid.New(),
			ProductID:         productID,
			RetailerName:      payload.RetailerName,
			StorageConditions: payload.StorageConditions,
			RetailPrice:       payload.RetailPrice,
			RetailerLocation:  payload.RetailerLocation,
			DateOfArrival:     payload.DateOfArrival,
			RetailerAddress:   payload.RetailerAddress,
			UpdatedAt:         now,
		}
		var created []*types.RetailerInfo
		created, err = rs.retailerRepo.Create(ctx, tx, []*types.RetailerInfo{info})
		if err == nil {
			saved = created[0]
		}
	}
	if err != nil {
		rs.log.Error("Failed to save retailer info", "error", err, "product_id", productID)
		return nil, apperr.Persistence("save retailer info", err)
	}

	result := &CustodyUpdateResult{RetailerInfo: saved}

	if _, err := rs.ledgerClient.RecordCustodyUpdate(ctx, productID, "retailer"); err != nil {
		rs.log.Warn("Ledger custody update failed, database update kept", "error", err, "product_id", productID)
		result.Warnings = append(result.Warnings, "ledger custody update failed")
	} else {
		result.BlockchainUpdated = true
	}

	return result, nil
}

func (rs *retailerService) GetInfo(ctx context.Context, tx *gorm.DB, productID string) (*types.RetailerInfo, error) {
	infos, err := rs.retailerRepo.GetByProductIDs(ctx, tx, []string{productID})
	if err != nil {
		return nil, apperr.Persistence("lookup retailer info", err)
	}
	if len(infos) == 0 {
		return nil, apperr.NotFound("retailer information not found for product: " + productID)
	}
	return infos[0], nil
}

func (rs *retailerService) ProductDetails(ctx context.Context, tx *gorm.DB, encryptedCode string) (*ProductDetails, error) {
	verification, err := rs.productService.Verify(ctx, tx, encryptedCode)
	if err != nil {
		return nil, err
	}

	details := &ProductDetails{Verification: verification}
	info, err := rs.GetInfo(ctx, tx, verification.Product.ProductID)
	if err == nil {
		details.RetailerInfo = info
		details.HasCustodyInfo = true
	}
	return details, nil
}

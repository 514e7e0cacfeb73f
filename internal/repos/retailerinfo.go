package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

type RetailerInfoRepo interface {
	Create(ctx context.Context, tx *gorm.DB, infos []*types.RetailerInfo) ([]*types.RetailerInfo, error)
	Save(ctx context.Context, tx *gorm.DB, info *types.RetailerInfo) (*types.RetailerInfo, error)
	GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.RetailerInfo, error)
}

type retailerInfoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRetailerInfoRepo(db *gorm.DB, baseLog *logger.Logger) RetailerInfoRepo {
	repoLog := baseLog.With("repo", "RetailerInfoRepo")
	return &retailerInfoRepo{db: db, log: repoLog}
}

func (rr *retailerInfoRepo) Create(ctx context.Context, tx *gorm.DB, infos []*types.RetailerInfo) ([]*types.RetailerInfo, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if len(infos) == 0 {
		return []*types.RetailerInfo{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}

func (rr *retailerInfoRepo) Save(ctx context.Context, tx *gorm.DB, info *types.RetailerInfo) (*types.RetailerInfo, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	if err := transaction.WithContext(ctx).Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}

func (rr *retailerInfoRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.RetailerInfo, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}

	var results []*types.RetailerInfo
	if len(productIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

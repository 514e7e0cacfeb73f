package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

type DistributorInfoRepo interface {
	Create(ctx context.Context, tx *gorm.DB, infos []*types.DistributorInfo) ([]*types.DistributorInfo, error)
	Save(ctx context.Context, tx *gorm.DB, info *types.DistributorInfo) (*types.DistributorInfo, error)
	GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.DistributorInfo, error)
	DeleteByProductID(ctx context.Context, tx *gorm.DB, productID string) error
}

type distributorInfoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDistributorInfoRepo(db *gorm.DB, baseLog *logger.Logger) DistributorInfoRepo {
	repoLog := baseLog.With("repo", "DistributorInfoRepo")
	return &distributorInfoRepo{db: db, log: repoLog}
}

func (dr *distributorInfoRepo) Create(ctx context.Context, tx *gorm.DB, infos []*types.DistributorInfo) ([]*types.DistributorInfo, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if len(infos) == 0 {
		return []*types.DistributorInfo{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}

func (dr *distributorInfoRepo) Save(ctx context.Context, tx *gorm.DB, info *types.DistributorInfo) (*types.DistributorInfo, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if err := transaction.WithContext(ctx).Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}

func (dr *distributorInfoRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.DistributorInfo, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.DistributorInfo
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

func (dr *distributorInfoRepo) DeleteByProductID(ctx context.Context, tx *gorm.DB, productID string) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	return transaction.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&types.DistributorInfo{}).Error
}

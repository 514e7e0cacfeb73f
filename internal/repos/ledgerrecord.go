package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

type LedgerRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, records []*types.LedgerRecord) ([]*types.LedgerRecord, error)
	GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.LedgerRecord, error)
	GetByEncryptedCodes(ctx context.Context, tx *gorm.DB, codes []string) ([]*types.LedgerRecord, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LedgerRecord, error)
}

type ledgerRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLedgerRecordRepo(db *gorm.DB, baseLog *logger.Logger) LedgerRecordRepo {
	repoLog := baseLog.With("repo", "LedgerRecordRepo")
	return &ledgerRecordRepo{db: db, log: repoLog}
}

func (lr *ledgerRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.LedgerRecord) ([]*types.LedgerRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	if len(records) == 0 {
		return []*types.LedgerRecord{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (lr *ledgerRecordRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.LedgerRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LedgerRecord
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

func (lr *ledgerRecordRepo) GetByEncryptedCodes(ctx context.Context, tx *gorm.DB, codes []string) ([]*types.LedgerRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LedgerRecord
	if len(codes) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("encrypted_code IN ?", codes).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (lr *ledgerRecordRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LedgerRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = lr.db
	}

	var results []*types.LedgerRecord
	if err := transaction.WithContext(ctx).
		Order("timestamp DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

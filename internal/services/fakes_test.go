package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rainaarpit12/Sih-2025/internal/types"
)

// In-memory doubles for the repo and ledger interfaces. Each fake keeps the
// stored rows visible so tests can assert on what was written, and exposes
// error hooks to force failures per call.

type fakeProductRepo struct {
	products  []*types.Product
	createErr error
	lookupErr error
	existsErr error
}

func (f *fakeProductRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.products = append(f.products, products...)
	return products, nil
}

func (f *fakeProductRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.Product, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var out []*types.Product
	for _, p := range f.products {
		for _, id := range productIDs {
			if p.ProductID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ProductIDExists(ctx context.Context, tx *gorm.DB, productID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, p := range f.products {
		if p.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.Product, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.products, nil
}

type fakeLedgerRecordRepo struct {
	records   []*types.LedgerRecord
	createErr error
	lookupErr error
}

func (f *fakeLedgerRecordRepo) Create(ctx context.Context, tx *gorm.DB, records []*types.LedgerRecord) ([]*types.LedgerRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.records = append(f.records, records...)
	return records, nil
}

func (f *fakeLedgerRecordRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.LedgerRecord, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var out []*types.LedgerRecord
	for _, r := range f.records {
		for _, id := range productIDs {
			if r.ProductID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeLedgerRecordRepo) GetByEncryptedCodes(ctx context.Context, tx *gorm.DB, codes []string) ([]*types.LedgerRecord, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var out []*types.LedgerRecord
	for _, r := range f.records {
		for _, code := range codes {
			if r.EncryptedCode == code {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeLedgerRecordRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.LedgerRecord, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.records, nil
}

type fakeDistributorInfoRepo struct {
	infos     []*types.DistributorInfo
	createErr error
	saveErr   error
	lookupErr error
	deleteErr error
}

func (f *fakeDistributorInfoRepo) Create(ctx context.Context, tx *gorm.DB, infos []*types.DistributorInfo) ([]*types.DistributorInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.infos = append(f.infos, infos...)
	return infos, nil
}

func (f *fakeDistributorInfoRepo) Save(ctx context.Context, tx *gorm.DB, info *types.DistributorInfo) (*types.DistributorInfo, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	for i, existing := range f.infos {
		if existing.ProductID == info.ProductID {
			f.infos[i] = info
			return info, nil
		}
	}
	f.infos = append(f.infos, info)
	return info, nil
}

func (f *fakeDistributorInfoRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.DistributorInfo, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var out []*types.DistributorInfo
	for _, info := range f.infos {
		for _, id := range productIDs {
			if info.ProductID == id {
				out = append(out, info)
			}
		}
	}
	return out, nil
}

func (f *fakeDistributorInfoRepo) DeleteByProductID(ctx context.Context, tx *gorm.DB, productID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.infos[:0]
	for _, info := range f.infos {
		if info.ProductID != productID {
			kept = append(kept, info)
		}
	}
	f.infos = kept
	return nil
}

type fakeRetailerInfoRepo struct {
	infos     []*types.RetailerInfo
	createErr error
	saveErr   error
	lookupErr error
}

func (f *fakeRetailerInfoRepo) Create(ctx context.Context, tx *gorm.DB, infos []*types.RetailerInfo) ([]*types.RetailerInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.infos = append(f.infos, infos...)
	return infos, nil
}

func (f *fakeRetailerInfoRepo) Save(ctx context.Context, tx *gorm.DB, info *types.RetailerInfo) (*types.RetailerInfo, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	for i, existing := range f.infos {
		if existing.ProductID == info.ProductID {
			f.infos[i] = info
			return info, nil
		}
	}
	f.infos = append(f.infos, info)
	return info, nil
}

func (f *fakeRetailerInfoRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*types.RetailerInfo, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	var out []*types.RetailerInfo
	for _, info := range f.infos {
		for _, id := range productIDs {
			if info.ProductID == id {
				out = append(out, info)
			}
		}
	}
	return out, nil
}

// fakeLedgerClient fabricates deterministic records without a SimulatedClient
// so service tests stay independent of hash generation.
type fakeLedgerClient struct {
	registerErr   error
	custodyErr    error
	custodyCalls  []string
	custodyStages []string
	txHash        string
	encryptedCode string
}

func (f *fakeLedgerClient) RegisterProduct(ctx context.Context, product *types.Product) (*types.LedgerRecord, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	code := f.encryptedCode
	if code == "" {
		code = "code-" + product.ProductID
	}
	hash := f.txHash
	if hash == "" {
		hash = "0xfake"
	}
	return &types.LedgerRecord{
		ID:              uuid.New(),
		ProductID:       product.ProductID,
		TransactionHash: hash,
		EncryptedCode:   code,
		Receipt:         datatypes.JSON([]byte(`{}`)),
		Timestamp:       time.Now(),
	}, nil
}

func (f *fakeLedgerClient) RecordCustodyUpdate(ctx context.Context, productID, stage string) (string, error) {
	f.custodyCalls = append(f.custodyCalls, productID)
	f.custodyStages = append(f.custodyStages, stage)
	if f.custodyErr != nil {
		return "", f.custodyErr
	}
	if f.txHash != "" {
		return f.txHash, nil
	}
	return "0xfake", nil
}

// fakeQRCodeService returns a canned data URL or an error.
type fakeQRCodeService struct {
	err error
}

func (f *fakeQRCodeService) GenerateDataURL(text string, size int) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if text == "" {
		return "", errors.New("empty text")
	}
	return "data:image/png;base64,fake", nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

func newDistributorFixture(t *testing.T) (DistributorService, *fakeDistributorInfoRepo, *fakeLedgerClient, ProductService, *fakeLedgerRecordRepo) {
	t.Helper()
	productRepo := &fakeProductRepo{}
	recordRepo := &fakeLedgerRecordRepo{}
	client := &fakeLedgerClient{}
	productSvc := newProductService(t, productRepo, recordRepo, client)
	infoRepo := &fakeDistributorInfoRepo{}
	svc := NewDistributorService(testLogger(t), infoRepo, productSvc, client)
	return svc, infoRepo, client, productSvc, recordRepo
}

func TestDistributorUpdateInfo_CreatesRow(t *testing.T) {
	svc, infoRepo, client, _, _ := newDistributorFixture(t)

	result, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.DistributorInfo{
		DistributorName:   "FreshLink",
		WarehouseLocation: "Nagpur",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.DistributorInfo == nil || result.DistributorInfo.DistributorName != "FreshLink" {
		t.Fatalf("unexpected stored info: %#v", result.DistributorInfo)
	}
	if !result.BlockchainUpdated {
		t.Fatalf("expected blockchainUpdated=true")
	}
	if len(infoRepo.infos) != 1 {
		t.Fatalf("expected one row, got %d", len(infoRepo.infos))
	}
	if len(client.custodyStages) != 1 || client.custodyStages[0] != "distributor" {
		t.Fatalf("unexpected custody stages: %v", client.custodyStages)
	}
}

func TestDistributorUpdateInfo_UpsertsLastWriteWins(t *testing.T) {
	svc, infoRepo, _, _, _ := newDistributorFixture(t)

	first, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.DistributorInfo{DistributorName: "First"})
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	second, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.DistributorInfo{DistributorName: "Second"})
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	if len(infoRepo.infos) != 1 {
		t.Fatalf("expected a single row after upsert, got %d", len(infoRepo.infos))
	}
	if infoRepo.infos[0].DistributorName != "Second" {
		t.Fatalf("expected last write to win, got %q", infoRepo.infos[0].DistributorName)
	}
	if second.DistributorInfo.ID != first.DistributorInfo.ID {
		t.Fatalf("row identity changed across upsert")
	}
	if !second.DistributorInfo.UpdatedAt.After(first.DistributorInfo.UpdatedAt) {
		t.Fatalf("expected updatedAt to advance across upserts: first=%v second=%v",
			first.DistributorInfo.UpdatedAt, second.DistributorInfo.UpdatedAt)
	}
}

func TestDistributorUpdateInfo_LedgerFailureIsAdvisory(t *testing.T) {
	svc, infoRepo, client, _, _ := newDistributorFixture(t)
	client.custodyErr = apperr.Ledger("custody", errors.New("node down"))

	result, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.DistributorInfo{DistributorName: "FreshLink"})
	if err != nil {
		t.Fatalf("update must succeed despite ledger failure, got %v", err)
	}
	if result.BlockchainUpdated {
		t.Fatalf("expected blockchainUpdated=false")
	}
	if len(result.Warnings) == 0 {
		t.Fatalf("expected a warning")
	}
	if len(infoRepo.infos) != 1 {
		t.Fatalf("row must be kept, got %d", len(infoRepo.infos))
	}
}

func TestDistributorUpdateInfo_Validation(t *testing.T) {
	svc, _, _, _, _ := newDistributorFixture(t)

	if _, err := svc.UpdateInfo(context.Background(), nil, " ", &types.DistributorInfo{}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for blank id, got %v", err)
	}
	if _, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", nil); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error for nil payload, got %v", err)
	}
}

func TestDistributorGetInfo_NotFound(t *testing.T) {
	svc, _, _, _, _ := newDistributorFixture(t)

	_, err := svc.GetInfo(context.Background(), nil, "AGR-404")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDistributorDeleteInfo(t *testing.T) {
	svc, infoRepo, _, _, _ := newDistributorFixture(t)

	if _, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.DistributorInfo{DistributorName: "FreshLink"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.DeleteInfo(context.Background(), nil, "AGR-1"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(infoRepo.infos) != 0 {
		t.Fatalf("expected row removed, got %d", len(infoRepo.infos))
	}

	if err := svc.DeleteInfo(context.Background(), nil, "AGR-1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found for second delete, got %v", err)
	}
}

func TestDistributorProductDetails(t *testing.T) {
	productRepo := &fakeProductRepo{}
	recordRepo := &fakeLedgerRecordRepo{}
	client := &fakeLedgerClient{encryptedCode: "dist-code"}
	productSvc := newProductService(t, productRepo, recordRepo, client)
	infoRepo := &fakeDistributorInfoRepo{}
	svc := NewDistributorService(testLogger(t), infoRepo, productSvc, client)

	reg, err := productSvc.Register(context.Background(), nil, &types.Product{ProductName: "Wheat"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// No custody info yet.
	details, err := svc.ProductDetails(context.Background(), nil, "dist-code")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if details.HasCustodyInfo || details.DistributorInfo != nil {
		t.Fatalf("expected no custody info, got %#v", details)
	}
	if !details.Verification.Verified {
		t.Fatalf("expected verified=true")
	}

	// After an update the info is attached.
	if _, err := svc.UpdateInfo(context.Background(), nil, reg.Product.ProductID, &types.DistributorInfo{DistributorName: "FreshLink"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	details, err = svc.ProductDetails(context.Background(), nil, "dist-code")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !details.HasCustodyInfo || details.DistributorInfo == nil {
		t.Fatalf("expected custody info attached, got %#v", details)
	}
}

func TestDistributorProductDetails_UnknownCode(t *testing.T) {
	svc, _, _, _, _ := newDistributorFixture(t)

	_, err := svc.ProductDetails(context.Background(), nil, "unknown")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

func newRetailerFixture(t *testing.T) (RetailerService, *fakeRetailerInfoRepo, *fakeLedgerClient, ProductService) {
	t.Helper()
	productRepo := &fakeProductRepo{}
	recordRepo := &fakeLedgerRecordRepo{}
	client := &fakeLedgerClient{encryptedCode: "ret-code"}
	productSvc := newProductService(t, productRepo, recordRepo, client)
	infoRepo := &fakeRetailerInfoRepo{}
	svc := NewRetailerService(testLogger(t), infoRepo, productSvc, client)
	return svc, infoRepo, client, productSvc
}

func TestRetailerUpdateInfo_CreatesRow(t *testing.T) {
	svc, infoRepo, client, _ := newRetailerFixture(t)

	result, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.RetailerInfo{
		RetailerName:     "GreenMart",
		RetailerLocation: "Mumbai",
		RetailPrice:      55.5,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.RetailerInfo == nil || result.RetailerInfo.RetailerName != "GreenMart" {
		t.Fatalf("unexpected stored info: %#v", result.RetailerInfo)
	}
	if !result.BlockchainUpdated {
		t.Fatalf("expected blockchainUpdated=true")
	}
	if len(infoRepo.infos) != 1 {
		t.Fatalf("expected one row, got %d", len(infoRepo.infos))
	}
	if len(client.custodyStages) != 1 || client.custodyStages[0] != "retailer" {
		t.Fatalf("unexpected custody stages: %v", client.custodyStages)
	}
}

func TestRetailerUpdateInfo_RequiresRetailerName(t *testing.T) {
	svc, _, _, _ := newRetailerFixture(t)

	_, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.RetailerInfo{RetailerLocation: "Mumbai"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRetailerUpdateInfo_Upserts(t *testing.T) {
	svc, infoRepo, _, _ := newRetailerFixture(t)

	first, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.RetailerInfo{RetailerName: "First"})
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	second, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.RetailerInfo{RetailerName: "Second"})
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if len(infoRepo.infos) != 1 {
		t.Fatalf("expected a single row after upsert, got %d", len(infoRepo.infos))
	}
	if infoRepo.infos[0].RetailerName != "Second" {
		t.Fatalf("expected last write to win, got %q", infoRepo.infos[0].RetailerName)
	}
	if !second.RetailerInfo.UpdatedAt.After(first.RetailerInfo.UpdatedAt) {
		t.Fatalf("expected updatedAt to advance across upserts: first=%v second=%v",
			first.RetailerInfo.UpdatedAt, second.RetailerInfo.UpdatedAt)
	}
}

func TestRetailerUpdateInfo_LedgerFailureIsAdvisory(t *testing.T) {
	svc, infoRepo, client, _ := newRetailerFixture(t)
	client.custodyErr = apperr.Ledger("custody", errors.New("node down"))

	result, err := svc.UpdateInfo(context.Background(), nil, "AGR-1", &types.RetailerInfo{RetailerName: "GreenMart"})
	if err != nil {
		t.Fatalf("update must succeed despite ledger failure, got %v", err)
	}
	if result.BlockchainUpdated || len(result.Warnings) == 0 {
		t.Fatalf("expected advisory warning, got %#v", result)
	}
	if len(infoRepo.infos) != 1 {
		t.Fatalf("row must be kept")
	}
}

func TestRetailerProductDetails(t *testing.T) {
	svc, _, _, productSvc := newRetailerFixture(t)

	reg, err := productSvc.Register(context.Background(), nil, &types.Product{ProductName: "Mango"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	details, err := svc.ProductDetails(context.Background(), nil, "ret-code")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if details.HasCustodyInfo || details.RetailerInfo != nil {
		t.Fatalf("expected no custody info yet")
	}

	if _, err := svc.UpdateInfo(context.Background(), nil, reg.Product.ProductID, &types.RetailerInfo{RetailerName: "GreenMart"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	details, err = svc.ProductDetails(context.Background(), nil, "ret-code")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !details.HasCustodyInfo || details.RetailerInfo == nil {
		t.Fatalf("expected custody info attached")
	}
}

func TestRetailerGetInfo_NotFound(t *testing.T) {
	svc, _, _, _ := newRetailerFixture(t)

	_, err := svc.GetInfo(context.Background(), nil, "AGR-404")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

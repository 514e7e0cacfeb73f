package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

// SimulatedClient fabricates transaction hashes instead of talking to a
// chain. No consensus, no finality, no tamper resistance; registrations
// always succeed. This is the default client and the test double.
type SimulatedClient struct {
	log *logger.Logger
	now func() time.Time
}

func NewSimulatedClient(baseLog *logger.Logger) *SimulatedClient {
	return &SimulatedClient{
		log: baseLog.With("ledger", "SimulatedClient"),
		now: time.Now,
	}
}

func (sc *SimulatedClient) RegisterProduct(ctx context.Context, product *types.Product) (*types.LedgerRecord, error) {
	now := sc.now()
	code, err := EncodeProductCode(product, now)
	if err != nil {
		return nil, err
	}

	txHash := simulatedTxHash()
	sc.log.Debug("Simulated ledger registration", "product_id", product.ProductID, "tx_hash", txHash)

	return &types.LedgerRecord{
		ID:              uuid.New(),
		ProductID:       product.ProductID,
		TransactionHash: txHash,
		EncryptedCode:   code,
		Receipt:         datatypes.JSON([]byte(`{}`)),
		Timestamp:       now,
	}, nil
}

func (sc *SimulatedClient) RecordCustodyUpdate(ctx context.Context, productID, stage string) (string, error) {
	if strings.TrimSpace(productID) == "" {
		return "", apperr.Validation("product id is required for a custody update")
	}
	txHash := simulatedTxHash()
	sc.log.Debug("Simulated ledger custody update", "product_id", productID, "stage", stage, "tx_hash", txHash)
	return txHash, nil
}

func simulatedTxHash() string {
	return "0x" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

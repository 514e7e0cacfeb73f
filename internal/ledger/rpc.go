package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

// RPCConfig carries the node connection settings. The field set mirrors the
// deployment surface of the contract tooling: a node URL, the registry
// contract address, and the signing key held by the gateway.
type RPCConfig struct {
	NodeURL         string
	ContractAddress string
	PrivateKey      string
	Timeout         time.Duration
}

// RPCClient talks JSON-RPC to a ledger gateway node that fronts the
// ProductRegistry contract. The encrypted code is still derived locally; the
// node only witnesses it and returns the transaction hash and receipt.
type RPCClient struct {
	httpClient *resty.Client
	cfg        RPCConfig
	log        *logger.Logger
}

func NewRPCClient(cfg RPCConfig, baseLog *logger.Logger) *RPCClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.NodeURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)

	return &RPCClient{
		httpClient: restyClient,
		cfg:        cfg,
		log:        baseLog.With("ledger", "RPCClient"),
	}
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerResult struct {
	TransactionHash string          `json:"transactionHash"`
	Receipt         json.RawMessage `json:"receipt"`
}

func (rc *RPCClient) RegisterProduct(ctx context.Context, product *types.Product) (*types.LedgerRecord, error) {
	now := time.Now()
	code, err := EncodeProductCode(product, now)
	if err != nil {
		return nil, err
	}

	result := new(registerResult)
	if err := rc.call(ctx, "agrichain_registerProduct", []any{rc.cfg.ContractAddress, product.ProductID, code}, result); err != nil {
		return nil, err
	}

	receipt := datatypes.JSON([]byte(`{}`))
	if len(result.Receipt) > 0 {
		receipt = datatypes.JSON(result.Receipt)
	}

	rc.log.Info("Ledger registration confirmed", "product_id", product.ProductID, "tx_hash", result.TransactionHash)
	return &types.LedgerRecord{
		ID:              uuid.New(),
		ProductID:       product.ProductID,
		TransactionHash: result.TransactionHash,
		EncryptedCode:   code,
		Receipt:         receipt,
		Timestamp:       now,
	}, nil
}

func (rc *RPCClient) RecordCustodyUpdate(ctx context.Context, productID, stage string) (string, error) {
	if strings.TrimSpace(productID) == "" {
		return "", apperr.Validation("product id is required for a custody update")
	}

	result := new(registerResult)
	if err := rc.call(ctx, "agrichain_recordCustodyUpdate", []any{rc.cfg.ContractAddress, productID, stage}, result); err != nil {
		return "", err
	}

	rc.log.Info("Ledger custody update confirmed", "product_id", productID, "stage", stage, "tx_hash", result.TransactionHash)
	return result.TransactionHash, nil
}

func (rc *RPCClient) call(ctx context.Context, method string, params []any, out any) error {
	rpcResp := new(rpcResponse)

	resp, err := rc.httpClient.R().
		SetContext(ctx).
		SetBody(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1}).
		SetResult(rpcResp).
		Post("")
	if err != nil {
		return apperr.Ledger(method, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return apperr.Ledger(method, fmt.Errorf("node returned status %d", resp.StatusCode()))
	}
	if rpcResp.Error != nil {
		return apperr.Ledger(method, fmt.Errorf("node error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message))
	}
	if out != nil && len(rpcResp.Result) > 0 {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return apperr.Ledger(method, fmt.Errorf("decode result: %w", err))
		}
	}
	return nil
}

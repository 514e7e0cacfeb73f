package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

func TestRPCClient_RegisterProduct(t *testing.T) {
	var gotMethod string
	var gotParams []any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JSONRPC string `json:"jsonrpc"`
			Method  string `json:"method"`
			Params  []any  `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotMethod = req.Method
		gotParams = req.Params
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"transactionHash":"0xabc123","receipt":{"blockNumber":7}}}`))
	}))
	defer server.Close()

	client := NewRPCClient(RPCConfig{
		NodeURL:         server.URL,
		ContractAddress: "0xcontract",
		Timeout:         2 * time.Second,
	}, testLogger(t))

	product := &types.Product{ProductID: "AGR-33334444", ProductName: "Grapes", Place: "Sangli"}
	record, err := client.RegisterProduct(context.Background(), product)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotMethod != "agrichain_registerProduct" {
		t.Fatalf("unexpected method: %q", gotMethod)
	}
	if len(gotParams) != 3 || gotParams[0] != "0xcontract" || gotParams[1] != "AGR-33334444" {
		t.Fatalf("unexpected params: %#v", gotParams)
	}
	if record.TransactionHash != "0xabc123" {
		t.Fatalf("unexpected tx hash: %q", record.TransactionHash)
	}
	if string(record.Receipt) != `{"blockNumber":7}` {
		t.Fatalf("unexpected receipt: %s", record.Receipt)
	}
	if record.EncryptedCode == "" {
		t.Fatalf("expected locally derived encrypted code")
	}
}

func TestRPCClient_RecordCustodyUpdate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{"transactionHash":"0xfeed"}}`))
	}))
	defer server.Close()

	client := NewRPCClient(RPCConfig{NodeURL: server.URL}, testLogger(t))
	hash, err := client.RecordCustodyUpdate(context.Background(), "AGR-1", "retailer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if hash != "0xfeed" {
		t.Fatalf("unexpected tx hash: %q", hash)
	}
}

func TestRPCClient_NodeErrorIsLedgerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"out of gas"}}`))
	}))
	defer server.Close()

	client := NewRPCClient(RPCConfig{NodeURL: server.URL}, testLogger(t))
	product := &types.Product{ProductID: "AGR-1", ProductName: "Rice"}
	if _, err := client.RegisterProduct(context.Background(), product); !errors.Is(err, apperr.ErrLedger) {
		t.Fatalf("expected ledger error, got %v", err)
	}
}

func TestRPCClient_HTTPStatusErrorIsLedgerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewRPCClient(RPCConfig{NodeURL: server.URL}, testLogger(t))
	if _, err := client.RecordCustodyUpdate(context.Background(), "AGR-1", "distributor"); !errors.Is(err, apperr.ErrLedger) {
		t.Fatalf("expected ledger error, got %v", err)
	}
}

func TestRPCClient_UnreachableNodeIsLedgerError(t *testing.T) {
	client := NewRPCClient(RPCConfig{
		NodeURL: "http://127.0.0.1:1",
		Timeout: 500 * time.Millisecond,
	}, testLogger(t))
	product := &types.Product{ProductID: "AGR-1", ProductName: "Rice"}
	if _, err := client.RegisterProduct(context.Background(), product); !errors.Is(err, apperr.ErrLedger) {
		t.Fatalf("expected ledger error, got %v", err)
	}
}

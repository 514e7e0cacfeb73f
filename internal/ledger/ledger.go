// Package ledger models the product ledger as a capability: the provenance
// flow depends only on Client, never on whether a simulated ledger or a real
// node gateway is in effect.
package ledger

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

// Client records product registrations and custody updates on the ledger.
// RegisterProduct returns the prepared LedgerRecord; persisting it is the
// caller's job. Implementations must treat absence of connectivity as an
// error return, never as a panic.
type Client interface {
	RegisterProduct(ctx context.Context, product *types.Product) (*types.LedgerRecord, error)
	RecordCustodyUpdate(ctx context.Context, productID, stage string) (string, error)
}

// EncodeProductCode derives the public encrypted code for a product:
// base64("productId|productName|place|unixMillis"). This is an identifier
// transform, not a cryptographic scheme; anyone holding the scheme can
// reverse it.
func EncodeProductCode(product *types.Product, now time.Time) (string, error) {
	if product == nil {
		return "", apperr.Validation("product is required to encode a code")
	}
	if strings.TrimSpace(product.ProductID) == "" {
		return "", apperr.Validation("product id is required to encode a code")
	}
	if strings.TrimSpace(product.ProductName) == "" {
		return "", apperr.Validation("product name is required to encode a code")
	}
	data := fmt.Sprintf("%s|%s|%s|%d", product.ProductID, product.ProductName, product.Place, now.UnixMilli())
	return base64.StdEncoding.EncodeToString([]byte(data)), nil
}

// DecodeProductCode reverses EncodeProductCode. Used for diagnostics; the
// verification path never trusts decoded fields, it always resolves the code
// through the ledger record store.
func DecodeProductCode(code string) (productID, productName, place string, at time.Time, err error) {
	raw, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return "", "", "", time.Time{}, apperr.Validation("code is not valid base64")
	}
	parts := strings.Split(string(raw), "|")
	if len(parts) != 4 {
		return "", "", "", time.Time{}, apperr.Validation("code does not carry four fields")
	}
	millis, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return "", "", "", time.Time{}, apperr.Validation("code timestamp is not numeric")
	}
	return parts[0], parts[1], parts[2], time.UnixMilli(millis), nil
}

package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LedgerRecord associates a product with its encrypted code and the
// transaction reference returned by the ledger client. Exactly one per
// product; the encrypted code is the only public lookup key consumers hold.
type LedgerRecord struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID       string         `gorm:"column:product_id;uniqueIndex;not null" json:"productId"`
	TransactionHash string         `gorm:"column:transaction_hash;not null" json:"transactionHash"`
	EncryptedCode   string         `gorm:"column:encrypted_code;type:text;uniqueIndex;not null" json:"encryptedCode"`
	Receipt         datatypes.JSON `gorm:"column:receipt;type:jsonb" json:"receipt,omitempty"`
	Timestamp       time.Time      `gorm:"column:timestamp" json:"timestamp"`
}

func (LedgerRecord) TableName() string {
	return "ledger_records"
}

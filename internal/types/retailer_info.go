package types

import (
	"time"

	"github.com/google/uuid"
)

// RetailerInfo is the retailer's custody record for a product, one row per
// product id, upserted on every update.
type RetailerInfo struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID         string    `gorm:"column:product_id;uniqueIndex;not null" json:"productId"`
	RetailerName      string    `gorm:"column:retailer_name;not null" json:"retailerName"`
	StorageConditions string    `gorm:"column:storage_conditions;type:text" json:"storageConditions"`
	RetailPrice       float64   `gorm:"column:retail_price" json:"retailPrice"`
	RetailerLocation  string    `gorm:"column:retailer_location" json:"retailerLocation"`
	DateOfArrival     string    `gorm:"column:date_of_arrival" json:"dateOfArrival"`
	RetailerAddress   string    `gorm:"column:retailer_address" json:"retailerAddress"`
	UpdatedAt         time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (RetailerInfo) TableName() string {
	return "retailer_info"
}

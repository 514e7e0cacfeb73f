package types

import (
	"time"

	"github.com/google/uuid"
)

// DistributorInfo is the distributor's custody record for a product, one row
// per product id, upserted on every update.
type DistributorInfo struct {
	ID                   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID            string    `gorm:"column:product_id;uniqueIndex;not null" json:"productId"`
	DistributorName      string    `gorm:"column:distributor_name" json:"distributorName"`
	WarehouseLocation    string    `gorm:"column:warehouse_location" json:"warehouseLocation"`
	StorageConditions    string    `gorm:"column:storage_conditions" json:"storageConditions"`
	TransportationMethod string    `gorm:"column:transportation_method" json:"transportationMethod"`
	DistributionPrice    string    `gorm:"column:distribution_price" json:"distributionPrice"`
	DateOfReceiving      string    `gorm:"column:date_of_receiving" json:"dateOfReceiving"`
	BatchNumber          string    `gorm:"column:batch_number" json:"batchNumber"`
	QualityCheckStatus   string    `gorm:"column:quality_check_status" json:"qualityCheckStatus"`
	CreatedAt            time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt            time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (DistributorInfo) TableName() string {
	return "distributor_info"
}

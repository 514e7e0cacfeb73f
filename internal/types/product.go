package types

import (
	"time"

	"github.com/google/uuid"
)

// Product is the farmer-registered product of record. Rows are immutable
// after registration; custody data lives in its own tables keyed by
// ProductID.
type Product struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProductID         string    `gorm:"column:product_id;uniqueIndex;not null" json:"productId"`
	ProductName       string    `gorm:"column:product_name;not null" json:"productName"`
	Category          string    `gorm:"column:category" json:"category"`
	DateOfManufacture string    `gorm:"column:date_of_manufacture" json:"dateOfManufacture"`
	Time              string    `gorm:"column:manufacture_time" json:"time"`
	Place             string    `gorm:"column:place;type:text" json:"place"`
	QualityRating     string    `gorm:"column:quality_rating" json:"qualityRating"`
	PriceForFarmer    float64   `gorm:"column:price_for_farmer" json:"priceForFarmer"`
	Description       string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt         time.Time `gorm:"not null;default:now()" json:"createdAt"`
}

func (Product) TableName() string {
	return "products"
}

package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Sale is an immutable record of a completed transaction. TotalPrice is
// stored as charged, never re-derived from quantity times price, so
// nominal-amount fuel purchases keep their exact cash total.
type Sale struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	ProductID  snowflake.ID `gorm:"not null;index" json:"product_id"`
	Quantity   float64      `gorm:"not null" json:"quantity"`
	TotalPrice float64      `gorm:"not null" json:"total_price"`
	SaleDate   time.Time    `gorm:"not null;index" json:"sale_date"`
}

func (Sale) TableName() string { return "sales" }

// SaleWithProduct is a sale joined with the product name at read time. The
// product reference is weak; a deleted product resolves to UnknownProduct.
type SaleWithProduct struct {
	ID          snowflake.ID `json:"id"`
	ProductID   snowflake.ID `json:"product_id"`
	ProductName string       `json:"product_name"`
	Quantity    float64      `json:"quantity"`
	TotalPrice  float64      `json:"total_price"`
	SaleDate    time.Time    `json:"sale_date"`
}

// MonthlyProductSales is one aggregated report row for a calendar month.
type MonthlyProductSales struct {
	ProductID     snowflake.ID `json:"product_id"`
	ProductName   string       `json:"product_name"`
	TotalQuantity float64      `json:"total_quantity"`
	TotalRevenue  float64      `json:"total_revenue"`
}

// UnknownProduct is the display name for sales whose product row no longer
// exists.
const UnknownProduct = "unknown product"

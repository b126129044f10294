package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// FuelCategory classifies a fuel product (a grade of fuel). Categories are
// created during first-run seeding and never change afterwards.
type FuelCategory struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `gorm:"not null" json:"created_at"`
}

func (FuelCategory) TableName() string { return "fuel_categories" }

// Product is any sellable item, fuel or otherwise. Stock is always stored
// rounded to two fractional digits. FuelCategoryID is nil for non-fuel
// products; the reference is weak and never cascades.
type Product struct {
	ID             snowflake.ID  `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"not null;index" json:"name"`
	Stock          float64       `gorm:"not null" json:"stock"`
	Price          float64       `gorm:"not null" json:"price"`
	FuelCategoryID *snowflake.ID `gorm:"index" json:"fuel_category_id,omitempty"`
	CreatedAt      time.Time     `gorm:"not null" json:"created_at"`
}

func (Product) TableName() string { return "products" }

// FuelProduct is a product joined with its category name, the shape the
// presentation layer shows before any fuel sale or price update.
type FuelProduct struct {
	ID             snowflake.ID  `json:"id"`
	Name           string        `json:"name"`
	Stock          float64       `json:"stock"`
	Price          float64       `json:"price"`
	FuelCategoryID *snowflake.ID `json:"fuel_category_id"`
	CategoryName   string        `json:"category_name"`
	CreatedAt      time.Time     `json:"created_at"`
}

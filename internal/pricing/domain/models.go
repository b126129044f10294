package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PriceChange is an immutable audit record of a fuel price update. Rows are
// never modified or deleted, and they survive deletion of the product they
// point at.
type PriceChange struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	ProductID  snowflake.ID `gorm:"not null;index" json:"product_id"`
	OldPrice   float64      `gorm:"not null" json:"old_price"`
	NewPrice   float64      `gorm:"not null" json:"new_price"`
	ChangeDate time.Time    `gorm:"not null" json:"change_date"`
}

func (PriceChange) TableName() string { return "price_changes" }

package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindCurrentPrice(ctx context.Context, db *gorm.DB, productID snowflake.ID) (*float64, error)
	UpdateProductPrice(ctx context.Context, db *gorm.DB, productID snowflake.ID, price float64) error
	Insert(ctx context.Context, db *gorm.DB, change *PriceChange) error
	ListByProduct(ctx context.Context, db *gorm.DB, productID snowflake.ID) ([]PriceChange, error)
}

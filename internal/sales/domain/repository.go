package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindProductStock(ctx context.Context, db *gorm.DB, productID snowflake.ID) (*float64, error)
	UpdateProductStock(ctx context.Context, db *gorm.DB, productID snowflake.ID, stock float64) error
	Insert(ctx context.Context, db *gorm.DB, sale *Sale) error
	List(ctx context.Context, db *gorm.DB) ([]Sale, error)
	ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]SaleWithProduct, error)
	AggregateRange(ctx context.Context, db *gorm.DB, from, to time.Time) ([]MonthlyProductSales, error)
}

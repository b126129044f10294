package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Product, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*Product, error)
	List(ctx context.Context, db *gorm.DB) ([]Product, error)
	Search(ctx context.Context, db *gorm.DB, fragment string) ([]Product, error)
	SetStock(ctx context.Context, db *gorm.DB, id snowflake.ID, stock float64) error
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)

	ListCategories(ctx context.Context, db *gorm.DB) ([]FuelCategory, error)
	FindCategoryByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*FuelCategory, error)
	ListFuelProducts(ctx context.Context, db *gorm.DB) ([]FuelProduct, error)
}

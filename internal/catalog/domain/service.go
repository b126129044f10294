package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// UpsertProductRequest adds stock under a product name. The name is the
// natural key: an existing product accumulates stock, a new name inserts.
type UpsertProductRequest struct {
	Name           string
	Stock          float64
	Price          float64
	FuelCategoryID *snowflake.ID
}

// UpdateProductRequest overwrites the three mutable product fields. The fuel
// category reference is never touched by an update.
type UpdateProductRequest struct {
	ID    snowflake.ID
	Name  string
	Stock float64
	Price float64
}

type Service interface {
	Upsert(ctx context.Context, req UpsertProductRequest) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id snowflake.ID) (Product, error)
	Search(ctx context.Context, fragment string) ([]Product, error)
	Update(ctx context.Context, req UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id snowflake.ID) error

	ListCategories(ctx context.Context) ([]FuelCategory, error)
	GetCategory(ctx context.Context, id snowflake.ID) (FuelCategory, error)
	ListFuelProducts(ctx context.Context) ([]FuelProduct, error)
}

var (
	ErrNotFound     = errors.New("not_found")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidStock = errors.New("invalid_stock")
	ErrInvalidPrice = errors.New("invalid_price")
)

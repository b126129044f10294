package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

type Service interface {
	// UpdateFuelPrice records the old/new price pair and overwrites the
	// product price as one atomic unit.
	UpdateFuelPrice(ctx context.Context, productID snowflake.ID, newPrice float64) (PriceChange, error)
	// History lists the price changes of a product, newest first.
	History(ctx context.Context, productID snowflake.ID) ([]PriceChange, error)
}

var (
	ErrNotFound     = errors.New("not_found")
	ErrInvalidPrice = errors.New("invalid_price")
)

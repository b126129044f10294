package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

// RecordSaleRequest records a completed transaction. TotalPrice is the
// amount actually charged; the caller computes it (for fuel it is usually
// the cash amount the quantity was derived from).
type RecordSaleRequest struct {
	ProductID  snowflake.ID
	Quantity   float64
	TotalPrice float64
}

type Service interface {
	// Record decrements stock and inserts the sale as one atomic unit.
	Record(ctx context.Context, req RecordSaleRequest) (Sale, error)
	List(ctx context.Context) ([]Sale, error)
	ListRecent(ctx context.Context, limit int) ([]SaleWithProduct, error)
	// MonthlyReport aggregates sales of the given calendar month grouped
	// by product. Month is 1-12.
	MonthlyReport(ctx context.Context, year, month int) ([]MonthlyProductSales, error)
}

var (
	ErrNotFound          = errors.New("not_found")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrInvalidAmount     = errors.New("invalid_amount")
	ErrInsufficientStock = errors.New("insufficient_stock")
	ErrInvalidPeriod     = errors.New("invalid_period")
)

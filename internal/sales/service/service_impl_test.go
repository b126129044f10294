package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	catalogdomain "github.com/smallbiznis/fuelpos/internal/catalog/domain"
	"github.com/smallbiznis/fuelpos/internal/clock"
	"github.com/smallbiznis/fuelpos/internal/sales/domain"
	"github.com/smallbiznis/fuelpos/internal/sales/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, *snowflake.Node) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalogdomain.Product{}, &domain.Sale{}))
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return db, node
}

func newTestService(db *gorm.DB, node *snowflake.Node) domain.Service {
	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.New(),
		Repo:  repository.Provide(),
	})
}

func seedProduct(t *testing.T, db *gorm.DB, node *snowflake.Node, name string, stock float64) catalogdomain.Product {
	t.Helper()
	product := catalogdomain.Product{
		ID:        node.Generate(),
		Name:      name,
		Stock:     stock,
		Price:     10000,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func productStock(t *testing.T, db *gorm.DB, id snowflake.ID) float64 {
	t.Helper()
	var product catalogdomain.Product
	require.NoError(t, db.First(&product, "id = ?", id).Error)
	return product.Stock
}

func TestRecordDecrementsStockAndInsertsSale(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)
	ctx := context.Background()

	product := seedProduct(t, db, node, "Pertalite", 10)

	sale, err := svc.Record(ctx, domain.RecordSaleRequest{ProductID: product.ID, Quantity: 2.5, TotalPrice: 25000})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, sale.Quantity, 1e-9)
	assert.InDelta(t, 25000, sale.TotalPrice, 1e-9)
	assert.False(t, sale.SaleDate.IsZero())

	assert.InDelta(t, 7.5, productStock(t, db, product.ID), 1e-9)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
}

func TestRecordStampsSaleDateFromClock(t *testing.T) {
	db, node := setupTestDB(t)
	fixed := time.Date(2025, time.July, 4, 12, 30, 0, 0, time.UTC)
	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(fixed),
		Repo:  repository.Provide(),
	})

	product := seedProduct(t, db, node, "Pertamax", 10)

	sale, err := svc.Record(context.Background(), domain.RecordSaleRequest{ProductID: product.ID, Quantity: 1, TotalPrice: 13900})
	require.NoError(t, err)
	assert.True(t, sale.SaleDate.Equal(fixed))
}

func TestRecordRoundsQuantityToTwoDecimals(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)

	product := seedProduct(t, db, node, "Pertamax", 10)

	sale, err := svc.Record(context.Background(), domain.RecordSaleRequest{ProductID: product.ID, Quantity: 1.006, TotalPrice: 14000})
	require.NoError(t, err)
	assert.InDelta(t, 1.01, sale.Quantity, 1e-9)
	assert.InDelta(t, 8.99, productStock(t, db, product.ID), 1e-9)
}

func TestRecordRejectsInsufficientStock(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)
	ctx := context.Background()

	product := seedProduct(t, db, node, "Solar", 3)

	_, err := svc.Record(ctx, domain.RecordSaleRequest{ProductID: product.ID, Quantity: 3.01, TotalPrice: 21000})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Neither effect may be observable after the rejection.
	assert.InDelta(t, 3, productStock(t, db, product.ID), 1e-9)
	var count int64
	require.NoError(t, db.Model(&domain.Sale{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordValidation(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)
	ctx := context.Background()

	product := seedProduct(t, db, node, "Pertalite", 10)

	_, err := svc.Record(ctx, domain.RecordSaleRequest{ProductID: product.ID, Quantity: 0, TotalPrice: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// Rounds to zero, so it is not a sale.
	_, err = svc.Record(ctx, domain.RecordSaleRequest{ProductID: product.ID, Quantity: 0.004, TotalPrice: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.Record(ctx, domain.RecordSaleRequest{ProductID: product.ID, Quantity: 1, TotalPrice: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.Record(ctx, domain.RecordSaleRequest{ProductID: snowflake.ID(404), Quantity: 1, TotalPrice: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func insertSale(t *testing.T, db *gorm.DB, node *snowflake.Node, productID snowflake.ID, qty, total float64, date time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&domain.Sale{
		ID:         node.Generate(),
		ProductID:  productID,
		Quantity:   qty,
		TotalPrice: total,
		SaleDate:   date,
	}).Error)
}

func TestMonthlyReportAggregatesCalendarMonth(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)
	ctx := context.Background()

	productA := seedProduct(t, db, node, "Pertamax", 100)
	productB := seedProduct(t, db, node, "Solar", 100)

	march := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	insertSale(t, db, node, productA.ID, 2, 20000, march)
	insertSale(t, db, node, productA.ID, 3, 30000, march.AddDate(0, 0, 10))
	insertSale(t, db, node, productB.ID, 2, 13600, time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC))

	// Outside the calendar month, must be excluded.
	insertSale(t, db, node, productA.ID, 9, 90000, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
	insertSale(t, db, node, productA.ID, 9, 90000, time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))

	rows, err := svc.MonthlyReport(ctx, 2025, 3)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]domain.MonthlyProductSales{}
	for _, row := range rows {
		byName[row.ProductName] = row
	}
	assert.InDelta(t, 5, byName["Pertamax"].TotalQuantity, 1e-9)
	assert.InDelta(t, 50000, byName["Pertamax"].TotalRevenue, 1e-9)
	assert.InDelta(t, 2, byName["Solar"].TotalQuantity, 1e-9)
	assert.InDelta(t, 13600, byName["Solar"].TotalRevenue, 1e-9)
}

func TestMonthlyReportEmptyMonth(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)

	rows, err := svc.MonthlyReport(context.Background(), 2025, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMonthlyReportValidatesPeriod(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)
	ctx := context.Background()

	_, err := svc.MonthlyReport(ctx, 2025, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	_, err = svc.MonthlyReport(ctx, 2025, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	_, err = svc.MonthlyReport(ctx, 0, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestDeletedProductLeavesOrphanSaleRows(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)
	ctx := context.Background()

	product := seedProduct(t, db, node, "Pertamax", 10)
	_, err := svc.Record(ctx, domain.RecordSaleRequest{ProductID: product.ID, Quantity: 1, TotalPrice: 13900})
	require.NoError(t, err)

	require.NoError(t, db.Exec("DELETE FROM products WHERE id = ?", product.ID).Error)

	// The sale survives the delete and resolves to the unknown marker.
	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)

	recent, err := svc.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.UnknownProduct, recent[0].ProductName)

	rows, err := svc.MonthlyReport(ctx, time.Now().UTC().Year(), int(time.Now().UTC().Month()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.UnknownProduct, rows[0].ProductName)
}

func TestListRecentOrdersNewestFirstAndLimits(t *testing.T) {
	db, node := setupTestDB(t)
	svc := newTestService(db, node)
	ctx := context.Background()

	product := seedProduct(t, db, node, "Pertalite", 100)
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		insertSale(t, db, node, product.ID, 1, 10000, base.Add(time.Duration(i)*time.Hour))
	}

	recent, err := svc.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 5, "default limit")
	assert.True(t, recent[0].SaleDate.After(recent[4].SaleDate))

	recent, err = svc.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

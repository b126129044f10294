package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	salesdomain "github.com/smallbiznis/fuelpos/internal/sales/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() salesdomain.Repository {
	return &repo{}
}

type stockRow struct {
	ID    snowflake.ID
	Stock float64
}

func (r *repo) FindProductStock(ctx context.Context, db *gorm.DB, productID snowflake.ID) (*float64, error) {
	var row stockRow
	err := db.WithContext(ctx).Raw(
		`SELECT id, stock FROM products WHERE id = ?`,
		productID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row.Stock, nil
}

func (r *repo) UpdateProductStock(ctx context.Context, db *gorm.DB, productID snowflake.ID, stock float64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products SET stock = ? WHERE id = ?`,
		stock,
		productID,
	).Error
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, sale *salesdomain.Sale) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO sales (id, product_id, quantity, total_price, sale_date)
		 VALUES (?, ?, ?, ?, ?)`,
		sale.ID,
		sale.ProductID,
		sale.Quantity,
		sale.TotalPrice,
		sale.SaleDate,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]salesdomain.Sale, error) {
	var items []salesdomain.Sale
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_id, quantity, total_price, sale_date
		 FROM sales ORDER BY id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]salesdomain.SaleWithProduct, error) {
	var items []salesdomain.SaleWithProduct
	err := db.WithContext(ctx).Raw(
		`SELECT s.id, s.product_id, COALESCE(p.name, ?) AS product_name,
		        s.quantity, s.total_price, s.sale_date
		 FROM sales s
		 LEFT JOIN products p ON p.id = s.product_id
		 ORDER BY s.sale_date DESC, s.id DESC
		 LIMIT ?`,
		salesdomain.UnknownProduct,
		limit,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) AggregateRange(ctx context.Context, db *gorm.DB, from, to time.Time) ([]salesdomain.MonthlyProductSales, error) {
	var items []salesdomain.MonthlyProductSales
	err := db.WithContext(ctx).Raw(
		`SELECT s.product_id, COALESCE(p.name, ?) AS product_name,
		        SUM(s.quantity) AS total_quantity,
		        SUM(s.total_price) AS total_revenue
		 FROM sales s
		 LEFT JOIN products p ON p.id = s.product_id
		 WHERE s.sale_date >= ? AND s.sale_date < ?
		 GROUP BY s.product_id, p.name
		 ORDER BY s.product_id ASC`,
		salesdomain.UnknownProduct,
		from,
		to,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	pricingdomain "github.com/smallbiznis/fuelpos/internal/pricing/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() pricingdomain.Repository {
	return &repo{}
}

type priceRow struct {
	ID    snowflake.ID
	Price float64
}

func (r *repo) FindCurrentPrice(ctx context.Context, db *gorm.DB, productID snowflake.ID) (*float64, error) {
	var row priceRow
	err := db.WithContext(ctx).Raw(
		`SELECT id, price FROM products WHERE id = ?`,
		productID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == 0 {
		return nil, nil
	}
	return &row.Price, nil
}

func (r *repo) UpdateProductPrice(ctx context.Context, db *gorm.DB, productID snowflake.ID, price float64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products SET price = ? WHERE id = ?`,
		price,
		productID,
	).Error
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, change *pricingdomain.PriceChange) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO price_changes (id, product_id, old_price, new_price, change_date)
		 VALUES (?, ?, ?, ?, ?)`,
		change.ID,
		change.ProductID,
		change.OldPrice,
		change.NewPrice,
		change.ChangeDate,
	).Error
}

func (r *repo) ListByProduct(ctx context.Context, db *gorm.DB, productID snowflake.ID) ([]pricingdomain.PriceChange, error) {
	var items []pricingdomain.PriceChange
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_id, old_price, new_price, change_date
		 FROM price_changes WHERE product_id = ?
		 ORDER BY change_date DESC, id DESC`,
		productID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/smallbiznis/fuelpos/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() catalogdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, p *catalogdomain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, name, stock, price, fuel_category_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.Name,
		p.Stock,
		p.Price,
		p.FuelCategoryID,
		p.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*catalogdomain.Product, error) {
	var p catalogdomain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, stock, price, fuel_category_id, created_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*catalogdomain.Product, error) {
	var p catalogdomain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, stock, price, fuel_category_id, created_at
		 FROM products WHERE name = ? ORDER BY id ASC LIMIT 1`,
		name,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]catalogdomain.Product, error) {
	var items []catalogdomain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, stock, price, fuel_category_id, created_at
		 FROM products ORDER BY id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Search(ctx context.Context, db *gorm.DB, fragment string) ([]catalogdomain.Product, error) {
	var items []catalogdomain.Product
	// sqlite LIKE is case-insensitive for ASCII, which is the contract here.
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, stock, price, fuel_category_id, created_at
		 FROM products WHERE name LIKE ? ORDER BY id ASC`,
		"%"+fragment+"%",
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) SetStock(ctx context.Context, db *gorm.DB, id snowflake.ID, stock float64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products SET stock = ? WHERE id = ?`,
		stock,
		id,
	).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, p *catalogdomain.Product) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products SET name = ?, stock = ?, price = ? WHERE id = ?`,
		p.Name,
		p.Stock,
		p.Price,
		p.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	result := db.WithContext(ctx).Exec(`DELETE FROM products WHERE id = ?`, id)
	return result.RowsAffected, result.Error
}

func (r *repo) ListCategories(ctx context.Context, db *gorm.DB) ([]catalogdomain.FuelCategory, error) {
	var items []catalogdomain.FuelCategory
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, description, created_at FROM fuel_categories ORDER BY id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindCategoryByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*catalogdomain.FuelCategory, error) {
	var c catalogdomain.FuelCategory
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, description, created_at FROM fuel_categories WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) ListFuelProducts(ctx context.Context, db *gorm.DB) ([]catalogdomain.FuelProduct, error) {
	var items []catalogdomain.FuelProduct
	err := db.WithContext(ctx).Raw(
		`SELECT p.id, p.name, p.stock, p.price, p.fuel_category_id, p.created_at,
		        c.name AS category_name
		 FROM products p
		 JOIN fuel_categories c ON c.id = p.fuel_category_id
		 WHERE p.fuel_category_id IS NOT NULL
		 ORDER BY p.id ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

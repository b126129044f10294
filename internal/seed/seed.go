package seed

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/smallbiznis/fuelpos/internal/catalog/domain"
	"gorm.io/gorm"
)

type defaultFuel struct {
	name        string
	description string
	stock       float64
	price       float64
}

var defaultCatalog = []defaultFuel{
	{name: "Pertamax", description: "RON 92", stock: 10, price: 13900},
	{name: "Pertalite", description: "RON 90", stock: 10, price: 10000},
	{name: "Solar", description: "Diesel", stock: 10, price: 6800},
}

// EnsureDefaultCatalog seeds the default fuel categories and products on a
// cold store. The category count guards the whole block: a store that has
// been seeded once is never touched again.
func EnsureDefaultCatalog(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		return errors.New("seed id generator is required")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalogdomain.FuelCategory{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, fuel := range defaultCatalog {
			category := catalogdomain.FuelCategory{
				ID:          node.Generate(),
				Name:        fuel.name,
				Description: fuel.description,
				CreatedAt:   now,
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}

			categoryID := category.ID
			product := catalogdomain.Product{
				ID:             node.Generate(),
				Name:           fuel.name,
				Stock:          fuel.stock,
				Price:          fuel.price,
				FuelCategoryID: &categoryID,
				CreatedAt:      now,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

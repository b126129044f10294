package migration

import (
	"errors"

	catalogdomain "github.com/smallbiznis/fuelpos/internal/catalog/domain"
	pricingdomain "github.com/smallbiznis/fuelpos/internal/pricing/domain"
	salesdomain "github.com/smallbiznis/fuelpos/internal/sales/domain"
	"gorm.io/gorm"
)

// RunMigrations creates the four ledger tables if they are absent. The
// schema is fixed; AutoMigrate is a no-op on every start after the first.
func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&catalogdomain.FuelCategory{},
		&catalogdomain.Product{},
		&salesdomain.Sale{},
		&pricingdomain.PriceChange{},
	)
}

package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/leasing-service/internal/model"
)

var models = []interface{}{
	&model.Owner{},
	&model.Customer{},
	&model.Residence{},
	&model.EventSpace{},
	&model.OfficeSpace{},
	&model.Utility{},
	&model.UtilityLease{},
	&model.Lease{},
	&model.Rent{},
	&model.RentUtilityLease{},
}

// Unique indexes come from the model tags; these cover the foreign-key lookups.
var migrationStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_leases_customer_id ON leases (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_leases_property_id ON leases (property_id);`,
	`CREATE INDEX IF NOT EXISTS idx_utility_leases_property_id ON utility_leases (property_id);`,
	`CREATE INDEX IF NOT EXISTS idx_utility_leases_utility_id ON utility_leases (utility_id);`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

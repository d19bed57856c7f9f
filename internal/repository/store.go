package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nurpe/leasing-service/internal/model"
)

type (
	ResidenceRepository   = VariantRepository[model.Residence, *model.Residence]
	EventSpaceRepository  = VariantRepository[model.EventSpace, *model.EventSpace]
	OfficeSpaceRepository = VariantRepository[model.OfficeSpace, *model.OfficeSpace]
)

// Store bundles every repository over one connection. Inside Transaction the
// repositories share the transaction and lock the rows they load by id.
type Store struct {
	db *gorm.DB

	Owners        *OwnerRepository
	Customers     *CustomerRepository
	Residences    *ResidenceRepository
	EventSpaces   *EventSpaceRepository
	OfficeSpaces  *OfficeSpaceRepository
	Leases        *LeaseRepository
	Rents         *RentRepository
	Utilities     *UtilityRepository
	UtilityLeases *UtilityLeaseRepository
}

func NewStore(db *gorm.DB) *Store {
	return newStore(db, false)
}

func newStore(db *gorm.DB, locking bool) *Store {
	b := base{db: db, locking: locking}
	return &Store{
		db:            db,
		Owners:        &OwnerRepository{base: b},
		Customers:     &CustomerRepository{base: b},
		Residences:    &ResidenceRepository{base: b},
		EventSpaces:   &EventSpaceRepository{base: b},
		OfficeSpaces:  &OfficeSpaceRepository{base: b},
		Leases:        &LeaseRepository{base: b},
		Rents:         &RentRepository{base: b},
		Utilities:     &UtilityRepository{base: b},
		UtilityLeases: &UtilityLeaseRepository{base: b},
	}
}

func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newStore(tx, true))
	})
}

type base struct {
	db      *gorm.DB
	locking bool
}

func (b base) conn(ctx context.Context) *gorm.DB {
	return b.db.WithContext(ctx)
}

// row is used for single-row lookups by primary key. SQLite has no row locks
// and serializes writers anyway, so the clause is only added on postgres.
func (b base) row(ctx context.Context) *gorm.DB {
	tx := b.conn(ctx)
	if b.locking && tx.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func first[T any](rows []T) *T {
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

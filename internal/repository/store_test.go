package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nurpe/leasing-service/internal/db"
	"github.com/nurpe/leasing-service/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.Open(sqlite.Open(":memory:"), zerolog.Nop())
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(database))
	return NewStore(database)
}

func seedOwner(t *testing.T, store *Store, email string) *model.Owner {
	t.Helper()
	owner := &model.Owner{FirstName: "Olga", LastName: "Owner", Email: email, Password: "hash"}
	require.NoError(t, store.Owners.Create(context.Background(), owner))
	return owner
}

func TestCreateAssignsIDs(t *testing.T) {
	store := newTestStore(t)
	owner := seedOwner(t, store, "a@x.com")
	assert.NotEqual(t, uuid.Nil, owner.ID)

	fixed := uuid.New()
	customer := &model.Customer{ID: fixed, FirstName: "C", LastName: "D", Email: "c@x.com", Password: "hash"}
	require.NoError(t, store.Customers.Create(context.Background(), customer))
	assert.Equal(t, fixed, customer.ID)
}

func TestVariantRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	owner := seedOwner(t, store, "a@x.com")

	office := &model.OfficeSpace{
		PropertyBase: model.PropertyBase{
			OwnerID:    owner.ID,
			Name:       "Office",
			Address:    "Main St 1",
			RentalRate: 300,
			Available:  true,
			Photos:     []string{"a.jpg", "b.jpg"},
		},
		Capacity: 8,
	}
	require.NoError(t, store.OfficeSpaces.Create(ctx, office))
	assert.Equal(t, model.PropertyKindOfficeSpace, store.OfficeSpaces.Kind())

	loaded, err := store.OfficeSpaces.Get(ctx, office.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, loaded.Photos)
	assert.Equal(t, 8, loaded.Capacity)

	// the id lives in the office table only
	missing, err := store.Residences.Find(ctx, office.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
	_, err = store.Residences.Get(ctx, office.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	byAddress, err := store.OfficeSpaces.FindByAddress(ctx, "Main St 1")
	require.NoError(t, err)
	require.NotNil(t, byAddress)
	assert.Equal(t, office.ID, byAddress.ID)

	count, err := store.OfficeSpaces.CountByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	duplicate := &model.OfficeSpace{PropertyBase: model.PropertyBase{OwnerID: owner.ID, Name: "Copy", Address: "Main St 1"}}
	err = store.OfficeSpaces.Create(ctx, duplicate)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, store.OfficeSpaces.Delete(ctx, office.ID))
	gone, err := store.OfficeSpaces.Find(ctx, office.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRentLinks(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	rent := &model.Rent{LeaseID: uuid.New(), Total: 10}
	require.NoError(t, store.Rents.Create(ctx, rent))

	a, b := uuid.New(), uuid.New()
	require.NoError(t, store.Rents.Attach(ctx, rent.ID, []uuid.UUID{a, b}))
	require.NoError(t, store.Rents.Attach(ctx, rent.ID, nil))

	ids, err := store.Rents.UtilityLeaseIDs(ctx, rent.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, ids)

	billed, err := store.Rents.ListByUtilityLease(ctx, a)
	require.NoError(t, err)
	require.Len(t, billed, 1)
	assert.Equal(t, rent.ID, billed[0].ID)

	require.NoError(t, store.Rents.Detach(ctx, rent.ID))
	count, err := store.Rents.CountByUtilityLease(ctx, a)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLeasePairLookup(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	propertyID, customerID := uuid.New(), uuid.New()
	now := time.Now().UTC()

	lease := &model.Lease{PropertyID: propertyID, CustomerID: customerID, RentalRate: 100, StartDate: now, EndDate: now}
	require.NoError(t, store.Leases.Create(ctx, lease))

	found, err := store.Leases.FindByPropertyAndCustomer(ctx, propertyID, customerID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, lease.ID, found.ID)

	other, err := store.Leases.FindByPropertyAndCustomer(ctx, propertyID, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, other)

	again := &model.Lease{PropertyID: propertyID, CustomerID: customerID, StartDate: now, EndDate: now}
	assert.ErrorIs(t, store.Leases.Create(ctx, again), gorm.ErrDuplicatedKey)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	boom := errors.New("boom")

	err := store.Transaction(ctx, func(tx *Store) error {
		if err := tx.Utilities.Create(ctx, &model.Utility{Name: "WiFi"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	utility, err := store.Utilities.FindByName(ctx, "WiFi")
	require.NoError(t, err)
	assert.Nil(t, utility)

	require.NoError(t, store.Transaction(ctx, func(tx *Store) error {
		return tx.Utilities.Create(ctx, &model.Utility{Name: "WiFi"})
	}))
	utility, err = store.Utilities.FindByName(ctx, "WiFi")
	require.NoError(t, err)
	assert.NotNil(t, utility)
}

package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/leasing-service/internal/model"
)

func TestPropertyCreateDefaults(t *testing.T) {
	f := newFixture(t)
	owner := f.owner("a@x.com")

	residence := f.residence(owner.ID, "  Elm 1  ", 100)
	assert.NotEqual(t, uuid.Nil, residence.ID)
	assert.True(t, residence.Available)
	assert.Equal(t, "Elm 1", residence.Address)
	assert.Equal(t, model.HeatingGas, residence.Heating)

	stored, err := f.properties.GetResidence(f.ctx, residence.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example/1.jpg"}, stored.Photos)
}

func TestPropertyRequiresOwner(t *testing.T) {
	f := newFixture(t)
	_, err := f.properties.CreateOfficeSpace(f.ctx, OfficeSpaceInput{
		PropertyInput: propertyInput(uuid.New(), "Nowhere 1", 10),
		Capacity:      4,
	})
	requireKind(t, err, ErrNotFound, "owner not found")
}

func TestPropertyAddressUniqueAcrossVariants(t *testing.T) {
	f := newFixture(t)
	owner := f.owner("a@x.com")
	f.residence(owner.ID, "Shared 1", 100)

	_, err := f.properties.CreateEventSpace(f.ctx, EventSpaceInput{
		PropertyInput: propertyInput(owner.ID, "Shared 1", 200),
		Capacity:      50,
	})
	requireKind(t, err, ErrAlreadyExists, "property already exists")

	office := f.officeSpace(owner.ID, "Other 1", 300)
	_, err = f.properties.UpdateOfficeSpace(f.ctx, office.ID, OfficeSpaceInput{
		PropertyInput: propertyInput(owner.ID, "Shared 1", 300),
		Capacity:      12,
	})
	requireKind(t, err, ErrAlreadyExists, "property already exists")

	taken, err := f.catalog.IsAddressTaken(f.ctx, "Shared 1", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestPropertyUpdateKeepsAvailability(t *testing.T) {
	f := newFixture(t)
	owner := f.owner("a@x.com")
	office := f.officeSpace(owner.ID, "Office 1", 300)
	f.lease(office.ID, f.customer("b@x.com").ID)

	available := true
	input := propertyInput(owner.ID, "Office 1", 350)
	input.Available = &available
	updated, err := f.properties.UpdateOfficeSpace(f.ctx, office.ID, OfficeSpaceInput{PropertyInput: input, Capacity: 20})
	require.NoError(t, err)
	assert.False(t, updated.Available)
	assert.Equal(t, 350.0, updated.RentalRate)
	assert.Equal(t, 20, updated.Capacity)
}

func TestPropertyResolveAndListByOwner(t *testing.T) {
	f := newFixture(t)
	owner := f.owner("a@x.com")
	residence := f.residence(owner.ID, "R 1", 100)
	venue := f.eventSpace(owner.ID, "E 1", 200)
	office := f.officeSpace(owner.ID, "O 1", 300)
	f.residence(f.owner("other@x.com").ID, "R 2", 100)

	cases := map[uuid.UUID]model.PropertyKind{
		residence.ID: model.PropertyKindResidence,
		venue.ID:     model.PropertyKindEventSpace,
		office.ID:    model.PropertyKindOfficeSpace,
	}
	for id, kind := range cases {
		resolved, err := f.properties.Resolve(f.ctx, id)
		require.NoError(t, err)
		assert.Equal(t, kind, resolved.Kind)
		assert.Equal(t, id, resolved.Ref().ID)
	}

	_, err := f.properties.Resolve(f.ctx, uuid.New())
	requireKind(t, err, ErrNotFound, "")

	owned, err := f.properties.ListByOwner(f.ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, owned, 3)

	none, err := f.properties.ListByOwner(f.ctx, uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPropertyDeleteGuard(t *testing.T) {
	f := newFixture(t)
	owner := f.owner("a@x.com")
	residence := f.residence(owner.ID, "R 1", 100)
	lease := f.lease(residence.ID, f.customer("b@x.com").ID)

	_, err := f.properties.DeleteResidence(f.ctx, residence.ID)
	requireKind(t, err, ErrHasDependents, "cannot delete property: leases associated")

	_, err = f.leases.Delete(f.ctx, lease.ID)
	require.NoError(t, err)
	deleted, err := f.properties.DeleteResidence(f.ctx, residence.ID)
	require.NoError(t, err)
	assert.Equal(t, residence.ID, deleted.ID)

	_, err = f.properties.GetResidence(f.ctx, residence.ID)
	requireKind(t, err, ErrNotFound, "no residence with id "+residence.ID.String())
}

func TestPropertyVariantLookupsDoNotCross(t *testing.T) {
	f := newFixture(t)
	owner := f.owner("a@x.com")
	office := f.officeSpace(owner.ID, "O 1", 300)

	_, err := f.properties.GetEventSpace(f.ctx, office.ID)
	requireKind(t, err, ErrNotFound, "no event space with id "+office.ID.String())
	_, err = f.properties.DeleteResidence(f.ctx, office.ID)
	requireKind(t, err, ErrNotFound, "")
}

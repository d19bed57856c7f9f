package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/repository"
)

// Catalog answers questions about properties without the caller knowing
// which of the three variant tables a property lives in.
type Catalog struct {
	store *repository.Store
}

func NewCatalog(store *repository.Store) *Catalog {
	return &Catalog{store: store}
}

func (c *Catalog) Resolve(ctx context.Context, id uuid.UUID) (*model.ResolvedProperty, error) {
	property, err := findProperty(ctx, c.store, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, newError(ErrNotFound, "no property with id %s", id)
	}
	resolved := model.Resolve(property)
	return &resolved, nil
}

func (c *Catalog) IsAddressTaken(ctx context.Context, address string, exclude uuid.UUID) (bool, error) {
	return addressTaken(ctx, c.store, address, exclude)
}

// findProperty probes residences, then event spaces, then office spaces and
// returns the first hit, or nil.
func findProperty(ctx context.Context, store *repository.Store, id uuid.UUID) (model.Property, error) {
	residence, err := store.Residences.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if residence != nil {
		return residence, nil
	}
	eventSpace, err := store.EventSpaces.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if eventSpace != nil {
		return eventSpace, nil
	}
	officeSpace, err := store.OfficeSpaces.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if officeSpace != nil {
		return officeSpace, nil
	}
	return nil, nil
}

func addressTaken(ctx context.Context, store *repository.Store, address string, exclude uuid.UUID) (bool, error) {
	address = strings.TrimSpace(address)

	residence, err := store.Residences.FindByAddress(ctx, address)
	if err != nil {
		return false, err
	}
	if residence != nil && residence.ID != exclude {
		return true, nil
	}
	eventSpace, err := store.EventSpaces.FindByAddress(ctx, address)
	if err != nil {
		return false, err
	}
	if eventSpace != nil && eventSpace.ID != exclude {
		return true, nil
	}
	officeSpace, err := store.OfficeSpaces.FindByAddress(ctx, address)
	if err != nil {
		return false, err
	}
	return officeSpace != nil && officeSpace.ID != exclude, nil
}

func saveProperty(ctx context.Context, store *repository.Store, property model.Property) error {
	switch p := property.(type) {
	case *model.Residence:
		return store.Residences.Save(ctx, p)
	case *model.EventSpace:
		return store.EventSpaces.Save(ctx, p)
	case *model.OfficeSpace:
		return store.OfficeSpaces.Save(ctx, p)
	default:
		return newError(ErrInvalidState, "unknown property variant %T", property)
	}
}

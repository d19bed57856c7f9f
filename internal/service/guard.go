package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/repository"
)

// The delete guards below run inside the deleting transaction. Each one
// refuses the delete while any row still references the entity.

func guardOwnerDelete(ctx context.Context, store *repository.Store, ownerID uuid.UUID) error {
	counters := []func(context.Context, uuid.UUID) (int64, error){
		store.Residences.CountByOwner,
		store.EventSpaces.CountByOwner,
		store.OfficeSpaces.CountByOwner,
	}
	for _, count := range counters {
		n, err := count(ctx, ownerID)
		if err != nil {
			return err
		}
		if n > 0 {
			return newError(ErrHasDependents, "cannot delete owner: properties associated")
		}
	}
	return nil
}

func guardCustomerDelete(ctx context.Context, store *repository.Store, customerID uuid.UUID) error {
	n, err := store.Leases.CountByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrHasDependents, "cannot delete customer: leases associated")
	}
	return nil
}

// guardPropertyDelete covers every variant. Residences never carry utility
// leases, so the second count is zero for them.
func guardPropertyDelete(ctx context.Context, store *repository.Store, propertyID uuid.UUID) error {
	n, err := store.Leases.CountByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrHasDependents, "cannot delete property: leases associated")
	}
	n, err = store.UtilityLeases.CountByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrHasDependents, "cannot delete property: utility leases associated")
	}
	return nil
}

func guardUtilityDelete(ctx context.Context, store *repository.Store, utilityID uuid.UUID) error {
	n, err := store.UtilityLeases.CountByUtility(ctx, utilityID)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrHasDependents, "cannot delete utility: utility leases associated")
	}
	return nil
}

func guardUtilityLeaseDelete(ctx context.Context, store *repository.Store, utilityLeaseID uuid.UUID) error {
	n, err := store.Rents.CountByUtilityLease(ctx, utilityLeaseID)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrHasDependents, "cannot delete utility lease: rents associated")
	}
	return nil
}

func guardLeaseDelete(ctx context.Context, store *repository.Store, leaseID uuid.UUID) error {
	n, err := store.Rents.CountByLease(ctx, leaseID)
	if err != nil {
		return err
	}
	if n > 0 {
		return newError(ErrHasDependents, "cannot delete lease: rent associated")
	}
	return nil
}

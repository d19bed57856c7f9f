package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/repository"
)

// Statement assembles everything printed on a rent invoice.
func (s *RentService) Statement(ctx context.Context, rentID uuid.UUID) (*model.RentStatement, error) {
	rent, err := s.store.Rents.Get(ctx, rentID)
	if err != nil {
		return nil, notFound(err, "no rent with id %s", rentID)
	}
	return buildStatement(ctx, s.store, *rent)
}

// RentRoll returns a statement for every rent.
func (s *RentService) RentRoll(ctx context.Context) ([]model.RentStatement, error) {
	rents, err := s.store.Rents.List(ctx)
	if err != nil {
		return nil, err
	}
	roll := make([]model.RentStatement, 0, len(rents))
	for _, rent := range rents {
		statement, err := buildStatement(ctx, s.store, rent)
		if err != nil {
			return nil, err
		}
		roll = append(roll, *statement)
	}
	return roll, nil
}

func buildStatement(ctx context.Context, store *repository.Store, rent model.Rent) (*model.RentStatement, error) {
	lease, err := store.Leases.Get(ctx, rent.LeaseID)
	if err != nil {
		return nil, notFound(err, "no lease with id %s", rent.LeaseID)
	}
	property, err := findProperty(ctx, store, lease.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, newError(ErrNotFound, "no property with id %s", lease.PropertyID)
	}
	customer, err := store.Customers.Get(ctx, lease.CustomerID)
	if err != nil {
		return nil, notFound(err, "no customer with id %s", lease.CustomerID)
	}
	owner, err := store.Owners.Get(ctx, property.Base().OwnerID)
	if err != nil {
		return nil, notFound(err, "no owner with id %s", property.Base().OwnerID)
	}

	ids, err := store.Rents.UtilityLeaseIDs(ctx, rent.ID)
	if err != nil {
		return nil, err
	}
	lines := make([]model.UtilityLine, 0, len(ids))
	for _, id := range ids {
		utilityLease, err := store.UtilityLeases.Get(ctx, id)
		if err != nil {
			return nil, notFound(err, "no utility lease with id %s", id)
		}
		utility, err := store.Utilities.Get(ctx, utilityLease.UtilityID)
		if err != nil {
			return nil, notFound(err, "no utility with id %s", utilityLease.UtilityID)
		}
		lines = append(lines, model.UtilityLine{
			UtilityLeaseID: utilityLease.ID,
			UtilityName:    utility.Name,
			Rate:           utilityLease.RentalRate,
		})
	}

	return &model.RentStatement{
		Rent:      rent,
		Lease:     *lease,
		Property:  model.Resolve(property),
		Customer:  *customer,
		Owner:     *owner,
		Utilities: lines,
	}, nil
}

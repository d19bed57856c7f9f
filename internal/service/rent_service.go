package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/repository"
)

type RentInput struct {
	LeaseID         uuid.UUID
	UtilityLeaseIDs []uuid.UUID
}

type RentService struct {
	store *repository.Store
	log   zerolog.Logger
}

func NewRentService(store *repository.Store, log zerolog.Logger) *RentService {
	return &RentService{store: store, log: log}
}

// charge is the validated outcome of a rent input.
type charge struct {
	lease           *model.Lease
	utilityLeaseIDs []uuid.UUID
	total           float64
}

func (s *RentService) Create(ctx context.Context, input RentInput) (*model.Rent, error) {
	var rent *model.Rent
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		c, err := price(ctx, tx, input, uuid.Nil)
		if err != nil {
			return err
		}
		rent = &model.Rent{LeaseID: c.lease.ID, Total: c.total}
		if err := tx.Rents.Create(ctx, rent); err != nil {
			return duplicate(err, "rent already exists")
		}
		return tx.Rents.Attach(ctx, rent.ID, c.utilityLeaseIDs)
	})
	if err != nil {
		return nil, err
	}
	return rent, nil
}

// Update recomputes the total and replaces the rent's utility lease links.
func (s *RentService) Update(ctx context.Context, id uuid.UUID, input RentInput) (*model.Rent, error) {
	var rent *model.Rent
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Rents.Get(ctx, id)
		if err != nil {
			return notFound(err, "no rent with id %s", id)
		}
		c, err := price(ctx, tx, input, id)
		if err != nil {
			return err
		}
		if err := tx.Rents.Detach(ctx, id); err != nil {
			return err
		}
		current.LeaseID = c.lease.ID
		current.Total = c.total
		if err := tx.Rents.Save(ctx, current); err != nil {
			return duplicate(err, "rent already exists")
		}
		if err := tx.Rents.Attach(ctx, id, c.utilityLeaseIDs); err != nil {
			return err
		}
		rent = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rent, nil
}

func (s *RentService) Delete(ctx context.Context, id uuid.UUID) (*model.Rent, error) {
	var rent *model.Rent
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Rents.Get(ctx, id)
		if err != nil {
			return notFound(err, "no rent with id %s", id)
		}
		if err := tx.Rents.Detach(ctx, id); err != nil {
			return err
		}
		rent = current
		return tx.Rents.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return rent, nil
}

func (s *RentService) Get(ctx context.Context, id uuid.UUID) (*model.Rent, error) {
	rent, err := s.store.Rents.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "no rent with id %s", id)
	}
	return rent, nil
}

func (s *RentService) List(ctx context.Context) ([]model.Rent, error) {
	return s.store.Rents.List(ctx)
}

func (s *RentService) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]model.Rent, error) {
	return s.store.Rents.ListByLease(ctx, leaseID)
}

func (s *RentService) ListByUtilityLease(ctx context.Context, utilityLeaseID uuid.UUID) ([]model.Rent, error) {
	return s.store.Rents.ListByUtilityLease(ctx, utilityLeaseID)
}

func (s *RentService) UtilityLeaseIDs(ctx context.Context, rentID uuid.UUID) ([]uuid.UUID, error) {
	return s.store.Rents.UtilityLeaseIDs(ctx, rentID)
}

// price resolves the lease and utility leases of a rent input and sums the
// total. self is the rent being updated, uuid.Nil on create.
func price(ctx context.Context, tx *repository.Store, input RentInput, self uuid.UUID) (*charge, error) {
	lease, err := tx.Leases.Get(ctx, input.LeaseID)
	if err != nil {
		return nil, notFound(err, "no lease for the given id")
	}
	property, err := findProperty(ctx, tx, lease.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, newError(ErrInvalidState, "leased property %s no longer exists", lease.PropertyID)
	}

	c := &charge{lease: lease, total: lease.RentalRate}
	if property.Kind().SupportsUtilities() {
		seen := make(map[uuid.UUID]struct{}, len(input.UtilityLeaseIDs))
		for _, id := range input.UtilityLeaseIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			utilityLease, err := tx.UtilityLeases.Get(ctx, id)
			if err != nil {
				return nil, notFound(err, "no utility lease for id %s", id)
			}
			if utilityLease.PropertyID != lease.PropertyID {
				return nil, newError(ErrInvalidState, "utility lease %s does not belong to the leased property", id)
			}
			c.utilityLeaseIDs = append(c.utilityLeaseIDs, id)
			c.total += utilityLease.RentalRate
		}
	}

	existing, err := tx.Rents.FindByLease(ctx, lease.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != self {
		return nil, newError(ErrAlreadyExists, "rent already exists")
	}
	return c, nil
}

// retotal recomputes every rent billed with the utility lease after its rate
// changed.
func retotal(ctx context.Context, tx *repository.Store, utilityLeaseID uuid.UUID) error {
	rents, err := tx.Rents.ListByUtilityLease(ctx, utilityLeaseID)
	if err != nil {
		return err
	}
	for i := range rents {
		rent := &rents[i]
		ids, err := tx.Rents.UtilityLeaseIDs(ctx, rent.ID)
		if err != nil {
			return err
		}
		c, err := price(ctx, tx, RentInput{LeaseID: rent.LeaseID, UtilityLeaseIDs: ids}, rent.ID)
		if err != nil {
			return err
		}
		rent.Total = c.total
		if err := tx.Rents.Save(ctx, rent); err != nil {
			return err
		}
	}
	return nil
}

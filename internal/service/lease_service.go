package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/repository"
)

type LeaseInput struct {
	PropertyID uuid.UUID
	CustomerID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

type LeaseService struct {
	store *repository.Store
	log   zerolog.Logger
}

func NewLeaseService(store *repository.Store, log zerolog.Logger) *LeaseService {
	return &LeaseService{store: store, log: log}
}

// Create validates the lease, stores it with the property's current rate and
// marks the property unavailable, all in one transaction.
func (s *LeaseService) Create(ctx context.Context, input LeaseInput) (*model.Lease, error) {
	var lease *model.Lease
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		property, err := leasableProperty(ctx, tx, input.PropertyID)
		if err != nil {
			return err
		}
		base := property.Base()
		if !base.Available {
			return newError(ErrInvalidState, "property currently unavailable")
		}
		if err := s.validate(ctx, tx, input, uuid.Nil); err != nil {
			return err
		}

		lease = &model.Lease{
			RentalRate: base.RentalRate,
			StartDate:  dateOnly(input.StartDate),
			EndDate:    dateOnly(input.EndDate),
			PropertyID: input.PropertyID,
			CustomerID: input.CustomerID,
		}
		if err := tx.Leases.Create(ctx, lease); err != nil {
			return duplicate(err, "lease already exists")
		}

		base.Available = false
		if err := saveProperty(ctx, tx, property); err != nil {
			return err
		}
		s.log.Debug().
			Str("property_id", base.ID.String()).
			Str("kind", string(property.Kind())).
			Str("lease_id", lease.ID.String()).
			Msg("property marked unavailable")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

// Update re-runs the create checks. A lease that keeps its property skips the
// availability guard, and availability is never toggled here.
func (s *LeaseService) Update(ctx context.Context, id uuid.UUID, input LeaseInput) (*model.Lease, error) {
	var lease *model.Lease
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Leases.Get(ctx, id)
		if err != nil {
			return notFound(err, "no lease with id %s", id)
		}
		property, err := leasableProperty(ctx, tx, input.PropertyID)
		if err != nil {
			return err
		}
		moved := input.PropertyID != current.PropertyID
		if moved && !property.Base().Available {
			return newError(ErrInvalidState, "property currently unavailable")
		}
		if err := s.validate(ctx, tx, input, id); err != nil {
			return err
		}
		if moved {
			rents, err := tx.Rents.CountByLease(ctx, id)
			if err != nil {
				return err
			}
			if rents > 0 {
				return newError(ErrInvalidState, "cannot move lease to another property: rent associated")
			}
			current.RentalRate = property.Base().RentalRate
		}

		current.PropertyID = input.PropertyID
		current.CustomerID = input.CustomerID
		current.StartDate = dateOnly(input.StartDate)
		current.EndDate = dateOnly(input.EndDate)
		if err := tx.Leases.Save(ctx, current); err != nil {
			return duplicate(err, "lease already exists")
		}
		lease = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

// Delete removes a lease without a rent. The property stays unavailable.
func (s *LeaseService) Delete(ctx context.Context, id uuid.UUID) (*model.Lease, error) {
	var lease *model.Lease
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Leases.Get(ctx, id)
		if err != nil {
			return notFound(err, "no lease with id %s", id)
		}
		if err := guardLeaseDelete(ctx, tx, id); err != nil {
			return err
		}
		lease = current
		return tx.Leases.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

func (s *LeaseService) Get(ctx context.Context, id uuid.UUID) (*model.Lease, error) {
	lease, err := s.store.Leases.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "no lease with id %s", id)
	}
	return lease, nil
}

func (s *LeaseService) List(ctx context.Context) ([]model.Lease, error) {
	return s.store.Leases.List(ctx)
}

func (s *LeaseService) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.Lease, error) {
	return s.store.Leases.ListByProperty(ctx, propertyID)
}

func (s *LeaseService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Lease, error) {
	return s.store.Leases.ListByCustomer(ctx, customerID)
}

// validate runs the checks shared by create and update after the property
// has been resolved: customer, date order, pair uniqueness.
func (s *LeaseService) validate(ctx context.Context, tx *repository.Store, input LeaseInput, self uuid.UUID) error {
	if _, err := tx.Customers.Get(ctx, input.CustomerID); err != nil {
		return notFound(err, "no customer for the given id")
	}
	if dateOnly(input.StartDate).After(dateOnly(input.EndDate)) {
		return newError(ErrInvalidInput, "start date must not be after end date")
	}
	existing, err := tx.Leases.FindByPropertyAndCustomer(ctx, input.PropertyID, input.CustomerID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return newError(ErrAlreadyExists, "lease already exists")
	}
	return nil
}

func leasableProperty(ctx context.Context, tx *repository.Store, id uuid.UUID) (model.Property, error) {
	property, err := findProperty(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, newError(ErrInvalidState, "property has to be a residence, event space, or office space")
	}
	return property, nil
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

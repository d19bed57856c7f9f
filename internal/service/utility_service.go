package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/repository"
)

type UtilityInput struct {
	Name        string
	Description string
}

type UtilityLeaseInput struct {
	UtilityID  uuid.UUID
	PropertyID uuid.UUID
	RentalRate float64
}

type UtilityService struct {
	store *repository.Store
}

func NewUtilityService(store *repository.Store) *UtilityService {
	return &UtilityService{store: store}
}

func (s *UtilityService) Create(ctx context.Context, input UtilityInput) (*model.Utility, error) {
	utility := &model.Utility{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := ensureUtilityNameFree(ctx, tx, utility.Name, uuid.Nil); err != nil {
			return err
		}
		return duplicate(tx.Utilities.Create(ctx, utility), "utility already exists")
	})
	if err != nil {
		return nil, err
	}
	return utility, nil
}

func (s *UtilityService) Update(ctx context.Context, id uuid.UUID, input UtilityInput) (*model.Utility, error) {
	var utility *model.Utility
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Utilities.Get(ctx, id)
		if err != nil {
			return notFound(err, "no utility with id %s", id)
		}
		current.Name = strings.TrimSpace(input.Name)
		current.Description = input.Description
		if err := ensureUtilityNameFree(ctx, tx, current.Name, id); err != nil {
			return err
		}
		if err := tx.Utilities.Save(ctx, current); err != nil {
			return duplicate(err, "utility already exists")
		}
		utility = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return utility, nil
}

func (s *UtilityService) Delete(ctx context.Context, id uuid.UUID) (*model.Utility, error) {
	var utility *model.Utility
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Utilities.Get(ctx, id)
		if err != nil {
			return notFound(err, "no utility with id %s", id)
		}
		if err := guardUtilityDelete(ctx, tx, id); err != nil {
			return err
		}
		utility = current
		return tx.Utilities.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return utility, nil
}

func (s *UtilityService) Get(ctx context.Context, id uuid.UUID) (*model.Utility, error) {
	utility, err := s.store.Utilities.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "no utility with id %s", id)
	}
	return utility, nil
}

func (s *UtilityService) List(ctx context.Context) ([]model.Utility, error) {
	return s.store.Utilities.List(ctx)
}

func (s *UtilityService) CreateLease(ctx context.Context, input UtilityLeaseInput) (*model.UtilityLease, error) {
	lease := &model.UtilityLease{
		UtilityID:  input.UtilityID,
		PropertyID: input.PropertyID,
		RentalRate: input.RentalRate,
	}
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := checkUtilityLease(ctx, tx, input, uuid.Nil); err != nil {
			return err
		}
		return duplicate(tx.UtilityLeases.Create(ctx, lease), "utility lease already exists")
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

// UpdateLease changes a utility lease and re-totals the rents billed with it.
// A utility lease already billed cannot move to another property.
func (s *UtilityService) UpdateLease(ctx context.Context, id uuid.UUID, input UtilityLeaseInput) (*model.UtilityLease, error) {
	var lease *model.UtilityLease
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.UtilityLeases.Get(ctx, id)
		if err != nil {
			return notFound(err, "no utility lease with id %s", id)
		}
		if err := checkUtilityLease(ctx, tx, input, id); err != nil {
			return err
		}
		if input.PropertyID != current.PropertyID {
			rents, err := tx.Rents.CountByUtilityLease(ctx, id)
			if err != nil {
				return err
			}
			if rents > 0 {
				return newError(ErrInvalidState, "cannot move utility lease to another property: rents associated")
			}
		}
		rateChanged := input.RentalRate != current.RentalRate

		current.UtilityID = input.UtilityID
		current.PropertyID = input.PropertyID
		current.RentalRate = input.RentalRate
		if err := tx.UtilityLeases.Save(ctx, current); err != nil {
			return duplicate(err, "utility lease already exists")
		}
		if rateChanged {
			if err := retotal(ctx, tx, id); err != nil {
				return err
			}
		}
		lease = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

func (s *UtilityService) DeleteLease(ctx context.Context, id uuid.UUID) (*model.UtilityLease, error) {
	var lease *model.UtilityLease
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.UtilityLeases.Get(ctx, id)
		if err != nil {
			return notFound(err, "no utility lease with id %s", id)
		}
		if err := guardUtilityLeaseDelete(ctx, tx, id); err != nil {
			return err
		}
		lease = current
		return tx.UtilityLeases.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return lease, nil
}

func (s *UtilityService) GetLease(ctx context.Context, id uuid.UUID) (*model.UtilityLease, error) {
	lease, err := s.store.UtilityLeases.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "no utility lease with id %s", id)
	}
	return lease, nil
}

func (s *UtilityService) ListLeases(ctx context.Context) ([]model.UtilityLease, error) {
	return s.store.UtilityLeases.List(ctx)
}

func (s *UtilityService) ListLeasesByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.UtilityLease, error) {
	return s.store.UtilityLeases.ListByProperty(ctx, propertyID)
}

func (s *UtilityService) ListLeasesByUtility(ctx context.Context, utilityID uuid.UUID) ([]model.UtilityLease, error) {
	return s.store.UtilityLeases.ListByUtility(ctx, utilityID)
}

func checkUtilityLease(ctx context.Context, tx *repository.Store, input UtilityLeaseInput, self uuid.UUID) error {
	if _, err := tx.Utilities.Get(ctx, input.UtilityID); err != nil {
		return notFound(err, "no utility for the given id")
	}
	property, err := findProperty(ctx, tx, input.PropertyID)
	if err != nil {
		return err
	}
	if property == nil || !property.Kind().SupportsUtilities() {
		return newError(ErrInvalidState, "property has to be an event space or office space")
	}
	existing, err := tx.UtilityLeases.FindByUtilityAndProperty(ctx, input.UtilityID, input.PropertyID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return newError(ErrAlreadyExists, "utility lease already exists")
	}
	return nil
}

func ensureUtilityNameFree(ctx context.Context, tx *repository.Store, name string, exclude uuid.UUID) error {
	existing, err := tx.Utilities.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != exclude {
		return newError(ErrAlreadyExists, "utility already exists")
	}
	return nil
}

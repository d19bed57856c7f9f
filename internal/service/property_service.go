package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/repository"
)

// PropertyInput holds the fields shared by all variants. Available is only
// read on create; updates keep the stored flag.
type PropertyInput struct {
	OwnerID      uuid.UUID
	Name         string
	Address      string
	Description  string
	RentalRate   float64
	Size         float64
	ParkingSpots int
	Photos       []string
	Available    *bool
}

type ResidenceInput struct {
	PropertyInput
	Bedrooms    int
	Bathrooms   int
	Heating     model.HeatingType
	PetFriendly bool
	Furnished   bool
}

type EventSpaceInput struct {
	PropertyInput
	Capacity   int
	HasKitchen bool
	HasBar     bool
}

type OfficeSpaceInput struct {
	PropertyInput
	Capacity int
}

type PropertyService struct {
	store   *repository.Store
	catalog *Catalog
}

func NewPropertyService(store *repository.Store, catalog *Catalog) *PropertyService {
	return &PropertyService{store: store, catalog: catalog}
}

// Resolve finds a property by id whatever its variant.
func (s *PropertyService) Resolve(ctx context.Context, id uuid.UUID) (*model.ResolvedProperty, error) {
	return s.catalog.Resolve(ctx, id)
}

// ListByOwner returns the owner's properties of every variant.
func (s *PropertyService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.ResolvedProperty, error) {
	result := make([]model.ResolvedProperty, 0)

	residences, err := s.store.Residences.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, p := range residences {
		result = append(result, model.Resolve(p))
	}
	eventSpaces, err := s.store.EventSpaces.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, p := range eventSpaces {
		result = append(result, model.Resolve(p))
	}
	officeSpaces, err := s.store.OfficeSpaces.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, p := range officeSpaces {
		result = append(result, model.Resolve(p))
	}
	return result, nil
}

func (s *PropertyService) CreateResidence(ctx context.Context, input ResidenceInput) (*model.Residence, error) {
	residence := &model.Residence{}
	if err := input.apply(residence); err != nil {
		return nil, err
	}
	residence.Available = input.initialAvailability()
	if err := createVariant(ctx, s.store, pickResidences, residence); err != nil {
		return nil, err
	}
	return residence, nil
}

func (s *PropertyService) UpdateResidence(ctx context.Context, id uuid.UUID, input ResidenceInput) (*model.Residence, error) {
	return updateVariant(ctx, s.store, pickResidences, id, input.apply)
}

func (s *PropertyService) GetResidence(ctx context.Context, id uuid.UUID) (*model.Residence, error) {
	return getVariant(ctx, s.store.Residences, id)
}

func (s *PropertyService) ListResidences(ctx context.Context) ([]*model.Residence, error) {
	return s.store.Residences.List(ctx)
}

func (s *PropertyService) DeleteResidence(ctx context.Context, id uuid.UUID) (*model.Residence, error) {
	return deleteVariant(ctx, s.store, pickResidences, id)
}

func (s *PropertyService) CreateEventSpace(ctx context.Context, input EventSpaceInput) (*model.EventSpace, error) {
	eventSpace := &model.EventSpace{}
	if err := input.apply(eventSpace); err != nil {
		return nil, err
	}
	eventSpace.Available = input.initialAvailability()
	if err := createVariant(ctx, s.store, pickEventSpaces, eventSpace); err != nil {
		return nil, err
	}
	return eventSpace, nil
}

func (s *PropertyService) UpdateEventSpace(ctx context.Context, id uuid.UUID, input EventSpaceInput) (*model.EventSpace, error) {
	return updateVariant(ctx, s.store, pickEventSpaces, id, input.apply)
}

func (s *PropertyService) GetEventSpace(ctx context.Context, id uuid.UUID) (*model.EventSpace, error) {
	return getVariant(ctx, s.store.EventSpaces, id)
}

func (s *PropertyService) ListEventSpaces(ctx context.Context) ([]*model.EventSpace, error) {
	return s.store.EventSpaces.List(ctx)
}

func (s *PropertyService) DeleteEventSpace(ctx context.Context, id uuid.UUID) (*model.EventSpace, error) {
	return deleteVariant(ctx, s.store, pickEventSpaces, id)
}

func (s *PropertyService) CreateOfficeSpace(ctx context.Context, input OfficeSpaceInput) (*model.OfficeSpace, error) {
	officeSpace := &model.OfficeSpace{}
	if err := input.apply(officeSpace); err != nil {
		return nil, err
	}
	officeSpace.Available = input.initialAvailability()
	if err := createVariant(ctx, s.store, pickOfficeSpaces, officeSpace); err != nil {
		return nil, err
	}
	return officeSpace, nil
}

func (s *PropertyService) UpdateOfficeSpace(ctx context.Context, id uuid.UUID, input OfficeSpaceInput) (*model.OfficeSpace, error) {
	return updateVariant(ctx, s.store, pickOfficeSpaces, id, input.apply)
}

func (s *PropertyService) GetOfficeSpace(ctx context.Context, id uuid.UUID) (*model.OfficeSpace, error) {
	return getVariant(ctx, s.store.OfficeSpaces, id)
}

func (s *PropertyService) ListOfficeSpaces(ctx context.Context) ([]*model.OfficeSpace, error) {
	return s.store.OfficeSpaces.List(ctx)
}

func (s *PropertyService) DeleteOfficeSpace(ctx context.Context, id uuid.UUID) (*model.OfficeSpace, error) {
	return deleteVariant(ctx, s.store, pickOfficeSpaces, id)
}

func (in PropertyInput) initialAvailability() bool {
	if in.Available == nil {
		return true
	}
	return *in.Available
}

func (in PropertyInput) apply(base *model.PropertyBase) error {
	available := base.Available
	if err := copier.Copy(base, &in); err != nil {
		return fmt.Errorf("map property: %w", err)
	}
	base.Available = available
	base.Name = strings.TrimSpace(in.Name)
	base.Address = strings.TrimSpace(in.Address)
	return nil
}

func (in ResidenceInput) apply(r *model.Residence) error {
	if err := in.PropertyInput.apply(&r.PropertyBase); err != nil {
		return err
	}
	r.Bedrooms = in.Bedrooms
	r.Bathrooms = in.Bathrooms
	r.Heating = in.Heating
	r.PetFriendly = in.PetFriendly
	r.Furnished = in.Furnished
	return nil
}

func (in EventSpaceInput) apply(e *model.EventSpace) error {
	if err := in.PropertyInput.apply(&e.PropertyBase); err != nil {
		return err
	}
	e.Capacity = in.Capacity
	e.HasKitchen = in.HasKitchen
	e.HasBar = in.HasBar
	return nil
}

func (in OfficeSpaceInput) apply(o *model.OfficeSpace) error {
	if err := in.PropertyInput.apply(&o.PropertyBase); err != nil {
		return err
	}
	o.Capacity = in.Capacity
	return nil
}

type variant[T any] interface {
	*T
	model.Property
}

func pickResidences(s *repository.Store) *repository.ResidenceRepository { return s.Residences }

func pickEventSpaces(s *repository.Store) *repository.EventSpaceRepository { return s.EventSpaces }

func pickOfficeSpaces(s *repository.Store) *repository.OfficeSpaceRepository { return s.OfficeSpaces }

func kindLabel(kind model.PropertyKind) string {
	switch kind {
	case model.PropertyKindResidence:
		return "residence"
	case model.PropertyKindEventSpace:
		return "event space"
	case model.PropertyKindOfficeSpace:
		return "office space"
	default:
		return "property"
	}
}

// checkPropertyRefs enforces the owner reference and the cross-variant
// address uniqueness. exclude is the property being updated, uuid.Nil on create.
func checkPropertyRefs(ctx context.Context, store *repository.Store, base *model.PropertyBase, exclude uuid.UUID) error {
	if _, err := store.Owners.Get(ctx, base.OwnerID); err != nil {
		return notFound(err, "owner not found")
	}
	taken, err := addressTaken(ctx, store, base.Address, exclude)
	if err != nil {
		return err
	}
	if taken {
		return newError(ErrAlreadyExists, "property already exists")
	}
	return nil
}

func createVariant[T any, P variant[T]](ctx context.Context, store *repository.Store, pick func(*repository.Store) *repository.VariantRepository[T, P], property P) error {
	return store.Transaction(ctx, func(tx *repository.Store) error {
		if err := checkPropertyRefs(ctx, tx, property.Base(), uuid.Nil); err != nil {
			return err
		}
		return duplicate(pick(tx).Create(ctx, property), "property already exists")
	})
}

func updateVariant[T any, P variant[T]](ctx context.Context, store *repository.Store, pick func(*repository.Store) *repository.VariantRepository[T, P], id uuid.UUID, apply func(P) error) (P, error) {
	var updated P
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		repo := pick(tx)
		current, err := repo.Get(ctx, id)
		if err != nil {
			return notFound(err, "no %s with id %s", kindLabel(repo.Kind()), id)
		}
		if err := apply(current); err != nil {
			return err
		}
		if err := checkPropertyRefs(ctx, tx, current.Base(), id); err != nil {
			return err
		}
		if err := repo.Save(ctx, current); err != nil {
			return duplicate(err, "property already exists")
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func getVariant[T any, P variant[T]](ctx context.Context, repo *repository.VariantRepository[T, P], id uuid.UUID) (P, error) {
	property, err := repo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "no %s with id %s", kindLabel(repo.Kind()), id)
	}
	return property, nil
}

func deleteVariant[T any, P variant[T]](ctx context.Context, store *repository.Store, pick func(*repository.Store) *repository.VariantRepository[T, P], id uuid.UUID) (P, error) {
	var deleted P
	err := store.Transaction(ctx, func(tx *repository.Store) error {
		repo := pick(tx)
		current, err := repo.Get(ctx, id)
		if err != nil {
			return notFound(err, "no %s with id %s", kindLabel(repo.Kind()), id)
		}
		if err := guardPropertyDelete(ctx, tx, id); err != nil {
			return err
		}
		deleted = current
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

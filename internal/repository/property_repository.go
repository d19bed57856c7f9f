package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
)

// VariantRepository stores one concrete property variant in its own table.
type VariantRepository[T any, P interface {
	*T
	model.Property
}] struct {
	base
}

func (r *VariantRepository[T, P]) Kind() model.PropertyKind {
	var zero T
	return P(&zero).Kind()
}

func (r *VariantRepository[T, P]) Create(ctx context.Context, property P) error {
	if property.Base().ID == uuid.Nil {
		property.Base().ID = uuid.New()
	}
	return r.conn(ctx).Create(property).Error
}

func (r *VariantRepository[T, P]) Get(ctx context.Context, id uuid.UUID) (P, error) {
	var row T
	if err := r.row(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return P(&row), nil
}

// Find is Get without the not-found error: it returns nil for unknown ids.
func (r *VariantRepository[T, P]) Find(ctx context.Context, id uuid.UUID) (P, error) {
	var rows []T
	if err := r.row(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	return P(first(rows)), nil
}

func (r *VariantRepository[T, P]) Save(ctx context.Context, property P) error {
	return r.conn(ctx).Save(property).Error
}

func (r *VariantRepository[T, P]) Delete(ctx context.Context, id uuid.UUID) error {
	var zero T
	return r.conn(ctx).Where("id = ?", id).Delete(P(&zero)).Error
}

func (r *VariantRepository[T, P]) List(ctx context.Context) ([]P, error) {
	var rows []T
	if err := r.conn(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return pointers[T, P](rows), nil
}

func (r *VariantRepository[T, P]) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]P, error) {
	var rows []T
	if err := r.conn(ctx).Where("owner_id = ?", ownerID).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return pointers[T, P](rows), nil
}

func (r *VariantRepository[T, P]) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var zero T
	var count int64
	if err := r.conn(ctx).Model(P(&zero)).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByAddress returns nil when the address is free in this table.
func (r *VariantRepository[T, P]) FindByAddress(ctx context.Context, address string) (P, error) {
	var rows []T
	if err := r.conn(ctx).Where("address = ?", address).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	return P(first(rows)), nil
}

func pointers[T any, P interface {
	*T
	model.Property
}](rows []T) []P {
	result := make([]P, 0, len(rows))
	for i := range rows {
		result = append(result, P(&rows[i]))
	}
	return result
}

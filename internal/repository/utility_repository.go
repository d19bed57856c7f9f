package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
)

type UtilityRepository struct {
	base
}

func (r *UtilityRepository) Create(ctx context.Context, utility *model.Utility) error {
	if utility.ID == uuid.Nil {
		utility.ID = uuid.New()
	}
	return r.conn(ctx).Create(utility).Error
}

func (r *UtilityRepository) Get(ctx context.Context, id uuid.UUID) (*model.Utility, error) {
	var utility model.Utility
	if err := r.row(ctx).Where("id = ?", id).Take(&utility).Error; err != nil {
		return nil, err
	}
	return &utility, nil
}

func (r *UtilityRepository) Save(ctx context.Context, utility *model.Utility) error {
	return r.conn(ctx).Save(utility).Error
}

func (r *UtilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&model.Utility{}).Error
}

func (r *UtilityRepository) List(ctx context.Context) ([]model.Utility, error) {
	var utilities []model.Utility
	if err := r.conn(ctx).Order("name ASC").Find(&utilities).Error; err != nil {
		return nil, err
	}
	return utilities, nil
}

// FindByName returns nil when the name is free.
func (r *UtilityRepository) FindByName(ctx context.Context, name string) (*model.Utility, error) {
	var utilities []model.Utility
	if err := r.conn(ctx).Where("name = ?", name).Limit(1).Find(&utilities).Error; err != nil {
		return nil, err
	}
	return first(utilities), nil
}

type UtilityLeaseRepository struct {
	base
}

func (r *UtilityLeaseRepository) Create(ctx context.Context, lease *model.UtilityLease) error {
	if lease.ID == uuid.Nil {
		lease.ID = uuid.New()
	}
	return r.conn(ctx).Create(lease).Error
}

func (r *UtilityLeaseRepository) Get(ctx context.Context, id uuid.UUID) (*model.UtilityLease, error) {
	var lease model.UtilityLease
	if err := r.row(ctx).Where("id = ?", id).Take(&lease).Error; err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *UtilityLeaseRepository) Save(ctx context.Context, lease *model.UtilityLease) error {
	return r.conn(ctx).Save(lease).Error
}

func (r *UtilityLeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&model.UtilityLease{}).Error
}

func (r *UtilityLeaseRepository) List(ctx context.Context) ([]model.UtilityLease, error) {
	return r.list(ctx, "")
}

func (r *UtilityLeaseRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.UtilityLease, error) {
	return r.list(ctx, "property_id = ?", propertyID)
}

func (r *UtilityLeaseRepository) ListByUtility(ctx context.Context, utilityID uuid.UUID) ([]model.UtilityLease, error) {
	return r.list(ctx, "utility_id = ?", utilityID)
}

func (r *UtilityLeaseRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	return r.count(ctx, "property_id = ?", propertyID)
}

func (r *UtilityLeaseRepository) CountByUtility(ctx context.Context, utilityID uuid.UUID) (int64, error) {
	return r.count(ctx, "utility_id = ?", utilityID)
}

// FindByUtilityAndProperty returns nil when the pair is free.
func (r *UtilityLeaseRepository) FindByUtilityAndProperty(ctx context.Context, utilityID, propertyID uuid.UUID) (*model.UtilityLease, error) {
	var leases []model.UtilityLease
	err := r.conn(ctx).
		Where("utility_id = ? AND property_id = ?", utilityID, propertyID).
		Limit(1).
		Find(&leases).Error
	if err != nil {
		return nil, err
	}
	return first(leases), nil
}

func (r *UtilityLeaseRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.UtilityLease, error) {
	tx := r.conn(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	var leases []model.UtilityLease
	if err := tx.Order("created_at ASC, id ASC").Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *UtilityLeaseRepository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var count int64
	if err := r.conn(ctx).Model(&model.UtilityLease{}).Where(query, args...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

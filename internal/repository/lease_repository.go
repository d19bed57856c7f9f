package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
)

type LeaseRepository struct {
	base
}

func (r *LeaseRepository) Create(ctx context.Context, lease *model.Lease) error {
	if lease.ID == uuid.Nil {
		lease.ID = uuid.New()
	}
	return r.conn(ctx).Create(lease).Error
}

func (r *LeaseRepository) Get(ctx context.Context, id uuid.UUID) (*model.Lease, error) {
	var lease model.Lease
	if err := r.row(ctx).Where("id = ?", id).Take(&lease).Error; err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *LeaseRepository) Save(ctx context.Context, lease *model.Lease) error {
	return r.conn(ctx).Save(lease).Error
}

func (r *LeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&model.Lease{}).Error
}

func (r *LeaseRepository) List(ctx context.Context) ([]model.Lease, error) {
	return r.list(ctx, "")
}

func (r *LeaseRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]model.Lease, error) {
	return r.list(ctx, "property_id = ?", propertyID)
}

func (r *LeaseRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Lease, error) {
	return r.list(ctx, "customer_id = ?", customerID)
}

func (r *LeaseRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	return r.count(ctx, "property_id = ?", propertyID)
}

func (r *LeaseRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return r.count(ctx, "customer_id = ?", customerID)
}

// FindByPropertyAndCustomer returns nil when the pair has no lease.
func (r *LeaseRepository) FindByPropertyAndCustomer(ctx context.Context, propertyID, customerID uuid.UUID) (*model.Lease, error) {
	var leases []model.Lease
	err := r.conn(ctx).
		Where("property_id = ? AND customer_id = ?", propertyID, customerID).
		Limit(1).
		Find(&leases).Error
	if err != nil {
		return nil, err
	}
	return first(leases), nil
}

func (r *LeaseRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Lease, error) {
	tx := r.conn(ctx)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	var leases []model.Lease
	if err := tx.Order("created_at ASC, id ASC").Find(&leases).Error; err != nil {
		return nil, err
	}
	return leases, nil
}

func (r *LeaseRepository) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var count int64
	if err := r.conn(ctx).Model(&model.Lease{}).Where(query, args...).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

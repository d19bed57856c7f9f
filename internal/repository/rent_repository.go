package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
)

type RentRepository struct {
	base
}

func (r *RentRepository) Create(ctx context.Context, rent *model.Rent) error {
	if rent.ID == uuid.Nil {
		rent.ID = uuid.New()
	}
	return r.conn(ctx).Create(rent).Error
}

func (r *RentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Rent, error) {
	var rent model.Rent
	if err := r.row(ctx).Where("id = ?", id).Take(&rent).Error; err != nil {
		return nil, err
	}
	return &rent, nil
}

func (r *RentRepository) Save(ctx context.Context, rent *model.Rent) error {
	return r.conn(ctx).Save(rent).Error
}

func (r *RentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&model.Rent{}).Error
}

func (r *RentRepository) List(ctx context.Context) ([]model.Rent, error) {
	var rents []model.Rent
	if err := r.conn(ctx).Order("created_at ASC, id ASC").Find(&rents).Error; err != nil {
		return nil, err
	}
	return rents, nil
}

func (r *RentRepository) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]model.Rent, error) {
	var rents []model.Rent
	if err := r.conn(ctx).Where("lease_id = ?", leaseID).Order("created_at ASC, id ASC").Find(&rents).Error; err != nil {
		return nil, err
	}
	return rents, nil
}

// FindByLease returns nil when the lease has no rent yet.
func (r *RentRepository) FindByLease(ctx context.Context, leaseID uuid.UUID) (*model.Rent, error) {
	var rents []model.Rent
	if err := r.conn(ctx).Where("lease_id = ?", leaseID).Limit(1).Find(&rents).Error; err != nil {
		return nil, err
	}
	return first(rents), nil
}

func (r *RentRepository) CountByLease(ctx context.Context, leaseID uuid.UUID) (int64, error) {
	var count int64
	if err := r.conn(ctx).Model(&model.Rent{}).Where("lease_id = ?", leaseID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RentRepository) ListByUtilityLease(ctx context.Context, utilityLeaseID uuid.UUID) ([]model.Rent, error) {
	var rents []model.Rent
	err := r.conn(ctx).
		Joins("JOIN rent_utility_leases link ON link.rent_id = rents.id").
		Where("link.utility_lease_id = ?", utilityLeaseID).
		Order("rents.created_at ASC, rents.id ASC").
		Find(&rents).Error
	if err != nil {
		return nil, err
	}
	return rents, nil
}

func (r *RentRepository) CountByUtilityLease(ctx context.Context, utilityLeaseID uuid.UUID) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&model.RentUtilityLease{}).
		Where("utility_lease_id = ?", utilityLeaseID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RentRepository) UtilityLeaseIDs(ctx context.Context, rentID uuid.UUID) ([]uuid.UUID, error) {
	var links []model.RentUtilityLease
	if err := r.conn(ctx).Where("rent_id = ?", rentID).Order("utility_lease_id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.UtilityLeaseID)
	}
	return ids, nil
}

func (r *RentRepository) Attach(ctx context.Context, rentID uuid.UUID, utilityLeaseIDs []uuid.UUID) error {
	if len(utilityLeaseIDs) == 0 {
		return nil
	}
	links := make([]model.RentUtilityLease, 0, len(utilityLeaseIDs))
	for _, id := range utilityLeaseIDs {
		links = append(links, model.RentUtilityLease{RentID: rentID, UtilityLeaseID: id})
	}
	return r.conn(ctx).Create(&links).Error
}

// Detach removes every utility lease link of the rent.
func (r *RentRepository) Detach(ctx context.Context, rentID uuid.UUID) error {
	return r.conn(ctx).Where("rent_id = ?", rentID).Delete(&model.RentUtilityLease{}).Error
}

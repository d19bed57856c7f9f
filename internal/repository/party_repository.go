package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/model"
)

type OwnerRepository struct {
	base
}

func (r *OwnerRepository) Create(ctx context.Context, owner *model.Owner) error {
	if owner.ID == uuid.Nil {
		owner.ID = uuid.New()
	}
	return r.conn(ctx).Create(owner).Error
}

func (r *OwnerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	var owner model.Owner
	if err := r.row(ctx).Where("id = ?", id).Take(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

func (r *OwnerRepository) Save(ctx context.Context, owner *model.Owner) error {
	return r.conn(ctx).Save(owner).Error
}

func (r *OwnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&model.Owner{}).Error
}

func (r *OwnerRepository) List(ctx context.Context) ([]model.Owner, error) {
	var owners []model.Owner
	if err := r.conn(ctx).Order("created_at ASC, id ASC").Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

// FindByEmail returns nil when no owner uses the address.
func (r *OwnerRepository) FindByEmail(ctx context.Context, email string) (*model.Owner, error) {
	var owners []model.Owner
	if err := r.conn(ctx).Where("email = ?", email).Limit(1).Find(&owners).Error; err != nil {
		return nil, err
	}
	return first(owners), nil
}

type CustomerRepository struct {
	base
}

func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	return r.conn(ctx).Create(customer).Error
}

func (r *CustomerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.row(ctx).Where("id = ?", id).Take(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) Save(ctx context.Context, customer *model.Customer) error {
	return r.conn(ctx).Save(customer).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&model.Customer{}).Error
}

func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.conn(ctx).Order("created_at ASC, id ASC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByEmail returns nil when no customer uses the address.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var customers []model.Customer
	if err := r.conn(ctx).Where("email = ?", email).Limit(1).Find(&customers).Error; err != nil {
		return nil, err
	}
	return first(customers), nil
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/nurpe/leasing-service/internal/model"
	"github.com/nurpe/leasing-service/internal/repository"
)

type OwnerInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type OwnerService struct {
	store *repository.Store
}

func NewOwnerService(store *repository.Store) *OwnerService {
	return &OwnerService{store: store}
}

func (s *OwnerService) Create(ctx context.Context, input OwnerInput) (*model.Owner, error) {
	var owner model.Owner
	if err := copier.Copy(&owner, &input); err != nil {
		return nil, fmt.Errorf("map owner: %w", err)
	}
	owner.Email = normalizeEmail(input.Email)

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	owner.Password = hash

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := ensureEmailFree(ctx, tx, owner.Email, uuid.Nil); err != nil {
			return err
		}
		return duplicate(tx.Owners.Create(ctx, &owner), "email already in use")
	})
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

func (s *OwnerService) Update(ctx context.Context, id uuid.UUID, input OwnerInput) (*model.Owner, error) {
	var owner *model.Owner
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Owners.Get(ctx, id)
		if err != nil {
			return notFound(err, "no owner with id %s", id)
		}
		hash := current.Password
		if err := copier.Copy(current, &input); err != nil {
			return fmt.Errorf("map owner: %w", err)
		}
		current.Password = hash
		current.Email = normalizeEmail(input.Email)
		if err := ensureEmailFree(ctx, tx, current.Email, id); err != nil {
			return err
		}
		if input.Password != "" {
			if current.Password, err = hashPassword(input.Password); err != nil {
				return err
			}
		}
		if err := tx.Owners.Save(ctx, current); err != nil {
			return duplicate(err, "email already in use")
		}
		owner = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) Delete(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	var owner *model.Owner
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Owners.Get(ctx, id)
		if err != nil {
			return notFound(err, "no owner with id %s", id)
		}
		if err := guardOwnerDelete(ctx, tx, id); err != nil {
			return err
		}
		owner = current
		return tx.Owners.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) Get(ctx context.Context, id uuid.UUID) (*model.Owner, error) {
	owner, err := s.store.Owners.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "no owner with id %s", id)
	}
	return owner, nil
}

func (s *OwnerService) List(ctx context.Context) ([]model.Owner, error) {
	return s.store.Owners.List(ctx)
}

type CustomerService struct {
	store *repository.Store
}

func NewCustomerService(store *repository.Store) *CustomerService {
	return &CustomerService{store: store}
}

func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*model.Customer, error) {
	var customer model.Customer
	if err := copier.Copy(&customer, &input); err != nil {
		return nil, fmt.Errorf("map customer: %w", err)
	}
	customer.Email = normalizeEmail(input.Email)

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	customer.Password = hash

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := ensureEmailFree(ctx, tx, customer.Email, uuid.Nil); err != nil {
			return err
		}
		return duplicate(tx.Customers.Create(ctx, &customer), "email already in use")
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*model.Customer, error) {
	var customer *model.Customer
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Customers.Get(ctx, id)
		if err != nil {
			return notFound(err, "no customer with id %s", id)
		}
		hash := current.Password
		if err := copier.Copy(current, &input); err != nil {
			return fmt.Errorf("map customer: %w", err)
		}
		current.Password = hash
		current.Email = normalizeEmail(input.Email)
		if err := ensureEmailFree(ctx, tx, current.Email, id); err != nil {
			return err
		}
		if input.Password != "" {
			if current.Password, err = hashPassword(input.Password); err != nil {
				return err
			}
		}
		if err := tx.Customers.Save(ctx, current); err != nil {
			return duplicate(err, "email already in use")
		}
		customer = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer *model.Customer
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.Customers.Get(ctx, id)
		if err != nil {
			return notFound(err, "no customer with id %s", id)
		}
		if err := guardCustomerDelete(ctx, tx, id); err != nil {
			return err
		}
		customer = current
		return tx.Customers.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	customer, err := s.store.Customers.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, "no customer with id %s", id)
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.store.Customers.List(ctx)
}

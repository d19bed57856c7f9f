package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nurpe/leasing-service/internal/repository"
)

// emailTaken reports whether an owner or customer other than exclude already
// uses the address. Owners and customers share one email namespace.
func emailTaken(ctx context.Context, store *repository.Store, email string, exclude uuid.UUID) (bool, error) {
	owner, err := store.Owners.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if owner != nil && owner.ID != exclude {
		return true, nil
	}
	customer, err := store.Customers.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return customer != nil && customer.ID != exclude, nil
}

func ensureEmailFree(ctx context.Context, store *repository.Store, email string, exclude uuid.UUID) error {
	taken, err := emailTaken(ctx, store, email, exclude)
	if err != nil {
		return err
	}
	if taken {
		return newError(ErrAlreadyExists, "email already in use")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

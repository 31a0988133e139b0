package storage

import (
	"context"

	"shopapi/pkg/domain"
)

// UserStorage defines persistence operations for accounts.
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row (including
	// generated fields). ErrDuplicate is returned when the email is taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail fetches a user by email, case-insensitively. Returns nil
	// when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

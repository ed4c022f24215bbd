// Package user contains the user domain model for the School Events Hub.
package user

import (
	"context"
)

// Repository defines the contract for user storage.
// The implementation lives in the infrastructure layer; the reference
// deployment keeps everything in memory, injected per process (and per
// test) rather than held in package-level state.
type Repository interface {
	// Save inserts or replaces a user.
	Save(ctx context.Context, u *User) error

	// GetByEmail returns the user with the given email.
	// Returns shared.ErrUserNotFound when no user matches.
	GetByEmail(ctx context.Context, email Email) (*User, error)

	// AddPoints increments the cached points total for the given email.
	// This is a silent no-op when the email has no user record: a ledger
	// entry may legitimately reference an email outside the user store.
	AddPoints(ctx context.Context, email Email, delta Points) error

	// List returns all users in ascending email order.
	List(ctx context.Context) ([]*User, error)
}

// Package memory provides in-memory repository implementations.
// Each store guards its map with a single RWMutex; individual
// operations are atomic, cross-store consistency is the application
// layer's responsibility.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
	"github.com/mergington-hub/school-events-hub/internal/domain/user"
)

// UserRepository is an in-memory implementation of user.Repository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[user.Email]*user.User
}

// NewUserRepository creates an empty user store.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[user.Email]*user.User),
	}
}

// Save creates or overwrites a user.
func (r *UserRepository) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[u.Email] = u.Clone()
	return nil
}

// GetByEmail returns the user with the given email.
func (r *UserRepository) GetByEmail(_ context.Context, email user.Email) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[email]
	if !ok {
		return nil, shared.NewDomainError("user", "GetByEmail", shared.ErrUserNotFound, "no user with email "+email.String())
	}
	return u.Clone(), nil
}

// AddPoints increments the cached point total of the given user.
// Unknown emails are ignored; point awards outlive user records and
// must not fail when no profile exists for the email.
func (r *UserRepository) AddPoints(_ context.Context, email user.Email, delta user.Points) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[email]; ok {
		u.AddPoints(delta)
	}
	return nil
}

// List returns all users ordered by email.
func (r *UserRepository) List(_ context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Email < out[j].Email
	})
	return out, nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mergington-hub/school-events-hub/internal/domain/badge"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
)

// BadgeCatalogRepository is an in-memory implementation of
// badge.CatalogRepository.
type BadgeCatalogRepository struct {
	mu     sync.RWMutex
	badges map[string]*badge.Badge
}

// NewBadgeCatalogRepository creates an empty catalog.
func NewBadgeCatalogRepository() *BadgeCatalogRepository {
	return &BadgeCatalogRepository{
		badges: make(map[string]*badge.Badge),
	}
}

// Save creates or overwrites a catalog entry.
func (r *BadgeCatalogRepository) Save(_ context.Context, b *badge.Badge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *b
	r.badges[b.ID] = &clone
	return nil
}

// GetByID returns the catalog entry with the given id.
func (r *BadgeCatalogRepository) GetByID(_ context.Context, id string) (*badge.Badge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.badges[id]
	if !ok {
		return nil, shared.NewDomainError("badge", "GetByID", shared.ErrBadgeNotFound, "no badge with id "+id)
	}
	clone := *b
	return &clone, nil
}

// List returns the full catalog ordered by id.
func (r *BadgeCatalogRepository) List(_ context.Context) ([]*badge.Badge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*badge.Badge, 0, len(r.badges))
	for _, b := range r.badges {
		clone := *b
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// UserBadgeRepository is an in-memory implementation of
// badge.UserBadgeRepository.
type UserBadgeRepository struct {
	mu sync.RWMutex
	// earned keeps assignments per user in earn order; held guards
	// the once-per-badge invariant.
	earned map[string][]badge.UserBadge
	held   map[string]map[string]bool
}

// NewUserBadgeRepository creates an empty user badge store.
func NewUserBadgeRepository() *UserBadgeRepository {
	return &UserBadgeRepository{
		earned: make(map[string][]badge.UserBadge),
		held:   make(map[string]map[string]bool),
	}
}

// Award stores an assignment. Re-awarding a held badge is a no-op.
func (r *UserBadgeRepository) Award(_ context.Context, ub badge.UserBadge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.held[ub.UserEmail][ub.BadgeID] {
		return nil
	}

	if r.held[ub.UserEmail] == nil {
		r.held[ub.UserEmail] = make(map[string]bool)
	}
	r.held[ub.UserEmail][ub.BadgeID] = true
	r.earned[ub.UserEmail] = append(r.earned[ub.UserEmail], ub)
	return nil
}

// Has reports whether the user already holds the badge.
func (r *UserBadgeRepository) Has(_ context.Context, userEmail, badgeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.held[userEmail][badgeID], nil
}

// ListByUser returns all badges of one user in earn order.
func (r *UserBadgeRepository) ListByUser(_ context.Context, userEmail string) ([]badge.UserBadge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]badge.UserBadge, len(r.earned[userEmail]))
	copy(out, r.earned[userEmail])
	return out, nil
}

// CountByUser returns how many badges the user holds.
func (r *UserBadgeRepository) CountByUser(_ context.Context, userEmail string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.earned[userEmail]), nil
}

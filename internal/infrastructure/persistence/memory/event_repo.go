package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mergington-hub/school-events-hub/internal/domain/event"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
)

// EventRepository is an in-memory implementation of event.Repository.
type EventRepository struct {
	mu     sync.RWMutex
	events map[string]*event.Event
}

// NewEventRepository creates an empty event store.
func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: make(map[string]*event.Event),
	}
}

// Save creates or overwrites an event together with its roster.
func (r *EventRepository) Save(_ context.Context, e *event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[e.ID] = e.Clone()
	return nil
}

// GetByID returns the event with the given id.
func (r *EventRepository) GetByID(_ context.Context, id string) (*event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, shared.NewDomainError("event", "GetByID", shared.ErrEventNotFound, "no event with id "+id)
	}
	return e.Clone(), nil
}

// List returns all events ordered by id.
func (r *EventRepository) List(_ context.Context) ([]*event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*event.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

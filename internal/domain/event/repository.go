package event

import "context"

// Repository defines the persistence contract for events.
type Repository interface {
	// Save creates or overwrites an event atomically.
	Save(ctx context.Context, e *Event) error

	// GetByID returns the event with the given id.
	// Returns shared.ErrEventNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*Event, error)

	// List returns all events in stable id order.
	List(ctx context.Context) ([]*Event, error)
}

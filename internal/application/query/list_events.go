package query

import (
	"context"
	"fmt"

	"github.com/mergington-hub/school-events-hub/internal/domain/event"
)

// ══════════════════════════════════════════════════════════════════════════════
// EVENT QUERIES
// ══════════════════════════════════════════════════════════════════════════════

// ListEventsHandler returns published events with their rosters.
// Drafts, cancelled and already completed events stay off the listing;
// they remain reachable by id.
type ListEventsHandler struct {
	eventRepo event.Repository
}

// NewListEventsHandler creates a new ListEventsHandler.
func NewListEventsHandler(eventRepo event.Repository) *ListEventsHandler {
	return &ListEventsHandler{eventRepo: eventRepo}
}

// Handle executes the list events query.
func (h *ListEventsHandler) Handle(ctx context.Context) ([]*event.Event, error) {
	events, err := h.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_events: %w", err)
	}

	published := make([]*event.Event, 0, len(events))
	for _, e := range events {
		if e.Status == event.StatusPublished {
			published = append(published, e)
		}
	}
	return published, nil
}

// GetEventHandler returns one event by id.
type GetEventHandler struct {
	eventRepo event.Repository
}

// NewGetEventHandler creates a new GetEventHandler.
func NewGetEventHandler(eventRepo event.Repository) *GetEventHandler {
	return &GetEventHandler{eventRepo: eventRepo}
}

// Handle executes the get event query.
func (h *GetEventHandler) Handle(ctx context.Context, id string) (*event.Event, error) {
	if id == "" {
		return nil, fmt.Errorf("get_event: id is required")
	}
	return h.eventRepo.GetByID(ctx, id)
}

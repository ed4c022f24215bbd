package memory

import (
	"context"
	"sync"

	"github.com/mergington-hub/school-events-hub/internal/domain/points"
)

// LedgerRepository is an in-memory implementation of points.Ledger.
// Records are stored append-only in arrival order.
type LedgerRepository struct {
	mu      sync.RWMutex
	records []points.Record
}

// NewLedgerRepository creates an empty ledger.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		records: make([]points.Record, 0),
	}
}

// Append stores a new record.
func (r *LedgerRepository) Append(_ context.Context, rec points.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, rec)
	return nil
}

// ListByUser returns all records of one user, newest first.
func (r *LedgerRepository) ListByUser(_ context.Context, userEmail string) ([]points.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]points.Record, 0)
	// Appends are chronological, so reverse arrival order is newest
	// first even when awards share a wall-clock instant.
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserEmail == userEmail {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

// ListAll returns every record, newest first.
func (r *LedgerRepository) ListAll(_ context.Context) ([]points.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]points.Record, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

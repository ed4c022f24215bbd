package points

import "context"

// Ledger defines the persistence contract for point records.
// The ledger is append-only.
type Ledger interface {
	// Append stores a new record. Existing records are never modified.
	Append(ctx context.Context, r Record) error

	// ListByUser returns all records of one user, newest first.
	ListByUser(ctx context.Context, userEmail string) ([]Record, error)

	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]Record, error)
}

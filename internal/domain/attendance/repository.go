package attendance

import (
	"context"
	"iter"
)

// Repository defines data access for the attendance ledger.
type Repository interface {
	// Upsert writes the single record for (employee, date). Re-marking the
	// same date overwrites; the storage layer enforces uniqueness.
	Upsert(ctx context.Context, record Record) (Record, error)

	// List returns matching records ordered by date ascending.
	List(ctx context.Context, filter Filter) ([]Record, error)

	// Iter streams matching records ordered by date ascending without
	// materializing them; ranging again re-runs the query. Balance
	// recomputation scans a full year through this.
	Iter(ctx context.Context, filter Filter) iter.Seq2[Record, error]
}

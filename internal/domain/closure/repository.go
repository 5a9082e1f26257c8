package closure

import (
	"context"
	"time"
)

// Repository stores the factory-closure registry. The calendar degrades to
// Sunday-only exclusion when listings come back empty.
type Repository interface {
	Create(ctx context.Context, closure Closure) (Closure, error)

	// ListBetween returns closures with from <= date <= to, date ascending.
	ListBetween(ctx context.Context, from, to time.Time) ([]Closure, error)

	// ListActiveBetween is ListBetween restricted to closures that count
	// against the working-day calendar (Scheduled or Active).
	ListActiveBetween(ctx context.Context, from, to time.Time) ([]Closure, error)
}

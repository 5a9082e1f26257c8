package leave

import "context"

// RequestRepository stores leave applications. Balances have no repository:
// they are derived from the attendance ledger on every read.
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)

	GetByID(ctx context.Context, id string) (Request, error)

	List(ctx context.Context, filter RequestFilter) ([]Request, error)

	// UpdateStatus transitions a pending request and stamps the processing
	// time. Returns ErrRequestAlreadyProcessed when the request has left
	// the pending state.
	UpdateStatus(ctx context.Context, id string, status RequestStatus, adminNotes *string) (Request, error)
}

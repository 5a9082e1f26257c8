package advance

import "context"

type Repository interface {
	Create(ctx context.Context, a *Advance) error
	GetByID(ctx context.Context, id string) (*Advance, error)
	List(ctx context.Context, filter Filter) ([]Advance, error)
	// UpdateStatus applies a pending -> approved/rejected transition; it
	// fails with ErrInvalidTransition when the row is no longer pending.
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy *string) (*Advance, error)
	// ListForDeduction returns approved and deducted advances targeting the
	// month, so recalculating after finalization reproduces the same lines.
	ListForDeduction(ctx context.Context, employeeID, month string) ([]Advance, error)
	// MarkDeducted and RevertDeducted flip approved advances to deducted and
	// back; payslip finalize and draft delete run them inside a transaction.
	MarkDeducted(ctx context.Context, ids []string) error
	RevertDeducted(ctx context.Context, ids []string) error
	DeletePending(ctx context.Context, id string) error
}

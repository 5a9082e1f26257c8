package employee

import "context"

// Repository is the read-only view of the external employee directory.
type Repository interface {
	// GetByID retrieves a single employee, returning ErrEmployeeNotFound
	// for unknown ids.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all active employees, used by month-wide payslip
	// generation.
	ListActive(ctx context.Context) ([]Employee, error)
}

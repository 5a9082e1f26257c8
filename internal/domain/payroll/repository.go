package payroll

import "context"

// PayslipRepository persists payslips. Finalize, MarkPaid and DeleteDraft are
// conditional on the current status so concurrent callers cannot double-apply
// a transition.
type PayslipRepository interface {
	Upsert(ctx context.Context, p *Payslip) error
	GetByID(ctx context.Context, id string) (*Payslip, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*Payslip, error)
	List(ctx context.Context, filter Filter) ([]Payslip, error)
	Finalize(ctx context.Context, id, finalizedBy string) (*Payslip, error)
	MarkPaid(ctx context.Context, id string) (*Payslip, error)
	DeleteDraft(ctx context.Context, id string) (*Payslip, error)
}

// ComponentRepository reads the externally managed allowance/deduction
// registry.
type ComponentRepository interface {
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]Component, error)
}

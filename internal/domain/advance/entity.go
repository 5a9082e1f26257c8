package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusDeducted Status = "deducted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDeducted:
		return true
	}
	return false
}

// CanTransitionTo enforces the advance state machine: pending splits into
// approved or rejected, approved settles into deducted, and rejected and
// deducted are terminal.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved || target == StatusRejected
	case StatusApproved:
		return target == StatusDeducted
	}
	return false
}

// Advance is a mid-month salary advance paid out before payroll and settled
// against the net salary of its deduction month.
type Advance struct {
	ID             string
	EmployeeID     string
	Amount         decimal.Decimal
	Reason         string
	DeductionMonth string // YYYY-MM
	Status         Status
	ApprovedBy     *string
	ApprovedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
}

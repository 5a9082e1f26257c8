package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBalance is one quota bucket: what the period grants, what the
// ledger shows consumed, and what is left (floored at zero for display; the
// ledger keeps the true deductions for audit).
type CategoryBalance struct {
	Entitlement decimal.Decimal `json:"entitlement"`
	Taken       decimal.Decimal `json:"taken"`
	Remaining   decimal.Decimal `json:"remaining"`
}

// NewCategoryBalance floors remaining at zero without hiding the true taken
// figure.
func NewCategoryBalance(entitlement, taken decimal.Decimal) CategoryBalance {
	remaining := entitlement.Sub(taken)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return CategoryBalance{Entitlement: entitlement, Taken: taken, Remaining: remaining}
}

// Balances is the on-demand leave position of one employee, recomputed from
// the attendance ledger on every read. Annual, medical and casual are scoped
// to the calendar year; the monthly buckets reset each calendar month.
type Balances struct {
	EmployeeID string     `json:"employee_id"`
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	Probation  bool       `json:"probation"`

	Annual  CategoryBalance `json:"annual"`
	Medical CategoryBalance `json:"medical"`
	Casual  CategoryBalance `json:"casual"`

	// MonthlyLeave is the probation-phase full-day quota; zeroed for
	// confirmed employees.
	MonthlyLeave CategoryBalance `json:"monthly_leave"`
	// MonthlyHalfDay applies in both phases and never rolls over.
	MonthlyHalfDay CategoryBalance `json:"monthly_half_day"`
}

// RequestType is the category of a leave application.
type RequestType string

const (
	RequestMedical   RequestType = "medical"
	RequestCasual    RequestType = "casual"
	RequestMaternity RequestType = "maternity"
)

func (t RequestType) Valid() bool {
	return t == RequestMedical || t == RequestCasual || t == RequestMaternity
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// Request is a leave application awaiting decision. Requests are a registry
// only; quota consumption always flows through attendance marking.
type Request struct {
	ID          string
	EmployeeID  string
	Type        RequestType
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Reason      string
	Notes       *string
	Status      RequestStatus
	AppliedAt   time.Time
	ProcessedAt *time.Time
	AdminNotes  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}

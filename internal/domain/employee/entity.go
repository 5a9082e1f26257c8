package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentStatus is the employment phase of an employee. Leave policy is
// keyed off the probation window, not this value directly; see InProbation.
type EmploymentStatus string

const (
	StatusProbation EmploymentStatus = "Probation"
	StatusConfirmed EmploymentStatus = "Confirmed"
	StatusContract  EmploymentStatus = "Contract"
	StatusPermanent EmploymentStatus = "Permanent"
)

// Employee is owned by the external employee directory; this service only
// reads it.
type Employee struct {
	ID               string
	Name             string
	Role             string
	Gender           string
	BasicSalary      decimal.Decimal
	HasEPF           bool
	JoinDate         time.Time
	ProbationEndDate *time.Time
	EmploymentStatus EmploymentStatus
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InProbation reports whether the employee is still inside the probation
// window at the given date. Employees without a probation end date are
// treated as confirmed.
func (e Employee) InProbation(at time.Time) bool {
	return e.ProbationEndDate != nil && at.Before(*e.ProbationEndDate)
}

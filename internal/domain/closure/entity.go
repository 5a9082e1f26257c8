package closure

import (
	"time"
)

// Reason categorizes why the factory was closed.
type Reason string

const (
	ReasonHoliday     Reason = "Holiday"
	ReasonMaintenance Reason = "Maintenance"
	ReasonPowerOutage Reason = "Power Outage"
	ReasonWeather     Reason = "Weather"
	ReasonOther       Reason = "Other"
)

func (r Reason) Valid() bool {
	switch r {
	case ReasonHoliday, ReasonMaintenance, ReasonPowerOutage, ReasonWeather, ReasonOther:
		return true
	}
	return false
}

type ClosureStatus string

const (
	StatusScheduled ClosureStatus = "Scheduled"
	StatusActive    ClosureStatus = "Active"
	StatusCompleted ClosureStatus = "Completed"
)

// Closure is one registered non-Sunday closed date. Several closures may
// exist for the same date with different scopes.
type Closure struct {
	ID           string
	Date         time.Time
	Reason       Reason
	Description  *string
	AllEmployees bool
	EmployeeIDs  []string
	Status       ClosureStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AppliesTo reports whether the closure covers the given employee.
func (c Closure) AppliesTo(employeeID string) bool {
	if c.AllEmployees {
		return true
	}
	for _, id := range c.EmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

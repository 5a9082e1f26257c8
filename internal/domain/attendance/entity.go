package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scheduled shift lengths. Hours beyond the day's scheduled length accrue
// overtime; payroll rates are also built on the weekday figure.
const (
	DailyWorkHours    = 8
	SaturdayWorkHours = 5
)

// Status is the attendance status taxonomy. Statuses are mutually exclusive
// per record.
type Status string

const (
	StatusPresent        Status = "Present"
	StatusHalfDay        Status = "Half Day"
	StatusLeave          Status = "Leave"
	StatusMedicalLeave   Status = "Medical Leave"
	StatusCasualLeave    Status = "Casual Leave"
	StatusAbsent         Status = "Absent"
	StatusFactoryClosure Status = "Factory Closure"
)

var allStatuses = []Status{
	StatusPresent, StatusHalfDay, StatusLeave, StatusMedicalLeave,
	StatusCasualLeave, StatusAbsent, StatusFactoryClosure,
}

func (s Status) Valid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// AcceptsWorkTimes reports whether check-in/check-out apply to this status.
func (s Status) AcceptsWorkTimes() bool {
	return s == StatusPresent || s == StatusHalfDay
}

// AcceptsBreakTimes reports whether break windows apply to this status.
// Only a full present day has an unpaid break; half days null break fields.
func (s Status) AcceptsBreakTimes() bool {
	return s == StatusPresent
}

// LeaveCategory is the quota bucket a leave record draws from.
type LeaveCategory string

const (
	LeaveAnnual  LeaveCategory = "annual"
	LeaveMedical LeaveCategory = "medical"
	LeaveCasual  LeaveCategory = "casual"
)

// LeaveCategoryFor maps a status to the quota bucket it consumes.
// A half day draws from the annual quota at half weight.
func LeaveCategoryFor(s Status) (LeaveCategory, bool) {
	switch s {
	case StatusLeave, StatusHalfDay:
		return LeaveAnnual, true
	case StatusMedicalLeave:
		return LeaveMedical, true
	case StatusCasualLeave:
		return LeaveCasual, true
	default:
		return "", false
	}
}

// Record is one attendance entry; there is at most one per (employee, date).
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // normalized to midnight UTC
	Status     Status

	CheckIn    *time.Time
	CheckOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time

	TotalHours    float64
	OvertimeHours float64

	LeaveCategory     *LeaveCategory
	LeaveDaysDeducted decimal.Decimal
	// PaidLeave records whether the leave fit inside the employee's quota
	// at marking time; over-quota leave spills to unpaid.
	PaidLeave bool

	// SundayWork / HolidayWork mark Present records on a Sunday or a
	// closure date: double pay, no overtime.
	SundayWork  bool
	HolidayWork bool

	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeRole *string
}

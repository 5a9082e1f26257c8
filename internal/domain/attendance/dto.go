package attendance

import (
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MarkPayload is the attendance payload shared by single and bulk marking.
type MarkPayload struct {
	Date       string  `json:"date"`   // YYYY-MM-DD
	Status     string  `json:"status"` // one of the status taxonomy
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	// HalfDayLeave marks a leave status as a half-day absence, deducting
	// 0.5 instead of 1 from the quota.
	HalfDayLeave bool   `json:"half_day_leave,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (p *MarkPayload) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(p.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required in YYYY-MM-DD format",
		})
	}

	if !Status(p.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Half Day, Leave, Medical Leave, Casual Leave, Absent, Factory Closure",
		})
	}

	for field, value := range map[string]*string{
		"check_in":    p.CheckIn,
		"check_out":   p.CheckOut,
		"break_start": p.BreakStart,
		"break_end":   p.BreakEnd,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDateTime(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkRequest struct {
	EmployeeID string `json:"employee_id"`
	MarkPayload
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if err := r.MarkPayload.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkMarkRequest applies one shared payload to many employees.
type BulkMarkRequest struct {
	EmployeeIDs []string    `json:"employee_ids"`
	Attendance  MarkPayload `json:"attendance"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee_id is required",
		})
	}

	if err := r.Attendance.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkResult is the per-employee outcome of a bulk mark. Failures are
// isolated; one bad employee never aborts the batch.
type BulkResult struct {
	EmployeeID string          `json:"employee_id"`
	Success    bool            `json:"success"`
	Record     *RecordResponse `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type BulkSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type BulkMarkResponse struct {
	Results []BulkResult `json:"results"`
	Summary BulkSummary  `json:"summary"`
}

type RecordResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      *string         `json:"employee_name,omitempty"`
	EmployeeRole      *string         `json:"employee_role,omitempty"`
	Date              string          `json:"date"`
	Status            string          `json:"status"`
	CheckIn           *string         `json:"check_in,omitempty"`
	CheckOut          *string         `json:"check_out,omitempty"`
	BreakStart        *string         `json:"break_start,omitempty"`
	BreakEnd          *string         `json:"break_end,omitempty"`
	TotalHours        float64         `json:"total_hours"`
	OvertimeHours     float64         `json:"overtime_hours"`
	LeaveCategory     *string         `json:"leave_type,omitempty"`
	LeaveDaysDeducted decimal.Decimal `json:"leave_days_deducted"`
	PaidLeave         bool            `json:"paid_leave"`
	SundayWork        bool            `json:"sunday_work"`
	HolidayWork       bool            `json:"holiday_work"`
	Notes             *string         `json:"notes,omitempty"`
}

// NewRecordResponse shapes a ledger record for the HTTP surface.
func NewRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		EmployeeName:      rec.EmployeeName,
		EmployeeRole:      rec.EmployeeRole,
		Date:              rec.Date.Format("2006-01-02"),
		Status:            string(rec.Status),
		TotalHours:        rec.TotalHours,
		OvertimeHours:     rec.OvertimeHours,
		LeaveDaysDeducted: rec.LeaveDaysDeducted,
		PaidLeave:         rec.PaidLeave,
		SundayWork:        rec.SundayWork,
		HolidayWork:       rec.HolidayWork,
		Notes:             rec.Notes,
	}
	if rec.LeaveCategory != nil {
		category := string(*rec.LeaveCategory)
		resp.LeaveCategory = &category
	}
	for field, value := range map[**string]*time.Time{
		&resp.CheckIn:    rec.CheckIn,
		&resp.CheckOut:   rec.CheckOut,
		&resp.BreakStart: rec.BreakStart,
		&resp.BreakEnd:   rec.BreakEnd,
	} {
		if value != nil {
			formatted := value.Format(time.RFC3339)
			*field = &formatted
		}
	}
	return resp
}

// Filter narrows ledger listings; a nil EmployeeID spans all employees.
type Filter struct {
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
}

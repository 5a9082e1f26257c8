package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/attendance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/Shashika071/crenixline-sub000/internal/service/calendar"
	leaveservice "github.com/Shashika071/crenixline-sub000/internal/service/leave"
	"github.com/shopspring/decimal"
)

type Service struct {
	employees employee.Repository
	ledger    attendance.Repository
	leaves    *leaveservice.Service
	calendars *calendar.Service
}

func NewService(employees employee.Repository, ledger attendance.Repository, leaves *leaveservice.Service, calendars *calendar.Service) *Service {
	return &Service{
		employees: employees,
		ledger:    ledger,
		leaves:    leaves,
		calendars: calendars,
	}
}

// Mark writes the attendance record for one employee and date. Marking the
// same date again replaces the earlier record and re-derives every field.
func (s *Service) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.deriveRecord(ctx, emp, req.MarkPayload)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	saved, err := s.ledger.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	saved.EmployeeName = &emp.Name
	saved.EmployeeRole = &emp.Role

	return attendance.NewRecordResponse(saved), nil
}

// BulkMark applies one payload to many employees concurrently. Failures stay
// per-employee; results keep the input order.
func (s *Service) BulkMark(ctx context.Context, req attendance.BulkMarkRequest) (attendance.BulkMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	results := make([]attendance.BulkResult, len(req.EmployeeIDs))
	var wg sync.WaitGroup
	for i, employeeID := range req.EmployeeIDs {
		wg.Add(1)
		go func(i int, employeeID string) {
			defer wg.Done()

			resp, err := s.Mark(ctx, attendance.MarkRequest{
				EmployeeID:  employeeID,
				MarkPayload: req.Attendance,
			})
			if err != nil {
				results[i] = attendance.BulkResult{EmployeeID: employeeID, Error: err.Error()}
				return
			}
			results[i] = attendance.BulkResult{EmployeeID: employeeID, Success: true, Record: &resp}
		}(i, employeeID)
	}
	wg.Wait()

	summary := attendance.BulkSummary{Total: len(results)}
	for _, res := range results {
		if res.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	return attendance.BulkMarkResponse{Results: results, Summary: summary}, nil
}

func (s *Service) List(ctx context.Context, filter attendance.Filter) ([]attendance.RecordResponse, error) {
	records, err := s.ledger.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	return responses, nil
}

// deriveRecord turns the raw payload into a fully derived ledger record:
// time-field policy, worked and overtime hours, leave category, quota
// deduction and the paid/unpaid decision.
func (s *Service) deriveRecord(ctx context.Context, emp employee.Employee, payload attendance.MarkPayload) (attendance.Record, error) {
	date, _ := validator.IsValidDate(payload.Date)
	status := attendance.Status(payload.Status)

	rec := attendance.Record{
		EmployeeID:        emp.ID,
		Date:              date,
		Status:            status,
		LeaveDaysDeducted: decimal.Zero,
	}
	if payload.Notes != "" {
		rec.Notes = &payload.Notes
	}

	if status.AcceptsWorkTimes() {
		rec.CheckIn = parseTimePtr(payload.CheckIn)
		rec.CheckOut = parseTimePtr(payload.CheckOut)
	}
	if status.AcceptsBreakTimes() {
		rec.BreakStart = parseTimePtr(payload.BreakStart)
		rec.BreakEnd = parseTimePtr(payload.BreakEnd)
	}

	sunday := date.Weekday() == time.Sunday
	holiday := false
	if !sunday && status == attendance.StatusPresent {
		cal, err := s.calendars.ForMonth(ctx, emp.ID, date.Year(), date.Month())
		if err == nil {
			_, holiday = cal.ClosureOn(date)
		}
	}

	if status == attendance.StatusPresent {
		rec.SundayWork = sunday
		rec.HolidayWork = holiday
	}

	rec.TotalHours = workedHours(rec.CheckIn, rec.CheckOut, rec.BreakStart, rec.BreakEnd)

	// Sunday and closure-day work is compensated as double pay; it never
	// accrues overtime on top.
	if !rec.SundayWork && !rec.HolidayWork {
		threshold := float64(attendance.DailyWorkHours)
		if date.Weekday() == time.Saturday {
			threshold = attendance.SaturdayWorkHours
		}
		if rec.TotalHours > threshold {
			rec.OvertimeHours = rec.TotalHours - threshold
		}
	}

	if category, ok := attendance.LeaveCategoryFor(status); ok {
		rec.LeaveCategory = &category

		deduction := decimal.NewFromInt(1)
		if status == attendance.StatusHalfDay || payload.HalfDayLeave {
			deduction = decimal.NewFromFloat(0.5)
		}
		rec.LeaveDaysDeducted = deduction

		// Judge paid/unpaid against the quota state with any existing
		// record on this date set aside, so re-marking a day is idempotent.
		balances, err := s.leaves.BalancesExcluding(ctx, emp, date, date)
		if err != nil {
			return attendance.Record{}, err
		}
		if status == attendance.StatusHalfDay {
			rec.PaidLeave = balances.MonthlyHalfDay.Remaining.GreaterThanOrEqual(decimal.NewFromInt(1))
		} else {
			remaining := leaveservice.RemainingFor(balances, category)
			rec.PaidLeave = remaining.GreaterThanOrEqual(deduction)
		}
	}

	return rec, nil
}

func parseTimePtr(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, ok := validator.IsValidDateTime(*value)
	if !ok {
		return nil
	}
	t = t.UTC()
	return &t
}

// workedHours is check-in to check-out minus the unpaid break window.
func workedHours(checkIn, checkOut, breakStart, breakEnd *time.Time) float64 {
	if checkIn == nil || checkOut == nil || !checkOut.After(*checkIn) {
		return 0
	}
	worked := checkOut.Sub(*checkIn)
	if breakStart != nil && breakEnd != nil && breakEnd.After(*breakStart) {
		worked -= breakEnd.Sub(*breakStart)
	}
	if worked < 0 {
		return 0
	}
	return worked.Hours()
}

package attendance

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/attendance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/closure"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
	"github.com/Shashika071/crenixline-sub000/internal/domain/leave"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/Shashika071/crenixline-sub000/internal/service/calendar"
	leaveservice "github.com/Shashika071/crenixline-sub000/internal/service/leave"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		out = append(out, e)
	}
	return out, nil
}

type fakeLedger struct {
	mu       sync.Mutex
	records  map[string]attendance.Record
	sequence int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{records: make(map[string]attendance.Record)}
}

func ledgerKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *fakeLedger) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ledgerKey(rec.EmployeeID, rec.Date)
	if existing, ok := r.records[key]; ok {
		rec.ID = existing.ID
	} else {
		r.sequence++
		rec.ID = fmt.Sprintf("rec-%d", r.sequence)
	}
	r.records[key] = rec
	return rec, nil
}

func (r *fakeLedger) List(_ context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []attendance.Record
	for _, rec := range r.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.StartDate != nil && rec.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && rec.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeLedger) Iter(ctx context.Context, filter attendance.Filter) iter.Seq2[attendance.Record, error] {
	return func(yield func(attendance.Record, error) bool) {
		records, _ := r.List(ctx, filter)
		for _, rec := range records {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

type fakeRequestRepo struct{}

func (fakeRequestRepo) Create(_ context.Context, req leave.Request) (leave.Request, error) {
	return req, nil
}

func (fakeRequestRepo) GetByID(_ context.Context, _ string) (leave.Request, error) {
	return leave.Request{}, leave.ErrRequestNotFound
}

func (fakeRequestRepo) List(_ context.Context, _ leave.RequestFilter) ([]leave.Request, error) {
	return nil, nil
}

func (fakeRequestRepo) UpdateStatus(_ context.Context, _ string, _ leave.RequestStatus, _ *string) (leave.Request, error) {
	return leave.Request{}, leave.ErrRequestNotFound
}

type fakeClosureRepo struct {
	closures []closure.Closure
}

func (r *fakeClosureRepo) Create(_ context.Context, c closure.Closure) (closure.Closure, error) {
	r.closures = append(r.closures, c)
	return c, nil
}

func (r *fakeClosureRepo) ListBetween(_ context.Context, from, to time.Time) ([]closure.Closure, error) {
	var out []closure.Closure
	for _, c := range r.closures {
		if !c.Date.Before(from) && !c.Date.After(to) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClosureRepo) ListActiveBetween(ctx context.Context, from, to time.Time) ([]closure.Closure, error) {
	all, _ := r.ListBetween(ctx, from, to)
	var out []closure.Closure
	for _, c := range all {
		if c.Status == closure.StatusScheduled || c.Status == closure.StatusActive {
			out = append(out, c)
		}
	}
	return out, nil
}

type fixture struct {
	service  *Service
	ledger   *fakeLedger
	closures *fakeClosureRepo
}

func newFixture(emps ...employee.Employee) fixture {
	employees := newFakeEmployeeRepo(emps...)
	ledger := newFakeLedger()
	closures := &fakeClosureRepo{}
	calendars := calendar.NewService(closures)
	leaves := leaveservice.NewService(employees, ledger, fakeRequestRepo{})
	return fixture{
		service:  NewService(employees, ledger, leaves, calendars),
		ledger:   ledger,
		closures: closures,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func confirmedEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:               id,
		Name:             "Nadeesha Perera",
		Role:             "Machine Operator",
		Gender:           "female",
		BasicSalary:      decimal.NewFromInt(26000),
		HasEPF:           true,
		JoinDate:         date(2023, time.February, 1),
		EmploymentStatus: employee.StatusConfirmed,
		Active:           true,
	}
}

func strPtr(s string) *string { return &s }

func TestMarkPresentFullDay(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))

	// Monday 2025-06-02, 08:00-17:00 with a one hour break.
	resp, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID: "emp-1",
		MarkPayload: attendance.MarkPayload{
			Date:       "2025-06-02",
			Status:     string(attendance.StatusPresent),
			CheckIn:    strPtr("2025-06-02T08:00:00Z"),
			CheckOut:   strPtr("2025-06-02T17:00:00Z"),
			BreakStart: strPtr("2025-06-02T12:00:00Z"),
			BreakEnd:   strPtr("2025-06-02T13:00:00Z"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, resp.TotalHours)
	assert.Zero(t, resp.OvertimeHours)
	assert.False(t, resp.SundayWork)
	assert.False(t, resp.HolidayWork)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Nadeesha Perera", *resp.EmployeeName)
}

func TestMarkPresentAccruesOvertime(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))

	resp, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID: "emp-1",
		MarkPayload: attendance.MarkPayload{
			Date:       "2025-06-02",
			Status:     string(attendance.StatusPresent),
			CheckIn:    strPtr("2025-06-02T08:00:00Z"),
			CheckOut:   strPtr("2025-06-02T19:30:00Z"),
			BreakStart: strPtr("2025-06-02T12:00:00Z"),
			BreakEnd:   strPtr("2025-06-02T13:00:00Z"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 10.5, resp.TotalHours)
	assert.Equal(t, 2.5, resp.OvertimeHours)
}

func TestMarkSaturdayOvertimeThreshold(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))

	// Saturday 2025-06-07: overtime starts after five hours.
	resp, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID: "emp-1",
		MarkPayload: attendance.MarkPayload{
			Date:       "2025-06-07",
			Status:     string(attendance.StatusPresent),
			CheckIn:    strPtr("2025-06-07T08:00:00Z"),
			CheckOut:   strPtr("2025-06-07T17:00:00Z"),
			BreakStart: strPtr("2025-06-07T12:00:00Z"),
			BreakEnd:   strPtr("2025-06-07T13:00:00Z"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 8.0, resp.TotalHours)
	assert.Equal(t, 3.0, resp.OvertimeHours)
}

func TestMarkSundayWorkNoOvertime(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))

	resp, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID: "emp-1",
		MarkPayload: attendance.MarkPayload{
			Date:     "2025-06-01", // Sunday
			Status:   string(attendance.StatusPresent),
			CheckIn:  strPtr("2025-06-01T08:00:00Z"),
			CheckOut: strPtr("2025-06-01T18:00:00Z"),
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.SundayWork)
	assert.Equal(t, 10.0, resp.TotalHours)
	assert.Zero(t, resp.OvertimeHours)
}

func TestMarkHolidayWorkNoOvertime(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))
	fix.closures.closures = append(fix.closures.closures, closure.Closure{
		ID:           "cls-1",
		Date:         date(2025, time.June, 2),
		Reason:       closure.ReasonHoliday,
		AllEmployees: true,
		Status:       closure.StatusActive,
	})

	resp, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID: "emp-1",
		MarkPayload: attendance.MarkPayload{
			Date:     "2025-06-02",
			Status:   string(attendance.StatusPresent),
			CheckIn:  strPtr("2025-06-02T08:00:00Z"),
			CheckOut: strPtr("2025-06-02T18:00:00Z"),
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.HolidayWork)
	assert.False(t, resp.SundayWork)
	assert.Zero(t, resp.OvertimeHours)
}

func TestMarkHalfDayDeductsHalf(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))

	resp, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID: "emp-1",
		MarkPayload: attendance.MarkPayload{
			Date:       "2025-06-02",
			Status:     string(attendance.StatusHalfDay),
			CheckIn:    strPtr("2025-06-02T08:00:00Z"),
			CheckOut:   strPtr("2025-06-02T12:00:00Z"),
			BreakStart: strPtr("2025-06-02T10:00:00Z"),
			BreakEnd:   strPtr("2025-06-02T10:30:00Z"),
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.LeaveDaysDeducted.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, resp.PaidLeave)
	require.NotNil(t, resp.LeaveCategory)
	assert.Equal(t, "annual", *resp.LeaveCategory)
	// Half days never carry a break window.
	assert.Nil(t, resp.BreakStart)
	assert.Nil(t, resp.BreakEnd)
	assert.Equal(t, 4.0, resp.TotalHours)
}

func TestMarkLeaveRejectsTimeFields(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))

	resp, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID: "emp-1",
		MarkPayload: attendance.MarkPayload{
			Date:     "2025-06-02",
			Status:   string(attendance.StatusMedicalLeave),
			CheckIn:  strPtr("2025-06-02T08:00:00Z"),
			CheckOut: strPtr("2025-06-02T17:00:00Z"),
		},
	})
	require.NoError(t, err)

	assert.Nil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Zero(t, resp.TotalHours)
	assert.True(t, resp.LeaveDaysDeducted.Equal(decimal.NewFromInt(1)))
}

func TestMarkSameDateReplacesRecord(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))
	ctx := context.Background()

	first, err := fix.service.Mark(ctx, attendance.MarkRequest{
		EmployeeID:  "emp-1",
		MarkPayload: attendance.MarkPayload{Date: "2025-06-02", Status: string(attendance.StatusAbsent)},
	})
	require.NoError(t, err)

	second, err := fix.service.Mark(ctx, attendance.MarkRequest{
		EmployeeID: "emp-1",
		MarkPayload: attendance.MarkPayload{
			Date:     "2025-06-02",
			Status:   string(attendance.StatusPresent),
			CheckIn:  strPtr("2025-06-02T08:00:00Z"),
			CheckOut: strPtr("2025-06-02T17:00:00Z"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	records, err := fix.ledger.List(ctx, attendance.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
}

func TestMarkOverQuotaLeaveSpillsToUnpaid(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))
	ctx := context.Background()

	// Exhaust the seven medical days, then mark an eighth.
	for day := 2; day <= 8; day++ {
		_, err := fix.service.Mark(ctx, attendance.MarkRequest{
			EmployeeID: "emp-1",
			MarkPayload: attendance.MarkPayload{
				Date:   fmt.Sprintf("2025-06-%02d", day),
				Status: string(attendance.StatusMedicalLeave),
			},
		})
		require.NoError(t, err)
	}

	resp, err := fix.service.Mark(ctx, attendance.MarkRequest{
		EmployeeID:  "emp-1",
		MarkPayload: attendance.MarkPayload{Date: "2025-06-09", Status: string(attendance.StatusMedicalLeave)},
	})
	require.NoError(t, err)

	assert.False(t, resp.PaidLeave)
	assert.True(t, resp.LeaveDaysDeducted.Equal(decimal.NewFromInt(1)))
}

func TestMarkHalfDayQuotaIsMonthly(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))
	ctx := context.Background()

	for _, day := range []string{"2025-06-02", "2025-06-03"} {
		resp, err := fix.service.Mark(ctx, attendance.MarkRequest{
			EmployeeID:  "emp-1",
			MarkPayload: attendance.MarkPayload{Date: day, Status: string(attendance.StatusHalfDay)},
		})
		require.NoError(t, err)
		assert.True(t, resp.PaidLeave, day)
	}

	// Third half day of the month exceeds the quota of two.
	third, err := fix.service.Mark(ctx, attendance.MarkRequest{
		EmployeeID:  "emp-1",
		MarkPayload: attendance.MarkPayload{Date: "2025-06-04", Status: string(attendance.StatusHalfDay)},
	})
	require.NoError(t, err)
	assert.False(t, third.PaidLeave)

	// A new month starts a fresh quota.
	july, err := fix.service.Mark(ctx, attendance.MarkRequest{
		EmployeeID:  "emp-1",
		MarkPayload: attendance.MarkPayload{Date: "2025-07-01", Status: string(attendance.StatusHalfDay)},
	})
	require.NoError(t, err)
	assert.True(t, july.PaidLeave)
}

func TestMarkUnknownEmployee(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))

	_, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID:  "ghost",
		MarkPayload: attendance.MarkPayload{Date: "2025-06-02", Status: string(attendance.StatusPresent)},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestBulkMarkIsolatesFailures(t *testing.T) {
	emps := make([]employee.Employee, 0, 4)
	ids := []string{"emp-1", "emp-2", "emp-3", "emp-4"}
	for _, id := range ids {
		emps = append(emps, confirmedEmployee(id))
	}
	fix := newFixture(emps...)

	resp, err := fix.service.BulkMark(context.Background(), attendance.BulkMarkRequest{
		EmployeeIDs: []string{"emp-1", "emp-2", "ghost", "emp-3", "emp-4"},
		Attendance: attendance.MarkPayload{
			Date:     "2025-06-02",
			Status:   string(attendance.StatusPresent),
			CheckIn:  strPtr("2025-06-02T08:00:00Z"),
			CheckOut: strPtr("2025-06-02T17:00:00Z"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Summary.Total)
	assert.Equal(t, 4, resp.Summary.Successful)
	assert.Equal(t, 1, resp.Summary.Failed)

	// Results keep the input order; the failure sits at its input index.
	require.Len(t, resp.Results, 5)
	assert.Equal(t, "ghost", resp.Results[2].EmployeeID)
	assert.False(t, resp.Results[2].Success)
	assert.NotEmpty(t, resp.Results[2].Error)
	for _, i := range []int{0, 1, 3, 4} {
		assert.True(t, resp.Results[i].Success, resp.Results[i].EmployeeID)
	}
}

func TestMarkValidation(t *testing.T) {
	fix := newFixture(confirmedEmployee("emp-1"))

	_, err := fix.service.Mark(context.Background(), attendance.MarkRequest{
		EmployeeID:  "emp-1",
		MarkPayload: attendance.MarkPayload{Date: "02-06-2025", Status: "Working"},
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

package leave

import (
	"context"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/attendance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
	"github.com/Shashika071/crenixline-sub000/internal/domain/leave"
	"github.com/shopspring/decimal"
)

// Balances recomputes the leave position from the attendance ledger. Nothing
// is stored; correcting a ledger entry corrects every later balance read.
func (s *Service) Balances(ctx context.Context, employeeID string, asOf time.Time) (leave.Balances, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return leave.Balances{}, err
	}
	return s.balancesFor(ctx, emp, asOf, nil)
}

// BalancesExcluding recomputes balances while ignoring any ledger record on
// excludeDate. Attendance marking uses this so that re-marking a day judges
// paid/unpaid against the quota state without the record being replaced.
func (s *Service) BalancesExcluding(ctx context.Context, emp employee.Employee, asOf time.Time, excludeDate time.Time) (leave.Balances, error) {
	return s.balancesFor(ctx, emp, asOf, &excludeDate)
}

func (s *Service) balancesFor(ctx context.Context, emp employee.Employee, asOf time.Time, excludeDate *time.Time) (leave.Balances, error) {
	year := asOf.Year()
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var annualTaken, medicalTaken, casualTaken decimal.Decimal
	var monthlyFullTaken, monthlyHalfTaken int

	for rec, err := range s.ledger.Iter(ctx, attendance.Filter{
		EmployeeID: &emp.ID,
		StartDate:  &yearStart,
		EndDate:    &yearEnd,
	}) {
		if err != nil {
			return leave.Balances{}, err
		}
		if excludeDate != nil && rec.Date.Equal(*excludeDate) {
			continue
		}
		if rec.LeaveCategory == nil {
			continue
		}

		switch *rec.LeaveCategory {
		case attendance.LeaveAnnual:
			annualTaken = annualTaken.Add(rec.LeaveDaysDeducted)
		case attendance.LeaveMedical:
			medicalTaken = medicalTaken.Add(rec.LeaveDaysDeducted)
		case attendance.LeaveCasual:
			casualTaken = casualTaken.Add(rec.LeaveDaysDeducted)
		}

		if rec.Date.Year() == year && rec.Date.Month() == asOf.Month() {
			switch rec.Status {
			case attendance.StatusLeave:
				monthlyFullTaken++
			case attendance.StatusHalfDay:
				monthlyHalfTaken++
			}
		}
	}

	probation := emp.InProbation(asOf)

	balances := leave.Balances{
		EmployeeID: emp.ID,
		Year:       year,
		Month:      asOf.Month(),
		Probation:  probation,
		Medical: leave.NewCategoryBalance(
			decimal.NewFromInt(leave.MedicalEntitlement), medicalTaken),
		Casual: leave.NewCategoryBalance(
			decimal.NewFromInt(leave.CasualEntitlement), casualTaken),
		MonthlyHalfDay: leave.NewCategoryBalance(
			decimal.NewFromInt(leave.MonthlyHalfDayQuota),
			decimal.NewFromInt(int64(monthlyHalfTaken))),
	}

	if probation {
		// Probation employees draw from monthly quotas; the annual pool
		// opens on confirmation.
		balances.Annual = leave.NewCategoryBalance(decimal.Zero, annualTaken)
		balances.MonthlyLeave = leave.NewCategoryBalance(
			decimal.NewFromInt(leave.ProbationMonthlyLeaveQuota),
			decimal.NewFromInt(int64(monthlyFullTaken)))
	} else {
		entitlement := leave.AnnualEntitlementFor(emp.JoinDate, year)
		balances.Annual = leave.NewCategoryBalance(
			decimal.NewFromInt(int64(entitlement)), annualTaken)
		balances.MonthlyLeave = leave.NewCategoryBalance(decimal.Zero, decimal.Zero)
	}

	return balances, nil
}

// RemainingFor returns the quota headroom a new leave record on date would be
// judged against. For annual leave during probation the monthly full-day
// quota applies instead of the annual pool.
func RemainingFor(balances leave.Balances, category attendance.LeaveCategory) decimal.Decimal {
	switch category {
	case attendance.LeaveMedical:
		return balances.Medical.Remaining
	case attendance.LeaveCasual:
		return balances.Casual.Remaining
	case attendance.LeaveAnnual:
		if balances.Probation {
			return balances.MonthlyLeave.Remaining
		}
		return balances.Annual.Remaining
	}
	return decimal.Zero
}

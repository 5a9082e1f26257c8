package payroll

import (
	"context"
	"math"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/attendance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var pointFive = decimal.NewFromFloat(0.5)

// Calculate derives the full pay position for one employee and month from
// the calendar, the attendance ledger, the component registry and the
// advance ledger. It persists nothing; drafts snapshot its output.
func (s *Service) Calculate(ctx context.Context, req payroll.CalculateRequest) (payroll.Calculation, error) {
	if err := req.Validate(); err != nil {
		return payroll.Calculation{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.Calculation{}, err
	}
	if emp.BasicSalary.LessThanOrEqual(decimal.Zero) {
		return payroll.Calculation{}, payroll.ErrInvalidBasicSalary
	}

	monthStart, _ := time.Parse("2006-01", req.Month)
	year, month := monthStart.Year(), monthStart.Month()

	cal, err := s.calendars.ForMonth(ctx, emp.ID, year, month)
	if err != nil {
		return payroll.Calculation{}, err
	}
	workingDays := cal.WorkingDays()
	if workingDays == 0 {
		return payroll.Calculation{}, payroll.ErrZeroWorkingDays
	}

	monthEnd := monthStart.AddDate(0, 1, -1)
	records, err := s.ledger.List(ctx, attendance.Filter{
		EmployeeID: &emp.ID,
		StartDate:  &monthStart,
		EndDate:    &monthEnd,
	})
	if err != nil {
		return payroll.Calculation{}, err
	}

	calc := payroll.Calculation{
		EmployeeID:  emp.ID,
		Year:        year,
		Month:       month,
		WorkingDays: workingDays,
		PaidDays:    decimal.Zero,
	}

	var overtimeHours int64
	var sundayWorkDays, holidayWorkDays int64
	for _, rec := range records {
		// Sunday and closure-day work is paid on its own double-pay line,
		// outside the paid-day count. Any worked hours earn the full day.
		if rec.SundayWork {
			calc.SundayWorkHours += rec.TotalHours
			if rec.TotalHours > 0 {
				sundayWorkDays++
			}
			continue
		}
		if rec.HolidayWork {
			calc.HolidayWorkHours += rec.TotalHours
			if rec.TotalHours > 0 {
				holidayWorkDays++
			}
			continue
		}

		switch rec.Status {
		case attendance.StatusPresent, attendance.StatusFactoryClosure:
			calc.PaidDays = calc.PaidDays.Add(decimal.NewFromInt(1))
		case attendance.StatusHalfDay:
			if rec.PaidLeave {
				calc.PaidDays = calc.PaidDays.Add(pointFive)
			} else {
				calc.UnpaidLeaveDays = calc.UnpaidLeaveDays.Add(pointFive)
			}
		case attendance.StatusLeave, attendance.StatusMedicalLeave, attendance.StatusCasualLeave:
			if rec.PaidLeave {
				calc.PaidDays = calc.PaidDays.Add(decimal.NewFromInt(1))
			} else {
				calc.UnpaidLeaveDays = calc.UnpaidLeaveDays.Add(decimal.NewFromInt(1))
			}
		case attendance.StatusAbsent:
			calc.AbsentDays++
		}

		// Only whole overtime hours count.
		if whole := int64(math.Floor(rec.OvertimeHours)); whole >= 1 {
			overtimeHours += whole
		}
	}
	calc.OvertimeHours = float64(overtimeHours)

	// Rates. The normal rate divides by the month's real open days; the
	// overtime and double-pay rates sit on the fixed 30-day base so closures
	// never move them.
	hoursPerMonth := decimal.NewFromInt(int64(workingDays * attendance.DailyWorkHours))
	calc.NormalHourlyRate = emp.BasicSalary.Div(hoursPerMonth)
	fixedBaseRate := emp.BasicSalary.Div(decimal.NewFromInt(payroll.RateBaseDays * attendance.DailyWorkHours))
	calc.OvertimeHourlyRate = fixedBaseRate.Mul(payroll.OvertimeMultiplier)

	calc.BasicPay = calc.PaidDays.
		Mul(decimal.NewFromInt(attendance.DailyWorkHours)).
		Mul(calc.NormalHourlyRate)
	calc.OvertimePay = decimal.NewFromInt(overtimeHours).Mul(calc.OvertimeHourlyRate)

	// Double pay is per day worked, however long the shift: one Sunday or
	// closure day earns two fixed-base day rates.
	fixedDailyRate := emp.BasicSalary.Div(decimal.NewFromInt(payroll.RateBaseDays))
	calc.SundayWorkPay = decimal.NewFromInt(sundayWorkDays).
		Mul(fixedDailyRate).Mul(payroll.DoublePayFactor)
	calc.HolidayWorkPay = decimal.NewFromInt(holidayWorkDays).
		Mul(fixedDailyRate).Mul(payroll.DoublePayFactor)

	components, err := s.components.ListActiveByEmployee(ctx, emp.ID)
	if err != nil {
		return payroll.Calculation{}, err
	}
	calc.Allowances = payroll.PayLines{}
	calc.Deductions = payroll.PayLines{}
	for _, c := range components {
		line := payroll.PayLine{Name: c.Name, Amount: c.Amount}
		switch c.Type {
		case payroll.ComponentAllowance:
			calc.Allowances = append(calc.Allowances, line)
		case payroll.ComponentDeduction:
			calc.Deductions = append(calc.Deductions, line)
		}
	}
	calc.TotalAllowances = calc.Allowances.Total()
	calc.TotalDeductions = calc.Deductions.Total()

	advances, err := s.advances.ListForDeduction(ctx, emp.ID, req.Month)
	if err != nil {
		return payroll.Calculation{}, err
	}
	calc.Advances = payroll.AdvanceLines{}
	for _, a := range advances {
		calc.Advances = append(calc.Advances, payroll.AdvanceLine{AdvanceID: a.ID, Amount: a.Amount})
	}
	calc.TotalAdvances = calc.Advances.Total()

	if emp.HasEPF {
		calc.EPFDeduction = emp.BasicSalary.Mul(payroll.EPFRate)
	}
	// Employer-side figure shown on the payslip; never subtracted from net.
	calc.ETFContribution = emp.BasicSalary.Mul(payroll.ETFRate)

	calc.GrossSalary = calc.BasicPay.
		Add(calc.OvertimePay).
		Add(calc.SundayWorkPay).
		Add(calc.HolidayWorkPay).
		Add(calc.TotalAllowances)
	calc.NetSalary = calc.GrossSalary.
		Sub(calc.EPFDeduction).
		Sub(calc.TotalDeductions).
		Sub(calc.TotalAdvances)

	return calc, nil
}

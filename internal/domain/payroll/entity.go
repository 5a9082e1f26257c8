package payroll

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// RateBaseDays fixes the divisor for the overtime and Sunday/holiday rates
// so they do not fluctuate with the month's closure count; only the normal
// rate divides by the actual open working days.
const RateBaseDays = 30

var (
	OvertimeMultiplier = decimal.NewFromFloat(1.5)
	DoublePayFactor    = decimal.NewFromInt(2)

	// EPFRate is the employee-side statutory deduction; ETFRate is the
	// employer-side contribution shown on the payslip but never subtracted
	// from net pay.
	EPFRate = decimal.NewFromFloat(0.08)
	ETFRate = decimal.NewFromFloat(0.03)
)

type PayslipStatus string

const (
	PayslipDraft     PayslipStatus = "draft"
	PayslipFinalized PayslipStatus = "finalized"
	PayslipPaid      PayslipStatus = "paid"
)

// PayLine is one named allowance or deduction on a payslip.
type PayLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// PayLines is stored as a JSONB column.
type PayLines []PayLine

func (l PayLines) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(PayLines{})
	}
	return json.Marshal(l)
}

func (l *PayLines) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for PayLines")
}

func (l PayLines) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l {
		total = total.Add(line.Amount)
	}
	return total
}

// AdvanceLine ties a payslip deduction back to the advance it settles.
type AdvanceLine struct {
	AdvanceID string          `json:"advance_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type AdvanceLines []AdvanceLine

func (l AdvanceLines) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(AdvanceLines{})
	}
	return json.Marshal(l)
}

func (l *AdvanceLines) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for AdvanceLines")
}

func (l AdvanceLines) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l {
		total = total.Add(line.Amount)
	}
	return total
}

func (l AdvanceLines) IDs() []string {
	ids := make([]string, 0, len(l))
	for _, line := range l {
		ids = append(ids, line.AdvanceID)
	}
	return ids
}

// Calculation is the derived pay position for one employee and month. It is
// recomputed on demand and only persisted once wrapped into a Payslip.
type Calculation struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	Month      time.Month      `json:"month"`
	BasicPay   decimal.Decimal `json:"basic_pay"` // paidDays x 8 x normal rate

	WorkingDays     int             `json:"working_days"`
	PaidDays        decimal.Decimal `json:"paid_days"`
	UnpaidLeaveDays decimal.Decimal `json:"unpaid_leave_days"`
	AbsentDays      int             `json:"absent_days"`

	NormalHourlyRate   decimal.Decimal `json:"normal_hourly_rate"`
	OvertimeHourlyRate decimal.Decimal `json:"overtime_hourly_rate"`

	OvertimeHours    float64         `json:"overtime_hours"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	SundayWorkHours  float64         `json:"sunday_work_hours"`
	SundayWorkPay    decimal.Decimal `json:"sunday_work_pay"`
	HolidayWorkHours float64         `json:"holiday_work_hours"`
	HolidayWorkPay   decimal.Decimal `json:"holiday_work_pay"`

	Allowances      PayLines        `json:"allowances"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	Deductions      PayLines        `json:"deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	Advances        AdvanceLines    `json:"advances"`
	TotalAdvances   decimal.Decimal `json:"total_advances"`

	EPFDeduction    decimal.Decimal `json:"epf_deduction"`
	ETFContribution decimal.Decimal `json:"etf_contribution"`

	GrossSalary decimal.Decimal `json:"gross_salary"`
	NetSalary   decimal.Decimal `json:"net_salary"`
}

// Payslip wraps a calculation into a persisted, stateful document. Exactly
// one exists per (employee, month); finalizing freezes every monetary field.
type Payslip struct {
	ID          string
	EmployeeID  string
	Month       string // YYYY-MM
	BasicSalary decimal.Decimal

	WorkingDays     int
	PaidDays        decimal.Decimal
	UnpaidLeaveDays decimal.Decimal
	AbsentDays      int

	Allowances       PayLines
	TotalAllowances  decimal.Decimal
	OvertimeHours    float64
	OvertimePay      decimal.Decimal
	SundayWorkHours  float64
	SundayWorkPay    decimal.Decimal
	HolidayWorkHours float64
	HolidayWorkPay   decimal.Decimal
	EPFDeduction     decimal.Decimal
	ETFContribution  decimal.Decimal
	Deductions       PayLines
	TotalDeductions  decimal.Decimal
	Advances         AdvanceLines
	TotalAdvances    decimal.Decimal
	GrossSalary      decimal.Decimal
	NetSalary        decimal.Decimal

	Status      PayslipStatus
	FinalizedBy *string
	FinalizedAt *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeRole *string
}

// ComponentType distinguishes registry entries.
type ComponentType string

const (
	ComponentAllowance ComponentType = "allowance"
	ComponentDeduction ComponentType = "deduction"
)

// Component is one named allowance or deduction assigned to an employee in
// the external registry; this service only reads them.
type Component struct {
	ID         string
	EmployeeID string
	Name       string
	Type       ComponentType
	Amount     decimal.Decimal
	Active     bool
}

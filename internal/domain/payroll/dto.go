package payroll

import (
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CalculateRequest asks for an on-demand salary calculation; nothing is
// persisted until the caller generates a payslip from it.
type CalculateRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"` // YYYY-MM
}

func (r CalculateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month is required in YYYY-MM format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateRequest creates or refreshes a draft payslip for a month.
type GenerateRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

func (r GenerateRequest) Validate() error {
	return CalculateRequest{EmployeeID: r.EmployeeID, Month: r.Month}.Validate()
}

// GenerateAllRequest creates or refreshes draft payslips for every active
// employee in one month.
type GenerateAllRequest struct {
	Month string `json:"month"`
}

func (r GenerateAllRequest) Validate() error {
	if _, ok := validator.IsValidMonth(r.Month); !ok {
		return validator.ValidationErrors{{Field: "month", Message: "month is required in YYYY-MM format"}}
	}
	return nil
}

// BulkGenerateResult is the per-employee outcome of a month-wide run.
// Failures are recorded, not propagated.
type BulkGenerateResult struct {
	EmployeeID string           `json:"employee_id"`
	Success    bool             `json:"success"`
	Error      string           `json:"error,omitempty"`
	Payslip    *PayslipResponse `json:"payslip,omitempty"`
}

type BulkGenerateSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

type BulkGenerateResponse struct {
	Results []BulkGenerateResult `json:"results"`
	Summary BulkGenerateSummary  `json:"summary"`
}

// FinalizeRequest records who approved the payslip.
type FinalizeRequest struct {
	FinalizedBy string `json:"finalized_by"`
}

func (r FinalizeRequest) Validate() error {
	if validator.IsEmpty(r.FinalizedBy) {
		return validator.ValidationErrors{{Field: "finalized_by", Message: "finalized_by is required"}}
	}
	return nil
}

// Filter narrows payslip listings.
type Filter struct {
	EmployeeID *string
	Month      *string
	Status     *PayslipStatus
}

// PayslipResponse is the JSON shape returned by payslip endpoints.
type PayslipResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Month       string          `json:"month"`
	BasicSalary decimal.Decimal `json:"basic_salary"`

	WorkingDays     int             `json:"working_days"`
	PaidDays        decimal.Decimal `json:"paid_days"`
	UnpaidLeaveDays decimal.Decimal `json:"unpaid_leave_days"`
	AbsentDays      int             `json:"absent_days"`

	Allowances       PayLines        `json:"allowances"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	OvertimeHours    float64         `json:"overtime_hours"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	SundayWorkHours  float64         `json:"sunday_work_hours"`
	SundayWorkPay    decimal.Decimal `json:"sunday_work_pay"`
	HolidayWorkHours float64         `json:"holiday_work_hours"`
	HolidayWorkPay   decimal.Decimal `json:"holiday_work_pay"`
	EPFDeduction     decimal.Decimal `json:"epf_deduction"`
	ETFContribution  decimal.Decimal `json:"etf_contribution"`
	Deductions       PayLines        `json:"deductions"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	Advances         AdvanceLines    `json:"advances"`
	TotalAdvances    decimal.Decimal `json:"total_advances"`
	GrossSalary      decimal.Decimal `json:"gross_salary"`
	NetSalary        decimal.Decimal `json:"net_salary"`

	Status       PayslipStatus `json:"status"`
	FinalizedBy  *string       `json:"finalized_by,omitempty"`
	FinalizedAt  *time.Time    `json:"finalized_at,omitempty"`
	PaidAt       *time.Time    `json:"paid_at,omitempty"`
	EmployeeName *string       `json:"employee_name,omitempty"`
	EmployeeRole *string       `json:"employee_role,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func NewPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Month:       p.Month,
		BasicSalary: p.BasicSalary,

		WorkingDays:     p.WorkingDays,
		PaidDays:        p.PaidDays,
		UnpaidLeaveDays: p.UnpaidLeaveDays,
		AbsentDays:      p.AbsentDays,

		Allowances:       p.Allowances,
		TotalAllowances:  p.TotalAllowances,
		OvertimeHours:    p.OvertimeHours,
		OvertimePay:      p.OvertimePay,
		SundayWorkHours:  p.SundayWorkHours,
		SundayWorkPay:    p.SundayWorkPay,
		HolidayWorkHours: p.HolidayWorkHours,
		HolidayWorkPay:   p.HolidayWorkPay,
		EPFDeduction:     p.EPFDeduction,
		ETFContribution:  p.ETFContribution,
		Deductions:       p.Deductions,
		TotalDeductions:  p.TotalDeductions,
		Advances:         p.Advances,
		TotalAdvances:    p.TotalAdvances,
		GrossSalary:      p.GrossSalary,
		NetSalary:        p.NetSalary,

		Status:       p.Status,
		FinalizedBy:  p.FinalizedBy,
		FinalizedAt:  p.FinalizedAt,
		PaidAt:       p.PaidAt,
		EmployeeName: p.EmployeeName,
		EmployeeRole: p.EmployeeRole,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ReportSummary aggregates one month's payslips for the payroll report.
type ReportSummary struct {
	Month           string                `json:"month"`
	EmployeeCount   int                   `json:"employee_count"`
	TotalGross      decimal.Decimal       `json:"total_gross"`
	TotalNet        decimal.Decimal       `json:"total_net"`
	TotalEPF        decimal.Decimal       `json:"total_epf"`
	TotalETF        decimal.Decimal       `json:"total_etf"`
	TotalOvertime   decimal.Decimal       `json:"total_overtime_pay"`
	TotalAdvances   decimal.Decimal       `json:"total_advances"`
	TotalDeductions decimal.Decimal       `json:"total_deductions"`
	ByStatus        map[PayslipStatus]int `json:"by_status"`
}

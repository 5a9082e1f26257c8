package payroll

import (
	"context"
	"fmt"

	"github.com/Shashika071/crenixline-sub000/internal/domain/advance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/attendance"
	"github.com/Shashika071/crenixline-sub000/internal/domain/employee"
	"github.com/Shashika071/crenixline-sub000/internal/domain/payroll"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/database"
	"github.com/Shashika071/crenixline-sub000/internal/service/calendar"
	"github.com/shopspring/decimal"
)

type Service struct {
	tx         database.TxManager
	employees  employee.Repository
	ledger     attendance.Repository
	calendars  *calendar.Service
	components payroll.ComponentRepository
	advances   advance.Repository
	payslips   payroll.PayslipRepository
}

func NewService(
	tx database.TxManager,
	employees employee.Repository,
	ledger attendance.Repository,
	calendars *calendar.Service,
	components payroll.ComponentRepository,
	advances advance.Repository,
	payslips payroll.PayslipRepository,
) *Service {
	return &Service{
		tx:         tx,
		employees:  employees,
		ledger:     ledger,
		calendars:  calendars,
		components: components,
		advances:   advances,
		payslips:   payslips,
	}
}

// GeneratePayslip creates or refreshes the draft for (employee, month) from
// a fresh calculation. Finalized and paid payslips are never touched.
func (s *Service) GeneratePayslip(ctx context.Context, req payroll.GenerateRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	existing, err := s.payslips.GetByEmployeeAndMonth(ctx, req.EmployeeID, req.Month)
	if err != nil && err != payroll.ErrPayslipNotFound {
		return payroll.PayslipResponse{}, err
	}
	if existing != nil && existing.Status != payroll.PayslipDraft {
		return payroll.PayslipResponse{}, payroll.ErrPayslipImmutable
	}

	calc, err := s.Calculate(ctx, payroll.CalculateRequest{EmployeeID: req.EmployeeID, Month: req.Month})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	slip := payroll.Payslip{
		EmployeeID:  emp.ID,
		Month:       req.Month,
		BasicSalary: emp.BasicSalary,

		WorkingDays:     calc.WorkingDays,
		PaidDays:        calc.PaidDays,
		UnpaidLeaveDays: calc.UnpaidLeaveDays,
		AbsentDays:      calc.AbsentDays,

		Allowances:       calc.Allowances,
		TotalAllowances:  calc.TotalAllowances,
		OvertimeHours:    calc.OvertimeHours,
		OvertimePay:      calc.OvertimePay,
		SundayWorkHours:  calc.SundayWorkHours,
		SundayWorkPay:    calc.SundayWorkPay,
		HolidayWorkHours: calc.HolidayWorkHours,
		HolidayWorkPay:   calc.HolidayWorkPay,
		EPFDeduction:     calc.EPFDeduction,
		ETFContribution:  calc.ETFContribution,
		Deductions:       calc.Deductions,
		TotalDeductions:  calc.TotalDeductions,
		Advances:         calc.Advances,
		TotalAdvances:    calc.TotalAdvances,
		GrossSalary:      calc.GrossSalary,
		NetSalary:        calc.NetSalary,
	}

	if err := s.payslips.Upsert(ctx, &slip); err != nil {
		return payroll.PayslipResponse{}, err
	}
	slip.EmployeeName = &emp.Name
	slip.EmployeeRole = &emp.Role

	return payroll.NewPayslipResponse(slip), nil
}

// GenerateAllPayslips refreshes the draft for every active employee in one
// month. Failures stay per-employee, so one bad record never blocks the run;
// an already finalized month surfaces as that employee's error.
func (s *Service) GenerateAllPayslips(ctx context.Context, req payroll.GenerateAllRequest) (payroll.BulkGenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BulkGenerateResponse{}, err
	}

	employees, err := s.employees.ListActive(ctx)
	if err != nil {
		return payroll.BulkGenerateResponse{}, err
	}

	results := make([]payroll.BulkGenerateResult, 0, len(employees))
	for _, emp := range employees {
		slip, err := s.GeneratePayslip(ctx, payroll.GenerateRequest{EmployeeID: emp.ID, Month: req.Month})
		if err != nil {
			results = append(results, payroll.BulkGenerateResult{EmployeeID: emp.ID, Error: err.Error()})
			continue
		}
		results = append(results, payroll.BulkGenerateResult{EmployeeID: emp.ID, Success: true, Payslip: &slip})
	}

	summary := payroll.BulkGenerateSummary{Total: len(results)}
	for _, res := range results {
		if res.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}

	return payroll.BulkGenerateResponse{Results: results, Summary: summary}, nil
}

func (s *Service) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	slip, err := s.payslips.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return payroll.NewPayslipResponse(*slip), nil
}

func (s *Service) ListPayslips(ctx context.Context, filter payroll.Filter) ([]payroll.PayslipResponse, error) {
	slips, err := s.payslips.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, payroll.NewPayslipResponse(slip))
	}
	return responses, nil
}

// Finalize locks the payslip and settles its advances in one transaction.
// The status-guarded update makes a concurrent duplicate finalize lose.
func (s *Service) Finalize(ctx context.Context, id string, req payroll.FinalizeRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	var finalized *payroll.Payslip
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		slip, err := s.payslips.Finalize(txCtx, id, req.FinalizedBy)
		if err != nil {
			return err
		}
		if err := s.advances.MarkDeducted(txCtx, slip.Advances.IDs()); err != nil {
			return fmt.Errorf("settle advances: %w", err)
		}
		finalized = slip
		return nil
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return payroll.NewPayslipResponse(*finalized), nil
}

func (s *Service) MarkPaid(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	slip, err := s.payslips.MarkPaid(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return payroll.NewPayslipResponse(*slip), nil
}

// DeleteDraft removes a draft payslip and releases any advances it had
// settled back to approved.
func (s *Service) DeleteDraft(ctx context.Context, id string) error {
	return s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.payslips.DeleteDraft(txCtx, id)
		if err != nil {
			return err
		}
		return s.advances.RevertDeducted(txCtx, deleted.Advances.IDs())
	})
}

// Report aggregates one month's payslips into plain totals for the export
// layer.
func (s *Service) Report(ctx context.Context, month string) (payroll.ReportSummary, error) {
	slips, err := s.payslips.List(ctx, payroll.Filter{Month: &month})
	if err != nil {
		return payroll.ReportSummary{}, err
	}

	summary := payroll.ReportSummary{
		Month:           month,
		EmployeeCount:   len(slips),
		TotalGross:      decimal.Zero,
		TotalNet:        decimal.Zero,
		TotalEPF:        decimal.Zero,
		TotalETF:        decimal.Zero,
		TotalOvertime:   decimal.Zero,
		TotalAdvances:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		ByStatus:        make(map[payroll.PayslipStatus]int),
	}
	for _, slip := range slips {
		summary.TotalGross = summary.TotalGross.Add(slip.GrossSalary)
		summary.TotalNet = summary.TotalNet.Add(slip.NetSalary)
		summary.TotalEPF = summary.TotalEPF.Add(slip.EPFDeduction)
		summary.TotalETF = summary.TotalETF.Add(slip.ETFContribution)
		summary.TotalOvertime = summary.TotalOvertime.Add(slip.OvertimePay)
		summary.TotalAdvances = summary.TotalAdvances.Add(slip.TotalAdvances)
		summary.TotalDeductions = summary.TotalDeductions.Add(slip.TotalDeductions)
		summary.ByStatus[slip.Status]++
	}

	return summary, nil
}

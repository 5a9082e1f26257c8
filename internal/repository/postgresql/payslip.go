package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shashika071/crenixline-sub000/internal/domain/payroll"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.month, p.basic_salary,
	p.working_days, p.paid_days, p.unpaid_leave_days, p.absent_days,
	p.allowances, p.total_allowances,
	p.overtime_hours, p.overtime_pay,
	p.sunday_work_hours, p.sunday_work_pay,
	p.holiday_work_hours, p.holiday_work_pay,
	p.epf_deduction, p.etf_contribution,
	p.deductions, p.total_deductions,
	p.advances, p.total_advances,
	p.gross_salary, p.net_salary,
	p.status, p.finalized_by, p.finalized_at, p.paid_at,
	p.created_at, p.updated_at,
	e.name, e.role
`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.BasicSalary,
		&p.WorkingDays, &p.PaidDays, &p.UnpaidLeaveDays, &p.AbsentDays,
		&p.Allowances, &p.TotalAllowances,
		&p.OvertimeHours, &p.OvertimePay,
		&p.SundayWorkHours, &p.SundayWorkPay,
		&p.HolidayWorkHours, &p.HolidayWorkPay,
		&p.EPFDeduction, &p.ETFContribution,
		&p.Deductions, &p.TotalDeductions,
		&p.Advances, &p.TotalAdvances,
		&p.GrossSalary, &p.NetSalary,
		&p.Status, &p.FinalizedBy, &p.FinalizedAt, &p.PaidAt,
		&p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeRole,
	)
	return p, err
}

// Upsert writes a draft for (employee_id, month). The conditional update
// refuses to touch finalized or paid rows so regenerating a month can never
// rewrite approved figures.
func (r *payslipRepository) Upsert(ctx context.Context, p *payroll.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			employee_id, month, basic_salary,
			working_days, paid_days, unpaid_leave_days, absent_days,
			allowances, total_allowances,
			overtime_hours, overtime_pay,
			sunday_work_hours, sunday_work_pay,
			holiday_work_hours, holiday_work_pay,
			epf_deduction, etf_contribution,
			deductions, total_deductions,
			advances, total_advances,
			gross_salary, net_salary, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, 'draft'
		)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			working_days = EXCLUDED.working_days,
			paid_days = EXCLUDED.paid_days,
			unpaid_leave_days = EXCLUDED.unpaid_leave_days,
			absent_days = EXCLUDED.absent_days,
			allowances = EXCLUDED.allowances,
			total_allowances = EXCLUDED.total_allowances,
			overtime_hours = EXCLUDED.overtime_hours,
			overtime_pay = EXCLUDED.overtime_pay,
			sunday_work_hours = EXCLUDED.sunday_work_hours,
			sunday_work_pay = EXCLUDED.sunday_work_pay,
			holiday_work_hours = EXCLUDED.holiday_work_hours,
			holiday_work_pay = EXCLUDED.holiday_work_pay,
			epf_deduction = EXCLUDED.epf_deduction,
			etf_contribution = EXCLUDED.etf_contribution,
			deductions = EXCLUDED.deductions,
			total_deductions = EXCLUDED.total_deductions,
			advances = EXCLUDED.advances,
			total_advances = EXCLUDED.total_advances,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			updated_at = now()
		WHERE payslips.status = 'draft'
		RETURNING id, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.Month, p.BasicSalary,
		p.WorkingDays, p.PaidDays, p.UnpaidLeaveDays, p.AbsentDays,
		p.Allowances, p.TotalAllowances,
		p.OvertimeHours, p.OvertimePay,
		p.SundayWorkHours, p.SundayWorkPay,
		p.HolidayWorkHours, p.HolidayWorkPay,
		p.EPFDeduction, p.ETFContribution,
		p.Deductions, p.TotalDeductions,
		p.Advances, p.TotalAdvances,
		p.GrossSalary, p.NetSalary,
	).Scan(&p.ID, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPayslipImmutable
		}
		return fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip: %w", err)
	}

	return &p, nil
}

func (r *payslipRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID, month string) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.month = $2
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip: %w", err)
	}

	return &p, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil && *filter.Month != "" {
		where += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE ` + where + `
		ORDER BY p.month DESC, e.name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, rows.Err()
}

// Finalize moves draft -> finalized. The status guard makes concurrent
// finalize calls race safely: exactly one wins, the rest see
// ErrFinalizeConflict.
func (r *payslipRepository) Finalize(ctx context.Context, id, finalizedBy string) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET status = 'finalized', finalized_by = $1, finalized_at = now(), updated_at = now()
		WHERE id = $2 AND status = 'draft'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, finalizedBy, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, payroll.ErrFinalizeConflict
		}
		return nil, fmt.Errorf("failed to finalize payslip: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *payslipRepository) MarkPaid(ctx context.Context, id string) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET status = 'paid', paid_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'finalized'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, payroll.ErrPayslipNotFinal
		}
		return nil, fmt.Errorf("failed to mark payslip paid: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// DeleteDraft removes a draft and returns it so the caller can revert any
// advances it referenced. Finalized and paid payslips cannot be deleted.
func (r *payslipRepository) DeleteDraft(ctx context.Context, id string) (*payroll.Payslip, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status != payroll.PayslipDraft {
		return nil, payroll.ErrPayslipImmutable
	}

	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payslips WHERE id = $1 AND status = 'draft' RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayslipImmutable
		}
		return nil, fmt.Errorf("failed to delete payslip: %w", err)
	}

	return existing, nil
}

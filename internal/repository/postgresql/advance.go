package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shashika071/crenixline-sub000/internal/domain/advance"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.Repository {
	return &advanceRepository{db: db}
}

const advanceColumns = `
	a.id, a.employee_id, a.amount, a.reason, a.deduction_month,
	a.status, a.approved_by, a.approved_at, a.created_at, a.updated_at,
	e.name
`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Amount, &a.Reason, &a.DeductionMonth,
		&a.Status, &a.ApprovedBy, &a.ApprovedAt, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName,
	)
	return a, err
}

func (r *advanceRepository) Create(ctx context.Context, a *advance.Advance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_advances (
			employee_id, amount, reason, deduction_month, status
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.Amount, a.Reason, a.DeductionMonth, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create salary advance: %w", err)
	}

	return nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (*advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM salary_advances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	a, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, advance.ErrAdvanceNotFound
		}
		return nil, fmt.Errorf("failed to get salary advance: %w", err)
	}

	return &a, nil
}

func (r *advanceRepository) List(ctx context.Context, filter advance.Filter) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.DeductionMonth != nil && *filter.DeductionMonth != "" {
		where += fmt.Sprintf(" AND a.deduction_month = $%d", argIdx)
		args = append(args, *filter.DeductionMonth)
		argIdx++
	}

	query := `
		SELECT ` + advanceColumns + `
		FROM salary_advances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.created_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary advance: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (r *advanceRepository) UpdateStatus(ctx context.Context, id string, status advance.Status, approvedBy *string) (*advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_advances
		SET status = $1, approved_by = $2, approved_at = now(), updated_at = now()
		WHERE id = $3 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, approvedBy, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return nil, getErr
			}
			return nil, advance.ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update advance status: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *advanceRepository) ListForDeduction(ctx context.Context, employeeID, month string) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM salary_advances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.deduction_month = $2
		  AND a.status IN ('approved', 'deducted')
		ORDER BY a.created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary advance: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (r *advanceRepository) MarkDeducted(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_advances
		SET status = 'deducted', updated_at = now()
		WHERE id = ANY($1) AND status = 'approved'
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to mark advances deducted: %w", err)
	}

	return nil
}

func (r *advanceRepository) RevertDeducted(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_advances
		SET status = 'approved', updated_at = now()
		WHERE id = ANY($1) AND status = 'deducted'
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to revert deducted advances: %w", err)
	}

	return nil
}

func (r *advanceRepository) DeletePending(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_advances WHERE id = $1 AND status = 'pending' RETURNING id`

	var deletedID string
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return getErr
			}
			return advance.ErrAdvanceNotPending
		}
		return fmt.Errorf("failed to delete salary advance: %w", err)
	}

	return nil
}

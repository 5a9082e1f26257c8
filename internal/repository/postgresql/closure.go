package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Shashika071/crenixline-sub000/internal/domain/closure"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/database"
)

type closureRepository struct {
	db *database.DB
}

func NewClosureRepository(db *database.DB) closure.Repository {
	return &closureRepository{db: db}
}

func (r *closureRepository) Create(ctx context.Context, c closure.Closure) (closure.Closure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO factory_closures (
			date, reason, description, all_employees, employee_ids, status
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.Date, c.Reason, c.Description, c.AllEmployees, c.EmployeeIDs, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return closure.Closure{}, fmt.Errorf("failed to create factory closure: %w", err)
	}

	return c, nil
}

const closureColumns = `
	id, date, reason, description, all_employees, employee_ids,
	status, created_at, updated_at
`

func (r *closureRepository) ListBetween(ctx context.Context, from, to time.Time) ([]closure.Closure, error) {
	return r.list(ctx, `SELECT `+closureColumns+` FROM factory_closures
		WHERE date >= $1 AND date <= $2 ORDER BY date ASC`, from, to)
}

func (r *closureRepository) ListActiveBetween(ctx context.Context, from, to time.Time) ([]closure.Closure, error) {
	return r.list(ctx, `SELECT `+closureColumns+` FROM factory_closures
		WHERE date >= $1 AND date <= $2 AND status IN ('Scheduled', 'Active')
		ORDER BY date ASC`, from, to)
}

func (r *closureRepository) list(ctx context.Context, query string, args ...interface{}) ([]closure.Closure, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list factory closures: %w", err)
	}
	defer rows.Close()

	var closures []closure.Closure
	for rows.Next() {
		var c closure.Closure
		if err := rows.Scan(
			&c.ID, &c.Date, &c.Reason, &c.Description, &c.AllEmployees, &c.EmployeeIDs,
			&c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan factory closure: %w", err)
		}
		closures = append(closures, c)
	}

	return closures, rows.Err()
}

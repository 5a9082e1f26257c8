package postgresql

import (
	"context"
	"fmt"

	"github.com/Shashika071/crenixline-sub000/internal/domain/payroll"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/database"
)

type componentRepository struct {
	db *database.DB
}

func NewComponentRepository(db *database.DB) payroll.ComponentRepository {
	return &componentRepository{db: db}
}

// ListActiveByEmployee reads the allowance/deduction registry, which is
// maintained by the HR system outside this service.
func (r *componentRepository) ListActiveByEmployee(ctx context.Context, employeeID string) ([]payroll.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, name, type, amount, active
		FROM pay_components
		WHERE employee_id = $1 AND active = true
		ORDER BY type, name
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay components: %w", err)
	}
	defer rows.Close()

	var components []payroll.Component
	for rows.Next() {
		var c payroll.Component
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Name, &c.Type, &c.Amount, &c.Active); err != nil {
			return nil, fmt.Errorf("failed to scan pay component: %w", err)
		}
		components = append(components, c)
	}

	return components, rows.Err()
}

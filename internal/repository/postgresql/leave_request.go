package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shashika071/crenixline-sub000/internal/domain/leave"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	l.id, l.employee_id, l.type, l.start_date, l.end_date, l.days,
	l.reason, l.notes, l.status, l.applied_at, l.processed_at, l.admin_notes,
	l.created_at, l.updated_at, e.name
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Days,
		&req.Reason, &req.Notes, &req.Status, &req.AppliedAt, &req.ProcessedAt, &req.AdminNotes,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)
	return req, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, type, start_date, end_date, days, reason, notes, status, applied_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Type, req.StartDate, req.EndDate, req.Days,
		req.Reason, req.Notes, req.Status, req.AppliedAt,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE ` + where + `
		ORDER BY l.applied_at DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// UpdateStatus only moves pending requests; once processed the row is frozen
// and the caller gets ErrRequestAlreadyProcessed.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, adminNotes *string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, admin_notes = $2, processed_at = now(), updated_at = now()
		WHERE id = $3 AND status = 'Pending'
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, adminNotes, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, id); getErr != nil {
				return leave.Request{}, getErr
			}
			return leave.Request{}, leave.ErrRequestAlreadyProcessed
		}
		return leave.Request{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

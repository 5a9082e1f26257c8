package postgresql

import (
	"context"
	"fmt"
	"iter"

	"github.com/Shashika071/crenixline-sub000/internal/domain/attendance"
	"github.com/Shashika071/crenixline-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.status,
	a.check_in, a.check_out, a.break_start, a.break_end,
	a.total_hours, a.overtime_hours,
	a.leave_category, a.leave_days_deducted, a.paid_leave,
	a.sunday_work, a.holiday_work, a.notes,
	a.created_at, a.updated_at,
	e.name, e.role
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
		&rec.CheckIn, &rec.CheckOut, &rec.BreakStart, &rec.BreakEnd,
		&rec.TotalHours, &rec.OvertimeHours,
		&rec.LeaveCategory, &rec.LeaveDaysDeducted, &rec.PaidLeave,
		&rec.SundayWork, &rec.HolidayWork, &rec.Notes,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeRole,
	)
	return rec, err
}

// Upsert inserts or replaces the record for (employee_id, date). Marking the
// same day twice overwrites every derived field, so a correction fully
// replaces the earlier entry.
func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, status,
			check_in, check_out, break_start, break_end,
			total_hours, overtime_hours,
			leave_category, leave_days_deducted, paid_leave,
			sunday_work, holiday_work, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			leave_category = EXCLUDED.leave_category,
			leave_days_deducted = EXCLUDED.leave_days_deducted,
			paid_leave = EXCLUDED.paid_leave,
			sunday_work = EXCLUDED.sunday_work,
			holiday_work = EXCLUDED.holiday_work,
			notes = EXCLUDED.notes,
			updated_at = now()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Date, rec.Status,
		rec.CheckIn, rec.CheckOut, rec.BreakStart, rec.BreakEnd,
		rec.TotalHours, rec.OvertimeHours,
		rec.LeaveCategory, rec.LeaveDaysDeducted, rec.PaidLeave,
		rec.SundayWork, rec.HolidayWork, rec.Notes,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return rec, nil
}

func buildAttendanceWhere(filter attendance.Filter) (string, []interface{}) {
	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	return where, args
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	where, args := buildAttendanceWhere(filter)
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where + `
		ORDER BY a.date ASC, e.name ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Iter streams matching records in date order without materializing them.
// Each range over the returned sequence issues a fresh query, so the
// sequence is restartable.
func (r *attendanceRepository) Iter(ctx context.Context, filter attendance.Filter) iter.Seq2[attendance.Record, error] {
	return func(yield func(attendance.Record, error) bool) {
		q := GetQuerier(ctx, r.db)

		where, args := buildAttendanceWhere(filter)
		query := `
			SELECT ` + attendanceColumns + `
			FROM attendance_records a
			JOIN employees e ON e.id = a.employee_id
			WHERE ` + where + `
			ORDER BY a.date ASC
		`

		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			yield(attendance.Record{}, fmt.Errorf("failed to query attendance records: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			rec, err := scanRecord(rows)
			if err != nil {
				yield(attendance.Record{}, fmt.Errorf("failed to scan attendance record: %w", err))
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(attendance.Record{}, err)
		}
	}
}

package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nimbushr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, entry *attendance.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_entries (employee_id, entry_date, time_in, time_out)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.Date, entry.TimeIn, entry.TimeOut,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "attendance_entries_employee_id_entry_date_key") {
			return attendance.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create attendance entry: %w", err)
	}

	return nil
}

func (r *attendanceRepository) EntriesForPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*attendance.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry_date, time_in, time_out, created_at
		FROM attendance_entries
		WHERE employee_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance entries: %w", err)
	}
	defer rows.Close()

	var entries []*attendance.Entry
	for rows.Next() {
		var e attendance.Entry
		err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.TimeIn, &e.TimeOut, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance entries: %w", err)
	}

	return entries, nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nimbushr/payroll-backend-go/internal/domain/leave"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) RequestsForPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, leave_id, employee_id, leave_date, start_time, end_time, status, created_at
		FROM leave_requests
		WHERE employee_id = $1 AND leave_date BETWEEN $2 AND $3
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []*leave.Request
	for rows.Next() {
		var req leave.Request
		var status string
		err := rows.Scan(&req.ID, &req.LeaveID, &req.EmployeeID, &req.Date,
			&req.StartTime, &req.EndTime, &status, &req.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		req.Status = leave.RequestStatus(status)
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

type leaveCreditsRepository struct {
	db *database.DB
}

func NewLeaveCreditsRepository(db *database.DB) leave.CreditsRepository {
	return &leaveCreditsRepository{db: db}
}

func (r *leaveCreditsRepository) FindByEmployee(ctx context.Context, employeeID int) (*leave.Credits, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, last_name, first_name, credit_hours, taken_hours, updated_at
		FROM leave_credits
		WHERE employee_id = $1
	`

	var c leave.Credits
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&c.EmployeeID, &c.LastName, &c.FirstName, &c.CreditHours, &c.TakenHours, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, leave.ErrCreditsNotFound
		}
		return nil, fmt.Errorf("failed to get leave credits: %w", err)
	}

	return &c, nil
}

func (r *leaveCreditsRepository) UpdateTakenHours(ctx context.Context, employeeID int, takenHours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_credits
		SET taken_hours = $2, updated_at = NOW()
		WHERE employee_id = $1
	`

	tag, err := q.Exec(ctx, query, employeeID, takenHours)
	if err != nil {
		return fmt.Errorf("failed to update taken hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrCreditsNotFound
	}

	return nil
}

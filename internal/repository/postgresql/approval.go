package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nimbushr/payroll-backend-go/internal/domain/approval"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
)

type approvalRepository struct {
	db *database.DB
}

func NewApprovalRepository(db *database.DB) approval.Repository {
	return &approvalRepository{db: db}
}

// EnsureRowExists creates the tracker row with both dimensions PENDING.
// Reruns insert nothing and never disturb existing statuses.
func (r *approvalRepository) EnsureRowExists(ctx context.Context, employeeID int, p period.PayPeriod, transactionID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_approvals (employee_id, period_start, period_end, transaction_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, period_start, period_end) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, employeeID, p.StartDate, p.EndDate, transactionID); err != nil {
		return fmt.Errorf("failed to ensure approval row: %w", err)
	}

	return nil
}

func (r *approvalRepository) Get(ctx context.Context, employeeID int, p period.PayPeriod) (*approval.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, period_start, period_end, transaction_id,
			   attendance_status, attendance_approved_by, attendance_approved_at,
			   payroll_status, payroll_approved_by, payroll_approved_at,
			   created_at, updated_at
		FROM payroll_approvals
		WHERE employee_id = $1 AND period_start = $2 AND period_end = $3
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, p.StartDate, p.EndDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, approval.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get approval record: %w", err)
	}

	return rec, nil
}

// GetAttendanceStatus reads the attendance dimension. A missing row is
// reported as PENDING, not as an error.
func (r *approvalRepository) GetAttendanceStatus(ctx context.Context, employeeID int, p period.PayPeriod) (approval.Status, error) {
	return r.getStatus(ctx, "attendance_status", employeeID, p)
}

// GetPayrollStatus reads the payroll dimension. A missing row is
// reported as PENDING, not as an error.
func (r *approvalRepository) GetPayrollStatus(ctx context.Context, employeeID int, p period.PayPeriod) (approval.Status, error) {
	return r.getStatus(ctx, "payroll_status", employeeID, p)
}

func (r *approvalRepository) getStatus(ctx context.Context, column string, employeeID int, p period.PayPeriod) (approval.Status, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payroll_approvals
		WHERE employee_id = $1 AND period_start = $2 AND period_end = $3
	`, column)

	var raw string
	err := q.QueryRow(ctx, query, employeeID, p.StartDate, p.EndDate).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return approval.StatusPending, nil
		}
		return approval.StatusPending, fmt.Errorf("failed to get %s: %w", column, err)
	}

	return approval.ParseStatus(raw), nil
}

func (r *approvalRepository) UpsertAttendanceApproval(ctx context.Context, employeeID int, p period.PayPeriod, transactionID string, status approval.Status, approverID int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_approvals (
			employee_id, period_start, period_end, transaction_id,
			attendance_status, attendance_approved_by, attendance_approved_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (employee_id, period_start, period_end) DO UPDATE SET
			transaction_id = EXCLUDED.transaction_id,
			attendance_status = EXCLUDED.attendance_status,
			attendance_approved_by = EXCLUDED.attendance_approved_by,
			attendance_approved_at = EXCLUDED.attendance_approved_at,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, p.StartDate, p.EndDate, transactionID, status, approverID); err != nil {
		return fmt.Errorf("failed to upsert attendance approval: %w", err)
	}

	return nil
}

func (r *approvalRepository) UpsertPayrollApproval(ctx context.Context, employeeID int, p period.PayPeriod, transactionID string, status approval.Status, approverID int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_approvals (
			employee_id, period_start, period_end, transaction_id,
			payroll_status, payroll_approved_by, payroll_approved_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (employee_id, period_start, period_end) DO UPDATE SET
			transaction_id = EXCLUDED.transaction_id,
			payroll_status = EXCLUDED.payroll_status,
			payroll_approved_by = EXCLUDED.payroll_approved_by,
			payroll_approved_at = EXCLUDED.payroll_approved_at,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, p.StartDate, p.EndDate, transactionID, status, approverID); err != nil {
		return fmt.Errorf("failed to upsert payroll approval: %w", err)
	}

	return nil
}

func (r *approvalRepository) FindByPeriod(ctx context.Context, p period.PayPeriod) ([]*approval.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, period_start, period_end, transaction_id,
			   attendance_status, attendance_approved_by, attendance_approved_at,
			   payroll_status, payroll_approved_by, payroll_approved_at,
			   created_at, updated_at
		FROM payroll_approvals
		WHERE period_start = $1 AND period_end = $2
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, p.StartDate, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval records: %w", err)
	}
	defer rows.Close()

	var records []*approval.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate approval records: %w", err)
	}

	return records, nil
}

func scanRecord(row pgx.Row) (*approval.Record, error) {
	var rec approval.Record
	var attendanceStatus, payrollStatus string

	err := row.Scan(
		&rec.EmployeeID, &rec.PeriodStart, &rec.PeriodEnd, &rec.TransactionID,
		&attendanceStatus, &rec.AttendanceApprovedBy, &rec.AttendanceApprovedAt,
		&payrollStatus, &rec.PayrollApprovedBy, &rec.PayrollApprovedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.AttendanceStatus = approval.ParseStatus(attendanceStatus)
	rec.PayrollStatus = approval.ParseStatus(payrollStatus)
	return &rec, nil
}

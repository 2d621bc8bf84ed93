package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
)

const payslipColumns = `
	transaction_id, employee_id, last_name, first_name, period_start, period_end,
	basic_salary, rice_allowance, phone_allowance, clothing_allowance, hourly_rate,
	total_hours_worked, overtime_pay, gross_income, late_deduction,
	sss, philhealth, pagibig, withholding_tax, total_deductions, net_pay,
	processed_by, processed_at`

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.Repository {
	return &payslipRepository{db: db}
}

// Save appends a payslip to the ledger. The insert is keyed by
// transaction id; a conflicting row inserts nothing and surfaces
// ErrDuplicateTransaction so callers can treat the rerun as idempotent.
func (r *payslipRepository) Save(ctx context.Context, slip *payslip.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			transaction_id, employee_id, last_name, first_name, period_start, period_end,
			basic_salary, rice_allowance, phone_allowance, clothing_allowance, hourly_rate,
			total_hours_worked, overtime_pay, gross_income, late_deduction,
			sss, philhealth, pagibig, withholding_tax, total_deductions, net_pay,
			processed_by, processed_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		ON CONFLICT (transaction_id) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		slip.TransactionID, slip.EmployeeID, slip.LastName, slip.FirstName,
		slip.PeriodStart, slip.PeriodEnd,
		slip.BasicSalary, slip.RiceAllowance, slip.PhoneAllowance, slip.ClothingAllowance,
		slip.HourlyRate, slip.TotalHoursWorked, slip.OvertimePay, slip.GrossIncome,
		slip.LateDeduction, slip.SSS, slip.PhilHealth, slip.PagIbig,
		slip.WithholdingTax, slip.TotalDeductions, slip.NetPay,
		slip.ProcessedBy, slip.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrDuplicateTransaction
	}

	return nil
}

func (r *payslipRepository) FindByTransactionID(ctx context.Context, transactionID string) (*payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE transaction_id = $1`

	slip, err := scanPayslip(q.QueryRow(ctx, query, transactionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payslip.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip: %w", err)
	}

	return slip, nil
}

func (r *payslipRepository) FindByEmployeeAndPeriod(ctx context.Context, employeeID int, p period.PayPeriod) (*payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1 AND period_start = $2 AND period_end = $3`

	slip, err := scanPayslip(q.QueryRow(ctx, query, employeeID, p.StartDate, p.EndDate))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payslip.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip for period: %w", err)
	}

	return slip, nil
}

func (r *payslipRepository) FindLatestByEmployee(ctx context.Context, employeeID int) (*payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1
		ORDER BY period_end DESC
		LIMIT 1`

	slip, err := scanPayslip(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, payslip.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get latest payslip: %w", err)
	}

	return slip, nil
}

func (r *payslipRepository) FindAllByEmployee(ctx context.Context, employeeID int) ([]*payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + `
		FROM payslips
		WHERE employee_id = $1
		ORDER BY period_end ASC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var slips []*payslip.Payslip
	for rows.Next() {
		slip, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslips: %w", err)
	}

	return slips, nil
}

func scanPayslip(row pgx.Row) (*payslip.Payslip, error) {
	var s payslip.Payslip
	err := row.Scan(
		&s.TransactionID, &s.EmployeeID, &s.LastName, &s.FirstName,
		&s.PeriodStart, &s.PeriodEnd,
		&s.BasicSalary, &s.RiceAllowance, &s.PhoneAllowance, &s.ClothingAllowance,
		&s.HourlyRate, &s.TotalHoursWorked, &s.OvertimePay, &s.GrossIncome,
		&s.LateDeduction, &s.SSS, &s.PhilHealth, &s.PagIbig,
		&s.WithholdingTax, &s.TotalDeductions, &s.NetPay,
		&s.ProcessedBy, &s.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

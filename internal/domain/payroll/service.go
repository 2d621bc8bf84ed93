package payroll

import (
	"context"
	"time"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
)

// Service orchestrates payroll runs: approval gating, calculation,
// ledger writes, and approval-state transitions.
type Service interface {
	// ResolvePeriod maps a date to its semi-monthly pay period.
	ResolvePeriod(date time.Time) period.PayPeriod

	// ProcessPayrollForEmployee runs the full pipeline for one
	// employee-period. Gate skips and duplicate snapshots come back as
	// unsuccessful results, not errors; an error means the run itself
	// could not execute.
	ProcessPayrollForEmployee(ctx context.Context, employeeID int, p period.PayPeriod, processedBy int) (*RunResult, error)

	// ProcessPayrollForPeriod runs every employee in turn. One
	// employee's failure never aborts the batch; context cancellation
	// does.
	ProcessPayrollForPeriod(ctx context.Context, p period.PayPeriod, processedBy int) (*BatchSummary, error)
}

package leave

import (
	"context"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
)

// Service reconciles leave consumption against stored credits. Usage is
// always recomputed from the ledger, never incremented.
type Service interface {
	// LeaveHoursUsed totals the employee's leave hours within the
	// period: weekend dates excluded, repeated leave ids counted once.
	LeaveHoursUsed(ctx context.Context, employeeID int, p period.PayPeriod) (float64, error)

	// LeaveTakenYearToDate recomputes usage from January 1 of the
	// period's year through the period end.
	LeaveTakenYearToDate(ctx context.Context, employeeID int, p period.PayPeriod) (float64, error)

	// RemainingCredits is credit hours minus year-to-date usage,
	// floored at zero. Unknown employees have zero balance.
	RemainingCredits(ctx context.Context, employeeID int, p period.PayPeriod) (float64, error)

	// SyncLeaveTakenYearToDate overwrites the stored taken-hours figure
	// with the recomputed year-to-date total.
	SyncLeaveTakenYearToDate(ctx context.Context, employeeID int, p period.PayPeriod) error
}

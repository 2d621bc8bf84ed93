package approval

import (
	"context"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
)

// Repository persists the approval tracker. Reads for a missing
// employee-period row report PENDING on both dimensions rather than an
// error; EnsureRowExists is idempotent.
type Repository interface {
	EnsureRowExists(ctx context.Context, employeeID int, p period.PayPeriod, transactionID string) error
	Get(ctx context.Context, employeeID int, p period.PayPeriod) (*Record, error)
	GetAttendanceStatus(ctx context.Context, employeeID int, p period.PayPeriod) (Status, error)
	GetPayrollStatus(ctx context.Context, employeeID int, p period.PayPeriod) (Status, error)
	UpsertAttendanceApproval(ctx context.Context, employeeID int, p period.PayPeriod, transactionID string, status Status, approverID int) error
	UpsertPayrollApproval(ctx context.Context, employeeID int, p period.PayPeriod, transactionID string, status Status, approverID int) error
	FindByPeriod(ctx context.Context, p period.PayPeriod) ([]*Record, error)
}

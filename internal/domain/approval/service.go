package approval

import (
	"context"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
)

// Service manages the attendance dimension of the approval tracker.
// Both operations report false without error when the change is denied
// because payroll for the key is already APPROVED.
type Service interface {
	ApproveAttendance(ctx context.Context, employeeID int, p period.PayPeriod, approverID int) (bool, error)
	RejectAttendance(ctx context.Context, employeeID int, p period.PayPeriod, approverID int) (bool, error)
	GetRecord(ctx context.Context, employeeID int, p period.PayPeriod) (*Record, error)
	ListByPeriod(ctx context.Context, p period.PayPeriod) ([]*Record, error)
}

package payslip

import (
	"context"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
)

// Service exposes read access to the payslip ledger. Every view leaves
// an activity-log entry naming the viewer.
type Service interface {
	ViewForPeriod(ctx context.Context, viewerID, employeeID int, p period.PayPeriod) (*Payslip, error)
	ViewLatest(ctx context.Context, viewerID, employeeID int) (*Payslip, error)
	History(ctx context.Context, viewerID, employeeID int) ([]*Payslip, error)
}

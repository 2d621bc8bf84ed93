package payslip

import (
	"context"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
)

// Repository is the append-only payslip ledger. Save never updates an
// existing row; saving an already-present transaction id returns
// ErrDuplicateTransaction and leaves the stored payslip untouched.
type Repository interface {
	Save(ctx context.Context, slip *Payslip) error
	FindByTransactionID(ctx context.Context, transactionID string) (*Payslip, error)
	FindByEmployeeAndPeriod(ctx context.Context, employeeID int, p period.PayPeriod) (*Payslip, error)
	FindLatestByEmployee(ctx context.Context, employeeID int) (*Payslip, error)
	// FindAllByEmployee returns the employee's payslips ordered by period
	// end ascending, oldest first.
	FindAllByEmployee(ctx context.Context, employeeID int) ([]*Payslip, error)
}

package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
)

// PeriodTxManager runs payroll work inside a transaction that holds the
// employee-period advisory lock. Repositories called through the
// returned context share the transaction via GetQuerier.
type PeriodTxManager struct {
	db *database.DB
}

func NewPeriodTxManager(db *database.DB) *PeriodTxManager {
	return &PeriodTxManager{db: db}
}

func (m *PeriodTxManager) RunInPeriodScope(ctx context.Context, employeeID int, p period.PayPeriod, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, m.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := AcquirePeriodLock(txCtx, tx, employeeID, p); err != nil {
			return err
		}

		return fn(txCtx)
	})
}

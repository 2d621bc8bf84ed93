package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/payroll-backend-go/internal/domain/approval"
	"github.com/nimbushr/payroll-backend-go/internal/domain/payslip"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
	"github.com/nimbushr/payroll-backend-go/internal/repository/postgresql"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(context.Background(), "../../../migrations"))
	return db
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()

	ctx := context.Background()
	for _, table := range []string{"payslips", "payroll_approvals", "attendance_entries", "employees"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func TestApprovalRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	truncateTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewApprovalRepository(db)

	p, err := period.New(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	txID := payslip.TransactionID(10001, p)

	// A missing row reads as PENDING on both dimensions.
	status, err := repo.GetAttendanceStatus(ctx, 10001, p)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusPending, status)

	require.NoError(t, repo.EnsureRowExists(ctx, 10001, p, txID))

	require.NoError(t, repo.UpsertAttendanceApproval(ctx, 10001, p, txID, approval.StatusApproved, 9001))

	// Rerunning EnsureRowExists must not reset the approved dimension.
	require.NoError(t, repo.EnsureRowExists(ctx, 10001, p, txID))

	rec, err := repo.Get(ctx, 10001, p)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, rec.AttendanceStatus)
	assert.Equal(t, approval.StatusPending, rec.PayrollStatus)
	require.NotNil(t, rec.AttendanceApprovedBy)
	assert.Equal(t, 9001, *rec.AttendanceApprovedBy)
	assert.NotNil(t, rec.AttendanceApprovedAt)
	assert.Nil(t, rec.PayrollApprovedBy)

	require.NoError(t, repo.UpsertPayrollApproval(ctx, 10001, p, txID, approval.StatusApproved, 9001))

	status, err = repo.GetPayrollStatus(ctx, 10001, p)
	require.NoError(t, err)
	assert.Equal(t, approval.StatusApproved, status)

	records, err := repo.FindByPeriod(ctx, p)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, txID, records[0].TransactionID)
}

func TestPayslipRepository_AppendOnly(t *testing.T) {
	db := newTestDB(t)
	truncateTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewPayslipRepository(db)

	p, err := period.New(
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	slip := &payslip.Payslip{
		TransactionID:     payslip.TransactionID(10001, p),
		EmployeeID:        10001,
		LastName:          "Reyes",
		FirstName:         "Ana",
		PeriodStart:       p.StartDate,
		PeriodEnd:         p.EndDate,
		BasicSalary:       decimal.NewFromInt(12000),
		RiceAllowance:     decimal.NewFromInt(750),
		PhoneAllowance:    decimal.NewFromInt(500),
		ClothingAllowance: decimal.NewFromInt(500),
		HourlyRate:        decimal.NewFromInt(150),
		TotalHoursWorked:  80,
		OvertimePay:       decimal.NewFromInt(375),
		GrossIncome:       decimal.NewFromInt(14125),
		LateDeduction:     decimal.NewFromInt(50),
		SSS:               decimal.NewFromInt(500),
		PhilHealth:        decimal.NewFromFloat(422.25),
		PagIbig:           decimal.NewFromInt(100),
		WithholdingTax:    decimal.NewFromFloat(1210.55),
		TotalDeductions:   decimal.NewFromFloat(2282.80),
		NetPay:            decimal.NewFromFloat(11842.20),
		ProcessedBy:       9001,
		ProcessedAt:       time.Now().UTC(),
	}

	require.NoError(t, repo.Save(ctx, slip))

	// A second save under the same transaction id inserts nothing.
	err = repo.Save(ctx, slip)
	assert.ErrorIs(t, err, payslip.ErrDuplicateTransaction)

	got, err := repo.FindByTransactionID(ctx, slip.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, slip.EmployeeID, got.EmployeeID)
	assert.True(t, got.NetPay.Equal(slip.NetPay), "net pay mismatch: %s", got.NetPay)
	assert.True(t, got.GrossIncome.Equal(slip.GrossIncome))

	byPeriod, err := repo.FindByEmployeeAndPeriod(ctx, 10001, p)
	require.NoError(t, err)
	assert.Equal(t, slip.TransactionID, byPeriod.TransactionID)

	// A later period for the same employee: latest follows the newest
	// period end, history stays oldest first.
	secondHalf, err := period.New(
		time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	secondSlip := *slip
	secondSlip.TransactionID = payslip.TransactionID(10001, secondHalf)
	secondSlip.PeriodStart = secondHalf.StartDate
	secondSlip.PeriodEnd = secondHalf.EndDate
	require.NoError(t, repo.Save(ctx, &secondSlip))

	latest, err := repo.FindLatestByEmployee(ctx, 10001)
	require.NoError(t, err)
	assert.Equal(t, secondSlip.TransactionID, latest.TransactionID)

	history, err := repo.FindAllByEmployee(ctx, 10001)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, slip.TransactionID, history[0].TransactionID)
	assert.Equal(t, secondSlip.TransactionID, history[1].TransactionID)
	assert.True(t, history[0].PeriodEnd.Before(history[1].PeriodEnd))

	_, err = repo.FindByTransactionID(ctx, "TX-99999-240601-240615")
	assert.ErrorIs(t, err, payslip.ErrPayslipNotFound)
}

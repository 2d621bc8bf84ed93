package payroll

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/payroll-backend-go/internal/domain/attendance"
	"github.com/nimbushr/payroll-backend-go/internal/domain/deduction"
	"github.com/nimbushr/payroll-backend-go/internal/domain/employee"
	"github.com/nimbushr/payroll-backend-go/internal/domain/period"
	deductionsvc "github.com/nimbushr/payroll-backend-go/internal/service/deduction"
)

// ========== FAKES ==========

type fakeEmployeeRepo struct {
	employees map[int]*employee.Employee
	// roster overrides FindAll, so a batch can name employees whose
	// profiles are missing.
	roster []*employee.Employee
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id int) (*employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) FindAll(_ context.Context) ([]*employee.Employee, error) {
	if f.roster != nil {
		return f.roster, nil
	}
	var all []*employee.Employee
	for _, emp := range f.employees {
		all = append(all, emp)
	}
	return all, nil
}

type fakeAttendanceRepo struct {
	entries map[int][]*attendance.Entry
}

func (f *fakeAttendanceRepo) Create(_ context.Context, _ *attendance.Entry) error { return nil }

func (f *fakeAttendanceRepo) EntriesForPeriod(_ context.Context, employeeID int, _, _ time.Time) ([]*attendance.Entry, error) {
	return f.entries[employeeID], nil
}

type fakeTables struct {
	contribution []deduction.ContributionBracket
	health       []deduction.RateBracket
	tax          []deduction.TaxBracket
}

func (f *fakeTables) ContributionBrackets(context.Context) ([]deduction.ContributionBracket, error) {
	return f.contribution, nil
}

func (f *fakeTables) HealthBrackets(context.Context) ([]deduction.RateBracket, error) {
	return f.health, nil
}

func (f *fakeTables) TaxBrackets(context.Context) ([]deduction.TaxBracket, error) {
	return f.tax, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func punch(day time.Time, hour, minute int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	return &t
}

// ========== ENGINE ==========

func TestComputePayslip_TimeRules(t *testing.T) {
	p := period.FirstHalf(2024, time.June)
	day1 := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)
	day4 := day1.AddDate(0, 0, 3)

	empRepo := &fakeEmployeeRepo{employees: map[int]*employee.Employee{
		10001: {
			EmployeeID:  10001,
			LastName:    "Garcia",
			FirstName:   "Manuel",
			BasicSalary: decimal.NewFromInt(20000),
			HourlyRate:  decimal.NewFromInt(100),
		},
	}}
	attRepo := &fakeAttendanceRepo{entries: map[int][]*attendance.Entry{
		10001: {
			// Within grace: no late charge.
			{EmployeeID: 10001, Date: day1, TimeIn: punch(day1, 8, 5), TimeOut: punch(day1, 17, 0)},
			// One minute past grace: charged 11 minutes from 08:00.
			{EmployeeID: 10001, Date: day2, TimeIn: punch(day2, 8, 11), TimeOut: punch(day2, 17, 0)},
			// Left 30 minutes early.
			{EmployeeID: 10001, Date: day3, TimeIn: punch(day3, 8, 0), TimeOut: punch(day3, 16, 30)},
			// One hour of overtime.
			{EmployeeID: 10001, Date: day4, TimeIn: punch(day4, 8, 0), TimeOut: punch(day4, 18, 0)},
		},
	}}
	calc := deductionsvc.NewCalculator(&fakeTables{}, discardLogger())
	engine := NewEngine(empRepo, attRepo, calc)

	slip, err := engine.ComputePayslip(context.Background(), 10001, p, 900)
	require.NoError(t, err)

	// 11 minutes late + 30 minutes undertime at 100/60 per minute.
	assert.InDelta(t, 68.3333, slip.LateDeduction.InexactFloat64(), 0.001)

	// One overtime hour at 100 * 1.25.
	assert.True(t, slip.OvertimePay.Equal(decimal.NewFromInt(125)),
		"overtime pay = %s", slip.OvertimePay)

	// Lunch deduction applies to every span over four hours:
	// 7.9167 + 7.8167 + 7.5 + 9.0 hours.
	assert.InDelta(t, 32.2333, slip.TotalHoursWorked, 0.001)

	assert.Equal(t, "TX-10001-240601-240615", slip.TransactionID)
	assert.Equal(t, 900, slip.ProcessedBy)
}

func TestComputePayslip_GrossAndNet(t *testing.T) {
	p := period.FirstHalf(2024, time.June)
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	empRepo := &fakeEmployeeRepo{employees: map[int]*employee.Employee{
		10002: {
			EmployeeID:        10002,
			LastName:          "Reyes",
			FirstName:         "Ana",
			BasicSalary:       decimal.NewFromInt(30000),
			RiceAllowance:     decimal.NewFromInt(1500),
			PhoneAllowance:    decimal.NewFromInt(1000),
			ClothingAllowance: decimal.NewFromInt(800),
			HourlyRate:        decimal.NewFromInt(150),
		},
	}}
	attRepo := &fakeAttendanceRepo{entries: map[int][]*attendance.Entry{
		10002: {
			{EmployeeID: 10002, Date: day, TimeIn: punch(day, 8, 0), TimeOut: punch(day, 17, 0)},
		},
	}}
	tables := &fakeTables{
		contribution: []deduction.ContributionBracket{
			{Min: decimal.Zero, OpenEnded: true, Contribution: decimal.NewFromInt(500)},
		},
		health: []deduction.RateBracket{
			{Min: decimal.Zero, OpenEnded: true, Rate: decimal.RequireFromString("0.03"), MaxShare: decimal.NewFromInt(900)},
		},
		tax: []deduction.TaxBracket{
			{Min: decimal.Zero, OpenEnded: true, BaseTax: decimal.Zero, ExcessRate: decimal.RequireFromString("0.10")},
		},
	}
	calc := deductionsvc.NewCalculator(tables, discardLogger())
	engine := NewEngine(empRepo, attRepo, calc)

	slip, err := engine.ComputePayslip(context.Background(), 10002, p, 900)
	require.NoError(t, err)

	// Halves: 15000 basic + 750 + 500 + 400 allowances, no overtime.
	assert.True(t, slip.GrossIncome.Equal(decimal.NewFromInt(16650)),
		"gross = %s", slip.GrossIncome)
	assert.True(t, slip.BasicSalary.Equal(decimal.NewFromInt(15000)))
	assert.True(t, slip.RiceAllowance.Equal(decimal.NewFromInt(750)))

	// No time deductions, so contributions apply to the full gross.
	assert.True(t, slip.SSS.Equal(decimal.NewFromInt(500)))
	// 3% of 16650 = 499.50, below the 900 ceiling.
	assert.True(t, slip.PhilHealth.Equal(decimal.RequireFromString("499.50")))
	// 2% of 16650 capped at 100.
	assert.True(t, slip.PagIbig.Equal(decimal.NewFromInt(100)))

	// Taxable = 16650 - 1099.50; tax = 10% of that.
	wantTax := decimal.RequireFromString("1555.05")
	assert.True(t, slip.WithholdingTax.Equal(wantTax), "tax = %s", slip.WithholdingTax)

	wantTotal := decimal.RequireFromString("1099.50").Add(wantTax)
	assert.True(t, slip.TotalDeductions.Equal(wantTotal), "total = %s", slip.TotalDeductions)
	assert.True(t, slip.NetPay.Equal(decimal.NewFromInt(16650).Sub(wantTotal)),
		"net = %s", slip.NetPay)
}

func TestComputePayslip_EdgeCases(t *testing.T) {
	p := period.FirstHalf(2024, time.June)
	day := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)

	newEngine := func(entries []*attendance.Entry, hourlyRate decimal.Decimal) *Engine {
		empRepo := &fakeEmployeeRepo{employees: map[int]*employee.Employee{
			1: {EmployeeID: 1, BasicSalary: decimal.NewFromInt(10000), HourlyRate: hourlyRate},
		}}
		attRepo := &fakeAttendanceRepo{entries: map[int][]*attendance.Entry{1: entries}}
		return NewEngine(empRepo, attRepo, deductionsvc.NewCalculator(&fakeTables{}, discardLogger()))
	}

	t.Run("missing punches are skipped entirely", func(t *testing.T) {
		engine := newEngine([]*attendance.Entry{
			{EmployeeID: 1, Date: day, TimeIn: punch(day, 8, 30), TimeOut: nil},
			{EmployeeID: 1, Date: day, TimeIn: nil, TimeOut: punch(day, 17, 0)},
		}, decimal.NewFromInt(100))

		slip, err := engine.ComputePayslip(context.Background(), 1, p, 1)
		require.NoError(t, err)
		assert.Zero(t, slip.TotalHoursWorked)
		assert.True(t, slip.LateDeduction.IsZero())
	})

	t.Run("short span keeps lunch", func(t *testing.T) {
		// Exactly four hours: no lunch subtraction.
		engine := newEngine([]*attendance.Entry{
			{EmployeeID: 1, Date: day, TimeIn: punch(day, 8, 0), TimeOut: punch(day, 12, 0)},
		}, decimal.NewFromInt(100))

		slip, err := engine.ComputePayslip(context.Background(), 1, p, 1)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, slip.TotalHoursWorked, 0.0001)
	})

	t.Run("grace boundary is on time", func(t *testing.T) {
		engine := newEngine([]*attendance.Entry{
			{EmployeeID: 1, Date: day, TimeIn: punch(day, 8, 10), TimeOut: punch(day, 17, 0)},
		}, decimal.NewFromInt(100))

		slip, err := engine.ComputePayslip(context.Background(), 1, p, 1)
		require.NoError(t, err)
		assert.True(t, slip.LateDeduction.IsZero())
	})

	t.Run("no entries still produces baseline pay", func(t *testing.T) {
		engine := newEngine(nil, decimal.NewFromInt(100))

		slip, err := engine.ComputePayslip(context.Background(), 1, p, 1)
		require.NoError(t, err)
		assert.True(t, slip.GrossIncome.Equal(decimal.NewFromInt(5000)))
		assert.Zero(t, slip.TotalHoursWorked)
	})

	t.Run("unknown employee", func(t *testing.T) {
		engine := newEngine(nil, decimal.NewFromInt(100))

		_, err := engine.ComputePayslip(context.Background(), 404, p, 1)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("extreme lateness cannot push pay negative", func(t *testing.T) {
		// 8 hours late every day at a huge rate.
		var entries []*attendance.Entry
		for i := 0; i < 10; i++ {
			d := day.AddDate(0, 0, i)
			entries = append(entries, &attendance.Entry{
				EmployeeID: 1, Date: d, TimeIn: punch(d, 16, 0), TimeOut: punch(d, 17, 0),
			})
		}
		engine := newEngine(entries, decimal.NewFromInt(5000))

		slip, err := engine.ComputePayslip(context.Background(), 1, p, 1)
		require.NoError(t, err)
		assert.True(t, slip.NetPay.IsZero(), "net = %s", slip.NetPay)
	})
}

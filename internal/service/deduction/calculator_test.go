package deduction

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nimbushr/payroll-backend-go/internal/domain/deduction"
)

type fakeTables struct {
	contribution []deduction.ContributionBracket
	health       []deduction.RateBracket
	tax          []deduction.TaxBracket
	err          error
}

func (f *fakeTables) ContributionBrackets(context.Context) ([]deduction.ContributionBracket, error) {
	return f.contribution, f.err
}

func (f *fakeTables) HealthBrackets(context.Context) ([]deduction.RateBracket, error) {
	return f.health, f.err
}

func (f *fakeTables) TaxBrackets(context.Context) ([]deduction.TaxBracket, error) {
	return f.tax, f.err
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newCalculator(tables deduction.TableRepository) *Calculator {
	return NewCalculator(tables, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSSS(t *testing.T) {
	tables := &fakeTables{
		contribution: []deduction.ContributionBracket{
			{Min: dec("0"), Max: dec("4250"), Contribution: dec("180")},
			{Min: dec("4250"), Max: dec("4750"), Contribution: dec("202.50")},
			{Min: dec("24750"), OpenEnded: true, Contribution: dec("1125")},
		},
	}
	calc := newCalculator(tables)
	ctx := context.Background()

	t.Run("first bracket", func(t *testing.T) {
		assert.True(t, calc.SSS(ctx, dec("1000")).Equal(dec("180")))
	})

	t.Run("boundary falls into next bracket", func(t *testing.T) {
		assert.True(t, calc.SSS(ctx, dec("4250")).Equal(dec("202.50")))
	})

	t.Run("open-ended top bracket", func(t *testing.T) {
		assert.True(t, calc.SSS(ctx, dec("500000")).Equal(dec("1125")))
	})

	t.Run("gap between brackets yields zero", func(t *testing.T) {
		assert.True(t, calc.SSS(ctx, dec("10000")).IsZero())
	})

	t.Run("table error yields zero", func(t *testing.T) {
		broken := newCalculator(&fakeTables{err: errors.New("disk gone")})
		assert.True(t, broken.SSS(ctx, dec("1000")).IsZero())
	})
}

func TestPhilHealth(t *testing.T) {
	tables := &fakeTables{
		health: []deduction.RateBracket{
			{Min: dec("0"), Max: dec("10000"), Rate: dec("0.03"), MinShare: dec("150"), MaxShare: dec("0")},
			{Min: dec("10000.01"), Max: dec("99999.99"), Rate: dec("0.03"), MinShare: dec("150"), MaxShare: dec("900")},
			{Min: dec("100000"), OpenEnded: true, Rate: dec("0.03"), MinShare: dec("0"), MaxShare: dec("900")},
		},
	}
	calc := newCalculator(tables)
	ctx := context.Background()

	t.Run("plain rate", func(t *testing.T) {
		assert.True(t, calc.PhilHealth(ctx, dec("20000")).Equal(dec("600")))
	})

	t.Run("minimum share floor", func(t *testing.T) {
		// 3% of 2000 is 60, below the 150 floor.
		assert.True(t, calc.PhilHealth(ctx, dec("2000")).Equal(dec("150")))
	})

	t.Run("maximum share ceiling", func(t *testing.T) {
		// 3% of 90000 is 2700, above the 900 ceiling.
		assert.True(t, calc.PhilHealth(ctx, dec("90000")).Equal(dec("900")))
	})

	t.Run("upper bound is inclusive", func(t *testing.T) {
		assert.True(t, calc.PhilHealth(ctx, dec("10000")).Equal(dec("300")))
	})

	t.Run("zero max share disables the ceiling", func(t *testing.T) {
		assert.True(t, calc.PhilHealth(ctx, dec("9000")).Equal(dec("270")))
	})

	t.Run("no match yields zero", func(t *testing.T) {
		empty := newCalculator(&fakeTables{})
		assert.True(t, empty.PhilHealth(ctx, dec("5000")).IsZero())
	})
}

func TestPagIbig(t *testing.T) {
	calc := newCalculator(&fakeTables{})
	ctx := context.Background()

	t.Run("one percent at or below 1500", func(t *testing.T) {
		assert.True(t, calc.PagIbig(ctx, dec("1500")).Equal(dec("15")))
	})

	t.Run("two percent above 1500", func(t *testing.T) {
		assert.True(t, calc.PagIbig(ctx, dec("2000")).Equal(dec("40")))
	})

	t.Run("capped at 100", func(t *testing.T) {
		assert.True(t, calc.PagIbig(ctx, dec("50000")).Equal(dec("100")))
	})
}

func TestWithholdingTax(t *testing.T) {
	tables := &fakeTables{
		tax: []deduction.TaxBracket{
			{Min: dec("0"), Max: dec("10417"), BaseTax: dec("0"), ExcessRate: dec("0")},
			{Min: dec("10417"), Max: dec("16667"), BaseTax: dec("0"), ExcessRate: dec("0.15")},
			{Min: dec("166667"), OpenEnded: true, BaseTax: dec("40833.33"), ExcessRate: dec("0.325")},
		},
	}
	calc := newCalculator(tables)
	ctx := context.Background()

	t.Run("exempt bracket", func(t *testing.T) {
		assert.True(t, calc.WithholdingTax(ctx, dec("10000")).IsZero())
	})

	t.Run("base plus excess", func(t *testing.T) {
		// (12417 - 10417) * 0.15 = 300
		assert.True(t, calc.WithholdingTax(ctx, dec("12417")).Equal(dec("300")))
	})

	t.Run("open-ended top bracket", func(t *testing.T) {
		// 40833.33 + (200000 - 166667) * 0.325
		want := dec("40833.33").Add(dec("33333").Mul(dec("0.325")))
		assert.True(t, calc.WithholdingTax(ctx, dec("200000")).Equal(want))
	})

	t.Run("no match yields zero", func(t *testing.T) {
		assert.True(t, calc.WithholdingTax(ctx, dec("50000")).IsZero())
	})
}

// Package deduction computes the statutory employee deductions from the
// government bracket tables.
package deduction

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/nimbushr/payroll-backend-go/internal/domain/deduction"
)

var (
	pagIbigLowRate   = decimal.RequireFromString("0.01")
	pagIbigHighRate  = decimal.RequireFromString("0.02")
	pagIbigThreshold = decimal.NewFromInt(1500)
	pagIbigCap       = decimal.NewFromInt(100)
)

// Calculator resolves deduction amounts against the bracket tables. A
// table that cannot be loaded yields a zero deduction and a log line,
// never a failed payroll run.
type Calculator struct {
	tables deduction.TableRepository
	logger *slog.Logger
}

func NewCalculator(tables deduction.TableRepository, logger *slog.Logger) *Calculator {
	return &Calculator{tables: tables, logger: logger}
}

// SSS returns the fixed contribution for the bracket containing
// grossPay. Brackets are half-open: the upper bound belongs to the next
// bracket. No match returns zero.
func (c *Calculator) SSS(ctx context.Context, grossPay decimal.Decimal) decimal.Decimal {
	brackets, err := c.tables.ContributionBrackets(ctx)
	if err != nil {
		c.logger.Error("sss table unavailable, deduction defaults to zero", "error", err)
		return decimal.Zero
	}

	for _, b := range brackets {
		if b.Contains(grossPay) {
			return b.Contribution
		}
	}

	return decimal.Zero
}

// PhilHealth returns grossPay times the bracket rate, clamped to the
// bracket's minimum and maximum share when those are positive. Bracket
// bounds are inclusive on both ends. No match returns zero.
func (c *Calculator) PhilHealth(ctx context.Context, grossPay decimal.Decimal) decimal.Decimal {
	brackets, err := c.tables.HealthBrackets(ctx)
	if err != nil {
		c.logger.Error("philhealth table unavailable, deduction defaults to zero", "error", err)
		return decimal.Zero
	}

	for _, b := range brackets {
		if !b.Contains(grossPay) {
			continue
		}

		share := grossPay.Mul(b.Rate)
		if b.MinShare.IsPositive() && share.LessThan(b.MinShare) {
			return b.MinShare
		}
		if b.MaxShare.IsPositive() && share.GreaterThan(b.MaxShare) {
			return b.MaxShare
		}
		return share
	}

	return decimal.Zero
}

// PagIbig is a flat computation: 1% of grossPay up to the 1500
// threshold, 2% above it, capped at 100.
func (c *Calculator) PagIbig(_ context.Context, grossPay decimal.Decimal) decimal.Decimal {
	rate := pagIbigHighRate
	if grossPay.LessThanOrEqual(pagIbigThreshold) {
		rate = pagIbigLowRate
	}

	contribution := grossPay.Mul(rate)
	if contribution.GreaterThan(pagIbigCap) {
		return pagIbigCap
	}
	return contribution
}

// WithholdingTax returns the bracket's base tax plus the marginal rate
// applied to the excess over the bracket floor. Brackets are half-open.
// No match returns zero.
func (c *Calculator) WithholdingTax(ctx context.Context, taxableIncome decimal.Decimal) decimal.Decimal {
	brackets, err := c.tables.TaxBrackets(ctx)
	if err != nil {
		c.logger.Error("tax table unavailable, deduction defaults to zero", "error", err)
		return decimal.Zero
	}

	for _, b := range brackets {
		if b.Contains(taxableIncome) {
			return b.BaseTax.Add(taxableIncome.Sub(b.Min).Mul(b.ExcessRate))
		}
	}

	return decimal.Zero
}

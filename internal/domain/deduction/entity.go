package deduction

import "github.com/shopspring/decimal"

// ContributionBracket maps a compensation range to a fixed contribution
// amount. OpenEnded marks the top bracket, whose upper bound is infinite.
type ContributionBracket struct {
	Min          decimal.Decimal
	Max          decimal.Decimal
	OpenEnded    bool
	Contribution decimal.Decimal
}

// RateBracket maps a compensation range to a premium rate with a floor
// and ceiling on the resulting employee share.
type RateBracket struct {
	Min       decimal.Decimal
	Max       decimal.Decimal
	OpenEnded bool
	Rate      decimal.Decimal
	MinShare  decimal.Decimal
	MaxShare  decimal.Decimal
}

// TaxBracket maps a taxable-income range to a base tax plus a marginal
// rate on the excess over the bracket floor.
type TaxBracket struct {
	Min        decimal.Decimal
	Max        decimal.Decimal
	OpenEnded  bool
	BaseTax    decimal.Decimal
	ExcessRate decimal.Decimal
}

// Contains reports whether amount falls in [Min, Max). Open-ended
// brackets have no upper bound.
func (b ContributionBracket) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.Min) {
		return false
	}
	return b.OpenEnded || amount.LessThan(b.Max)
}

// Contains reports whether amount falls in [Min, Max], inclusive on
// both ends.
func (b RateBracket) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.Min) {
		return false
	}
	return b.OpenEnded || amount.LessThanOrEqual(b.Max)
}

// Contains reports whether amount falls in [Min, Max). Open-ended
// brackets have no upper bound.
func (b TaxBracket) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.Min) {
		return false
	}
	return b.OpenEnded || amount.LessThan(b.Max)
}

package deduction

import "context"

// TableRepository loads the government bracket tables. Loads happen per
// calculation so a table refresh needs no restart.
type TableRepository interface {
	ContributionBrackets(ctx context.Context) ([]ContributionBracket, error)
	HealthBrackets(ctx context.Context) ([]RateBracket, error)
	TaxBrackets(ctx context.Context) ([]TaxBracket, error)
}

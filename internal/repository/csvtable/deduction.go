// Package csvtable loads the government deduction bracket tables from
// CSV files. Tables are re-read on every call so a refreshed file takes
// effect without a restart.
package csvtable

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nimbushr/payroll-backend-go/internal/domain/deduction"
)

const (
	sssFile        = "gov_SSS_Table.csv"
	philHealthFile = "gov_Philhealth_Table.csv"
	taxFile        = "gov_Tax_Table.csv"
)

// Rows carry a leading ID column, so the compensation range starts at
// index 1.
const (
	idxMin = 1
	idxMax = 2

	idxSSSContribution = 5

	idxHealthRate     = 4
	idxHealthMinShare = 5
	idxHealthMaxShare = 6

	idxTaxBase   = 3
	idxTaxExcess = 4
)

type tableRepository struct {
	dir string
}

func NewTableRepository(dir string) deduction.TableRepository {
	return &tableRepository{dir: dir}
}

func (r *tableRepository) ContributionBrackets(ctx context.Context) ([]deduction.ContributionBracket, error) {
	rows, err := r.readTable(ctx, sssFile)
	if err != nil {
		return nil, err
	}

	var brackets []deduction.ContributionBracket
	for _, row := range rows {
		if len(row) <= idxSSSContribution {
			continue
		}
		min, err := parseAmount(row[idxMin])
		if err != nil {
			continue
		}
		max, openEnded, err := parseUpperBound(row[idxMax])
		if err != nil {
			continue
		}
		contribution, err := parseAmount(row[idxSSSContribution])
		if err != nil {
			continue
		}
		brackets = append(brackets, deduction.ContributionBracket{
			Min:          min,
			Max:          max,
			OpenEnded:    openEnded,
			Contribution: contribution,
		})
	}

	return brackets, nil
}

func (r *tableRepository) HealthBrackets(ctx context.Context) ([]deduction.RateBracket, error) {
	rows, err := r.readTable(ctx, philHealthFile)
	if err != nil {
		return nil, err
	}

	var brackets []deduction.RateBracket
	for _, row := range rows {
		if len(row) <= idxHealthMaxShare {
			continue
		}
		min, err := parseAmount(row[idxMin])
		if err != nil {
			continue
		}
		max, openEnded, err := parseUpperBound(row[idxMax])
		if err != nil {
			continue
		}
		rate, err := parseAmount(row[idxHealthRate])
		if err != nil {
			continue
		}
		minShare, err := parseAmount(row[idxHealthMinShare])
		if err != nil {
			continue
		}
		maxShare, err := parseAmount(row[idxHealthMaxShare])
		if err != nil {
			continue
		}
		brackets = append(brackets, deduction.RateBracket{
			Min:       min,
			Max:       max,
			OpenEnded: openEnded,
			Rate:      rate,
			MinShare:  minShare,
			MaxShare:  maxShare,
		})
	}

	return brackets, nil
}

func (r *tableRepository) TaxBrackets(ctx context.Context) ([]deduction.TaxBracket, error) {
	rows, err := r.readTable(ctx, taxFile)
	if err != nil {
		return nil, err
	}

	var brackets []deduction.TaxBracket
	for _, row := range rows {
		if len(row) <= idxTaxExcess {
			continue
		}
		min, err := parseAmount(row[idxMin])
		if err != nil {
			continue
		}
		max, openEnded, err := parseUpperBound(row[idxMax])
		if err != nil {
			continue
		}
		baseTax, err := parseAmount(row[idxTaxBase])
		if err != nil {
			continue
		}
		excessRate, err := parseAmount(row[idxTaxExcess])
		if err != nil {
			continue
		}
		brackets = append(brackets, deduction.TaxBracket{
			Min:        min,
			Max:        max,
			OpenEnded:  openEnded,
			BaseTax:    baseTax,
			ExcessRate: excessRate,
		})
	}

	return brackets, nil
}

// readTable returns the data rows of a table file, header stripped.
// Malformed lines are dropped rather than failing the whole read.
func (r *tableRepository) readTable(ctx context.Context, name string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(r.dir, name))
	if err != nil {
		return nil, fmt.Errorf("open deduction table %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read deduction table %s: %w", name, err)
	}
	if len(all) <= 1 {
		return nil, nil
	}

	return all[1:], nil
}

// parseAmount handles the tables' formatted numbers, e.g. "1,249.99" or
// a quoted "2,000". Blank cells parse as zero.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "\"", ""), ",", ""))
	if cleaned == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(cleaned)
}

// parseUpperBound treats "Over" and blank cells as an open-ended top
// bracket.
func parseUpperBound(raw string) (decimal.Decimal, bool, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(raw, "\"", ""), ",", ""))
	if cleaned == "" || strings.EqualFold(cleaned, "Over") {
		return decimal.Zero, true, nil
	}
	max, err := decimal.NewFromString(cleaned)
	return max, false, err
}

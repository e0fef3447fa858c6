package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/hord_manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// breakdownScale is the number of fractional digits an amount is rounded to before decomposition.
const breakdownScale = 6

// computeBreakdown splits amount into denomination counts, largest denomination first.
// The pass is greedy: each denomination takes as many units as fit into what is left,
// and whatever no denomination can absorb becomes a trailing fractional entry.
func computeBreakdown(amount decimal.Decimal, currency string, denominations []domain.Denomination) domain.Breakdown {
	total := amount.Round(breakdownScale)
	result := domain.Breakdown{
		Currency: currency,
		Total:    total,
		Entries:  []domain.BreakdownEntry{},
	}
	plain := fmt.Sprintf("%s %s", total.StringFixed(2), currency)

	denoms := make([]domain.Denomination, 0, len(denominations))
	for _, d := range denominations {
		if d.ValueInBaseUnits.IsPositive() {
			denoms = append(denoms, d)
		}
	}

	if len(denoms) == 0 {
		if total.IsPositive() {
			result.Entries = append(result.Entries, fractionalEntry(currency, total))
		}
		result.Formatted = plain
		return result
	}

	sort.SliceStable(denoms, func(i, j int) bool {
		if c := denoms[i].ValueInBaseUnits.Cmp(denoms[j].ValueInBaseUnits); c != 0 {
			return c > 0
		}
		return denoms[i].Name < denoms[j].Name
	})

	remaining := total
	for _, d := range denoms {
		if remaining.LessThan(d.ValueInBaseUnits) {
			continue
		}
		count, rest := remaining.QuoRem(d.ValueInBaseUnits, 0)
		remaining = rest
		result.Entries = append(result.Entries, domain.BreakdownEntry{
			Denomination: d.Name,
			Count:        count.IntPart(),
			Value:        d.ValueInBaseUnits,
			TotalValue:   count.Mul(d.ValueInBaseUnits),
		})
	}

	if remaining.IsPositive() {
		result.Entries = append(result.Entries, fractionalEntry(currency, remaining))
	}

	if len(result.Entries) == 0 {
		result.Formatted = plain
		return result
	}

	parts := make([]string, len(result.Entries))
	for i, e := range result.Entries {
		if e.Fractional {
			parts[i] = e.Value.StringFixed(4)
			continue
		}
		parts[i] = fmt.Sprintf("%d %s", e.Count, e.Denomination)
	}
	result.Formatted = strings.Join(parts, " + ")
	return result
}

func fractionalEntry(currency string, value decimal.Decimal) domain.BreakdownEntry {
	return domain.BreakdownEntry{
		Denomination: "fractional " + currency,
		Count:        1,
		Value:        value,
		TotalValue:   value,
		Fractional:   true,
	}
}

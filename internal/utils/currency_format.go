package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with the given number of fractional digits.
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// GroupThousands inserts a comma between every three integer digits of a fixed-point string.
// Example: "-1234567.891" returns "-1,234,567.891"
func GroupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return sign + b.String()
}

// FormatUSD renders a USD amount as "$1,234.56".
// The sign follows the dollar symbol ("$-5.00").
func FormatUSD(amount decimal.Decimal) string {
	return "$" + GroupThousands(FormatWithPrecision(amount, 2))
}

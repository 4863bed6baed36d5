package kernel

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	currencySymbol   = "$"
	currencyDecimals = 2
	groupSize        = 3
)

// FormatMoney renders d as a US dollar amount with thousands separators and
// two fraction digits, e.g. 1234.5 -> "$1,234.50" and -3 -> "-$3.00".
// Rounding is half away from zero.
func FormatMoney(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(currencyDecimals)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Round(currencyDecimals).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(currencySymbol)
	b.WriteString(groupThousands(intPart))
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= groupSize {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % groupSize
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += groupSize {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+groupSize])
	}
	return b.String()
}

// Package format renders domain values as chat text.
//
// Output is Telegram HTML. Every string that came from a user is escaped
// before it is embedded.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is appended to every formatted amount.
const CurrencySymbol = "₸"

// Currency renders amount with two decimals, its integer part grouped by
// thousands with spaces, and the currency symbol: 1500.5 -> "1 500.50 ₸".
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprintf("%v %s", amount, CurrencySymbol)
	}
	d := decimal.NewFromFloat(amount).Round(2)

	fixed := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	b.WriteString(" " + CurrencySymbol)

	return b.String()
}

package conversation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/budgetbot/internal/models"
)

var (
	// ErrInvalidAmount is returned for input that is not a plain number or
	// exceeds models.MaxAmount.
	ErrInvalidAmount = errors.New("amount is not a number")
	// ErrNonPositiveAmount is returned for zero or negative amounts.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// amountPattern accepts an optional sign, up to 15 integer digits and up
// to 10 fraction digits. Exponents, Inf and NaN never match.
var amountPattern = regexp.MustCompile(`^[+-]?\d{1,15}(\.\d{1,10})?$`)

// ParseAmount reads a user-typed amount. Both "1500.50" and "1500,50" are
// accepted. The result is rounded to cents.
func ParseAmount(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if !amountPattern.MatchString(text) {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return 0, ErrNonPositiveAmount
	}

	d = d.Round(2)
	if d.IsZero() {
		return 0, ErrNonPositiveAmount
	}
	if d.GreaterThan(decimal.NewFromInt(models.MaxAmount)) {
		return 0, ErrInvalidAmount
	}

	return d.InexactFloat64(), nil
}

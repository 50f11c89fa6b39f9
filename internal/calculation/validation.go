package calculation

import (
	"strings"

	"github.com/rpgo/vat-calculator/internal/domain"
	"github.com/rpgo/vat-calculator/pkg/decimal"
)

// MaxFractionDigits is the number of significant pence digits an amount may carry
const MaxFractionDigits = 2

// Validate runs the validation sequence for op against raw and returns the parsed amount.
// The first failing step wins; the error is always a *domain.ValidationError.
func Validate(op domain.Operation, raw string) (decimal.Money, error) {
	fail := func(kind domain.ErrorKind) (decimal.Money, error) {
		return decimal.Money{}, &domain.ValidationError{Kind: kind, Op: op, Input: raw}
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return fail(domain.EmptyInput)
	}
	if !isNumeric(s) {
		return fail(domain.NotNumeric)
	}
	if fractionDigits(s) > MaxFractionDigits {
		return fail(domain.TooManyDecimals)
	}

	amount, err := decimal.NewMoneyFromString(normalize(s))
	if err != nil {
		return fail(domain.NotNumeric)
	}
	// isNumeric rejects signs, so this cannot fire for any input today.
	if amount.IsNegative() {
		return fail(domain.Negative)
	}
	if amount.GreaterThan(UpperLimit) {
		return fail(domain.TooLarge)
	}
	return amount, nil
}

// isNumeric accepts ASCII digits with at most one decimal point and at least one digit.
func isNumeric(s string) bool {
	digits, dot := 0, false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// fractionDigits counts fractional digits once trailing zeros are dropped.
func fractionDigits(s string) int {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(strings.TrimRight(s[i+1:], "0"))
}

// normalize turns ".5" into "0.5" and "5." into "5" for the decimal parser.
func normalize(s string) string {
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	return strings.TrimSuffix(s, ".")
}

package onboarding

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

var maxMarkup = decimal.NewFromInt(500)

// amount unwraps the decimal forms ozzo hands to By rules.
// ok is false for a nil pointer.
func amount(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero, false
		}
		return *v, true
	}
	return decimal.Zero, false
}

func positive(value interface{}) error {
	d, _ := amount(value)
	if !d.IsPositive() {
		return errors.New("must be greater than 0")
	}
	return nil
}

func optionalPositive(value interface{}) error {
	if _, ok := amount(value); !ok {
		return nil
	}
	return positive(value)
}

func optionalNonNegative(value interface{}) error {
	d, ok := amount(value)
	if ok && d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func markupRange(value interface{}) error {
	d, ok := amount(value)
	if !ok {
		return nil
	}
	if !d.IsPositive() || d.GreaterThan(maxMarkup) {
		return errors.New("markup must be above 0 and at most 500 percent")
	}
	return nil
}

func itoa(i int) string { return strconv.Itoa(i) }

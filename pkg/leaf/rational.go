package leaf

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/interval"
)

// Rational is a leaf backed by an integer numerator/denominator pair
// (spec.md §3/§6 — Rational variant). The denominator must be non-zero;
// NewRational validates this at construction so IntervalAt never needs to.
type Rational struct {
	Numerator   digit.Number
	Denominator digit.Number
}

// NewRational builds a Rational leaf, returning digit.ErrDivisorIsZero if
// den is zero.
func NewRational(num, den digit.Number) (Rational, error) {
	if den.IsZero() {
		return Rational{}, digit.ErrDivisorIsZero
	}
	return Rational{Numerator: num, Denominator: den}, nil
}

// IntervalAt performs two divisions at precision p, one rounding down for
// lower, one rounding up for upper (spec.md §4.3).
func (r Rational) IntervalAt(p uint) (interval.Interval, error) {
	lower, err := digit.DivideWithRounding(r.Numerator, r.Denominator, int(p), false)
	if err != nil {
		return interval.Interval{}, err
	}
	upper, err := digit.DivideWithRounding(r.Numerator, r.Denominator, int(p), true)
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.New(lower, upper), nil
}

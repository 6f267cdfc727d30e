// Package interval implements ordered pairs of digit.Number that enclose a
// true mathematical value, plus the sign-classification helpers spec.md
// §4.2 describes.
package interval

import (
	"fmt"

	"github.com/wildfunctions/realexact/pkg/digit"
)

// Interval is a closed enclosure [Lower, Upper] with Lower <= Upper.
type Interval struct {
	Lower digit.Number
	Upper digit.Number
}

// New builds an Interval, asserting lower<=upper (callers are expected to
// have already rounded outward correctly; this only guards against
// programmer error).
func New(lower, upper digit.Number) Interval {
	if lower.Cmp(upper) > 0 {
		panic(fmt.Sprintf("interval: lower %v > upper %v", lower, upper))
	}
	return Interval{Lower: lower, Upper: upper}
}

// Exact returns the degenerate interval [x, x].
func Exact(x digit.Number) Interval {
	return Interval{Lower: x, Upper: x}
}

// Positive reports whether every value in the interval is strictly
// positive: lower.sign=true and lower != 0.
func (iv Interval) Positive() bool {
	return iv.Lower.Sign && !iv.Lower.IsZero()
}

// Negative reports whether every value in the interval is strictly
// negative: upper.sign=false and upper != 0.
func (iv Interval) Negative() bool {
	return !iv.Upper.Sign && !iv.Upper.IsZero()
}

// ContainsZero reports whether the interval straddles or touches zero.
func (iv Interval) ContainsZero() bool {
	return !iv.Positive() && !iv.Negative()
}

// Width returns Upper-Lower. Not part of spec.md's core vocabulary, but
// every diagnostic/report type in the pack (e.g. the teacher's
// series.EvalResult) carries a derived magnitude field, and callers here
// need one to decide when to stop refining.
func (iv Interval) Width() digit.Number {
	return digit.Sub(iv.Upper, iv.Lower)
}

// Contains reports whether x lies within [Lower, Upper].
func (iv Interval) Contains(x digit.Number) bool {
	return iv.Lower.Cmp(x) <= 0 && x.Cmp(iv.Upper) <= 0
}

// Subset reports whether iv is contained within other — the nesting
// relationship spec.md §3 requires of successive refinements of the same
// node.
func (iv Interval) Subset(other Interval) bool {
	return other.Lower.Cmp(iv.Lower) <= 0 && iv.Upper.Cmp(other.Upper) <= 0
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Lower, iv.Upper)
}

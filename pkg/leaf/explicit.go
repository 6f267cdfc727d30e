package leaf

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/interval"
)

// Explicit is a leaf backed by a single fully-known Digit Number
// (spec.md §3 "Leaf Real" — Explicit variant).
type Explicit struct {
	Value digit.Number
}

// NewExplicit wraps a Digit Number as an Explicit leaf.
func NewExplicit(x digit.Number) Explicit {
	return Explicit{Value: x}
}

// IntervalAt truncates Value down and up to p digits, per spec.md §4.3:
// "lower = exact prefix padded with zeros; upper = prefix with +1 at
// position p+Δ propagated with carry."
func (e Explicit) IntervalAt(p uint) (interval.Interval, error) {
	lower := digit.TruncateTo(e.Value, int(p), false)
	upper := digit.TruncateTo(e.Value, int(p), true)
	return interval.New(lower, upper), nil
}

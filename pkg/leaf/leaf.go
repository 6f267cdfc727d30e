// Package leaf implements the three leaf-Real variants of spec.md §3/§4.3:
// Explicit, Algorithmic, and Rational. Leaves carry no iterator state —
// they are pure, immutable descriptions of a value, safe to share across
// expression trees (spec.md's DAG-sharing invariant); pkg/iterator owns the
// precision cursor.
package leaf

import "github.com/wildfunctions/realexact/pkg/interval"

// Real is a leaf real: a source of ever-tighter enclosures at any
// requested precision, with no dependency on prior calls (leaves are pure
// functions of precision).
type Real interface {
	// IntervalAt returns an enclosure with width at most B^(exponent-p)
	// (spec.md §4.3).
	IntervalAt(p uint) (interval.Interval, error)
}

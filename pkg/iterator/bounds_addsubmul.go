package iterator

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/interval"
)

// updateAdd implements spec.md §4.4 ADD:
// lower = trunc↓(L.lower,p) + trunc↓(R.lower,p)
// upper = trunc↑(L.upper,p) + trunc↑(R.upper,p)
func (it *Iterator) updateAdd() error {
	p := it.precision
	L, R := it.lhs.interval, it.rhs.interval
	lower := digit.Add(down(L.Lower, p), down(R.Lower, p))
	upper := digit.Add(up(L.Upper, p), up(R.Upper, p))
	it.interval = interval.New(lower, upper)
	return nil
}

// updateSub implements spec.md §4.4 SUB:
// lower = trunc↓(L.lower,p) − trunc↑(R.upper,p)
// upper = trunc↑(L.upper,p) − trunc↓(R.lower,p)
func (it *Iterator) updateSub() error {
	p := it.precision
	L, R := it.lhs.interval, it.rhs.interval
	lower := digit.Sub(down(L.Lower, p), up(R.Upper, p))
	upper := digit.Sub(up(L.Upper, p), down(R.Lower, p))
	it.interval = interval.New(lower, upper)
	return nil
}

// updateMul implements spec.md §4.4 MUL's sign-case table. When neither
// operand straddles zero, the product's extremal corners are picked
// directly from the sign table; when one or both do straddle, all four
// corner products are computed (outward rounded, per both directions) and
// min/max taken — resolving the spec's Open Question about the
// straddles-zero branch as an unconditional min-of-four / max-of-four
// assignment.
func (it *Iterator) updateMul() error {
	it.interval = mulBounds(it.lhs.interval, it.rhs.interval, it.precision)
	return nil
}

// mulBounds implements spec.md §4.4 MUL's sign-case table; shared with
// updateDiv, which reduces division to multiplication by a reciprocal
// interval once the denominator no longer contains zero.
func mulBounds(L, R interval.Interval, p uint) interval.Interval {
	switch {
	case L.Positive() && R.Positive():
		return interval.New(
			digit.Mul(down(L.Lower, p), down(R.Lower, p)),
			digit.Mul(up(L.Upper, p), up(R.Upper, p)),
		)
	case L.Negative() && R.Negative():
		return interval.New(
			digit.Mul(down(L.Upper, p), down(R.Upper, p)),
			digit.Mul(up(L.Lower, p), up(R.Lower, p)),
		)
	case L.Negative() && R.Positive():
		return interval.New(
			digit.Mul(down(L.Lower, p), down(R.Upper, p)),
			digit.Mul(up(L.Upper, p), up(R.Lower, p)),
		)
	case L.Positive() && R.Negative():
		return interval.New(
			digit.Mul(down(L.Upper, p), down(R.Lower, p)),
			digit.Mul(up(L.Lower, p), up(R.Upper, p)),
		)
	default:
		return mulStraddleZero(L, R, p)
	}
}

// mulStraddleZero handles the case where at least one operand's interval
// contains zero: it computes all four endpoint products, each rounded
// down (for the lower candidate pool) and up (for the upper candidate
// pool), and takes the min of the down-rounded products and the max of
// the up-rounded products.
func mulStraddleZero(L, R interval.Interval, p uint) interval.Interval {
	lCorners := [2]digit.Number{L.Lower, L.Upper}
	rCorners := [2]digit.Number{R.Lower, R.Upper}

	lower := digit.Mul(down(lCorners[0], p), down(rCorners[0], p))
	upper := digit.Mul(up(lCorners[0], p), up(rCorners[0], p))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if i == 0 && j == 0 {
				continue
			}
			candidateLower := digit.Mul(down(lCorners[i], p), down(rCorners[j], p))
			candidateUpper := digit.Mul(up(lCorners[i], p), up(rCorners[j], p))
			if candidateLower.Less(lower) {
				lower = candidateLower
			}
			if candidateUpper.Greater(upper) {
				upper = candidateUpper
			}
		}
	}
	return interval.New(lower, upper)
}

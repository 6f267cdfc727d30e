package iterator

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/interval"
)

// updateDiv implements spec.md §4.4 DIV:
//  1. advance self (and therefore R) while R straddles or touches zero,
//     bounded by maxPrecision;
//  2. fail ErrDivergentDivisionResult if R still contains zero;
//  3. otherwise reduce to multiplication by R's reciprocal interval,
//     selecting the numerator/denominator endpoint pairing that yields the
//     extremal ratio for each bound, rounded outward via
//     digit.DivideWithRounding.
func (it *Iterator) updateDiv() error {
	for it.rhs.interval.ContainsZero() {
		if it.atCap() {
			return ErrDivergentDivisionResult
		}
		it.precision++
		it.logger.V(1).Info("div: denominator still contains zero, advancing", "precision", it.precision)
		if err := it.lhs.Advance(1); err != nil {
			return err
		}
		if err := it.rhs.Advance(1); err != nil {
			return err
		}
	}

	p := it.precision
	recip, err := reciprocal(it.rhs.interval, p)
	if err != nil {
		return err
	}
	it.interval = mulBounds(it.lhs.interval, recip, p)
	return nil
}

// reciprocal returns [1/R.Upper, 1/R.Lower] for an R that does not contain
// zero. Reciprocation reverses order on both the positive and the negative
// branch alike (e.g. R=[2,4] -> [0.25,0.5]; R=[-4,-2] -> [-0.5,-0.25]), so
// one formula covers both signs.
func reciprocal(R interval.Interval, p uint) (interval.Interval, error) {
	one := digit.FromInt64(1)
	lower, err := digit.DivideWithRounding(one, up(R.Upper, p), int(p), false)
	if err != nil {
		return interval.Interval{}, err
	}
	upper, err := digit.DivideWithRounding(one, down(R.Lower, p), int(p), true)
	if err != nil {
		return interval.Interval{}, err
	}
	return interval.New(lower, upper), nil
}

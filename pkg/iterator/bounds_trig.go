package iterator

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/interval"
	"github.com/wildfunctions/realexact/pkg/kernel"
)

// valSign reports the sign of a single Digit Number: -1, 0 or +1.
func valSign(n digit.Number) int {
	if n.IsZero() {
		return 0
	}
	if n.Sign {
		return 1
	}
	return -1
}

// sinInterval implements spec.md §4.4 SIN: sin and cos are sampled at both
// endpoints of x; the sign of cos decides whether sin is monotone across
// the interval or whether it straddles a local extremum.
func sinInterval(x interval.Interval, p uint) interval.Interval {
	xLo, xHi := down(x.Lower, p), up(x.Upper, p)
	sinLoDown, cosLoDown := kernel.SinCos(xLo, p, false)
	sinLoUp, _ := kernel.SinCos(xLo, p, true)
	sinHiDown, cosHiDown := kernel.SinCos(xHi, p, false)
	sinHiUp, _ := kernel.SinCos(xHi, p, true)

	cosLoSign, cosHiSign := valSign(cosLoDown), valSign(cosHiDown)
	one := digit.FromInt64(1)

	switch {
	case cosLoSign >= 0 && cosHiSign >= 0:
		return interval.New(sinLoDown, sinHiUp)
	case cosLoSign < 0 && cosHiSign < 0:
		return interval.New(sinHiDown, sinLoUp)
	case cosLoSign >= 0 && cosHiSign < 0:
		// derivative (cos) goes + to -: local maximum inside the interval.
		lower := sinLoDown
		if sinHiDown.Less(lower) {
			lower = sinHiDown
		}
		return interval.New(lower, one)
	default:
		// derivative (cos) goes - to +: local minimum inside the interval.
		upper := sinLoUp
		if sinHiUp.Greater(upper) {
			upper = sinHiUp
		}
		return interval.New(one.Negate(), upper)
	}
}

// cosInterval implements spec.md §4.4 COS, mirroring sinInterval with the
// roles of sin and cos swapped (cos's derivative is -sin).
func cosInterval(x interval.Interval, p uint) interval.Interval {
	xLo, xHi := down(x.Lower, p), up(x.Upper, p)
	sinLoDown, cosLoDown := kernel.SinCos(xLo, p, false)
	_, cosLoUp := kernel.SinCos(xLo, p, true)
	sinHiDown, cosHiDown := kernel.SinCos(xHi, p, false)
	_, cosHiUp := kernel.SinCos(xHi, p, true)

	sinLoSign, sinHiSign := valSign(sinLoDown), valSign(sinHiDown)
	one := digit.FromInt64(1)

	switch {
	case sinLoSign <= 0 && sinHiSign <= 0:
		// -sin >= 0 throughout: cos increasing.
		return interval.New(cosLoDown, cosHiUp)
	case sinLoSign >= 0 && sinHiSign >= 0:
		// -sin <= 0 throughout: cos decreasing. >= (not >) groups the sin==0
		// boundary with "decreasing" too, so the partition has no tie gap
		// between this case and the increasing one above.
		return interval.New(cosHiDown, cosLoUp)
	case sinLoSign < 0 && sinHiSign > 0:
		// sin goes - to +, so -sin (cos's derivative) goes + to -: local maximum.
		lower := cosLoDown
		if cosHiDown.Less(lower) {
			lower = cosHiDown
		}
		return interval.New(lower, one)
	default:
		// sin goes + to -, so -sin goes - to +: local minimum.
		upper := cosLoUp
		if cosHiUp.Greater(upper) {
			upper = cosHiUp
		}
		return interval.New(one.Negate(), upper)
	}
}

// updateSin and updateCos hold no iteration state of their own beyond the
// operand's: the shared kernel and the case analysis above do all the work.
func (it *Iterator) updateSin() error {
	it.interval = sinInterval(it.lhs.interval, it.precision)
	return nil
}

func (it *Iterator) updateCos() error {
	it.interval = cosInterval(it.lhs.interval, it.precision)
	return nil
}

// guardDenominator advances it.lhs (and it.precision in step) until the
// supplied interval-of-the-angle's sin or cos (whichever denominator is
// caller-supplied via denom) stops containing zero, bounded by
// max_precision — spec.md §4.4's shared TAN/COT/SEC/CSC guard.
func (it *Iterator) guardDenominator(denom func(interval.Interval, uint) interval.Interval) (interval.Interval, error) {
	d := denom(it.lhs.interval, it.precision)
	for d.ContainsZero() {
		if it.atCap() {
			return interval.Interval{}, ErrMaxPrecisionTrig
		}
		it.precision++
		it.logger.V(1).Info("trig: denominator still near zero, advancing", "precision", it.precision)
		if err := it.lhs.Advance(1); err != nil {
			return interval.Interval{}, err
		}
		d = denom(it.lhs.interval, it.precision)
	}
	return d, nil
}

// updateTan implements spec.md §4.4 TAN: guard against cos vanishing over
// the interval, then reduce to sin · (1/cos) via the existing
// multiplication/reciprocal machinery.
func (it *Iterator) updateTan() error {
	cosIv, err := it.guardDenominator(cosInterval)
	if err != nil {
		return err
	}
	p := it.precision
	sinIv := sinInterval(it.lhs.interval, p)
	recip, err := reciprocal(cosIv, p)
	if err != nil {
		return err
	}
	it.interval = mulBounds(sinIv, recip, p)
	return nil
}

// updateCot implements spec.md §4.4 COT: guard against sin vanishing, then
// reduce to cos · (1/sin).
func (it *Iterator) updateCot() error {
	sinIv, err := it.guardDenominator(sinInterval)
	if err != nil {
		return err
	}
	p := it.precision
	cosIv := cosInterval(it.lhs.interval, p)
	recip, err := reciprocal(sinIv, p)
	if err != nil {
		return err
	}
	it.interval = mulBounds(cosIv, recip, p)
	return nil
}

// updateSec implements spec.md §4.4 SEC: guard against cos vanishing, then
// take cos's reciprocal interval directly. Because cos's own extremum
// placement already resolves to exactly ±1 at the relevant boundary,
// reciprocating it carries the "±1 as an extremum" rule across for free.
func (it *Iterator) updateSec() error {
	cosIv, err := it.guardDenominator(cosInterval)
	if err != nil {
		return err
	}
	recip, err := reciprocal(cosIv, it.precision)
	if err != nil {
		return err
	}
	it.interval = recip
	return nil
}

// updateCsc implements spec.md §4.4 CSC: guard against sin vanishing, then
// take sin's reciprocal interval. This resolves the spec's Open Question
// about CSC's sign-change case by the same symmetric-monotonicity rule
// used for SEC: reciprocating sin's own (already correctly placed) ±1
// extremum bound.
func (it *Iterator) updateCsc() error {
	sinIv, err := it.guardDenominator(sinInterval)
	if err != nil {
		return err
	}
	recip, err := reciprocal(sinIv, it.precision)
	if err != nil {
		return err
	}
	it.interval = recip
	return nil
}

package iterator

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/interval"
)

// updateIPow implements spec.md §4.4 IPOW:
//  1. the exponent operand must already denote a single non-negative
//     integer value at its own max precision, else ErrNonIntegralExponent
//     / ErrNegativeIntegerExponentUnsupported;
//  2. the base's bounds are raised to that exact power via
//     digit.BinaryExponentiation, with the sign/parity case table deciding
//     which outward-rounded endpoint becomes the new lower and upper bound.
func (it *Iterator) updateIPow() error {
	if it.rhs.precision < it.rhs.maxPrecision {
		if err := it.rhs.Advance(it.rhs.maxPrecision - it.rhs.precision); err != nil {
			return err
		}
	}
	R := it.rhs.interval
	if !R.Lower.Equal(R.Upper) || !isIntegerValue(R.Lower) {
		return ErrNonIntegralExponent
	}
	exp, ok := R.Lower.ToUint64()
	if !ok {
		return ErrNegativeIntegerExponentUnsupported
	}
	even := exp%2 == 0

	p := it.precision
	L := it.lhs.interval
	loOut := down(L.Lower, p)
	hiOut := up(L.Upper, p)
	raw1 := digit.BinaryExponentiation(loOut, exp) // exact power of the outward-extended lower bound
	raw2 := digit.BinaryExponentiation(hiOut, exp) // exact power of the outward-extended upper bound

	switch {
	case L.Positive():
		it.interval = interval.New(raw1, raw2)
	case L.Negative():
		if even {
			it.interval = interval.New(raw2, raw1)
		} else {
			it.interval = interval.New(raw1, raw2)
		}
	default: // straddles zero
		if even {
			magnitude := loOut.Abs()
			if hiOut.Abs().Greater(magnitude) {
				magnitude = hiOut.Abs()
			}
			it.interval = interval.New(digit.Zero(), digit.BinaryExponentiation(magnitude, exp))
		} else {
			it.interval = interval.New(raw1, raw2)
		}
	}
	return nil
}

// isIntegerValue reports whether n denotes a value with no fractional
// digits: zero trivially qualifies, otherwise its digit count, not counting
// trailing zero digits, must not exceed its exponent (spec.md §4.4 IPOW
// rule 1).
func isIntegerValue(n digit.Number) bool {
	if n.IsZero() {
		return true
	}
	sig := len(n.Digits)
	for sig > 1 && n.Digits[sig-1] == 0 {
		sig--
	}
	return sig <= n.Exponent
}

package kernel

import "github.com/wildfunctions/realexact/pkg/digit"

// reductionSteps returns how many times to halve x before summing its
// Taylor series, so that the reduced argument's magnitude is comfortably
// below 1 and the series converges in a small, precision-independent
// number of terms.
func reductionSteps(x digit.Number) int {
	k := 0
	mag := x.Abs()
	one := digit.FromInt64(1)
	for mag.Cmp(one) > 0 && k < 64 {
		mag, _ = digit.DivideWithRounding(mag, digit.FromInt64(2), mag.Exponent+4, false)
		k++
	}
	return k + 2 // a little extra headroom keeps the series short even near |x|=1
}

// Exp returns exp(x) rounded to p digits, outward per roundUp (spec.md
// §4.5): argument-reduced via exp(x) = (exp(x/2^k))^(2^k), Taylor-summed
// around 0, truncating when the next term falls below B^-wp.
func Exp(x digit.Number, p uint, roundUp bool) digit.Number {
	wp := workingPrecision(p)
	k := reductionSteps(x)
	divisor := digit.BinaryExponentiation(digit.FromInt64(2), uint64(k))
	reduced, _ := digit.DivideWithRounding(x, divisor, wp, roundUp)

	sum := digit.FromInt64(1)
	term := digit.FromInt64(1)
	for n := int64(1); n < 10_000; n++ {
		term = digit.Mul(term, reduced)
		term, _ = digit.DivideWithRounding(term, digit.FromInt64(n), wp, roundUp)
		term = digit.TruncateTo(term, wp, roundUp)
		sum = digit.Add(sum, term)
		if term.IsZero() || term.Exponent-wp < reduced.Exponent-wp-wp {
			break
		}
		if smallerThanUlp(term, wp) {
			break
		}
	}

	for i := 0; i < k; i++ {
		sum = digit.TruncateTo(digit.Mul(sum, sum), wp, roundUp)
	}

	return outward(sum, p, roundUp)
}

// smallerThanUlp reports whether x's magnitude is below one unit in the
// last place at working precision wp relative to the canonical scale
// (exponent 1) — a simple, conservative series-truncation test.
func smallerThanUlp(x digit.Number, wp int) bool {
	if x.IsZero() {
		return true
	}
	hi := x.Exponent - 1
	return hi < -wp
}

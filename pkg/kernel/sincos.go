package kernel

import "github.com/wildfunctions/realexact/pkg/digit"

// floorToInt truncates x to its integer part, rounding toward -infinity —
// i.e. a true floor regardless of sign, reusing TruncateTo's signed
// rounding contract (roundUp=false rounds the signed value toward
// -infinity).
func floorToInt(x digit.Number) digit.Number {
	if x.Exponent <= 0 {
		// |x| < 1: the floor is 0 for x >= 0 and -1 for x < 0.
		if x.Sign || x.IsZero() {
			return digit.Zero()
		}
		return digit.FromInt64(-1)
	}
	return digit.TruncateTo(x, x.Exponent, false)
}

// reduceAngle brings x into (-pi, pi] by subtracting the appropriate
// integer multiple of 2*pi, so the Taylor series below converges in a
// small, precision-independent number of terms (spec.md §4.4 SIN/COS:
// "range reduction modulo 2π").
func reduceAngle(x digit.Number, pi digit.Number, wp int) digit.Number {
	twoPi := digit.TruncateTo(digit.Mul(digit.FromInt64(2), pi), wp, false)
	quotient, _ := digit.DivideWithRounding(x, twoPi, wp, false)
	k := floorToInt(quotient)
	reduced := digit.Sub(x, digit.TruncateTo(digit.Mul(k, twoPi), wp, false))
	if reduced.Cmp(pi) > 0 {
		reduced = digit.Sub(reduced, twoPi)
	}
	return reduced
}

// SinCos returns (sin(x), cos(x)) rounded to p digits, outward per
// roundUp, via range reduction modulo 2π followed by a joint Taylor
// series (spec.md §4.5). Returning both from one kernel call lets
// pkg/iterator's SIN/COS/TAN/... rules test derivative sign without a
// second series evaluation.
func SinCos(x digit.Number, p uint, roundUp bool) (sin, cos digit.Number) {
	wp := workingPrecision(p)
	pi := piValue(wp)
	t := reduceAngle(x, pi, wp)
	tSq := digit.TruncateTo(digit.Mul(t, t), wp, roundUp)

	sinSum := digit.FromInt64(0)
	sinTerm := t
	cosSum := digit.FromInt64(1)
	cosTerm := digit.FromInt64(1)

	for n := int64(0); n < 1000; n++ {
		// sin term n: (-1)^n t^(2n+1)/(2n+1)!
		sign := int64(1)
		if n%2 == 1 {
			sign = -1
		}
		sinSum = addSigned(sinSum, sinTerm, sign)

		// cos term n+1: (-1)^(n+1) t^(2n+2)/(2n+2)!
		cosTerm = digit.TruncateTo(digit.Mul(cosTerm, tSq), wp, roundUp)
		cosDenom := digit.FromInt64((2*n + 1) * (2*n + 2))
		cosTerm, _ = digit.DivideWithRounding(cosTerm, cosDenom, wp, roundUp)
		cosSign := int64(1)
		if n%2 == 0 {
			cosSign = -1
		}
		cosSum = addSigned(cosSum, cosTerm, cosSign)

		sinDenom := digit.FromInt64((2*n + 2) * (2*n + 3))
		sinTerm = digit.TruncateTo(digit.Mul(sinTerm, tSq), wp, roundUp)
		sinTerm, _ = digit.DivideWithRounding(sinTerm, sinDenom, wp, roundUp)

		if smallerThanUlp(sinTerm, wp) && smallerThanUlp(cosTerm, wp) {
			break
		}
	}

	return outward(sinSum, p, roundUp), outward(cosSum, p, roundUp)
}

func addSigned(sum, term digit.Number, sign int64) digit.Number {
	if sign < 0 {
		return digit.Sub(sum, term)
	}
	return digit.Add(sum, term)
}

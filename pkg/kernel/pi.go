package kernel

import "github.com/wildfunctions/realexact/pkg/digit"

// atanSeries computes atan(num/den) via its alternating power series,
// valid for |num/den| <= 1; used only with the small Machin-formula
// arguments below, where convergence is fast regardless of wp.
func atanSeries(num, den int64, wp int) digit.Number {
	x, _ := digit.DivideWithRounding(digit.FromInt64(num), digit.FromInt64(den), wp, false)
	xSq := digit.TruncateTo(digit.Mul(x, x), wp, false)

	sum := digit.FromInt64(0)
	term := x
	for n := int64(0); n < 10_000; n++ {
		denom := digit.FromInt64(2*n + 1)
		contribution, _ := digit.DivideWithRounding(term, denom, wp, false)
		if n%2 == 0 {
			sum = digit.Add(sum, contribution)
		} else {
			sum = digit.Sub(sum, contribution)
		}
		if smallerThanUlp(contribution, wp) {
			break
		}
		term = digit.TruncateTo(digit.Mul(term, xSq), wp, false)
	}
	return sum
}

// piValue returns an approximation of pi good to roughly wp digits, via
// Machin's formula pi/4 = 4·atan(1/5) - atan(1/239), which converges in a
// handful of terms independent of requested precision.
func piValue(wp int) digit.Number {
	a := atanSeries(1, 5, wp)
	b := atanSeries(1, 239, wp)
	quarterPi := digit.Sub(digit.Mul(digit.FromInt64(4), a), b)
	return digit.TruncateTo(digit.Mul(quarterPi, digit.FromInt64(4)), wp, false)
}

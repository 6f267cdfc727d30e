package kernel

import (
	"errors"

	"github.com/wildfunctions/realexact/pkg/digit"
)

// ErrLogDomain is returned when Log is asked to evaluate a non-positive
// argument (spec.md §7 "log_domain").
var ErrLogDomain = errors.New("kernel: log domain error, argument must be positive")

// reduceToUnitRange rewrites x as m·2^k with m in [1,2), so the atanh
// series below converges in a small, precision-independent number of
// terms regardless of x's magnitude.
func reduceToUnitRange(x digit.Number, wp int) (digit.Number, int) {
	one := digit.FromInt64(1)
	two := digit.FromInt64(2)
	cur := x
	k := 0
	for cur.Cmp(two) >= 0 && k < 100_000 {
		cur, _ = digit.DivideWithRounding(cur, two, wp, false)
		k++
	}
	for cur.Cmp(one) < 0 && k > -100_000 {
		cur = digit.TruncateTo(digit.Mul(cur, two), wp, false)
		k--
	}
	return cur, k
}

// logSeries computes log(m) for m>0 via 2·atanh((m-1)/(m+1)), which
// converges quickly whenever m is within the [1,2) range reduceToUnitRange
// produces (ratio (m-1)/(m+1) <= 1/3).
func logSeries(m digit.Number, wp int, roundUp bool) digit.Number {
	num := digit.Sub(m, digit.FromInt64(1))
	den := digit.Add(m, digit.FromInt64(1))
	y, _ := digit.DivideWithRounding(num, den, wp, roundUp)
	ySq := digit.TruncateTo(digit.Mul(y, y), wp, roundUp)

	sum := digit.FromInt64(0)
	term := y
	for j := int64(0); j < 10_000; j++ {
		denom := digit.FromInt64(2*j + 1)
		contribution, _ := digit.DivideWithRounding(term, denom, wp, roundUp)
		sum = digit.Add(sum, contribution)
		if smallerThanUlp(contribution, wp) {
			break
		}
		term = digit.TruncateTo(digit.Mul(term, ySq), wp, roundUp)
	}
	return digit.TruncateTo(digit.Mul(sum, digit.FromInt64(2)), wp, roundUp)
}

// Log returns log(x) rounded to p digits, outward per roundUp (spec.md
// §4.5): argument-reduced via log(x) = k·log(2) + log(m), m in [1,2).
func Log(x digit.Number, p uint, roundUp bool) (digit.Number, error) {
	if !x.Sign || x.IsZero() {
		return digit.Zero(), ErrLogDomain
	}
	wp := workingPrecision(p)
	m, k := reduceToUnitRange(x, wp)
	logM := logSeries(m, wp, roundUp)
	log2 := logSeries(digit.FromInt64(2), wp, roundUp)
	total := digit.Add(logM, digit.Mul(digit.FromInt64(int64(k)), log2))
	return outward(total, p, roundUp), nil
}

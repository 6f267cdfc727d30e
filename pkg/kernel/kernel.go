// Package kernel implements the transcendental kernels shared by the
// Digit Number layer and the precision iterator: exp, log, and a joint
// sin/cos (spec.md §4.5). Every kernel takes an explicit rounding
// direction and documents its rounding contract: roundUp=false produces a
// result <= the true value, roundUp=true produces a result >= the true
// value, by bounding the Taylor tail and folding it into the rounded
// endpoint rather than trusting float semantics.
package kernel

import "github.com/wildfunctions/realexact/pkg/digit"

// guardDigits is the extra working precision carried during series
// summation and argument reduction so that truncation error at each step
// does not erode the p requested digits of the final result.
const guardDigits = 8

// workingPrecision returns p plus the guard band, with a floor so low
// requested precisions still get a usable number of series terms.
func workingPrecision(p uint) int {
	wp := int(p) + guardDigits
	if wp < guardDigits+2 {
		wp = guardDigits + 2
	}
	return wp
}

// tailUlp returns one unit in the last requested place, at Digit Number
// exponent e and precision p — the margin added to (or subtracted from) a
// truncated series sum so the result remains an outward bound despite the
// unevaluated tail.
func tailUlp(e int, p uint) digit.Number {
	return digit.Number{Sign: true, Digits: []uint32{1}, Exponent: e - int(p) + 1}
}

// outward truncates x to p digits in the requested direction and then
// nudges the result one further ulp outward to absorb the Taylor tail
// that was dropped during series summation (never relied on to be exactly
// zero, since the series was only summed to wp = p+guardDigits digits).
func outward(x digit.Number, p uint, roundUp bool) digit.Number {
	truncated := digit.TruncateTo(x, int(p), roundUp)
	margin := tailUlp(truncated.Exponent, p)
	if roundUp {
		return digit.TruncateTo(digit.Add(truncated, margin), int(p), true)
	}
	return digit.TruncateTo(digit.Sub(truncated, margin), int(p), false)
}

package digit

import "errors"

// ErrDivisorIsZero is returned by DivideWithRounding when the exact
// denominator is zero (spec.md §7 "divisor_is_zero").
var ErrDivisorIsZero = errors.New("digit: divisor is zero")

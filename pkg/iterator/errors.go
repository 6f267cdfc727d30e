package iterator

import "errors"

// Error kinds spec.md §7 names as terminal failures surfaced to the
// caller. ErrDivisorIsZero and ErrLogDomain are not redeclared here —
// callers see digit.ErrDivisorIsZero and kernel.ErrLogDomain directly,
// since those packages raise them first.
var (
	ErrDivergentDivisionResult            = errors.New("iterator: denominator interval still contains zero at max precision")
	ErrNonIntegralExponent                = errors.New("iterator: integer-power exponent is not an integer at max precision")
	ErrNegativeIntegerExponentUnsupported = errors.New("iterator: integer-power exponent must be non-negative")
	ErrMaxPrecisionTrig                   = errors.New("iterator: could not escape a derivative sign-change neighborhood within max precision")
	ErrNoOperation                        = errors.New("iterator: corrupted operator tag")
)

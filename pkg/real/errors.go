package real

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/iterator"
	"github.com/wildfunctions/realexact/pkg/kernel"
	"github.com/wildfunctions/realexact/pkg/parseliteral"
)

// Sentinel errors re-exported at the facade boundary so callers of
// pkg/real never need to import the internal packages directly to do an
// errors.Is/== check (spec.md §7's error kinds, plus the parser's).
var (
	ErrDivisorIsZero                      = digit.ErrDivisorIsZero
	ErrDivergentDivisionResult            = iterator.ErrDivergentDivisionResult
	ErrNonIntegralExponent                = iterator.ErrNonIntegralExponent
	ErrNegativeIntegerExponentUnsupported = iterator.ErrNegativeIntegerExponentUnsupported
	ErrLogDomain                          = kernel.ErrLogDomain
	ErrMaxPrecisionTrig                   = iterator.ErrMaxPrecisionTrig
	ErrNoOperation                        = iterator.ErrNoOperation
	ErrInvalidStringNumber                = parseliteral.ErrInvalidStringNumber
)

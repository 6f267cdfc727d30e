// Package parseliteral parses decimal numeric literals into leaf.Real
// values. It is spec.md §6's "external collaborator" — scoped out of the
// core but supplied here (per SPEC_FULL.md §11) because a usable
// end-to-end library and CLI need a way to turn "3.14" or "-2.5e-3" into
// a leaf.
//
// The grammar is ported from original_source/real_explicit.hpp's string
// constructor, `[+-]?D*(\.D*)?([eE][+-]?D+)?`, idiomatically via Go's
// regexp rather than a byte-for-byte translation of the C++ std::regex
// use.
package parseliteral

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/leaf"
)

// ErrInvalidStringNumber is returned when the input does not match the
// literal grammar, or matches but carries no digits at all.
var ErrInvalidStringNumber = errors.New("parseliteral: invalid numeric literal")

var literalRE = regexp.MustCompile(`^([+-]?)(\d*)(?:\.(\d*))?(?:[eE]([+-]?\d+))?$`)

// Parse converts a decimal literal into a leaf.Real. Integer literals
// (no fractional part, no negative effective exponent) become an
// Explicit leaf holding an exact Digit Number. Literals with a
// fractional part or a negative decimal exponent become a Rational leaf
// (numerator over a power of ten), since most decimal fractions have no
// finite expansion in base B and an Explicit leaf can only hold an
// exactly-known value.
func Parse(s string) (leaf.Real, error) {
	m := literalRE.FindStringSubmatch(s)
	if m == nil {
		return nil, ErrInvalidStringNumber
	}
	signStr, intPart, fracPart, expPart := m[1], m[2], m[3], m[4]
	if intPart == "" && fracPart == "" {
		return nil, ErrInvalidStringNumber
	}

	digits := stripLeadingZeros(intPart + fracPart)
	mantissa := digitsToNumber(digits)
	if signStr == "-" {
		mantissa = mantissa.Negate()
	}

	suffixExp := int64(0)
	if expPart != "" {
		v, err := strconv.ParseInt(expPart, 10, 32)
		if err != nil {
			return nil, ErrInvalidStringNumber
		}
		suffixExp = v
	}
	// value = mantissa * 10^(suffixExp - len(fracPart))
	scale := suffixExp - int64(len(fracPart))

	if scale >= 0 {
		num := mantissa
		for i := int64(0); i < scale; i++ {
			num = digit.Mul(num, digit.FromInt64(10))
		}
		return leaf.NewExplicit(num), nil
	}

	den := digit.FromInt64(1)
	for i := int64(0); i < -scale; i++ {
		den = digit.Mul(den, digit.FromInt64(10))
	}
	r, err := leaf.NewRational(mantissa, den)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func stripLeadingZeros(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	return digits[i:]
}

// digitsToNumber builds the exact integer value of a decimal digit
// string via repeated multiply-by-ten/add-digit, entirely in terms of
// digit.Mul/digit.Add so the result is exact regardless of how many
// decimal digits are supplied.
func digitsToNumber(digits string) digit.Number {
	acc := digit.Zero()
	if digits == "" {
		return acc
	}
	ten := digit.FromInt64(10)
	for _, c := range digits {
		acc = digit.Add(digit.Mul(acc, ten), digit.FromInt64(int64(c-'0')))
	}
	return acc
}

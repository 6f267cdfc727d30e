// Package digit implements arbitrary-precision signed-magnitude arithmetic
// on a base-B digit vector with an explicit exponent and directed rounding.
// It is the lowest layer of the exact real arithmetic stack: every interval
// bound in pkg/interval, pkg/leaf, pkg/kernel and pkg/iterator is ultimately
// a digit.Number.
package digit

import "fmt"

// B is the arithmetic base. It is a Mersenne prime (2^31 - 1) chosen so that
// B*B fits comfortably in a uint64 accumulator during schoolbook
// multiplication and long division.
const B uint64 = 1<<31 - 1

// Number is a signed-magnitude digit vector in base B.
//
// Value = Sign · (Σ Digits[i]·B^(Exponent-1-i)), i = 0..len(Digits)-1.
//
// Digits is most-significant-first. The canonical form has no leading zero
// digit unless the whole vector is {0} with Exponent 0, and Sign is true
// for the canonical zero.
type Number struct {
	Sign     bool
	Digits   []uint32
	Exponent int
}

// Zero returns the canonical zero value.
func Zero() Number {
	return Number{Sign: true, Digits: []uint32{0}, Exponent: 0}
}

// IsZero reports whether n's value is zero (every digit is 0, or there are
// no digits), whether or not n is in canonical form.
func (n Number) IsZero() bool {
	for _, d := range n.Digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// FromInt64 builds an integer Number from a machine int64.
func FromInt64(v int64) Number {
	sign := v >= 0
	u := uint64(v)
	if !sign {
		u = uint64(-v)
	}
	if u == 0 {
		return Zero()
	}
	var digits []uint32
	for u > 0 {
		digits = append([]uint32{uint32(u % B)}, digits...)
		u /= B
	}
	return Number{Sign: sign, Digits: digits, Exponent: len(digits)}.normalize()
}

// normalize strips significant leading zero digits and canonicalizes zero.
// It never mutates n.Digits in place.
func (n Number) normalize() Number {
	digits := n.Digits
	start := 0
	for start < len(digits)-1 && digits[start] == 0 {
		start++
	}
	trimmed := make([]uint32, len(digits)-start)
	copy(trimmed, digits[start:])
	exponent := n.Exponent - start

	allZero := true
	for _, d := range trimmed {
		if d != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return Zero()
	}
	return Number{Sign: n.Sign, Digits: trimmed, Exponent: exponent}
}

// Negate returns -n.
func (n Number) Negate() Number {
	if n.IsZero() {
		return n
	}
	return Number{Sign: !n.Sign, Digits: n.Digits, Exponent: n.Exponent}
}

// Abs returns |n|.
func (n Number) Abs() Number {
	return Number{Sign: true, Digits: n.Digits, Exponent: n.Exponent}
}

// digitAt returns the digit of n at absolute position p, where position p
// carries weight B^p. Positions with no backing digit are 0.
func (n Number) digitAt(p int) uint64 {
	// digits[i] has weight B^(Exponent-1-i)  =>  i = Exponent-1-p
	i := n.Exponent - 1 - p
	if i < 0 || i >= len(n.Digits) {
		return 0
	}
	return uint64(n.Digits[i])
}

// span returns the inclusive range of absolute digit positions [lo, hi]
// that n may have non-zero digits at.
func (n Number) span() (lo, hi int) {
	if len(n.Digits) == 0 {
		return 0, -1
	}
	hi = n.Exponent - 1
	lo = n.Exponent - len(n.Digits)
	return lo, hi
}

// String renders a debug-friendly "sign digits x B^exponent" form; it is not
// used for user-facing output (that lives in pkg/real's decimal formatter).
func (n Number) String() string {
	sign := "+"
	if !n.Sign {
		sign = "-"
	}
	return fmt.Sprintf("%s%v*B^%d", sign, n.Digits, n.Exponent)
}

// Cmp returns -1, 0, or 1 as n<m, n==m, or n>m.
func (n Number) Cmp(m Number) int {
	if n.IsZero() && m.IsZero() {
		return 0
	}
	if n.Sign != m.Sign {
		if n.Sign {
			return 1
		}
		return -1
	}
	c := cmpMagnitude(n, m)
	if !n.Sign {
		c = -c
	}
	return c
}

// cmpMagnitude compares |n| and |m|, ignoring sign.
func cmpMagnitude(n, m Number) int {
	nlo, nhi := n.span()
	mlo, mhi := m.span()
	if n.IsZero() {
		nhi, nlo = 0, 0
	}
	if m.IsZero() {
		mhi, mlo = 0, 0
	}
	hi := nhi
	if mhi > hi {
		hi = mhi
	}
	lo := nlo
	if mlo < lo {
		lo = mlo
	}
	for p := hi; p >= lo; p-- {
		a, b := n.digitAt(p), m.digitAt(p)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less, Equal, Greater are thin readability wrappers around Cmp, matching
// the comparison surface spec.md asks Digit Number to expose.
func (n Number) Less(m Number) bool    { return n.Cmp(m) < 0 }
func (n Number) Equal(m Number) bool   { return n.Cmp(m) == 0 }
func (n Number) Greater(m Number) bool { return n.Cmp(m) > 0 }

package leaf

import (
	"github.com/wildfunctions/realexact/pkg/digit"
	"github.com/wildfunctions/realexact/pkg/interval"
)

// DigitFunc yields the (1-indexed) i-th digit of a leaf's base-B expansion.
// It must be pure: repeated calls with the same index return the same
// digit (spec.md §6 "a pure function digit: ℕ → {0..B-1}").
type DigitFunc func(i uint64) (uint32, error)

// Algorithmic is a leaf backed by a possibly-infinite digit stream
// (spec.md §3/§6 — Algorithmic variant).
type Algorithmic struct {
	Digit        DigitFunc
	Exponent     int
	Sign         bool
	MaxPrecision uint
}

// NewAlgorithmic builds an Algorithmic leaf.
func NewAlgorithmic(digitFn DigitFunc, exponent int, sign bool, maxPrecision uint) Algorithmic {
	return Algorithmic{Digit: digitFn, Exponent: exponent, Sign: sign, MaxPrecision: maxPrecision}
}

// IntervalAt calls the digit function for indices 1..p and builds bounds
// identically to Explicit's rule (spec.md §4.3): the known digits form a
// magnitude lower bound, and adding one ulp accounts for every possible
// continuation of the stream.
func (a Algorithmic) IntervalAt(p uint) (interval.Interval, error) {
	if a.MaxPrecision > 0 && p > a.MaxPrecision {
		p = a.MaxPrecision
	}
	digits := make([]uint32, p)
	for i := uint64(1); i <= uint64(p); i++ {
		d, err := a.Digit(i)
		if err != nil {
			return interval.Interval{}, err
		}
		digits[i-1] = d
	}
	if len(digits) == 0 {
		digits = []uint32{0}
	}
	known := digit.Number{Sign: true, Digits: digits, Exponent: a.Exponent}
	ulp := digit.Number{Sign: true, Digits: []uint32{1}, Exponent: a.Exponent - int(p) + 1}
	withUlp := digit.Add(known, ulp)

	if a.Sign {
		return interval.New(known, withUlp), nil
	}
	return interval.New(withUlp.Negate(), known.Negate()), nil
}

package digit

// Float64 converts n to an approximate float64, for diagnostics and CLI
// display only — never for arithmetic, which must stay exact.
func (n Number) Float64() float64 {
	f := 0.0
	for _, d := range n.Digits {
		f = f*float64(B) + float64(d)
	}
	scale := n.Exponent - len(n.Digits)
	for i := 0; i < scale; i++ {
		f *= float64(B)
	}
	for i := 0; i > scale; i-- {
		f /= float64(B)
	}
	if !n.Sign {
		f = -f
	}
	return f
}

// ToUint64 converts a non-negative integer-valued Number to a uint64. It
// returns ok=false if n is negative or does not fit.
func (n Number) ToUint64() (uint64, bool) {
	if !n.Sign {
		return 0, false
	}
	var v uint64
	for p := n.Exponent - 1; p >= 0; p-- {
		if v > (^uint64(0))/B {
			return 0, false
		}
		v = v*B + n.digitAt(p)
	}
	// Any digits below position 0 (a fractional remainder) must be zero
	// for n to be a true integer.
	for p := n.Exponent - len(n.Digits); p < 0; p++ {
		if n.digitAt(p) != 0 {
			return 0, false
		}
	}
	return v, true
}

package digit

// Add returns a+b, exact (spec: "digit-parallel add with carry in base B").
func Add(a, b Number) Number {
	if a.Sign == b.Sign {
		digits, exponent := addMagnitude(a, b)
		return fromMagnitude(a.Sign, digits, exponent)
	}
	switch cmpMagnitude(a, b) {
	case 0:
		return Zero()
	case 1:
		digits, exponent := subMagnitude(a, b)
		return fromMagnitude(a.Sign, digits, exponent)
	default:
		digits, exponent := subMagnitude(b, a)
		return fromMagnitude(b.Sign, digits, exponent)
	}
}

// Sub returns a-b, exact.
func Sub(a, b Number) Number {
	return Add(a, b.Negate())
}

// positionRange returns the (inclusive) digit-position span covering both a
// and b, ignoring sign.
func positionRange(a, b Number) (lo, hi int) {
	alo, ahi := a.span()
	blo, bhi := b.span()
	if a.IsZero() {
		alo, ahi = 0, -1
	}
	if b.IsZero() {
		blo, bhi = 0, -1
	}
	lo, hi = alo, ahi
	if blo < lo {
		lo = blo
	}
	if bhi > hi {
		hi = bhi
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// addMagnitude adds |a| and |b| and returns an unsigned digit vector plus
// its exponent, without interpreting sign.
func addMagnitude(a, b Number) ([]uint32, int) {
	lo, hi := positionRange(a, b)
	n := hi - lo + 1
	out := make([]uint32, n)
	var carry uint64
	for p := lo; p <= hi; p++ {
		sum := a.digitAt(p) + b.digitAt(p) + carry
		out[hi-p] = uint32(sum % B)
		carry = sum / B
	}
	if carry > 0 {
		out = append([]uint32{uint32(carry)}, out...)
		hi++
	}
	return out, hi + 1
}

// subMagnitude computes |a|-|b| assuming |a|>=|b|.
func subMagnitude(a, b Number) ([]uint32, int) {
	lo, hi := positionRange(a, b)
	n := hi - lo + 1
	out := make([]uint32, n)
	var borrow int64
	for p := lo; p <= hi; p++ {
		diff := int64(a.digitAt(p)) - int64(b.digitAt(p)) - borrow
		if diff < 0 {
			diff += int64(B)
			borrow = 1
		} else {
			borrow = 0
		}
		out[hi-p] = uint32(diff)
	}
	return out, hi + 1
}

func fromMagnitude(sign bool, digits []uint32, exponent int) Number {
	return Number{Sign: sign, Digits: digits, Exponent: exponent}.normalize()
}

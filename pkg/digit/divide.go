package digit

// DivideWithRounding produces a p-digit quotient of num/den by long
// division in base B. When more digits are demanded than exactly
// recoverable, the final digit is rounded toward +infinity if roundUp,
// otherwise toward -infinity (spec.md §4.1). It fails with
// ErrDivisorIsZero if den is exact zero.
func DivideWithRounding(num, den Number, p int, roundUp bool) (Number, error) {
	if den.IsZero() {
		return Zero(), ErrDivisorIsZero
	}
	if num.IsZero() {
		return Zero(), nil
	}
	if p <= 0 {
		sign := num.Sign == den.Sign
		roundAway := (sign && roundUp) || (!sign && !roundUp)
		if !roundAway {
			return Zero(), nil
		}
		return TruncateTo(Number{Sign: sign, Digits: []uint32{1}, Exponent: 1}, p, roundUp), nil
	}

	sign := num.Sign == den.Sign
	a := num.Abs()
	d := den.Abs()

	top := topQuotientPosition(a, d)

	remainder := a
	digits := make([]uint32, p)
	exact := false
	for i := 0; i < p; i++ {
		position := top - i
		scaledDen := shiftExp(d, position)
		dgt := searchDigit(remainder, scaledDen)
		digits[i] = dgt
		if dgt != 0 {
			remainder = Sub(remainder, Mul(FromInt64(int64(dgt)), scaledDen))
		}
		if remainder.IsZero() {
			exact = true
			// Zero-fill the remaining digits and stop dividing.
			for j := i + 1; j < p; j++ {
				digits[j] = 0
			}
			break
		}
	}

	q := Number{Sign: sign, Digits: digits, Exponent: top + 1}.normalize()
	if exact {
		return q, nil
	}

	roundAway := (sign && roundUp) || (!sign && !roundUp)
	if !roundAway {
		return q, nil
	}
	newDigits, newHi := addUlpMagnitude(q.Digits, top)
	return Number{Sign: sign, Digits: newDigits, Exponent: newHi + 1}.normalize(), nil
}

// topQuotientPosition returns the digit position TP such that
// d·B^TP ≤ a < d·B^(TP+1), i.e. the position of the most significant
// quotient digit of a/d.
func topQuotientPosition(a, d Number) int {
	tp := a.Exponent - d.Exponent - 1
	for shiftExp(d, tp).Abs().Cmp(a) > 0 {
		tp--
	}
	for shiftExp(d, tp+1).Abs().Cmp(a) <= 0 {
		tp++
	}
	return tp
}

// searchDigit finds the largest k in [0, B-1] with k·scaledDen ≤ remainder.
func searchDigit(remainder, scaledDen Number) uint32 {
	lo, hi := uint64(0), B-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		candidate := Mul(FromInt64(int64(mid)), scaledDen)
		if candidate.Cmp(remainder) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return uint32(lo)
}

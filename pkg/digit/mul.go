package digit

// Mul returns a*b, exact (schoolbook cross-product; spec: "length =
// |a.digits|+|b.digits|; exponent = a.exponent+b.exponent; sign = XNOR of
// signs").
func Mul(a, b Number) Number {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	la, lb := len(a.Digits), len(b.Digits)
	acc := make([]uint64, la+lb)
	for i := la - 1; i >= 0; i-- {
		ai := uint64(a.Digits[i])
		if ai == 0 {
			continue
		}
		var carry uint64
		for j := lb - 1; j >= 0; j-- {
			pos := i + j + 1
			prod := ai*uint64(b.Digits[j]) + acc[pos] + carry
			acc[pos] = prod % B
			carry = prod / B
		}
		k := i
		for carry > 0 {
			prod := acc[k] + carry
			acc[k] = prod % B
			carry = prod / B
			k--
		}
	}
	digits := make([]uint32, len(acc))
	for i, v := range acc {
		digits[i] = uint32(v)
	}
	sign := a.Sign == b.Sign
	return Number{Sign: sign, Digits: digits, Exponent: a.Exponent + b.Exponent}.normalize()
}

// BinaryExponentiation computes base^exp exactly via repeated squaring,
// where exp is a non-negative machine integer (a Digit Number exponent is
// converted with ToUint64 first, as pkg/iterator's IPOW does).
func BinaryExponentiation(base Number, exp uint64) Number {
	result := FromInt64(1)
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = Mul(result, b)
		}
		b = Mul(b, b)
		exp >>= 1
	}
	return result
}

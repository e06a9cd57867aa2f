package bignum

// IntPow raises a to the non-negative integer power exp using binary
// exponentiation. Python's int.__pow__ supports arbitrarily large exponents
// for non-negative exp; negative exponents are handled by the caller (they
// produce a float result in CPython, not a BigInt).
func IntPow(a BigInt, exp uint64) (BigInt, error) {
	result := IntFromInt64(1)
	base := a
	for exp > 0 {
		if exp&1 == 1 {
			var err error
			result, err = IntMul(result, base)
			if err != nil {
				return BigInt{}, err
			}
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		var err error
		base, err = IntMul(base, base)
		if err != nil {
			return BigInt{}, err
		}
	}
	return result, nil
}

// IntPowMod raises a to the non-negative integer power exp modulo m, as used
// by Python's three-argument pow(). m must be non-zero.
func IntPowMod(a BigInt, exp uint64, m BigInt) (BigInt, error) {
	if m.IsZero() {
		return BigInt{}, ErrDivByZero
	}
	result := IntFromInt64(1)
	base := a
	_, base, err := IntDivMod(base, m)
	if err != nil {
		return BigInt{}, err
	}
	for exp > 0 {
		if exp&1 == 1 {
			prod, err := IntMul(result, base)
			if err != nil {
				return BigInt{}, err
			}
			_, result, err = IntDivMod(prod, m)
			if err != nil {
				return BigInt{}, err
			}
		}
		exp >>= 1
		if exp == 0 {
			break
		}
		sq, err := IntMul(base, base)
		if err != nil {
			return BigInt{}, err
		}
		_, base, err = IntDivMod(sq, m)
		if err != nil {
			return BigInt{}, err
		}
	}
	// IntDivMod's remainder takes the dividend's sign; Python's takes m's.
	_, result, err = IntDivMod(result, m)
	if err != nil {
		return BigInt{}, err
	}
	if !result.IsZero() && result.Neg != m.Neg {
		return IntAdd(result, m)
	}
	return result, nil
}

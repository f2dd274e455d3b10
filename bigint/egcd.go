package bigint

import "errors"

// ErrNotInvertible is returned by Inv when gcd(k, m) != 1.
var ErrNotInvertible = errors.New("bigint: not invertible")

// ErrNegativeExponent is returned by PowMod when the exponent is negative.
var ErrNegativeExponent = errors.New("bigint: negative exponent")

// EGCD returns (x, y, g) such that x*a + y*b == g == gcd(a, b), using the
// iterative extended-Euclidean recurrence: starting from
// (u0,u1,u2) = (1,0,a) and (v0,v1,v2) = (0,1,b), repeatedly replace
// (u,v) <- (v, u - q*v) with q = u2 div v2, until v2 == 0.
func EGCD(a, b UInt) (x, y Int, g UInt) {
	u0, u1, u2 := IntFromUInt(One()), Int{}, a
	v0, v1, v2 := Int{}, IntFromUInt(One()), b

	for !v2.IsZero() {
		q, r, _ := DivMod(u2, v2) // v2 != 0 in this branch

		t0 := subInt(u0, mulUIntSigned(v0, q))
		t1 := subInt(u1, mulUIntSigned(v1, q))
		t2 := r

		u0, u1, u2 = v0, v1, v2
		v0, v1, v2 = t0, t1, t2
	}

	return u0, u1, u2
}

// Inv returns the unique r in [0, m) such that k*r ≡ 1 (mod m). It fails
// with ErrNotInvertible when gcd(k, m) != 1.
func Inv(k, m UInt) (UInt, error) {
	x, _, g := EGCD(k, m)
	if !Equal(g, One()) {
		return Zero(), ErrNotInvertible
	}

	return ModInt(x, m)
}

// PowMod computes a^k mod m using square-and-multiply over the bits of k
// from LSB to MSB. It fails with ErrNegativeExponent if k is negative.
func PowMod(a UInt, k Int, m UInt) (UInt, error) {
	if k.Sign() < 0 {
		return Zero(), ErrNegativeExponent
	}

	result := One()
	base := a
	exp := k.Mag

	for !exp.IsZero() {
		if exp.Bit(0) == 1 {
			r, err := Mod(Mul(result, base), m)
			if err != nil {
				return Zero(), err
			}

			result = r
		}

		exp = Shr(exp, 1)

		b, err := Mod(Mul(base, base), m)
		if err != nil {
			return Zero(), err
		}

		base = b
	}

	return result, nil
}

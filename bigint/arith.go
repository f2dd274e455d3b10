package bigint

import "errors"

// ErrDivideByZero is returned by DivMod when the divisor is zero.
var ErrDivideByZero = errors.New("bigint: division by zero")

// Add returns a + b.
func Add(a, b UInt) UInt {
	n := len(a.limbs)
	if len(b.limbs) > n {
		n = len(b.limbs)
	}

	out := make([]uint32, n+1)

	var carry uint64

	for i := 0; i < n; i++ {
		var av, bv uint32
		if i < len(a.limbs) {
			av = a.limbs[i]
		}

		if i < len(b.limbs) {
			bv = b.limbs[i]
		}

		sum := uint64(av) + uint64(bv) + carry
		out[i] = uint32(sum)
		carry = sum >> 32
	}

	out[n] = uint32(carry)

	return UInt{limbs: normalize(out)}
}

// Sub returns a - b. The caller must ensure a >= b; violating the
// precondition yields an undefined (wrapped) result rather than an error,
// matching the non-negative-result contract described for this operation.
func Sub(a, b UInt) UInt {
	n := len(a.limbs)
	out := make([]uint32, n)

	var borrow uint64

	for i := 0; i < n; i++ {
		var bv uint32
		if i < len(b.limbs) {
			bv = b.limbs[i]
		}

		diff := uint64(a.limbs[i]) - uint64(bv) - borrow
		out[i] = uint32(diff)

		if diff>>32 != 0 {
			borrow = 1
		} else {
			borrow = 0
		}
	}

	return UInt{limbs: normalize(out)}
}

// Mul returns a * b using schoolbook long multiplication.
func Mul(a, b UInt) UInt {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}

	out := make([]uint32, len(a.limbs)+len(b.limbs))

	for i, av := range a.limbs {
		var carry uint64

		for j, bv := range b.limbs {
			prod := uint64(av)*uint64(bv) + uint64(out[i+j]) + carry
			out[i+j] = uint32(prod)
			carry = prod >> 32
		}

		out[i+len(b.limbs)] += uint32(carry)
	}

	return UInt{limbs: normalize(out)}
}

// Shl returns a << n.
func Shl(a UInt, n uint) UInt {
	if a.IsZero() || n == 0 {
		return a.Clone()
	}

	limbShift := int(n / 32)
	bitShift := n % 32

	out := make([]uint32, len(a.limbs)+limbShift+1)

	for i, v := range a.limbs {
		out[i+limbShift] |= v << bitShift
		if bitShift > 0 {
			out[i+limbShift+1] |= v >> (32 - bitShift)
		}
	}

	return UInt{limbs: normalize(out)}
}

// Shr returns a >> n.
func Shr(a UInt, n uint) UInt {
	limbShift := int(n / 32)
	if limbShift >= len(a.limbs) {
		return Zero()
	}

	bitShift := n % 32
	src := a.limbs[limbShift:]
	out := make([]uint32, len(src))

	for i := range src {
		out[i] = src[i] >> bitShift
		if bitShift > 0 && i+1 < len(src) {
			out[i] |= src[i+1] << (32 - bitShift)
		}
	}

	return UInt{limbs: normalize(out)}
}

// And returns the bitwise AND of a and b.
func And(a, b UInt) UInt {
	n := len(a.limbs)
	if len(b.limbs) < n {
		n = len(b.limbs)
	}

	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = a.limbs[i] & b.limbs[i]
	}

	return UInt{limbs: normalize(out)}
}

// Or returns the bitwise OR of a and b.
func Or(a, b UInt) UInt {
	n := len(a.limbs)
	if len(b.limbs) > n {
		n = len(b.limbs)
	}

	out := make([]uint32, n)

	for i := 0; i < n; i++ {
		var av, bv uint32
		if i < len(a.limbs) {
			av = a.limbs[i]
		}

		if i < len(b.limbs) {
			bv = b.limbs[i]
		}

		out[i] = av | bv
	}

	return UInt{limbs: normalize(out)}
}

// DivMod returns the quotient and remainder of a / b using bit-at-a-time
// restoring division. This is not the fastest algorithm available, but it
// is straightforward to get right without a toolchain to verify it against,
// which matters more here than raw throughput at RSA key sizes.
func DivMod(a, b UInt) (q, r UInt, err error) {
	if b.IsZero() {
		return Zero(), Zero(), ErrDivideByZero
	}

	if Cmp(a, b) < 0 {
		return Zero(), a.Clone(), nil
	}

	bits := a.BitLen()
	quotient := make([]uint32, (bits+31)/32)
	remainder := Zero()

	for i := bits - 1; i >= 0; i-- {
		remainder = Shl(remainder, 1)
		if a.Bit(i) == 1 {
			remainder = Or(remainder, One())
		}

		if Cmp(remainder, b) >= 0 {
			remainder = Sub(remainder, b)
			quotient[i/32] |= 1 << uint(i%32)
		}
	}

	return UInt{limbs: normalize(quotient)}, remainder, nil
}

// Mod returns a mod m (the remainder of DivMod).
func Mod(a, m UInt) (UInt, error) {
	_, r, err := DivMod(a, m)

	return r, err
}

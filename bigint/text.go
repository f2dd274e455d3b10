package bigint

import (
	"encoding/hex"
	"errors"
	"strings"
)

// ErrBadHex is returned when a string passed to FromHex is not valid
// hexadecimal (after prepending a single zero nibble when needed to make
// the digit count even).
var ErrBadHex = errors.New("bigint: invalid hex digits")

// Hex returns u's value as lowercase hex digits, with no leading zeros and
// no "0x" prefix. Zero renders as "0".
func (u UInt) Hex() string {
	h := hex.EncodeToString(u.ToBytesBE())
	h = strings.TrimLeft(h, "0")

	if h == "" {
		return "0"
	}

	return h
}

// FromHex parses a (possibly odd-length) hex string into a UInt.
func FromHex(s string) (UInt, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return Zero(), ErrBadHex
	}

	return FromBytesBE(b), nil
}

// Decimal returns u's value rendered in base 10.
func (u UInt) Decimal() string {
	if u.IsZero() {
		return "0"
	}

	digits := make([]byte, 0, len(u.limbs)*10)

	cur := u.Clone()
	ten := FromUint64(10)

	for !cur.IsZero() {
		q, r, _ := DivMod(cur, ten)
		digits = append(digits, byte('0')+byte(r.limbs0()))
		cur = q
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}

// limbs0 returns the low limb value, used internally by Decimal to pull a
// single base-10 digit (always < 10, so it fits in the low limb).
func (u UInt) limbs0() uint32 {
	if len(u.limbs) == 0 {
		return 0
	}

	return u.limbs[0]
}

// FromDecimal parses a base-10 string into a UInt.
func FromDecimal(s string) (UInt, error) {
	if s == "" {
		return Zero(), ErrBadHex
	}

	result := Zero()
	ten := FromUint64(10)

	for _, c := range s {
		if c < '0' || c > '9' {
			return Zero(), ErrBadHex
		}

		result = Add(Mul(result, ten), FromUint64(uint64(c-'0')))
	}

	return result, nil
}

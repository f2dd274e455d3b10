package splitxor

import "errors"

var (
	// ErrSamePad is returned when the two pads compare byte-equal after
	// content detection, before any XOR work begins.
	ErrSamePad = errors.New("splitxor: both pads are identical")

	// ErrPadTooShort is returned when a pad does not have enough bytes
	// remaining past its offset to cover the XOR span.
	ErrPadTooShort = errors.New("splitxor: pad too short for offset and span")

	// ErrOddHexLength is returned when a hex string to unhexlify has an
	// odd number of digits.
	ErrOddHexLength = errors.New("splitxor: odd-length hex string")

	// ErrBadHex is returned when a string is not valid hexadecimal.
	ErrBadHex = errors.New("splitxor: invalid hex digits")
)

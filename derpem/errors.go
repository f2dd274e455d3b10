package derpem

import "errors"

var (
	// ErrTruncatedInput is returned when the cursor walks past the declared
	// container end while reading a TLV.
	ErrTruncatedInput = errors.New("derpem: truncated input")

	// ErrBadPadding is returned when a BITSTRING's pad count exceeds 7 or its
	// low-order padding bits are nonzero.
	ErrBadPadding = errors.New("derpem: bad bit-string padding")

	// ErrOverLongLength is returned when a declared child length overruns
	// its parent container.
	ErrOverLongLength = errors.New("derpem: declared length overruns container")

	// ErrBadPem is returned when PEM framing is malformed or the begin/end
	// labels do not match.
	ErrBadPem = errors.New("derpem: malformed PEM framing")

	// ErrBase64 is returned when a PEM body fails to base64-decode.
	ErrBase64 = errors.New("derpem: bad base64 body")

	// ErrUnsupportedWrite is returned by Encode for a Node.Kind the
	// writer does not know how to serialize (Unknown).
	ErrUnsupportedWrite = errors.New("derpem: cannot serialize this node kind")
)

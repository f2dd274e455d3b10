package pipeline

import "errors"

var (
	// ErrNotPrivateKeySequence is returned when the top-level DER node parsed
	// from a key file is not a SEQUENCE, or has fewer than the five elements
	// (version, n, e, d, p) a PKCS#1 RSAPrivateKey needs to recover n/e/p.
	ErrNotPrivateKeySequence = errors.New("pipeline: not an RSAPrivateKey sequence")

	// ErrIntermediateFormat is returned when the three-line mod/exp/XOR (or
	// mod/exp/p1) intermediate text is missing a required line.
	ErrIntermediateFormat = errors.New("pipeline: malformed intermediate key text")
)

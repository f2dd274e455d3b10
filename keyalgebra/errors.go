package keyalgebra

import "errors"

// ErrPrimeMismatch is returned by MkPrivKey when p does not divide n.
var ErrPrimeMismatch = errors.New("keyalgebra: prime does not divide modulus")

// ErrOutOfRange is returned by TestPrivKey when x is not in [0, n).
var ErrOutOfRange = errors.New("keyalgebra: x out of range")

// Package keyalgebra reconstructs a full PKCS#1 RSA private key from its
// public modulus, public exponent, and one secret prime factor.
package keyalgebra

import (
	"net/http"

	"github.com/rcauth-eu/privkeysplit/bigint"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
)

// PrivateKey is the PKCS#1 RSAPrivateKey 9-tuple
// [version, n, e, d, p, q, dp, dq, qinv].
type PrivateKey struct {
	Version bigint.UInt
	N       bigint.UInt
	E       bigint.UInt
	D       bigint.UInt
	P       bigint.UInt
	Q       bigint.UInt
	Dp      bigint.UInt
	Dq      bigint.UInt
	Qinv    bigint.UInt
}

// MkPrivKey computes q = n/p, then the CRT parameters, using Euler's
// totient (p-1)(q-1) rather than the Carmichael lcm(p-1, q-1) — the source
// this scheme is derived from uses the weaker-but-valid totient, and this
// package preserves that choice bit-for-bit rather than modernizing it.
func MkPrivKey(n, e, p bigint.UInt) (PrivateKey, yaerrors.Error) {
	q, r, err := bigint.DivMod(n, p)
	if err != nil {
		return PrivateKey{}, yaerrors.FromError(http.StatusUnprocessableEntity, err, "mkprivkey: divide modulus by prime")
	}

	if !r.IsZero() {
		return PrivateKey{}, yaerrors.FromError(
			http.StatusUnprocessableEntity,
			ErrPrimeMismatch,
			"mkprivkey: prime does not divide modulus",
		)
	}

	pMinus1 := bigint.Sub(p, bigint.One())
	qMinus1 := bigint.Sub(q, bigint.One())
	totient := bigint.Mul(pMinus1, qMinus1)

	d, err := bigint.Inv(e, totient)
	if err != nil {
		return PrivateKey{}, yaerrors.FromError(http.StatusUnprocessableEntity, err, "mkprivkey: invert e mod (p-1)(q-1)")
	}

	dp, err := bigint.Inv(e, pMinus1)
	if err != nil {
		return PrivateKey{}, yaerrors.FromError(http.StatusUnprocessableEntity, err, "mkprivkey: invert e mod p-1")
	}

	dq, err := bigint.Inv(e, qMinus1)
	if err != nil {
		return PrivateKey{}, yaerrors.FromError(http.StatusUnprocessableEntity, err, "mkprivkey: invert e mod q-1")
	}

	qinv, err := bigint.Inv(q, p)
	if err != nil {
		return PrivateKey{}, yaerrors.FromError(http.StatusUnprocessableEntity, err, "mkprivkey: invert q mod p")
	}

	return PrivateKey{
		Version: bigint.Zero(),
		N:       n,
		E:       e,
		D:       d,
		P:       p,
		Q:       q,
		Dp:      dp,
		Dq:      dq,
		Qinv:    qinv,
	}, nil
}

// TestPrivKey returns whether (x^e mod n)^d mod n == x, verifying that e
// and d are genuinely inverse RSA operations for this modulus.
func TestPrivKey(x, n, e, d bigint.UInt) (bool, yaerrors.Error) {
	if bigint.Cmp(x, n) >= 0 {
		return false, yaerrors.FromError(http.StatusBadRequest, ErrOutOfRange, "testprivkey: x out of range")
	}

	enc, err := bigint.PowMod(x, bigint.IntFromUInt(e), n)
	if err != nil {
		return false, yaerrors.FromError(http.StatusUnprocessableEntity, err, "testprivkey: encrypt")
	}

	dec, err := bigint.PowMod(enc, bigint.IntFromUInt(d), n)
	if err != nil {
		return false, yaerrors.FromError(http.StatusUnprocessableEntity, err, "testprivkey: decrypt")
	}

	return bigint.Equal(dec, x), nil
}

// Zeroize overwrites every secret field of the key (all but Version, N and
// E, which are public) with zero bytes. Call this once a reconstructed key has been
// encoded and is no longer needed in memory.
func (pk *PrivateKey) Zeroize() {
	pk.D.Zeroize()
	pk.P.Zeroize()
	pk.Q.Zeroize()
	pk.Dp.Zeroize()
	pk.Dq.Zeroize()
	pk.Qinv.Zeroize()
}

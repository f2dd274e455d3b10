package pipeline

import (
	"github.com/rcauth-eu/privkeysplit/derpem"
	"github.com/rcauth-eu/privkeysplit/keyalgebra"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
	"github.com/rcauth-eu/privkeysplit/yalogger"
)

// RegenerateFromPrime reads an unencrypted RSA private key in PEM or DER
// form, discards every field but its modulus, public exponent, and first
// prime, and recomputes the rest of the PKCS#1 9-tuple from scratch. It is
// used to verify that a (mod, exp, prime) triple alone is sufficient to
// regenerate a key bit-for-bit equivalent to the original.
func RegenerateFromPrime(keyBytes []byte, log yalogger.Logger) ([]byte, yaerrors.Error) {
	node, err := parseKeyBytes(keyBytes, log)
	if err != nil {
		return nil, err.Wrap("regenerate: parse key")
	}

	n, e, p, err := extractModExpPrime(node)
	if err != nil {
		return nil, err.Wrap("regenerate: extract mod/exp/prime")
	}

	pk, kerr := keyalgebra.MkPrivKey(n, e, p)
	if kerr != nil {
		return nil, kerr.Wrap("regenerate: rebuild private key")
	}
	defer pk.Zeroize()

	out := privateKeySequence(pk)

	der, werr := derpem.Encode(out)
	if werr != nil {
		return nil, werr.Wrap("regenerate: encode DER")
	}

	return derpem.EncodePEM(derpem.RsaPrivateKeyLabel, der), nil
}

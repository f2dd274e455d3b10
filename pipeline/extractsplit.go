package pipeline

import (
	"github.com/rcauth-eu/privkeysplit/splitxor"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
	"github.com/rcauth-eu/privkeysplit/yalogger"
)

// ExtractSplit reads a PEM or DER unencrypted RSA private key, extracts its
// modulus, public exponent, and first prime, and XOR-splits the prime
// against two pads. It returns the three-line mod/exp/p1 intermediate text
// that the split CLI prints to stdout.
func ExtractSplit(
	keyBytes []byte,
	pad1 splitxor.Pad,
	offset1 int,
	pad2 splitxor.Pad,
	offset2 int,
	log yalogger.Logger,
) (string, yaerrors.Error) {
	node, err := parseKeyBytes(keyBytes, log)
	if err != nil {
		return "", err.Wrap("extract-split: parse key")
	}

	n, e, p, err := extractModExpPrime(node)
	if err != nil {
		return "", err.Wrap("extract-split: extract mod/exp/prime")
	}
	defer p.Zeroize()

	hexP := p.Hex()
	if len(hexP)%2 != 0 {
		hexP = "0" + hexP
	}

	y, serr := splitxor.Split(hexP, pad1, offset1, pad2, offset2)
	if serr != nil {
		return "", serr.Wrap("extract-split: xor-split prime")
	}

	return FormatIntermediate(n, e, y), nil
}

package pipeline

import (
	"net/http"

	"github.com/rcauth-eu/privkeysplit/bigint"
	"github.com/rcauth-eu/privkeysplit/derpem"
	"github.com/rcauth-eu/privkeysplit/keyalgebra"
	"github.com/rcauth-eu/privkeysplit/splitxor"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
)

// Reassemble reverses ExtractSplit: it parses the mod/exp/p1 intermediate
// text, XOR-reassembles the prime from the two pads, rebuilds the full
// RSAPrivateKey 9-tuple, and re-encodes it as PEM.
func Reassemble(
	intermediateText string,
	pad1 splitxor.Pad,
	offset1 int,
	pad2 splitxor.Pad,
	offset2 int,
) ([]byte, yaerrors.Error) {
	n, e, p1Hex, err := ParseIntermediate(intermediateText)
	if err != nil {
		return nil, err.Wrap("reassemble: parse intermediate text")
	}

	pHex, serr := splitxor.Reassemble(p1Hex, pad1, offset1, pad2, offset2)
	if serr != nil {
		return nil, serr.Wrap("reassemble: xor-reassemble prime")
	}

	p, convErr := bigint.FromHex(pHex)
	if convErr != nil {
		return nil, yaerrors.FromError(http.StatusBadRequest, convErr, "reassemble: decode recovered prime")
	}
	defer p.Zeroize()

	pk, kerr := keyalgebra.MkPrivKey(n, e, p)
	if kerr != nil {
		return nil, kerr.Wrap("reassemble: rebuild private key")
	}
	defer pk.Zeroize()

	node := privateKeySequence(pk)

	der, werr := derpem.Encode(node)
	if werr != nil {
		return nil, werr.Wrap("reassemble: encode DER")
	}

	return derpem.EncodePEM(derpem.RsaPrivateKeyLabel, der), nil
}

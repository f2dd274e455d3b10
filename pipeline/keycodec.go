package pipeline

import (
	"net/http"

	"github.com/rcauth-eu/privkeysplit/bigint"
	"github.com/rcauth-eu/privkeysplit/derpem"
	"github.com/rcauth-eu/privkeysplit/keyalgebra"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
	"github.com/rcauth-eu/privkeysplit/yaflags"
	"github.com/rcauth-eu/privkeysplit/yalogger"
)

// privateKeySequence builds the DER SEQUENCE node for a PKCS#1 RSAPrivateKey:
// [version, n, e, d, p, q, dp, dq, qinv].
func privateKeySequence(pk keyalgebra.PrivateKey) derpem.Node {
	ints := []bigint.UInt{pk.Version, pk.N, pk.E, pk.D, pk.P, pk.Q, pk.Dp, pk.Dq, pk.Qinv}

	children := make([]derpem.Node, 0, len(ints))
	for _, v := range ints {
		children = append(children, derpem.Node{Kind: derpem.KindInteger, Int: v})
	}

	return derpem.Node{Kind: derpem.KindSequence, Seq: children}
}

// minPrivateKeyFields is the minimum SEQUENCE length to recover n, e, and p
// (elements [1], [2], [4]), matching the elements an unencrypted RSA
// RSAPrivateKey DER sequence carries even when truncated to those three.
const minPrivateKeyFields = 5

// extractModExpPrime pulls n, e, and p (elements [1], [2], [4]) out of a
// parsed RSAPrivateKey DER sequence.
func extractModExpPrime(node derpem.Node) (n, e, p bigint.UInt, err yaerrors.Error) {
	if node.Kind != derpem.KindSequence || len(node.Seq) < minPrivateKeyFields {
		return bigint.Zero(), bigint.Zero(), bigint.Zero(),
			yaerrors.FromError(http.StatusUnprocessableEntity, ErrNotPrivateKeySequence, "pipeline: extract mod/exp/prime")
	}

	nv, ok := node.Seq[1].AsInteger()
	if !ok {
		return bigint.Zero(), bigint.Zero(), bigint.Zero(),
			yaerrors.FromError(http.StatusUnprocessableEntity, ErrNotPrivateKeySequence, "pipeline: modulus element is not an INTEGER")
	}

	ev, ok := node.Seq[2].AsInteger()
	if !ok {
		return bigint.Zero(), bigint.Zero(), bigint.Zero(),
			yaerrors.FromError(http.StatusUnprocessableEntity, ErrNotPrivateKeySequence, "pipeline: exponent element is not an INTEGER")
	}

	pv, ok := node.Seq[4].AsInteger()
	if !ok {
		return bigint.Zero(), bigint.Zero(), bigint.Zero(),
			yaerrors.FromError(http.StatusUnprocessableEntity, ErrNotPrivateKeySequence, "pipeline: prime element is not an INTEGER")
	}

	return nv, ev, pv, nil
}

// parseKeyBytes accepts either PEM or raw DER input (mirroring the source's
// own tryifpem() sniff) and returns the parsed top-level node plus any
// recoverable ASN.1 warnings, packed into a bitmask and attached to log.
func parseKeyBytes(raw []byte, log yalogger.Logger) (derpem.Node, yaerrors.Error) {
	der := raw

	if derpem.LooksLikePem(raw) {
		frame, err := derpem.DecodePEM(raw)
		if err != nil {
			return derpem.Node{}, err.Wrap("pipeline: decode PEM framing")
		}

		der = frame.Body
	}

	node, warnings, err := derpem.Decode(der)
	if err != nil {
		return derpem.Node{}, err.Wrap("pipeline: decode DER body")
	}

	if len(warnings) > 0 {
		indexes := make([]uint8, 0, len(warnings))
		for _, w := range warnings {
			indexes = append(indexes, uint8(w))
		}

		mask, packErr := yaflags.PackBitIndexes[uint8](indexes)
		if packErr == nil {
			log.WithField("asn1_warnings", mask).Warn("pipeline: recoverable ASN.1 anomalies while parsing key")
		}
	}

	return node, nil
}

package splitxor

import (
	"bytes"
	"encoding/hex"
	"net/http"

	"github.com/rcauth-eu/privkeysplit/yaerrors"
)

// Split performs the forward half of the protocol: given H = hex(p), it
// returns hex(Y) where Y[i] = H_bin[i] XOR pad1[offset1+i] XOR
// pad2[offset2+i].
func Split(hexH string, pad1 Pad, offset1 int, pad2 Pad, offset2 int) (string, yaerrors.Error) {
	bin, err := hex.DecodeString(hexH)
	if err != nil {
		return "", yaerrors.FromError(http.StatusBadRequest, err, "splitxor: bad hex prime")
	}

	out, yerr := xorCore(bin, pad1, offset1, pad2, offset2)
	if yerr != nil {
		return "", yerr.Wrap("splitxor: forward split failed")
	}
	defer zeroizeBytes(out)

	return hex.EncodeToString(out), nil
}

// Reassemble performs the reverse half: given hex(Y), it recovers hex(H) by
// XORing the same two pads back in at the same offsets. XOR is its own
// inverse, so this is the identical core operation as Split.
func Reassemble(hexY string, pad1 Pad, offset1 int, pad2 Pad, offset2 int) (string, yaerrors.Error) {
	bin, err := hex.DecodeString(hexY)
	if err != nil {
		return "", yaerrors.FromError(http.StatusBadRequest, err, "splitxor: bad hex XOR payload")
	}

	out, yerr := xorCore(bin, pad1, offset1, pad2, offset2)
	if yerr != nil {
		return "", yerr.Wrap("splitxor: reassemble failed")
	}
	defer zeroizeBytes(out)

	return hex.EncodeToString(out), nil
}

// xorCore runs the shared disjointness check, bounds check, and byte-wise
// XOR. It zeroizes bin and both pads' backing bytes before returning on
// every path, success or failure.
func xorCore(bin []byte, pad1 Pad, offset1 int, pad2 Pad, offset2 int) ([]byte, yaerrors.Error) {
	defer zeroizeBytes(bin)
	defer zeroizeBytes(pad1.Bytes)
	defer zeroizeBytes(pad2.Bytes)

	if bytes.Equal(pad1.Bytes, pad2.Bytes) {
		return nil, yaerrors.FromError(http.StatusUnprocessableEntity, ErrSamePad, "splitxor: pads must differ")
	}

	n := len(bin)

	if offset1 < 0 || offset2 < 0 || offset1+n > len(pad1.Bytes) || offset2+n > len(pad2.Bytes) {
		return nil, yaerrors.FromError(http.StatusBadRequest, ErrPadTooShort, "splitxor: pad shorter than offset plus span")
	}

	out := make([]byte, n)

	for i := 0; i < n; i++ {
		out[i] = bin[i] ^ pad1.Bytes[offset1+i] ^ pad2.Bytes[offset2+i]
	}

	return out, nil
}

func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

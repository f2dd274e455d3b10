package splitxor

import (
	"bytes"
	"encoding/hex"
)

// Pad wraps a random-data buffer used as one leg of the XOR protocol. It
// owns its backing bytes exclusively and must be zeroized by its holder on
// every exit path, mirroring the zeroize-on-release pattern used for secret
// buffers elsewhere in this module (bigint.UInt.Zeroize,
// keyalgebra.PrivateKey.Zeroize).
type Pad struct {
	Bytes []byte
}

// Zeroize overwrites the pad's backing bytes with zero, then releases the
// reference. Safe to call more than once.
func (p *Pad) Zeroize() {
	if p == nil {
		return
	}

	for i := range p.Bytes {
		p.Bytes[i] = 0
	}

	p.Bytes = nil
}

// LoadPad applies this protocol's pad content detection to a file's raw
// bytes: if the bytes are all ASCII and form an even-length hex string, the
// pad's effective content is the unhexlified bytes; otherwise the raw bytes
// are used verbatim as binary.
//
// This detection is applied identically on both the forward (split) and
// reverse (reassemble) paths. The two original tools disagreed here -- the
// reverse tool never hex-decoded an ASCII pad, so a pad saved to a text file
// during split would XOR against the wrong bytes during reassemble. There is
// exactly one detection rule here.
func LoadPad(raw []byte) Pad {
	trimmed := bytes.TrimSpace(raw)

	if isASCII(trimmed) && isEvenHex(trimmed) {
		decoded, err := hex.DecodeString(string(trimmed))
		if err == nil {
			return Pad{Bytes: decoded}
		}
	}

	out := make([]byte, len(raw))
	copy(out, raw)

	return Pad{Bytes: out}
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c > 0x7f {
			return false
		}
	}

	return true
}

func isEvenHex(b []byte) bool {
	if len(b) == 0 || len(b)%2 != 0 {
		return false
	}

	for _, c := range b {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}

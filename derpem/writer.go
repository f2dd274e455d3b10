package derpem

import (
	"net/http"

	"github.com/rcauth-eu/privkeysplit/bigint"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
)

// Encode serializes a Node to its DER byte encoding.
func Encode(n Node) ([]byte, yaerrors.Error) {
	out, err := writeNode(n)
	if err != nil {
		return nil, yaerrors.FromError(http.StatusInternalServerError, err, "derpem: encode DER")
	}

	return out, nil
}

func writeNode(n Node) ([]byte, error) {
	switch n.Kind {
	case KindInteger:
		return writeInteger(n.Int), nil
	case KindSequence:
		parts := make([][]byte, 0, len(n.Seq))

		for _, child := range n.Seq {
			b, err := writeNode(child)
			if err != nil {
				return nil, err
			}

			parts = append(parts, b)
		}

		return writeSequence(parts), nil
	case KindOid:
		return writeOid(n.Oid), nil
	case KindNull:
		return []byte{TagNull, 0x00}, nil
	case KindBitString:
		return writeBitString(n.BitVal, n.PadBits), nil
	default:
		return nil, ErrUnsupportedWrite
	}
}

// writeLength encodes a DER length field: a single byte for lengths below
// 0x80, otherwise 0x80|k followed by k big-endian length bytes.
func writeLength(length int) []byte {
	if length < 0x80 {
		return []byte{byte(length)}
	}

	lb := bigint.FromUint64(uint64(length)).ToBytesBE()

	return append([]byte{0x80 | byte(len(lb))}, lb...)
}

// writeInteger encodes a non-negative integer as a DER INTEGER TLV,
// inserting a leading zero byte when the top bit of the first body byte is
// set, so the value is never misread as a negative two's-complement number.
func writeInteger(v bigint.UInt) []byte {
	m := v.ToBytesBE()

	length := len(m)
	pad := m[0] >= 0x80

	if pad {
		length++
	}

	out := []byte{TagInteger}
	out = append(out, writeLength(length)...)

	if pad {
		out = append(out, 0x00)
	}

	return append(out, m...)
}

func writeSequence(children [][]byte) []byte {
	var body []byte

	for _, c := range children {
		body = append(body, c...)
	}

	out := []byte{TagSequence}
	out = append(out, writeLength(len(body))...)

	return append(out, body...)
}

func writeOid(arcs []uint64) []byte {
	body := encodeOidArcs(arcs)

	out := []byte{TagOid}
	out = append(out, writeLength(len(body))...)

	return append(out, body...)
}

func writeBitString(val bigint.UInt, pad uint8) []byte {
	shifted := bigint.Shl(val, uint(pad))

	var valBytes []byte
	if !shifted.IsZero() {
		valBytes = shifted.ToBytesBE()
	}

	body := append([]byte{pad}, valBytes...)

	out := []byte{TagBitString}
	out = append(out, writeLength(len(body))...)

	return append(out, body...)
}

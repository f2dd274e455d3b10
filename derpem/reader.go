package derpem

import (
	"net/http"

	"github.com/rcauth-eu/privkeysplit/bigint"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
)

// Decode parses a single DER TLV starting at offset 0 of data, returning
// the parsed Node and the set of recoverable warnings encountered along
// the way (unknown tags skipped, NULL with non-empty value, a SEQUENCE
// that read short of its declared length).
func Decode(data []byte) (Node, []WarningKind, yaerrors.Error) {
	node, _, warnings, err := readTLV(data, 0, len(data), nil)
	if err != nil {
		return Node{}, warnings, yaerrors.FromError(http.StatusBadRequest, err, "derpem: decode DER")
	}

	return node, warnings, nil
}

// readTLV reads one Tag-Length-Value at offs within [offs, size), returning
// the parsed node and the offset just past it.
func readTLV(data []byte, offs, size int, warnings []WarningKind) (Node, int, []WarningKind, error) {
	if offs+1 >= size {
		return Node{}, offs, warnings, ErrTruncatedInput
	}

	tag := data[offs]
	offs++
	length := int(data[offs])
	offs++

	if length&0x80 != 0 {
		nbytes := length & 0x7f
		if offs+nbytes >= size {
			return Node{}, offs, warnings, ErrTruncatedInput
		}

		length = 0
		for i := 0; i < nbytes; i++ {
			length = length<<8 | int(data[offs])
			offs++
		}
	}

	if offs+length > size {
		return Node{}, offs, warnings, ErrOverLongLength
	}

	switch tag {
	case TagSequence:
		return readSequence(data, offs, length, warnings)
	case TagInteger:
		val := bigint.FromBytesBE(data[offs : offs+length])
		return Node{Kind: KindInteger, Int: val}, offs + length, warnings, nil
	case TagNull:
		if length != 0 {
			warnings = append(warnings, WarnNullNonEmpty)
		}

		return Node{Kind: KindNull}, offs + length, warnings, nil
	case TagOid:
		arcs, err := decodeOidArcs(data[offs : offs+length])
		if err != nil {
			return Node{}, offs, warnings, err
		}

		return Node{Kind: KindOid, Oid: arcs}, offs + length, warnings, nil
	case TagBitString:
		return readBitString(data, offs, length, warnings)
	default:
		warnings = append(warnings, WarnUnknownTag)

		return Node{Kind: KindUnknown, UnknownTag: tag, UnknownLength: length}, offs + length, warnings, nil
	}
}

func readSequence(data []byte, offs, length int, warnings []WarningKind) (Node, int, []WarningKind, error) {
	var children []Node

	o := offs
	end := offs + length

	for o < end {
		child, next, w, err := readTLV(data, o, end, warnings)
		warnings = w

		if err != nil {
			return Node{}, o, warnings, err
		}

		children = append(children, child)
		o = next
	}

	if o > end {
		return Node{}, o, warnings, ErrTruncatedInput
	}

	if o < end {
		warnings = append(warnings, WarnSequenceUnderRead)
	}

	return Node{Kind: KindSequence, Seq: children}, end, warnings, nil
}

func readBitString(data []byte, offs, length int, warnings []WarningKind) (Node, int, []WarningKind, error) {
	if length < 1 {
		return Node{}, offs, warnings, ErrTruncatedInput
	}

	pad := data[offs]
	if pad > 7 {
		return Node{}, offs, warnings, ErrBadPadding
	}

	val := bigint.FromBytesBE(data[offs+1 : offs+length])

	if pad > 0 {
		mask := bigint.FromUint64(uint64(1<<pad) - 1)
		if !bigint.And(val, mask).IsZero() {
			return Node{}, offs, warnings, ErrBadPadding
		}
	}

	val = bigint.Shr(val, uint(pad))

	return Node{Kind: KindBitString, BitVal: val, PadBits: pad}, offs + length, warnings, nil
}

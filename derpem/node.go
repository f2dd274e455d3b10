// Package derpem implements a DER TLV reader and writer for the ASN.1
// primitives RFC 8017's RSAPrivateKey sequence needs (SEQUENCE, INTEGER,
// OID, NULL, BITSTRING), plus RFC 7468 PEM textual framing around it.
package derpem

import "github.com/rcauth-eu/privkeysplit/bigint"

// Kind identifies which DER primitive a Node holds.
type Kind uint8

const (
	KindInteger Kind = iota
	KindSequence
	KindOid
	KindBitString
	KindNull
	KindUnknown
)

// DER tag bytes.
const (
	TagInteger   byte = 0x02
	TagBitString byte = 0x03
	TagNull      byte = 0x05
	TagOid       byte = 0x06
	TagSequence  byte = 0x30
)

// Node is a tagged sum over the recognized DER primitives. Exactly the
// fields relevant to Kind are meaningful; the rest are zero.
type Node struct {
	Kind Kind

	Int bigint.UInt // KindInteger

	Seq []Node // KindSequence

	Oid []uint64 // KindOid, decoded arcs (first two already split out of the combined first byte)

	BitVal  bigint.UInt // KindBitString, value after shifting out the pad bits
	PadBits uint8       // KindBitString, 0..=7

	UnknownTag    byte // KindUnknown
	UnknownLength int  // KindUnknown
}

// WarningKind enumerates the recoverable anomalies the reader can hit
// without aborting the parse.
type WarningKind uint8

const (
	WarnUnknownTag WarningKind = iota
	WarnNullNonEmpty
	WarnSequenceUnderRead
)

// AsInteger returns the Node as a bigint.UInt along with whether it was
// actually an INTEGER node.
func (n Node) AsInteger() (bigint.UInt, bool) {
	if n.Kind != KindInteger {
		return bigint.Zero(), false
	}

	return n.Int, true
}

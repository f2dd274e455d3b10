package splitxor_test

import (
	"testing"

	"github.com/rcauth-eu/privkeysplit/splitxor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Split_Reassemble_RoundTrip(t *testing.T) {
	t.Parallel()

	hexH := "3d" // a one-byte "prime" for test purposes

	pad1 := splitxor.Pad{Bytes: []byte{0x01, 0x02, 0x03, 0x04}}
	pad2 := splitxor.Pad{Bytes: []byte{0xAA, 0xBB, 0xCC, 0xDD}}

	y, err := splitxor.Split(hexH, pad1, 1, pad2, 2)
	require.Nil(t, err)

	// pads were zeroized by Split; rebuild fresh copies for Reassemble.
	pad1b := splitxor.Pad{Bytes: []byte{0x01, 0x02, 0x03, 0x04}}
	pad2b := splitxor.Pad{Bytes: []byte{0xAA, 0xBB, 0xCC, 0xDD}}

	h, err2 := splitxor.Reassemble(y, pad1b, 1, pad2b, 2)
	require.Nil(t, err2)
	assert.Equal(t, hexH, h)
}

func Test_Split_SamePadRejected(t *testing.T) {
	t.Parallel()

	same := []byte{1, 2, 3, 4}
	pad1 := splitxor.Pad{Bytes: append([]byte(nil), same...)}
	pad2 := splitxor.Pad{Bytes: append([]byte(nil), same...)}

	_, err := splitxor.Split("3d", pad1, 0, pad2, 0)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, splitxor.ErrSamePad)
}

func Test_Split_PadTooShort(t *testing.T) {
	t.Parallel()

	pad1 := splitxor.Pad{Bytes: []byte{0x01}}
	pad2 := splitxor.Pad{Bytes: []byte{0xAA, 0xBB}}

	_, err := splitxor.Split("3d3e", pad1, 0, pad2, 0)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, splitxor.ErrPadTooShort)
}

func Test_Split_ZeroizesInputsOnSuccess(t *testing.T) {
	t.Parallel()

	pad1 := splitxor.Pad{Bytes: []byte{0x01, 0x02}}
	pad2 := splitxor.Pad{Bytes: []byte{0xAA, 0xBB}}

	_, err := splitxor.Split("3d", pad1, 0, pad2, 0)
	require.Nil(t, err)

	assert.Equal(t, []byte{0, 0}, pad1.Bytes)
	assert.Equal(t, []byte{0, 0}, pad2.Bytes)
}

func Test_Split_ZeroizesInputsOnFailure(t *testing.T) {
	t.Parallel()

	same := []byte{1, 2}
	pad1 := splitxor.Pad{Bytes: same}
	pad2 := splitxor.Pad{Bytes: append([]byte(nil), same...)}

	_, err := splitxor.Split("3d", pad1, 0, pad2, 0)
	require.NotNil(t, err)
	assert.Equal(t, []byte{0, 0}, pad1.Bytes)
}

func Test_LoadPad_AsciiHexDecoded(t *testing.T) {
	t.Parallel()

	p := splitxor.LoadPad([]byte("deadbeef"))
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, p.Bytes)
}

func Test_LoadPad_BinaryFallbackForNonAscii(t *testing.T) {
	t.Parallel()

	raw := []byte{0xFF, 0x00, 0xAB, 0xCD}

	p := splitxor.LoadPad(raw)
	assert.Equal(t, raw, p.Bytes)
}

func Test_LoadPad_OddLengthAsciiUsedAsBinary(t *testing.T) {
	t.Parallel()

	raw := []byte("abc")

	p := splitxor.LoadPad(raw)
	assert.Equal(t, raw, p.Bytes)
}

func Test_Pad_Zeroize(t *testing.T) {
	t.Parallel()

	p := splitxor.Pad{Bytes: []byte{1, 2, 3}}
	p.Zeroize()

	assert.Nil(t, p.Bytes)
}

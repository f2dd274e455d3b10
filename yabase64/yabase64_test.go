package yabase64_test

import (
	"testing"

	"github.com/rcauth-eu/privkeysplit/yabase64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToString_ToBytes_RoundTrip(t *testing.T) {
	t.Parallel()

	raw := []byte{0, 1, 2, 250, 251, 252, 'h', 'i'}

	b64 := yabase64.ToString(raw)

	out, err := yabase64.ToBytes(b64)
	require.Nil(t, err, "decode failed: %v", err)
	assert.Equal(t, raw, out)
}

func Test_ToBytes_RejectsInvalidBase64(t *testing.T) {
	t.Parallel()

	_, err := yabase64.ToBytes("not-valid-base64!!!")
	require.NotNil(t, err)
}

func Test_ToString_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", yabase64.ToString(nil))
}

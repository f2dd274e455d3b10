package pipeline

import (
	"testing"

	"github.com/rcauth-eu/privkeysplit/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FormatIntermediate_MatchesLiteralLayout(t *testing.T) {
	t.Parallel()

	text := FormatIntermediate(u(3233), u(17), "abcd")
	assert.Equal(t, "mod=ca1\nexp=17\n p1=abcd\n", text)
}

func Test_ParseIntermediate_RoundTripsFormatIntermediate(t *testing.T) {
	t.Parallel()

	text := FormatIntermediate(u(3233), u(17), "abcd")

	n, e, p1, err := ParseIntermediate(text)
	require.Nil(t, err)
	assert.True(t, bigint.Equal(n, u(3233)))
	assert.True(t, bigint.Equal(e, u(17)))
	assert.Equal(t, "abcd", p1)
}

func Test_ParseIntermediate_TrimsSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	text := "  mod=ca1  \n  exp=17 \n   p1=abcd \n"

	n, e, p1, err := ParseIntermediate(text)
	require.Nil(t, err)
	assert.True(t, bigint.Equal(n, u(3233)))
	assert.True(t, bigint.Equal(e, u(17)))
	assert.Equal(t, "abcd", p1)
}

func Test_ParseIntermediate_MissingLineRejected(t *testing.T) {
	t.Parallel()

	_, _, _, err := ParseIntermediate("mod=ca1\nexp=17\n")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrIntermediateFormat)
}

func Test_ParseIntermediate_BadHexRejected(t *testing.T) {
	t.Parallel()

	_, _, _, err := ParseIntermediate("mod=zz\nexp=17\n p1=ab\n")
	require.NotNil(t, err)
}

func Test_ParseIntermediate_BadExpRejected(t *testing.T) {
	t.Parallel()

	_, _, _, err := ParseIntermediate("mod=ca1\nexp=notanumber\n p1=ab\n")
	require.NotNil(t, err)
}

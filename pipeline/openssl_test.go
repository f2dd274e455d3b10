package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RunOpenssl_ReturnsStdoutOnSuccess(t *testing.T) {
	t.Parallel()

	out, err := runOpenssl(context.Background(), "echo", []string{"hello"}, nil, testLogger())
	require.Nil(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func Test_RunOpenssl_FailsAfterExhaustingRetries(t *testing.T) {
	t.Parallel()

	_, err := runOpenssl(context.Background(), "false", nil, nil, testLogger())
	require.NotNil(t, err)
}

func Test_DecryptPrivateKey_InvokesRsaSubcommand(t *testing.T) {
	t.Parallel()

	out, err := DecryptPrivateKey(context.Background(), "echo", []byte("pem-bytes"), testLogger())
	require.Nil(t, err)
	assert.Contains(t, string(out), "rsa")
}

func Test_EncryptPrivateKey_InvokesRsaDes3Subcommand(t *testing.T) {
	t.Parallel()

	out, err := EncryptPrivateKey(context.Background(), "echo", []byte("pem-bytes"), testLogger())
	require.Nil(t, err)
	assert.Equal(t, "rsa -des3\n", string(out))
}

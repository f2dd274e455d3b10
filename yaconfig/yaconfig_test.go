package yaconfig_test

import (
	"testing"

	"github.com/rcauth-eu/privkeysplit/yaconfig"
	"github.com/rcauth-eu/privkeysplit/yalogger"
	"github.com/stretchr/testify/assert"
)

func testLogger() yalogger.Logger {
	return yalogger.NewBaseLogger(nil).NewLogger()
}

func Test_Load_UsesDefaultsWhenEnvUnset(t *testing.T) {
	t.Setenv("PKSPLIT_MAX_PUBKEY_FILE_SIZE", "")
	t.Setenv("PKSPLIT_OPENSSL_PATH", "")
	t.Setenv("PKSPLIT_LOG_LEVEL", "")

	cfg := yaconfig.Load(testLogger())

	assert.Equal(t, yaconfig.DefaultMaxPubKeyFileSize, cfg.MaxPubKeyFileSize)
	assert.Equal(t, yaconfig.DefaultOpensslPath, cfg.OpensslPath)
	assert.Equal(t, yaconfig.DefaultLogLevel, cfg.LogLevel)
}

func Test_Load_EnvOverridesDefault(t *testing.T) {
	t.Setenv("PKSPLIT_OPENSSL_PATH", "/usr/local/bin/openssl")

	cfg := yaconfig.Load(testLogger())

	assert.Equal(t, "/usr/local/bin/openssl", cfg.OpensslPath)
}

func Test_Load_MalformedIntFallsBackToDefault(t *testing.T) {
	t.Setenv("PKSPLIT_MAX_PUBKEY_FILE_SIZE", "not-a-number")

	cfg := yaconfig.Load(testLogger())

	assert.Equal(t, yaconfig.DefaultMaxPubKeyFileSize, cfg.MaxPubKeyFileSize)
}

func Test_ApplyFlagOverrides_FlagWinsOverEnvAndDefault(t *testing.T) {
	t.Setenv("PKSPLIT_OPENSSL_PATH", "/usr/local/bin/openssl")
	t.Setenv("PKSPLIT_LOG_LEVEL", "debug")

	cfg := yaconfig.Load(testLogger())
	cfg = cfg.ApplyFlagOverrides("/opt/openssl/bin/openssl", "")

	assert.Equal(t, "/opt/openssl/bin/openssl", cfg.OpensslPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func Test_ApplyFlagOverrides_EmptyLeavesUnchanged(t *testing.T) {
	cfg := yaconfig.Config{OpensslPath: "openssl", LogLevel: "info"}
	cfg = cfg.ApplyFlagOverrides("", "")

	assert.Equal(t, "openssl", cfg.OpensslPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

// Package yaconfig loads the handful of scalar knobs this tool's pipeline
// and cmd layers need (max accepted key-file size, the openssl binary to
// shell out to, the default log level), preferring a CLI flag over an
// environment variable over a .env file value over a built-in default.
//
// This is a deliberately small replacement for a generic reflection-based
// config loader: there are three fields here, not dozens, so the loader is
// three explicit environment lookups rather than a struct-tag-driven walk.
package yaconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rcauth-eu/privkeysplit/yalogger"
)

const (
	envMaxPubKeyFileSize = "PKSPLIT_MAX_PUBKEY_FILE_SIZE"
	envOpensslPath       = "PKSPLIT_OPENSSL_PATH"
	envLogLevel          = "PKSPLIT_LOG_LEVEL"
)

const (
	// DefaultMaxPubKeyFileSize bounds how large an input key file this tool
	// will read into memory before parsing. Preserved bit-for-bit from the
	// source's maxpubkeyfilesize global; -1 disables the limit entirely.
	DefaultMaxPubKeyFileSize int64 = 16384

	DefaultOpensslPath = "openssl"
	DefaultLogLevel    = "info"
)

// Config holds this tool's scalar runtime configuration.
type Config struct {
	MaxPubKeyFileSize int64
	OpensslPath       string
	LogLevel          string
}

// Load reads a .env file (if present) and the process environment into a
// Config, falling back to the package defaults for anything unset. It never
// fails: a malformed numeric value is logged and the default is used
// instead, matching this tool's preference for a usable run over a hard
// abort on a configuration detail.
func Load(log yalogger.Logger) Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("yaconfig: no .env file loaded: %v", err)
	}

	return Config{
		MaxPubKeyFileSize: getEnvInt64(envMaxPubKeyFileSize, DefaultMaxPubKeyFileSize, log),
		OpensslPath:       getEnvString(envOpensslPath, DefaultOpensslPath),
		LogLevel:          getEnvString(envLogLevel, DefaultLogLevel),
	}
}

func getEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func getEnvInt64(key string, fallback int64, log yalogger.Logger) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}

	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Warnf("yaconfig: %s=%q is not a valid integer, using default %d", key, v, fallback)

		return fallback
	}

	return parsed
}

// ApplyFlagOverrides layers CLI-flag values on top of env/.env/default
// values already loaded into cfg. Each parameter is the flag's raw string
// value; an empty string means the flag was not set and cfg is left
// unchanged for that field. This is the top of the precedence chain: flag
// over env over .env over default.
func (cfg Config) ApplyFlagOverrides(opensslPath string, logLevel string) Config {
	if opensslPath != "" {
		cfg.OpensslPath = opensslPath
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg
}

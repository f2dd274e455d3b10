package cliutil

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rcauth-eu/privkeysplit/yalogger"
)

// ParseLogLevel maps a yaconfig.Config.LogLevel string to a yalogger.Level,
// falling back to InfoLevel for anything unrecognized.
func ParseLogLevel(s string) yalogger.Level {
	switch strings.ToLower(s) {
	case "trace":
		return yalogger.TraceLevel
	case "debug":
		return yalogger.DebugLevel
	case "warn", "warning":
		return yalogger.WarnLevel
	case "error":
		return yalogger.ErrorLevel
	case "fatal":
		return yalogger.FatalLevel
	case "panic":
		return yalogger.PanicLevel
	default:
		return yalogger.InfoLevel
	}
}

// NewRunLogger builds a logger at the given level tagged with a fresh
// per-invocation run ID, so every line one split/reassemble/regen call
// emits can be grepped out of a shared operator log.
func NewRunLogger(level yalogger.Level) yalogger.Logger {
	log := yalogger.NewBaseLogger(&yalogger.Config{Level: level, DisableTimestamp: true}).NewLogger()

	return log.WithRunID(uuid.NewString())
}

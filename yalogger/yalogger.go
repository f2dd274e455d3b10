// Package yalogger provides a structured logging interface with a logrus-backed
// implementation. It is the logging surface used by every other package in this
// module: yaerrors can attach a Logger to a wrapped error, and the pipeline
// package attaches one run-scoped logger to each split/reassemble/regenerate
// invocation so its warnings (recoverable ASN.1 anomalies, short pads, unknown
// tags) and failures end up on a single correlated stream.
//
// Example usage:
//
//	log := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.InfoLevel}).NewLogger()
//	log.WithRunID(uuid.NewString()).Warn("SEQUENCE read short of declared length")
package yalogger

import (
	"github.com/sirupsen/logrus"
)

// Level mirrors logrus.Level so callers of this package never need to import
// logrus directly.
type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

// BaseLoggerType selects the concrete logging backend. Logrus is the only
// backend implemented; the type exists so a second backend can be added
// without changing the Config shape.
type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

// Config defines the configuration options for the logger.
type Config struct {
	BaseLoggerType   BaseLoggerType
	Level            Level
	FullTimestamp    bool
	DisableTimestamp bool
	TimestampFormat  string
}

// BaseLogger is an interface for creating new Logger instances.
type BaseLogger interface {
	// NewLogger creates a new Logger instance from the base logger.
	NewLogger() Logger
}

// Logger defines a structured logging interface with support for various log
// levels, formatting, and context-aware logging using key-value fields.
type Logger interface {
	Info(msg string)
	Infof(format string, args ...any)
	Trace(msg string)
	Tracef(format string, args ...any)
	Debug(msg string)
	Debugf(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Error(msg string)
	Errorf(format string, args ...any)
	Fatal(msg string)
	Fatalf(format string, args ...any)

	// WithField returns a logger with a single field added to the context.
	WithField(key string, value any) Logger

	// WithFields returns a logger with multiple fields added to the context.
	WithFields(fields map[string]any) Logger

	// WithRunID returns a logger tagged with the identifier of one pipeline
	// invocation, so every line it emits for that split/reassemble/regenerate
	// call can be grepped out of a shared log stream.
	WithRunID(id string) Logger

	// GetFields returns the current log context fields as a map.
	GetFields() map[string]any
}

const keyRunID = "run_id"

// logrusAdapter implements Logger on top of a logrus.Entry.
type logrusAdapter struct {
	entry *logrus.Entry
}

// baseLogrus holds the root logrus.Logger instances are derived from.
type baseLogrus struct {
	logger *logrus.Logger
}

// NewBaseLogger creates and configures a new base logger based on the
// provided configuration. A nil config falls back to info-level, compact
// text output, matching the defaults a bare CLI invocation should use.
func NewBaseLogger(config *Config) BaseLogger {
	if config == nil {
		config = &Config{
			BaseLoggerType:   Logrus,
			Level:            InfoLevel,
			DisableTimestamp: true,
		}
	}

	switch config.BaseLoggerType {
	case Logrus:
		base := logrus.New()
		base.SetLevel(logrus.Level(config.Level))
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:    config.FullTimestamp,
			TimestampFormat:  config.TimestampFormat,
			DisableTimestamp: config.DisableTimestamp,
		})

		return &baseLogrus{logger: base}
	default:
		panic("yalogger: unsupported logger backend")
	}
}

// NewLogger creates a new Logger instance from the base logrus logger.
func (b *baseLogrus) NewLogger() Logger {
	return &logrusAdapter{entry: logrus.NewEntry(b.logger)}
}

func (l *logrusAdapter) Info(msg string)                    { l.entry.Info(msg) }
func (l *logrusAdapter) Infof(format string, args ...any)    { l.entry.Infof(format, args...) }
func (l *logrusAdapter) Trace(msg string)                    { l.entry.Trace(msg) }
func (l *logrusAdapter) Tracef(format string, args ...any)   { l.entry.Tracef(format, args...) }
func (l *logrusAdapter) Debug(msg string)                    { l.entry.Debug(msg) }
func (l *logrusAdapter) Debugf(format string, args ...any)   { l.entry.Debugf(format, args...) }
func (l *logrusAdapter) Warn(msg string)                     { l.entry.Warn(msg) }
func (l *logrusAdapter) Warnf(format string, args ...any)    { l.entry.Warnf(format, args...) }
func (l *logrusAdapter) Error(msg string)                    { l.entry.Error(msg) }
func (l *logrusAdapter) Errorf(format string, args ...any)   { l.entry.Errorf(format, args...) }
func (l *logrusAdapter) Fatal(msg string)                    { l.entry.Fatal(msg) }
func (l *logrusAdapter) Fatalf(format string, args ...any)   { l.entry.Fatalf(format, args...) }

func (l *logrusAdapter) WithField(key string, value any) Logger {
	return &logrusAdapter{entry: l.entry.WithField(key, value)}
}

func (l *logrusAdapter) WithFields(fields map[string]any) Logger {
	return &logrusAdapter{entry: l.entry.WithFields(fields)}
}

func (l *logrusAdapter) WithRunID(id string) Logger {
	return &logrusAdapter{entry: l.entry.WithField(keyRunID, id)}
}

func (l *logrusAdapter) GetFields() map[string]any {
	return l.entry.Data
}

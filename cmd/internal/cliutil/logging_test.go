package cliutil

import (
	"testing"

	"github.com/rcauth-eu/privkeysplit/yalogger"
	"github.com/stretchr/testify/assert"
)

func Test_ParseLogLevel_KnownNames(t *testing.T) {
	t.Parallel()

	cases := map[string]yalogger.Level{
		"trace": yalogger.TraceLevel,
		"debug": yalogger.DebugLevel,
		"info":  yalogger.InfoLevel,
		"warn":  yalogger.WarnLevel,
		"error": yalogger.ErrorLevel,
		"fatal": yalogger.FatalLevel,
		"panic": yalogger.PanicLevel,
		"DEBUG": yalogger.DebugLevel,
	}

	for input, want := range cases {
		assert.Equal(t, want, ParseLogLevel(input), input)
	}
}

func Test_ParseLogLevel_UnknownFallsBackToInfo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, yalogger.InfoLevel, ParseLogLevel("nonsense"))
}

func Test_NewRunLogger_ReturnsUsableLogger(t *testing.T) {
	t.Parallel()

	log := NewRunLogger(yalogger.InfoLevel)
	assert.NotNil(t, log)
	assert.Contains(t, log.GetFields(), "run_id")
}

package yalogger_test

import (
	"testing"

	"github.com/rcauth-eu/privkeysplit/yalogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Level_UnmarshalRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"} {
		var lvl yalogger.Level

		require.NoError(t, lvl.Unmarshal(name))
		assert.Equal(t, name, lvl.String())
	}
}

func Test_Level_UnmarshalRejectsUnknown(t *testing.T) {
	t.Parallel()

	var lvl yalogger.Level

	assert.ErrorIs(t, lvl.Unmarshal("verbose"), yalogger.ErrInvalidLogLevel)
}

func Test_Logger_WithRunIDAttachesField(t *testing.T) {
	t.Parallel()

	log := yalogger.NewBaseLogger(nil).NewLogger().WithRunID("run-42")

	fields := log.GetFields()
	assert.Equal(t, "run-42", fields["run_id"])
}

func Test_Logger_WithFieldDoesNotMutateParent(t *testing.T) {
	t.Parallel()

	base := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.DebugLevel}).NewLogger()
	child := base.WithField("offset", 12)

	assert.Nil(t, base.GetFields()["offset"])
	assert.Equal(t, 12, child.GetFields()["offset"])
}

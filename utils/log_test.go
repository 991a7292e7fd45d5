package utils_test

import (
	"testing"

	"github.com/NethermindEth/starkstate/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	for level, str := range map[utils.LogLevel]string{
		utils.DEBUG: "debug",
		utils.INFO:  "info",
		utils.WARN:  "warn",
		utils.ERROR: "error",
	} {
		assert.Equal(t, str, level.String())
	}
}

func TestLogLevelSet(t *testing.T) {
	var level utils.LogLevel
	require.NoError(t, level.Set("ERROR"))
	assert.Equal(t, utils.ERROR, level)

	require.NoError(t, level.Set("warn"))
	assert.Equal(t, utils.WARN, level)

	assert.ErrorIs(t, level.Set("trace"), utils.ErrUnknownLogLevel)
}

func TestLogLevelUnmarshalText(t *testing.T) {
	var level utils.LogLevel
	require.NoError(t, level.UnmarshalText([]byte("debug")))
	assert.Equal(t, utils.DEBUG, level)
}

func TestZapLogger(t *testing.T) {
	for _, colour := range []bool{true, false} {
		log, err := utils.NewZapLogger(utils.INFO, colour)
		require.NoError(t, err)
		log.Infow("test message", "key", "value")
	}
}

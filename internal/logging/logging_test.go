package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/notifdash/internal/logging"
	"github.com/nhle/notifdash/internal/model"
)

func TestParseLevel(t *testing.T) {
	level, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = logging.ParseLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	_, err = logging.ParseLevel("chatty")
	assert.Error(t, err)
}

func TestNewWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, zerolog.WarnLevel)

	logger.Info().Msg("hidden")
	storeLog := logging.Component(logger, "store")
	storeLog.Warn().Str("id", "7").Msg("missing")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "id=7")
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "notifdash.log")

	logger, closer, err := logging.New(model.LogConfig{File: path, Level: "info"})
	require.NoError(t, err)

	logger.Info().Msg("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}

func TestNewWithoutFileIsDisabled(t *testing.T) {
	logger, closer, err := logging.New(model.LogConfig{Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := logging.New(model.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

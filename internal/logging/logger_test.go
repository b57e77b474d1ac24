package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"chatty":  zerolog.InfoLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DOCKYARD_LOG_LEVEL", "debug")
	t.Setenv("DOCKYARD_LOG_FORMAT", "json")

	cfg := ConfigFromEnv(DefaultConfig())

	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DOCKYARD_LOG_LEVEL", "warn")

	assert.Equal(t, zerolog.WarnLevel, NewFromEnv().GetLevel())
}

func TestConfigFromEnv_IgnoresUnknownFormat(t *testing.T) {
	t.Setenv("DOCKYARD_LOG_FORMAT", "xml")

	cfg := ConfigFromEnv(DefaultConfig())

	assert.Equal(t, "console", cfg.Format)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	ctx := WithContext(context.Background(), New(cfg, &buf))

	ctx = WithComponent(ctx, "dock")
	ctx = WithPanelID(ctx, "console")
	FromContext(ctx).Info().Msg("panel added")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dock", entry["component"])
	assert.Equal(t, "console", entry["panel_id"])
	assert.Equal(t, "panel added", entry["message"])
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	log := FromContext(context.Background())

	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestOpen_File(t *testing.T) {
	cfg := DefaultConfig()
	cfg.File = filepath.Join(t.TempDir(), "logs", "dockyard.log")

	log, closer, err := Open(cfg)
	require.NoError(t, err)
	log.Info().Msg("hello")
	require.NoError(t, closer.Close())

	assert.FileExists(t, cfg.File)
}

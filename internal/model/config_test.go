package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	want := DefaultAppConfig()
	assert.Equal(t, want.Display, cfg.Display)
	assert.Equal(t, want.Store, cfg.Store)
	assert.Equal(t, want.Log.Level, cfg.Log.Level)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
display:
  view_mode: grid
  page_size: 10
store:
  driver: sqlite
seed:
  path: /tmp/seed.yaml
log:
  level: debug
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "grid", cfg.Display.ViewMode)
	assert.Equal(t, 10, cfg.Display.PageSize)
	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "/tmp/seed.yaml", cfg.Seed.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 6, DefaultAppConfig().Display.PageSize)
	assert.Equal(t, DefaultAppConfig().Log.File, cfg.Log.File, "unset keys keep defaults")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad view mode", "display:\n  view_mode: table\n"},
		{"bad driver", "store:\n  driver: postgres\n"},
		{"bad yaml", "display: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate_NormalizesPageSize(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Display.PageSize = -3

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 6, cfg.Display.PageSize)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultAppConfig()
	cfg.Display.ViewMode = "grid"
	cfg.Display.PageSize = 12
	cfg.Store.Driver = StoreDriverSQLite
	cfg.Log.File = ""

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Display, loaded.Display)
	assert.Equal(t, cfg.Store, loaded.Store)
}

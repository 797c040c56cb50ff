package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookstore.ini")
	content := `
[catalog]
seed_classics = false
seed_random   = 25

[log]
level = debug

[cli]
color = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{SeedClassics: false, SeedRandom: 25, LogLevel: "debug", Color: false}, cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestParse(t *testing.T) {
	t.Run("partial keeps defaults", func(t *testing.T) {
		cfg, err := Parse([]byte("[log]\nlevel = warn\n"))
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.True(t, cfg.SeedClassics)
		assert.True(t, cfg.Color)
		assert.Equal(t, 0, cfg.SeedRandom)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		cfg, err := Parse([]byte("[catalog]\nseed_random = many\nseed_classics = maybe\n"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("negative seed count", func(t *testing.T) {
		_, err := Parse([]byte("[catalog]\nseed_random = -3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "seed_random")
	})
}

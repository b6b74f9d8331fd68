package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads from file", func(t *testing.T) {
		path := writeConfig(t, `{
			"api_key": "file-key",
			"search_cx": "cx-123",
			"port": 9090,
			"verbose": true
		}`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.APIKey)
		assert.Equal(t, "cx-123", cfg.SearchCX)
		assert.Equal(t, 9090, cfg.Port)
		assert.True(t, cfg.Verbose)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON errors", func(t *testing.T) {
		path := writeConfig(t, `{not json`)
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("env fills empty fields", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "env-key")
		t.Setenv("PORT", "7070")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.APIKey)
		assert.Equal(t, 7070, cfg.Port)
	})

	t.Run("file wins over env", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "env-key")
		path := writeConfig(t, `{"api_key": "file-key"}`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.APIKey)
	})

	t.Run("defaults port", func(t *testing.T) {
		t.Setenv("PORT", "")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects out of range port", func(t *testing.T) {
		cfg := &Config{Port: 99999}
		assert.Error(t, cfg.Validate())
	})

	t.Run("accepts valid config", func(t *testing.T) {
		cfg := &Config{
			Port:        8080,
			DatabaseURL: "postgres://localhost:5432/recruiter_agent",
		}
		assert.NoError(t, cfg.Validate())
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := NewLoader(filepath.Join(t.TempDir(), "config.yaml")).Load()
	require.NoError(err)
	require.Equal("https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	require.Equal(30*time.Second, cfg.TMDB.Timeout)
	require.Equal("en-US", cfg.UI.Language)
	require.Equal(15, cfg.UI.RowLimit)
	require.Equal(1, cfg.Player.DefaultServer)
	require.False(cfg.IsConfigured())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `tmdb:
  api_key: from-file
  timeout: 5s
ui:
  language: pt-BR
  row_limit: 10
`
	require.NoError(os.WriteFile(path, []byte(body), 0644))
	t.Setenv("FLIXHUB_SUMMARIZER_API_KEY", "from-env")

	cfg, err := NewLoader(path).Load()
	require.NoError(err)
	require.Equal("from-file", cfg.TMDB.APIKey)
	require.Equal(5*time.Second, cfg.TMDB.Timeout)
	require.Equal("pt-BR", cfg.UI.Language)
	require.Equal(10, cfg.UI.RowLimit)
	require.Equal("from-env", cfg.Summarizer.APIKey)
	require.True(cfg.IsConfigured())
}

func TestSaveThenLoad(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.TMDB.APIKey = "abc123"
	cfg.Player.Browser = "firefox"

	require.NoError(NewLoader(path).Save(cfg))

	loaded, err := NewLoader(path).Load()
	require.NoError(err)
	require.Equal("abc123", loaded.TMDB.APIKey)
	require.Equal("firefox", loaded.Player.Browser)
	require.Equal(cfg.TMDB.Timeout, loaded.TMDB.Timeout)
}

func TestIsConfiguredIgnoresWhitespace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TMDB.APIKey = "   "
	require.False(t, cfg.IsConfigured())
}

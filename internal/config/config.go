package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	TMDB       TMDBConfig       `mapstructure:"tmdb"`
	Summarizer SummarizerConfig `mapstructure:"summarizer"`
	Player     PlayerConfig     `mapstructure:"player"`
	UI         UIConfig         `mapstructure:"ui"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// TMDBConfig holds catalog API configuration
type TMDBConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// SummarizerConfig holds the synopsis shortener configuration.
// An empty APIKey disables summarization.
type SummarizerConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// PlayerConfig holds browser launch configuration
type PlayerConfig struct {
	Browser       string   `mapstructure:"browser"` // empty for auto-detect
	Args          []string `mapstructure:"args"`
	DefaultServer int      `mapstructure:"default_server"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Language string `mapstructure:"language"`
	RowLimit int    `mapstructure:"row_limit"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Timeout:      30 * time.Second,
		},
		Summarizer: SummarizerConfig{
			Model:   "gemini-2.0-flash",
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		},
		Player: PlayerConfig{
			Args:          []string{},
			DefaultServer: 1,
		},
		UI: UIConfig{
			Language: "en-US",
			RowLimit: 15,
		},
		Logging: LoggingConfig{
			File:       defaultLogPath(),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "flixhub", "flixhub.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "flixhub", "flixhub.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "flixhub")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "flixhub")
	}
}

// Loader reads and writes configuration through a viper instance.
// An empty file means the default search path.
type Loader struct {
	v    *viper.Viper
	file string
}

// NewLoader creates a loader. file may name an explicit config file.
func NewLoader(file string) *Loader {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. FLIXHUB_TMDB_API_KEY
	v.SetEnvPrefix("FLIXHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v, file: file}
}

// Load loads configuration from file and environment
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()
	l.setDefaults(cfg)

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(l.file != "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// are absent from the file.
func (l *Loader) setDefaults(cfg *Config) {
	l.v.SetDefault("tmdb.api_key", cfg.TMDB.APIKey)
	l.v.SetDefault("tmdb.base_url", cfg.TMDB.BaseURL)
	l.v.SetDefault("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	l.v.SetDefault("tmdb.timeout", cfg.TMDB.Timeout)

	l.v.SetDefault("summarizer.api_key", cfg.Summarizer.APIKey)
	l.v.SetDefault("summarizer.model", cfg.Summarizer.Model)
	l.v.SetDefault("summarizer.base_url", cfg.Summarizer.BaseURL)

	l.v.SetDefault("player.browser", cfg.Player.Browser)
	l.v.SetDefault("player.args", cfg.Player.Args)
	l.v.SetDefault("player.default_server", cfg.Player.DefaultServer)

	l.v.SetDefault("ui.language", cfg.UI.Language)
	l.v.SetDefault("ui.row_limit", cfg.UI.RowLimit)

	l.v.SetDefault("logging.file", cfg.Logging.File)
	l.v.SetDefault("logging.level", cfg.Logging.Level)
	l.v.SetDefault("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	l.v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	l.v.SetDefault("logging.max_age_days", cfg.Logging.MaxAgeDays)
}

// Save writes the configuration to the loader's file, or to config.yaml in
// the default directory.
func (l *Loader) Save(cfg *Config) error {
	target := l.file
	if target == "" {
		target = filepath.Join(DefaultConfigDir(), "config.yaml")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to keep snake_case key names
	l.v.Set("tmdb.api_key", cfg.TMDB.APIKey)
	l.v.Set("tmdb.base_url", cfg.TMDB.BaseURL)
	l.v.Set("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	l.v.Set("tmdb.timeout", cfg.TMDB.Timeout.String())

	l.v.Set("summarizer.api_key", cfg.Summarizer.APIKey)
	l.v.Set("summarizer.model", cfg.Summarizer.Model)
	l.v.Set("summarizer.base_url", cfg.Summarizer.BaseURL)

	l.v.Set("player.browser", cfg.Player.Browser)
	l.v.Set("player.args", cfg.Player.Args)
	l.v.Set("player.default_server", cfg.Player.DefaultServer)

	l.v.Set("ui.language", cfg.UI.Language)
	l.v.Set("ui.row_limit", cfg.UI.RowLimit)

	l.v.Set("logging.file", cfg.Logging.File)
	l.v.Set("logging.level", cfg.Logging.Level)
	l.v.Set("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	l.v.Set("logging.max_backups", cfg.Logging.MaxBackups)
	l.v.Set("logging.max_age_days", cfg.Logging.MaxAgeDays)

	if err := l.v.WriteConfigAs(target); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if a catalog API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}

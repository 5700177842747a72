// Package config resolves journal settings from the environment, an optional
// .positivity.yaml file, a .env file and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "POSITIVITY"
	configName     = ".positivity" // .yaml is implicit
	ConfigPathEnv  = "POSITIVITY_CONFIG_PATH"
	defaultPath    = "~/.positivity"
	defaultLogFile = "positivity.log"
)

// Config is the resolved runtime configuration.
type Config struct {
	Path string
	AI   AI
	Log  Log
}

// AI selects and authenticates the generative model provider.
type AI struct {
	Provider string
	Model    string
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// Log configures diagnostics output.
type Log struct {
	Level string
	Path  string
}

// BasePath is the directory holding the journal slot.
func (c *Config) BasePath() string {
	return c.Path
}

// TUILogPath is where the terminal UI writes diagnostics when no explicit
// log path is configured.
func (c *Config) TUILogPath() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(c.Path, defaultLogFile)
}

// Load reads configuration. A missing config file is not an error.
func Load() (*Config, error) {
	// A .env file is optional; it commonly carries API_KEY.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.endpoint", "")
	v.SetDefault("ai.timeout", "45s")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.path", "")

	v.SetConfigName(configName)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("config: expand path: %w", err)
	}
	logPath := v.GetString("log.path")
	if logPath != "" {
		if logPath, err = homedir.Expand(logPath); err != nil {
			return nil, fmt.Errorf("config: expand log path: %w", err)
		}
	}

	timeout, err := parseTimeout(v.GetString("ai.timeout"))
	if err != nil {
		return nil, err
	}

	provider := strings.ToLower(strings.TrimSpace(v.GetString("ai.provider")))
	cfg := &Config{
		Path: path,
		AI: AI{
			Provider: provider,
			Model:    strings.TrimSpace(v.GetString("ai.model")),
			APIKey:   strings.TrimSpace(v.GetString("ai.api_key")),
			Endpoint: strings.TrimSpace(v.GetString("ai.endpoint")),
			Timeout:  timeout,
		},
		Log: Log{
			Level: v.GetString("log.level"),
			Path:  logPath,
		},
	}
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = apiKeyFromEnv(provider)
	}
	return cfg, nil
}

// apiKeyFromEnv falls back to the conventional variables of each provider.
func apiKeyFromEnv(provider string) string {
	candidates := []string{"API_KEY"}
	switch provider {
	case "openai":
		candidates = append(candidates, "OPENAI_API_KEY")
	default:
		candidates = append(candidates, "GEMINI_API_KEY", "GOOGLE_API_KEY")
	}
	for _, name := range candidates {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("config: ai.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config: ai.timeout must not be negative")
	}
	return d, nil
}

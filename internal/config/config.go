// Package config provides the viper-backed application configuration and
// logger initialization.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application settings
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig configures the catalog API client
type APIConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	PageLimit  int           `mapstructure:"page_limit"`
	MaxRetries int           `mapstructure:"max_retries"`
	UserAgent  string        `mapstructure:"user_agent"`
}

// OutputConfig configures where the season export is written
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig configures the rotating log file
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Default returns the built-in configuration. With no config file present the
// exporter behaves exactly like these values describe.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    "https://kitsu.io/api/edge",
			Timeout:    30 * time.Second,
			PageLimit:  20,
			MaxRetries: 0,
			UserAgent:  "simulcast/1.0",
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   false,
		},
	}
}

// Load reads configuration from the given file path, or from the default
// search paths when path is empty. A missing config file is not an error; the
// defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("api.base_url", def.API.BaseURL)
	v.SetDefault("api.timeout", def.API.Timeout)
	v.SetDefault("api.page_limit", def.API.PageLimit)
	v.SetDefault("api.max_retries", def.API.MaxRetries)
	v.SetDefault("api.user_agent", def.API.UserAgent)
	v.SetDefault("output.dir", def.Output.Dir)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.max_size", def.Logging.MaxSize)
	v.SetDefault("logging.max_backups", def.Logging.MaxBackups)
	v.SetDefault("logging.max_age", def.Logging.MaxAge)
	v.SetDefault("logging.compress", def.Logging.Compress)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("simulcast")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "simulcast"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

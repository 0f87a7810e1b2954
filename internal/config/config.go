package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ConfigPathEnv points Load at an explicit config file
const ConfigPathEnv = "INDGO_CREW_CONFIG_PATH"

// Config holds all configuration for the crew center tools and daemon
type Config struct {
	DBPath     string
	FleetFile  string // YAML fleet definition; empty selects the built-in IndGo fleet
	RouteSheet RouteSheetConfig
	Log        LogConfig
}

// RouteSheetConfig controls route sheet syncing; an empty URL disables it
type RouteSheetConfig struct {
	URL        string
	Interval   int // seconds between syncs
	Timeout    int // seconds per HTTP attempt
	MaxRetries int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

func (r RouteSheetConfig) IntervalDuration() time.Duration {
	return time.Duration(r.Interval) * time.Second
}

func (r RouteSheetConfig) TimeoutDuration() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", "indgo_crew.db")
	v.SetDefault("fleet_file", "")
	v.SetDefault("route_sheet.url", "")
	v.SetDefault("route_sheet.interval", 3600)
	v.SetDefault("route_sheet.timeout", 10)
	v.SetDefault("route_sheet.max_retries", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("/etc/indgo_crew")
	v.AddConfigPath(".")

	if configPath := os.Getenv(ConfigPathEnv); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// A missing config file is fine; defaults and env vars still apply.
	// Logging is not set up yet, so nothing is reported here.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("INDGO_CREW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		DBPath:    v.GetString("db_path"),
		FleetFile: v.GetString("fleet_file"),
		RouteSheet: RouteSheetConfig{
			URL:        v.GetString("route_sheet.url"),
			Interval:   v.GetInt("route_sheet.interval"),
			Timeout:    v.GetInt("route_sheet.timeout"),
			MaxRetries: v.GetInt("route_sheet.max_retries"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if cfg.RouteSheet.URL != "" {
		if cfg.RouteSheet.Interval <= 0 {
			return fmt.Errorf("route_sheet.interval must be greater than 0")
		}
		if cfg.RouteSheet.Timeout <= 0 {
			return fmt.Errorf("route_sheet.timeout must be greater than 0")
		}
	}

	if cfg.RouteSheet.MaxRetries < 0 {
		return fmt.Errorf("route_sheet.max_retries must not be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}

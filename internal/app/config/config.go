package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	validator "github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort int `mapstructure:"server_port" validate:"min=1,max=65535"`

	// Logging configuration; an empty log dir keeps logs on stdout only
	LogDir string `mapstructure:"log_dir"`

	// Metrics configuration
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MetricsPath    string `mapstructure:"metrics_path" validate:"omitempty,startswith=/"`

	// Playground configuration
	PlaygroundMaxHandles int           `mapstructure:"playground_max_handles" validate:"min=1"`
	PlaygroundIdleTTL    time.Duration `mapstructure:"playground_idle_ttl" validate:"min=1s"`
	PlaygroundSweepCron  string        `mapstructure:"playground_sweep_cron" validate:"required"`

	// Environment (development, production, test)
	Environment string `mapstructure:"environment" validate:"oneof=development production test"`

	v *viper.Viper
}

// LoadConfig reads configuration from file or environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server_port", 8080)
	v.SetDefault("environment", "development")
	v.SetDefault("log_dir", "logs")

	// Metrics defaults
	v.SetDefault("metrics_enabled", true)
	v.SetDefault("metrics_path", "/metrics")

	// Playground defaults
	v.SetDefault("playground_max_handles", 1000)
	v.SetDefault("playground_idle_ttl", "30m")
	v.SetDefault("playground_sweep_cron", "*/5 * * * *")

	// Set config file path
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, continue with environment variables
	}

	// Override with environment variables: SERVER_PORT -> server_port
	v.AutomaticEnv()

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.v = v
	return &config, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Watch reloads the config file whenever it changes and hands the new
// configuration (or the reload error) to onChange. It is a no-op when no
// config file was found.
func (c *Config) Watch(onChange func(*Config, error)) {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return
	}
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		onChange(decode(c.v))
	})
	c.v.WatchConfig()
}

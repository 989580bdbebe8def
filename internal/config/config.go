package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PHOTOPICK_LIBRARY.
const EnvPrefix = "PHOTOPICK"

const (
	EnvDevelopment = "development"
	EnvProduction  = "prod"
	EnvTest        = "test"
)

var (
	ErrInvalidWorkers = errors.New("workers must be at least 1")
	ErrNoLibrary      = errors.New("library directory is required")
)

// Config holds the runtime settings for photopick.
type Config struct {
	Environment      string `mapstructure:"environment"`
	LibraryDir       string `mapstructure:"library"`
	Recursive        bool   `mapstructure:"recursive"`
	Workers          int    `mapstructure:"workers"`
	CancelSuperseded bool   `mapstructure:"cancel_superseded"`
	LogFile          string `mapstructure:"log_file"`
	LogLevel         string `mapstructure:"log_level"`
	OTLPEndpoint     string `mapstructure:"otlp_endpoint"`
	ServiceName      string `mapstructure:"service_name"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Config {
	library := "."
	if home, err := os.UserHomeDir(); err == nil {
		library = filepath.Join(home, "Pictures")
	}
	return Config{
		Environment: EnvDevelopment,
		LibraryDir:  library,
		Workers:     2,
		LogFile:     filepath.Join(os.TempDir(), "photopick.log"),
		LogLevel:    "info",
		ServiceName: "photopick",
	}
}

// SetDefaults registers Defaults with v so unset keys still unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("environment", d.Environment)
	v.SetDefault("library", d.LibraryDir)
	v.SetDefault("recursive", d.Recursive)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("cancel_superseded", d.CancelSuperseded)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("otlp_endpoint", d.OTLPEndpoint)
	v.SetDefault("service_name", d.ServiceName)
}

// Load reads envFile (if set) into the process environment, then the optional
// YAML configFile, then PHOTOPICK_* variables, and unmarshals the result.
// Flags should already be bound to v.
func Load(v *viper.Viper, configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(`-`, `_`, `.`, `_`))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidWorkers, c.Workers)
	}
	if strings.TrimSpace(c.LibraryDir) == "" {
		return ErrNoLibrary
	}
	return nil
}

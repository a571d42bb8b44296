// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config.yaml"
	ConfigDirName  = "s3ls"

	// Environment variables are S3LS_<SECTION>_<KEY>, e.g. S3LS_AWS_PROFILE
	EnvPrefix = "S3LS"
	// Overrides the config file location
	EnvConfigPath = "S3LS_CONFIG"
)

// Only ambient settings live here; credentials always come from the AWS SDK default chain
type AWSConfig struct {
	Region       string `mapstructure:"region"`
	Profile      string `mapstructure:"profile"`
	Endpoint     string `mapstructure:"endpoint" validate:"omitempty,url"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

type LogConfig struct {
	Level  slog.Level `mapstructure:"level"`
	Format string     `mapstructure:"format" validate:"oneof=text json"`
}

type Config struct {
	AWS AWSConfig `mapstructure:"aws"`
	Log LogConfig `mapstructure:"log"`
}

type ConfigManager struct {
	v          *viper.Viper
	configPath string
	validate   *validator.Validate
}

// Creates a config manager reading from configPath.
// An empty path resolves to $S3LS_CONFIG, then ~/.config/s3ls/config.yaml.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	if configPath == "" {
		var err error
		configPath, err = defaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so that Unmarshal sees values supplied only through env
	v.SetDefault("aws.region", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.use_path_style", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	return &ConfigManager{
		v:          v,
		configPath: configPath,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func defaultConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", ConfigDirName, ConfigFileName), nil
}

func (m *ConfigManager) ConfigPath() string {
	return m.configPath
}

// Loads the config file (a missing file is not an error), overlays env vars and validates the result
func (m *ConfigManager) LoadConfig() (*Config, error) {
	if _, err := os.Stat(m.configPath); err == nil {
		m.v.SetConfigFile(m.configPath)
		if err := m.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", m.configPath, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error accessing config file %s: %w", m.configPath, err)
	}

	var cfg Config
	// slog.Level decodes from "debug", "INFO", "warn+2" etc. through its UnmarshalText
	hooks := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := m.v.Unmarshal(&cfg, hooks); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := m.validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	configName = ".discogs-metatagger"
	configDir  = ".discogs-metatagger"
)

type Config struct {
	DiscogsToken  string `mapstructure:"discogs_token"`
	UserAgent     string `mapstructure:"user_agent"`
	LookupTimeout int    `mapstructure:"lookup_timeout"`

	DefaultDirectory string `mapstructure:"default_directory"`
	Recursive        bool   `mapstructure:"recursive"`
	LogLevel         string `mapstructure:"log_level"`

	TitleCase bool `mapstructure:"title_case"`
	AssumeYes bool `mapstructure:"assume_yes"`
}

func DefaultConfig() *Config {
	return &Config{
		UserAgent:        "discogs-metatagger/1.0",
		LookupTimeout:    15,
		DefaultDirectory: ".",
		LogLevel:         "info",
		TitleCase:        true,
	}
}

// Timeout is the Discogs request timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.LookupTimeout) * time.Second
}

// HasToken reports whether a Discogs user token is configured.
func (c *Config) HasToken() bool {
	return strings.TrimSpace(c.DiscogsToken) != ""
}

// LoadConfig reads the global viper instance. An explicit file set with
// viper.SetConfigFile wins; otherwise the saved config, then
// $HOME/.discogs-metatagger.yaml, then ./.discogs-metatagger.yaml.
func LoadConfig() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	config := DefaultConfig()
	setDefaults(v, config)

	if v.ConfigFileUsed() == "" {
		if err := addSearchPaths(v); err != nil {
			return nil, err
		}
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

func addSearchPaths(v *viper.Viper) error {
	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	saved := filepath.Join(home, configDir, "config.yaml")
	if _, err := os.Stat(saved); err == nil {
		v.SetConfigFile(saved)
		return nil
	}

	v.AddConfigPath(home)
	v.AddConfigPath(".")
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	return nil
}

func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("discogs_token", config.DiscogsToken)
	v.SetDefault("user_agent", config.UserAgent)
	v.SetDefault("lookup_timeout", config.LookupTimeout)
	v.SetDefault("default_directory", config.DefaultDirectory)
	v.SetDefault("recursive", config.Recursive)
	v.SetDefault("log_level", config.LogLevel)
	v.SetDefault("title_case", config.TitleCase)
	v.SetDefault("assume_yes", config.AssumeYes)
}

func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}
	return SaveConfigTo(path, config)
}

func SaveConfigTo(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("discogs_token", config.DiscogsToken)
	v.Set("user_agent", config.UserAgent)
	v.Set("lookup_timeout", config.LookupTimeout)
	v.Set("default_directory", config.DefaultDirectory)
	v.Set("recursive", config.Recursive)
	v.Set("log_level", config.LogLevel)
	v.Set("title_case", config.TitleCase)
	v.Set("assume_yes", config.AssumeYes)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func GetConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, "config.yaml"), nil
}

func CreateDefaultConfig() error {
	return SaveConfig(DefaultConfig())
}

func ValidateConfig(config *Config) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	found := false
	for _, level := range validLogLevels {
		if config.LogLevel == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	if config.LookupTimeout <= 0 {
		return fmt.Errorf("invalid lookup timeout: %d", config.LookupTimeout)
	}

	if strings.TrimSpace(config.UserAgent) == "" {
		return fmt.Errorf("user agent must not be empty")
	}

	return nil
}

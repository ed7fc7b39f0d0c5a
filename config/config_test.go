package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func TestLoadFromDefaults(t *testing.T) {
	withHome(t)
	chdir(t, t.TempDir())

	config, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, 15*time.Second, config.Timeout())
	assert.False(t, config.HasToken())
}

func TestLoadFromFile(t *testing.T) {
	withHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("discogs_token: abc\nlookup_timeout: 5\ntitle_case: false\n"), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	config, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, "abc", config.DiscogsToken)
	assert.Equal(t, 5, config.LookupTimeout)
	assert.False(t, config.TitleCase)
	assert.Equal(t, "discogs-metatagger/1.0", config.UserAgent)
}

func TestLoadFromHomeFile(t *testing.T) {
	home := withHome(t)
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(home, ".discogs-metatagger.yaml"), []byte("log_level: debug\n"), 0644))

	config, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadFromMissingExplicitFile(t *testing.T) {
	withHome(t)
	v := viper.New()
	v.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadFrom(v)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	withHome(t)
	chdir(t, t.TempDir())

	config := DefaultConfig()
	config.DiscogsToken = "token-123"
	config.AssumeYes = true
	require.NoError(t, SaveConfig(config))

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := LoadFrom(viper.New())
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"zero timeout", func(c *Config) { c.LookupTimeout = 0 }, true},
		{"blank user agent", func(c *Config) { c.UserAgent = " " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := ValidateConfig(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

// Config loading for the shortlink CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir = "data_dir"
)

// defaultConfigYAML is written to config.yaml on first run so the user has
// something to edit.
const defaultConfigYAML = `# Shortlink CLI configuration

# Prefix used when printing short links.
base_url: "cli://"

# Length of generated short codes (base62).
short_code_length: 7

# Time-to-live of new links, in hours.
default_ttl_hours: 24

# Default click limit for new links. Leave empty for unlimited.
default_click_limit: 10

# Maximum accepted length of a long URL.
max_url_length: 2048

# Run lifecycle cleanup before every operation.
cleanup_on_each_op: true

# Allow owners to edit the click limit of their links.
allow_owner_edit_limit: true

# Remove expired links physically instead of marking them EXPIRED.
hard_delete_expired: true

# Remove quota-exhausted links physically instead of marking them LIMIT_REACHED.
hard_delete_limit_reached: true

# Record lifecycle events to events.json.
events_log_enabled: true

# Data directory (optional; overridable by --data-dir flag)
# data_dir:
`

// loadConfig reads config.yaml from the config directory using Viper,
// creating the directory and a default file on first run. It returns the
// typed configuration plus the data_dir value from the file, which feeds
// the data-directory resolution chain. A missing config.yaml is not an
// error; defaults apply.
func loadConfig(configDir string) (types.Config, string, error) {
	cfg := types.DefaultConfig()

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return cfg, "", fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return cfg, "", fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault("base_url", cfg.BaseURL)
	v.SetDefault("short_code_length", cfg.ShortCodeLength)
	v.SetDefault("default_ttl_hours", cfg.DefaultTTLHours)
	if cfg.DefaultClickLimit != nil {
		v.SetDefault("default_click_limit", *cfg.DefaultClickLimit)
	}
	v.SetDefault("max_url_length", cfg.MaxURLLength)
	v.SetDefault("cleanup_on_each_op", cfg.CleanupOnEachOp)
	v.SetDefault("allow_owner_edit_limit", cfg.AllowOwnerEditLimit)
	v.SetDefault("hard_delete_expired", cfg.HardDeleteExpired)
	v.SetDefault("hard_delete_limit_reached", cfg.HardDeleteLimitReached)
	v.SetDefault("events_log_enabled", cfg.EventsLogEnabled)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return cfg, "", fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, "", fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, v.GetString(cfgKeyDataDir), nil
}

// ensureDefaultConfigFile creates a default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

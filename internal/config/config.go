// Package config holds runtime settings for the Xel'thor translator CLI.
//
// Sources are merged in order: built-in defaults, then an optional config
// file, then environment variables (XELTHOR_ prefix), then command-line
// flags. Later sources win.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	// AuthFile is the JSON account store path.
	AuthFile string
	// DictionaryFile is the JSON dictionary store path.
	DictionaryFile string
	// BackupDir receives timestamped dictionary backups.
	BackupDir string
	// SessionTTL is how long a login session stays valid.
	SessionTTL time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with the stock settings.
func (c *Config) LoadDefaults() {
	c.AuthFile = "xelthor_auth.json"
	c.DictionaryFile = "xelthor_dictionary.json"
	c.BackupDir = "backups"
	c.SessionTTL = 24 * time.Hour
	c.LogLevel = "info"
}

// Load builds the Config from defaults, the optional config file, the
// environment, and the given flag set.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	v := viper.New()
	v.SetDefault("auth_file", cfg.AuthFile)
	v.SetDefault("dictionary_file", cfg.DictionaryFile)
	v.SetDefault("backup_dir", cfg.BackupDir)
	v.SetDefault("session_ttl", cfg.SessionTTL)
	v.SetDefault("log_level", cfg.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".xelthor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	v.SetEnvPrefix("XELTHOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.AuthFile = v.GetString("auth_file")
	cfg.DictionaryFile = v.GetString("dictionary_file")
	cfg.BackupDir = v.GetString("backup_dir")
	cfg.SessionTTL = v.GetDuration("session_ttl")
	cfg.LogLevel = v.GetString("log_level")

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = filepath.Join(filepath.Dir(cfg.DictionaryFile), "backups")
	}
	return cfg, nil
}

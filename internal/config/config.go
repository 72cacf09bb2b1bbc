// Package config provides Viper-based configuration loading for the roll bonus engine.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// ModuleConfig identifies the module namespace and the user the engine runs as.
type ModuleConfig struct {
	// Namespace is the flag namespace module values are stored under.
	Namespace string `mapstructure:"namespace"`
	// UserID is the user this process acts for.
	UserID string `mapstructure:"user_id"`
	// ActiveUserID is the single user allowed to apply automatic flag mutations.
	ActiveUserID string `mapstructure:"active_user_id"`
	// GM grants access to GM-only kinds such as the expression target.
	GM bool `mapstructure:"gm"`
	// Locale is a BCP 47 tag used for labels and collation.
	Locale string `mapstructure:"locale"`
}

// IsActiveUser reports whether this process is the designated active user.
func (m ModuleConfig) IsActiveUser() bool {
	return m.UserID != "" && m.UserID == m.ActiveUserID
}

// GridConfig holds square grid measurement rules.
type GridConfig struct {
	// Diagonals is "5105" (alternating 5/10ft) or "555" (every diagonal 5ft).
	Diagonals string `mapstructure:"diagonals"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RedisConfig holds flag store settings. An empty URL selects the in-memory store.
type RedisConfig struct {
	URL       string `mapstructure:"url"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// GlobalBonusConfig toggles scene-wide bonuses such as flanking.
type GlobalBonusConfig struct {
	Disabled []string `mapstructure:"disabled"`
}

// IsDisabled reports whether the global bonus key was switched off.
func (g GlobalBonusConfig) IsDisabled(key string) bool {
	return slices.Contains(g.Disabled, key)
}

// Config is the top-level configuration.
type Config struct {
	Module        ModuleConfig      `mapstructure:"module"`
	Grid          GridConfig        `mapstructure:"grid"`
	Logging       LoggingConfig     `mapstructure:"logging"`
	Redis         RedisConfig       `mapstructure:"redis"`
	GlobalBonuses GlobalBonusConfig `mapstructure:"global_bonuses"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Module.Namespace == "" {
		errs = append(errs, "module.namespace must not be empty")
	}
	if c.Module.Locale == "" {
		errs = append(errs, "module.locale must not be empty")
	}
	if c.Grid.Diagonals != "5105" && c.Grid.Diagonals != "555" {
		errs = append(errs, fmt.Sprintf("grid.diagonals must be one of [5105, 555], got %q", c.Grid.Diagonals))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Redis.URL != "" && c.Redis.KeyPrefix == "" {
		errs = append(errs, "redis.key_prefix must not be empty when redis.url is set")
	}

	if len(errs) > 0 {
		return errors.Newf(errors.CodeValidation, "configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return errors.Newf(errors.CodeValidation, "logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return errors.Newf(errors.CodeValidation, "logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from path when it is non-empty, applies ROLLBONUS_
// environment overrides, and validates the result.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("ROLLBONUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "reading config file")
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	if v == nil {
		return Config{}, errors.New(errors.CodeValidation, "viper instance must not be nil")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.CodeValidation, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("module.namespace", "ckl-roll-bonuses")
	v.SetDefault("module.user_id", "")
	v.SetDefault("module.active_user_id", "")
	v.SetDefault("module.gm", false)
	v.SetDefault("module.locale", "en")

	v.SetDefault("grid.diagonals", "5105")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.key_prefix", "flags")

	v.SetDefault("global_bonuses.disabled", []string{})
}

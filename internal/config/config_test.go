package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/roll-bonuses/internal/config"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

func validConfig() config.Config {
	return config.Config{
		Module:  config.ModuleConfig{Namespace: "ckl-roll-bonuses", Locale: "en"},
		Grid:    config.GridConfig{Diagonals: "5105"},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
		Redis:   config.RedisConfig{KeyPrefix: "flags"},
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "ckl-roll-bonuses", cfg.Module.Namespace)
	assert.Equal(t, "5105", cfg.Grid.Diagonals)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
module:
  namespace: test-bonuses
  user_id: u1
  active_user_id: u1
  gm: true
grid:
  diagonals: "555"
logging:
  level: debug
  format: console
global_bonuses:
  disabled: [global-bonus_shoot-into-melee]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-bonuses", cfg.Module.Namespace)
	assert.True(t, cfg.Module.GM)
	assert.True(t, cfg.Module.IsActiveUser())
	assert.Equal(t, "555", cfg.Grid.Diagonals)
	assert.True(t, cfg.GlobalBonuses.IsDisabled("global-bonus_shoot-into-melee"))
	assert.False(t, cfg.GlobalBonuses.IsDisabled("global-bonus_flank"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromViperNil(t *testing.T) {
	_, err := config.LoadFromViper(nil)
	assert.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestLoadFromViper(t *testing.T) {
	v := viper.New()
	v.Set("module.namespace", "ns")
	v.Set("module.locale", "en")
	v.Set("grid.diagonals", "5105")
	v.Set("logging.level", "warn")
	v.Set("logging.format", "json")

	cfg, err := config.LoadFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Module.Namespace = ""
	cfg.Grid.Diagonals = "hex"
	cfg.Logging.Level = "loud"
	cfg.Redis = config.RedisConfig{URL: "redis://localhost:6379"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "module.namespace")
	assert.Contains(t, err.Error(), "grid.diagonals")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "redis.key_prefix")
	assert.True(t, errors.IsValidation(err))
}

func TestLoadFromViperReportsValidationCode(t *testing.T) {
	v := viper.New()
	v.Set("module.namespace", "ns")
	v.Set("module.locale", "en")
	v.Set("grid.diagonals", "hex")
	v.Set("logging.level", "info")
	v.Set("logging.format", "yaml")

	_, err := config.LoadFromViper(v)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "logging.format")
}

func TestActiveUserRequiresMatch(t *testing.T) {
	assert.False(t, config.ModuleConfig{}.IsActiveUser())
	assert.False(t, config.ModuleConfig{UserID: "a", ActiveUserID: "b"}.IsActiveUser())
}

func TestProperty_ValidLogLevelsAccepted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Logging.Level = rapid.SampledFrom([]string{"debug", "info", "warn", "error"}).Draw(t, "level")
		cfg.Logging.Format = rapid.SampledFrom([]string{"json", "console"}).Draw(t, "format")
		if err := cfg.Validate(); err != nil {
			t.Fatalf("expected valid config, got %v", err)
		}
	})
}

func TestProperty_UnknownDiagonalRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		rule := rapid.StringMatching(`[a-z0-9]{1,6}`).Draw(t, "rule")
		if rule == "5105" || rule == "555" {
			return
		}
		cfg.Grid.Diagonals = rule
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected rejection for %q", rule)
		}
	})
}

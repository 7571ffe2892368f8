// internal/config/config.go
//
// Runtime configuration.
//
// Sources, lowest precedence first:
//   - built-in defaults (see Defaults)
//   - an optional config file (any format viper reads: yaml, toml, json, ...)
//   - a .env file in the working directory, then WORDLE_* environment variables
//   - command-line flags that were explicitly set
//
// The merged result is validated before it is returned.

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. WORDLE_MAX_ATTEMPTS.
const EnvPrefix = "WORDLE"

// ErrInvalidConfig is returned when the merged configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration.
type Config struct {
	Dictionary   string        `mapstructure:"dictionary"` // empty means the embedded list
	MaxAttempts  int           `mapstructure:"max_attempts" validate:"min=1,max=26"`
	Suggestions  int           `mapstructure:"suggestions" validate:"min=1,max=1000"`
	Seed         uint64        `mapstructure:"seed"` // 0 means time seeded
	LogLevel     string        `mapstructure:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	LogPretty    bool          `mapstructure:"log_pretty"`
	Addr         string        `mapstructure:"addr" validate:"required,hostname_port"`
	ClientOrigin string        `mapstructure:"client_origin" validate:"omitempty,url"`
	DailySalt    string        `mapstructure:"daily_salt" validate:"required"`
	SessionIdle  time.Duration `mapstructure:"session_idle" validate:"gte=0"` // 0 never evicts
}

// Defaults returns the built-in value of every key.
func Defaults() map[string]any {
	return map[string]any{
		"dictionary":    "",
		"max_attempts":  6,
		"suggestions":   25,
		"seed":          0,
		"log_level":     "info",
		"log_pretty":    false,
		"addr":          "127.0.0.1:5175",
		"client_origin": "http://localhost:5173",
		"daily_salt":    "local_dev_salt",
		"session_idle":  30 * time.Minute,
	}
}

// Load merges every source into a validated Config. flags may be nil; flag
// names map to keys with hyphens turned into underscores (--max-attempts →
// max_attempts). file may be empty.
func Load(flags *pflag.FlagSet, file string) (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	defaults := Defaults()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, known := defaults[key]; !known || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &cfg, nil
}

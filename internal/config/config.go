// Package config loads GA parameters and run options the way
// pkg/config/config.go (noah-isme-sma-adp-api) loads its own settings:
// built-in defaults, overridden by an optional .env file, overridden by
// the environment, with CLI flags applied last by the caller (cmd/scheduga).
package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/campusforge/scheduga/ga"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// LogConfig controls internal/logging's zap.Config construction.
type LogConfig struct {
	Level  string
	Format string
}

// Config is the full set of run options cmd/scheduga needs beyond the
// catalog itself.
type Config struct {
	Env         string
	Log         LogConfig
	GA          ga.Config
	Workers     int
	MetricsAddr string
}

// Load reads SCHEDUGA_* environment variables (and an optional .env file
// in the working directory), falling back to DefaultConfig()'s values
// wherever a variable is unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Env: v.GetString("SCHEDUGA_ENV"),
		Log: LogConfig{
			Level:  v.GetString("SCHEDUGA_LOG_LEVEL"),
			Format: v.GetString("SCHEDUGA_LOG_FORMAT"),
		},
		GA: ga.Config{
			IndividualsCount: uint(v.GetUint("SCHEDUGA_INDIVIDUALS_COUNT")),
			IterationsCount:  uint(v.GetUint("SCHEDUGA_ITERATIONS_COUNT")),
			SelectionCount:   uint(v.GetUint("SCHEDUGA_SELECTION_COUNT")),
			CrossoverCount:   uint(v.GetUint("SCHEDUGA_CROSSOVER_COUNT")),
			MutationChance:   uint(v.GetUint("SCHEDUGA_MUTATION_CHANCE")),
		},
		Workers:     v.GetInt("SCHEDUGA_WORKERS"),
		MetricsAddr: v.GetString("SCHEDUGA_METRICS_ADDR"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := ga.DefaultConfig()

	v.SetDefault("SCHEDUGA_ENV", EnvDevelopment)
	v.SetDefault("SCHEDUGA_LOG_LEVEL", "info")
	v.SetDefault("SCHEDUGA_LOG_FORMAT", "console")

	v.SetDefault("SCHEDUGA_INDIVIDUALS_COUNT", def.IndividualsCount)
	v.SetDefault("SCHEDUGA_ITERATIONS_COUNT", def.IterationsCount)
	v.SetDefault("SCHEDUGA_SELECTION_COUNT", def.SelectionCount)
	v.SetDefault("SCHEDUGA_CROSSOVER_COUNT", def.CrossoverCount)
	v.SetDefault("SCHEDUGA_MUTATION_CHANCE", def.MutationChance)

	v.SetDefault("SCHEDUGA_WORKERS", 0)
	v.SetDefault("SCHEDUGA_METRICS_ADDR", "")
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
// Returns a populated Config struct or an error if loading or validation
// fails.
//
// Environment variables use the MOVIES_ prefix with underscores separating
// nested keys, e.g. MOVIES_SERVER_PORT or MOVIES_DATABASE_URL. The config
// file, when present, is config.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOVIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; env vars and defaults carry the load.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Viper only surfaces env vars for keys it knows about, so bind the
	// full key set explicitly before unmarshalling.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"server.rate_limit_per_minute",
		"database.url",
		"database.connect_max_elapsed_seconds",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
		"auth.admin_username",
		"auth.admin_password_hash",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env var for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults for settings that have a sensible value
// out of the box. Secrets and the database URL deliberately have none.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.rate_limit_per_minute", 0)
	v.SetDefault("database.connect_max_elapsed_seconds", 30)
	v.SetDefault("auth.token_lifetime_minutes", 60)
}

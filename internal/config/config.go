package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// RateLimitPerMinute caps requests per client IP across the API.
	// Zero disables rate limiting.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`

	// ConnectMaxElapsedSeconds bounds the exponential-backoff retry loop
	// used when establishing the initial connection.
	ConnectMaxElapsedSeconds int `mapstructure:"connect_max_elapsed_seconds" validate:"gte=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the lifetime of issued access tokens.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// AdminUsername and AdminPasswordHash identify the single operator
	// account that can obtain tokens. The hash is a bcrypt hash.
	AdminUsername     string `mapstructure:"admin_username"      validate:"required"`
	AdminPasswordHash string `mapstructure:"admin_password_hash" validate:"required"`
}

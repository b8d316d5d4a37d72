// Package config loads process-wide configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`

	// Migrate enables schema auto-migration at startup.
	Migrate bool `mapstructure:"migrate"`
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	// JWTSecret signs every issued token. Required; there is no default.
	JWTSecret string `mapstructure:"jwt_secret"`

	// TokenExpiration is the validity window of issued tokens.
	TokenExpiration time.Duration `mapstructure:"token_expiration"`
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Load reads configuration from environment variables (SERVER_PORT, DB_HOST,
// AUTH_JWT_SECRET, ...). A missing signing secret is a configuration error the
// caller must treat as fatal at startup, never per-request.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "resume_backend")
	v.SetDefault("db.migrate", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_expiration", 12*time.Hour)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required")
	}

	return &cfg, nil
}

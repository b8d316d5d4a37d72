package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingSecret(t *testing.T) {
	cfg, err := Load()

	assert.Nil(t, cfg, "config should be nil")
	require.Error(t, err, "missing signing secret must be a startup error")
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "resume_backend", cfg.Database.Name)
	assert.False(t, cfg.Database.Migrate)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenExpiration)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "resumes_test")
	t.Setenv("DB_MIGRATE", "true")
	t.Setenv("AUTH_TOKEN_EXPIRATION", "1h")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "resumes_test", cfg.Database.Name)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, time.Hour, cfg.Auth.TokenExpiration)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "pw",
		Name:     "resume_backend",
	}

	dsn := d.DSN()

	assert.Equal(t, "host=localhost port=5432 user=postgres password=pw dbname=resume_backend sslmode=disable", dsn)
}

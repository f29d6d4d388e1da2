package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "disable", cfg.DBSSLMode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_NAME", "college_test")
	cfg := Load()
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "college_test", cfg.DBName)
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "college")
	t.Setenv("DB_PORT", "5433")
	cfg := Load()
	assert.Equal(t,
		"host=db.internal user=svc password=pw dbname=college port=5433 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}

package config

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestLoad_DefaultValues(t *testing.T) {
    for _, k := range []string{"PORT", "DB_HOST", "DB_NAME", "KV_BACKEND", "LOG_LEVEL", "REDIS_DB", "SITE_URL", "JWT_SECRET", "REFRESH_JWT_SECRET"} {
        t.Setenv(k, "")
    }

    cfg := Load()

    assert.Equal(t, "8080", cfg.Port)
    assert.Equal(t, "localhost", cfg.DBHost)
    assert.Equal(t, "spmb_db", cfg.DBName)
    assert.Equal(t, "postgres", cfg.KVBackend)
    assert.Equal(t, "info", cfg.LogLevel)
    assert.Equal(t, 0, cfg.RedisDB)
    assert.Equal(t, "http://localhost:3000", cfg.SiteURL)
    assert.Equal(t, cfg.JWTSecret, cfg.RefreshJWTSecret)
}

func TestLoad_EnvironmentVariables(t *testing.T) {
    t.Setenv("KV_BACKEND", "Redis")
    t.Setenv("REDIS_DB", "3")
    t.Setenv("LOG_LEVEL", "DEBUG")
    t.Setenv("SITE_URL", "https://smpit.example.sch.id/")
    t.Setenv("JWT_SECRET", "s1")
    t.Setenv("REFRESH_JWT_SECRET", "")

    cfg := Load()

    assert.Equal(t, "redis", cfg.KVBackend)
    assert.Equal(t, 3, cfg.RedisDB)
    assert.Equal(t, "debug", cfg.LogLevel)
    assert.Equal(t, "https://smpit.example.sch.id", cfg.SiteURL)
    assert.Equal(t, "s1", cfg.RefreshJWTSecret)
}

func TestLoad_InvalidRedisDBFallsBack(t *testing.T) {
    t.Setenv("REDIS_DB", "not-a-number")

    assert.Equal(t, 0, Load().RedisDB)
}

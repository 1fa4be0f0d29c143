package config

import (
    "os"
    "strconv"
    "strings"
)

type Config struct {
    Port       string
    GinMode    string
    DBHost     string
    DBPort     string
    DBUser     string
    DBPassword string
    DBName     string
    DBSSLMode  string
    AdminEmail    string
    AdminPassword string
    AdminFullName string
    // Token settings
    JWTSecret             string
    AccessTokenTTLMinutes string // minutes
    RefreshTokenTTLDays   string // days
    RefreshJWTSecret      string
    // Logging
    LogLevel  string
    LogFormat string // json | console
    // KV persistence for the SPMB/inbox collections
    KVBackend     string // memory | redis | postgres
    KVPrefix      string
    RedisAddr     string
    RedisPassword string
    RedisDB       int
    // Public site
    SiteURL string
}

func Load() *Config {
    return &Config{
        Port:       getenv("PORT", "8080"),
        GinMode:    getenv("GIN_MODE", "release"),
        DBHost:     getenv("DB_HOST", "localhost"),
        DBPort:     getenv("DB_PORT", "5432"),
        DBUser:     getenv("DB_USER", "postgres"),
        DBPassword: getenv("DB_PASSWORD", "postgres"),
        DBName:     getenv("DB_NAME", "spmb_db"),
        DBSSLMode:  getenv("DB_SSLMODE", "disable"),
        AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
        AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
        AdminFullName: getenv("ADMIN_FULL_NAME", "Administrator"),
        JWTSecret:             getenv("JWT_SECRET", "supersecret_change_me"),
        AccessTokenTTLMinutes: getenv("ACCESS_TOKEN_TTL_MINUTES", "15"),
        RefreshTokenTTLDays:   getenv("REFRESH_TOKEN_TTL_DAYS", "30"),
        RefreshJWTSecret:      getenv("REFRESH_JWT_SECRET", getenv("JWT_SECRET", "supersecret_change_me")),
        LogLevel:      strings.ToLower(getenv("LOG_LEVEL", "info")),
        LogFormat:     strings.ToLower(getenv("LOG_FORMAT", "json")),
        KVBackend:     strings.ToLower(getenv("KV_BACKEND", "postgres")),
        KVPrefix:      getenv("KV_PREFIX", "spmb:"),
        RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
        RedisPassword: getenv("REDIS_PASSWORD", ""),
        RedisDB:       getenvInt("REDIS_DB", 0),
        SiteURL:       strings.TrimRight(getenv("SITE_URL", "http://localhost:3000"), "/"),
    }
}

func getenv(key, fallback string) string {
    v := os.Getenv(key)
    if v == "" {
        return fallback
    }
    return v
}

func getenvInt(key string, fallback int) int {
    v := os.Getenv(key)
    if v == "" {
        return fallback
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        return fallback
    }
    return n
}

// Package config reads process settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type SessionBackend string

const (
	SessionMemory SessionBackend = "memory"
	SessionRedis  SessionBackend = "redis"
)

const defaultSessionSecret = "quiz-web-dev-secret"

type Config struct {
	HTTPAddr string

	DBDriver string // sqlite|postgres
	DBDSN    string

	Session SessionConfig
	Redis   RedisConfig

	CORSOrigins    []string
	PageSize       int
	RequestTimeout time.Duration
}

type SessionConfig struct {
	Backend SessionBackend
	Secret  string
	TTL     time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = envOr("ADDR", ":8080")
	}
	return Config{
		HTTPAddr: addr,
		DBDriver: envOr("DB_DRIVER", "sqlite"),
		DBDSN:    envOr("DB_DSN", ""),
		Session: SessionConfig{
			Backend: SessionBackend(strings.ToLower(envOr("SESSION_BACKEND", string(SessionMemory)))),
			Secret:  envOr("SESSION_SECRET", defaultSessionSecret),
			TTL:     envDuration("SESSION_TTL", 24*time.Hour),
		},
		Redis: RedisConfig{
			Host:     envOr("REDIS_HOST", "localhost"),
			Port:     envOr("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000"),
		PageSize:       envInt("PAGE_SIZE", 10),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

// UsesDefaultSecret reports whether sessions are signed with the built-in
// development secret.
func (c Config) UsesDefaultSecret() bool {
	return c.Session.Secret == defaultSessionSecret
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return v
}

func envDuration(k string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

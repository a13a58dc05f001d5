// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
	GetAccessTokenTTL() time.Duration
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// ValidationConfig provides settings for the message validation engine.
type ValidationConfig interface {
	GetStrictChoices() bool
	GetMaxBodySize() int64
}

// ScenarioConfig provides settings for scenario-driven sample generation.
type ScenarioConfig interface {
	GetScenarioPaths() []string
}

// PublishConfig provides settings for envelope assembly.
type PublishConfig interface {
	GetDefaultFromBIC() string
	GetDefaultToBIC() string
	GetBusinessService() string
}

// RateLimitConfig provides settings for per-IP request throttling.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env             string
	HTTPAddr        string
	JWTAccessSecret string
	AccessTokenTTL  time.Duration
	CORSAllowAll    bool
	CORSOrigins     []string
	CORSAllowCreds  bool
	StrictChoices   bool
	MaxBodySize     int64
	ScenarioPaths   []string
	DefaultFromBIC  string
	DefaultToBIC    string
	BusinessService string
	RateLimitRPS    float64
	RateLimitBurst  int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string        { return c.JWTAccessSecret }
func (c *Config) GetAccessTokenTTL() time.Duration  { return c.AccessTokenTTL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// ValidationConfig implementation
func (c *Config) GetStrictChoices() bool { return c.StrictChoices }
func (c *Config) GetMaxBodySize() int64  { return c.MaxBodySize }

// ScenarioConfig implementation
func (c *Config) GetScenarioPaths() []string { return c.ScenarioPaths }

// PublishConfig implementation
func (c *Config) GetDefaultFromBIC() string  { return c.DefaultFromBIC }
func (c *Config) GetDefaultToBIC() string    { return c.DefaultToBIC }
func (c *Config) GetBusinessService() string { return c.BusinessService }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		JWTAccessSecret: getEnv("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:  mustDuration(getEnv("JWT_ACCESS_TTL", "15m")),
		CORSAllowAll:    corsAllowAll,
		CORSOrigins:     corsOrigins,
		CORSAllowCreds:  strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		StrictChoices:   strings.EqualFold(getEnv("MX_STRICT_CHOICES", "false"), "true"),
		MaxBodySize:     mustInt64(getEnv("MX_MAX_BODY_SIZE", "10485760")),
		ScenarioPaths:   splitList(getEnv("MX_SCENARIO_PATH", "")),
		DefaultFromBIC:  getEnv("MX_DEFAULT_FROM_BIC", ""),
		DefaultToBIC:    getEnv("MX_DEFAULT_TO_BIC", ""),
		BusinessService: getEnv("MX_BUSINESS_SERVICE", ""),
		RateLimitRPS:    mustFloat(getEnv("RATE_LIMIT_RPS", "20")),
		RateLimitBurst:  int(mustInt64(getEnv("RATE_LIMIT_BURST", "40"))),
	}

	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.MaxBodySize <= 0 {
		return nil, fmt.Errorf("MX_MAX_BODY_SIZE must be a positive integer")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

// splitList splits a colon-separated path list, the same convention the
// scenario loader accepts through MX_SCENARIO_PATH.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ":")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

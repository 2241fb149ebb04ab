// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/api and cmd/probe.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Game registry — the games this backend aggregates, with the category
// schema each one normalizes into and the provider that serves it.
// --------------------------------------------------------------------------

type GameConfig struct {
	Name     string
	Category string
	Provider string
}

var GameRegistry = map[string]GameConfig{
	"League of Legends": {Name: "League of Legends", Category: "MOBA", Provider: "riot"},
	"Valorant":          {Name: "Valorant", Category: "FPS", Provider: "riot"},
	"Dota 2":            {Name: "Dota 2", Category: "MOBA", Provider: "opendota"},
	"Overwatch 2":       {Name: "Overwatch 2", Category: "FPS", Provider: "overfast"},
	"Rainbow Six Siege": {Name: "Rainbow Six Siege", Category: "FPS", Provider: "ubisoft"},
	"World of Warcraft": {Name: "World of Warcraft", Category: "RPG", Provider: "blizzard"},
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Provider credentials and regions
	RiotAPIKey        string
	RiotRegion        string // platform region, e.g. na1
	RiotRoutingRegion string // continental routing, e.g. americas
	UbisoftAppID      string
	UbisoftSessionID  string

	// Outbound per-provider budgets (requests per minute)
	RiotRequestsPerMinute     int
	OpenDotaRequestsPerMinute int
	OverFastRequestsPerMinute int
	UbisoftRequestsPerMinute  int

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible
// defaults. No variable is mandatory: a missing RIOT_API_KEY switches the
// Riot client into its mock fallback instead of failing startup.
func Load() (*Config, error) {
	return &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:8081",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		RiotAPIKey:        envOr("RIOT_API_KEY", ""),
		RiotRegion:        envOr("RIOT_REGION", "na1"),
		RiotRoutingRegion: envOr("RIOT_ROUTING_REGION", "americas"),
		UbisoftAppID:      envOr("UBISOFT_APP_ID", ""),
		UbisoftSessionID:  envOr("UBISOFT_SESSION_ID", ""),

		RiotRequestsPerMinute:     envInt("RIOT_REQUESTS_PER_MINUTE", 100),
		OpenDotaRequestsPerMinute: envInt("OPENDOTA_REQUESTS_PER_MINUTE", 60),
		OverFastRequestsPerMinute: envInt("OVERFAST_REQUESTS_PER_MINUTE", 120),
		UbisoftRequestsPerMinute:  envInt("UBISOFT_REQUESTS_PER_MINUTE", 60),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}

// Package config reads the crew center settings from the environment. An
// optional .env file in the working directory is loaded first; variables
// already set in the environment win over it.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/providers"

	"github.com/joho/godotenv"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"

	DefaultCrewUsers = "admin:admin,THT1001:1234"
	DefaultJWTSecret = "change-me"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	WeatherBaseURL string
	WeatherTimeout time.Duration

	FsHubBaseURL string
	FsHubAirline string
	FsHubTimeout time.Duration

	CacheBackend  string
	CacheShortTTL time.Duration
	CacheLongTTL  time.Duration

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	DBDriver string
	DBDSN    string

	JWTSecret  string
	CrewUsers  string
	RosterFile string

	MailTo    string
	MailQueue string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration. Malformed values fall back to their defaults
// with a warning rather than stopping the server.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logging.Warn("Failed to load .env file", "error", err.Error())
	}

	return &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		WeatherBaseURL: getEnv("WEATHER_BASE_URL", providers.DefaultWeatherBaseURL),
		WeatherTimeout: getDuration("WEATHER_TIMEOUT", providers.DefaultWeatherTimeout),

		FsHubBaseURL: getEnv("FSHUB_BASE_URL", providers.DefaultFsHubBaseURL),
		FsHubAirline: getEnv("FSHUB_AIRLINE", providers.DefaultFsHubAirline),
		FsHubTimeout: getDuration("FSHUB_TIMEOUT", providers.DefaultFsHubTimeout),

		CacheBackend:  strings.ToLower(getEnv("CACHE_BACKEND", BackendMemory)),
		CacheShortTTL: getDuration("CACHE_SHORT_TTL", constants.ShortCacheTTL),
		CacheLongTTL:  getDuration("CACHE_LONG_TTL", constants.LongCacheTTL),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getInt("REDIS_DB", 0),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBDSN:    getEnv("DB_DSN", "crewcenter.db"),

		JWTSecret:  getEnv("JWT_SECRET", DefaultJWTSecret),
		CrewUsers:  getEnv("CREW_USERS", DefaultCrewUsers),
		RosterFile: os.Getenv("ROSTER_FILE"),

		MailTo:    getEnv("MAIL_TO", "staff@atn-virtual.fr"),
		MailQueue: strings.ToLower(getEnv("MAIL_QUEUE", BackendMemory)),

		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 0.2),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 5),
	}
}

// Validate rejects settings the server must not run with. In production the
// session tokens need a real signing key.
func (c *Config) Validate() error {
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret) {
		return errors.New("JWT_SECRET must be set to a non-default value in production")
	}
	return nil
}

// IsProduction reports whether APP_ENV is production
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logging.Warn("Invalid duration, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logging.Warn("Invalid integer, using default", "key", key, "value", v)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		logging.Warn("Invalid number, using default", "key", key, "value", v)
		return fallback
	}
	return f
}

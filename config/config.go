package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Defaults are suitable for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// MongoDB
	MongoURL        string
	MongoDatabase   string
	MongoTimeout    time.Duration
	MongoMaxPool    uint64
	MongoMinPool    uint64
	MongoRetries    int
	MongoRetryDelay time.Duration

	// Redis (community feed cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	FeedCacheTTL  time.Duration

	// Google Cloud Storage (post image uploads)
	GCSBucket              string
	GCSCredentialsJSONPath string // optional; if empty, Application Default Credentials are used

	// Access tokens
	TokenSecret   string
	TokenLifetime time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// HTTP access log toggle (Gin logger)
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "healthplate-backend"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8000"),
		GinMode: getenv("GIN_MODE", "release"),

		MongoURL:        getenv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase:   getenv("MONGO_DATABASE", "foodlens"),
		MongoTimeout:    getdur("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		MongoMaxPool:    uint64(getint("MONGO_MAX_POOL_SIZE", 100)),
		MongoMinPool:    uint64(getint("MONGO_MIN_POOL_SIZE", 1)),
		MongoRetries:    getint("MONGO_RETRY_ATTEMPTS", 3),
		MongoRetryDelay: getdur("MONGO_RETRY_INTERVAL", 5*time.Second),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getint("REDIS_DB", 0),
		FeedCacheTTL:  getdur("FEED_CACHE_TTL", 30*time.Second),

		GCSBucket:              getenv("GCS_BUCKET", ""),
		GCSCredentialsJSONPath: getenv("GCS_CREDENTIALS_JSON", ""),

		TokenSecret:   getenv("SECRET_KEY", "devsecret"),
		TokenLifetime: getdur("ACCESS_TOKEN_LIFETIME", 720*time.Hour), // 30 days

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port" validate:"required,numeric"`
	Env             string        `json:"env" validate:"oneof=development staging production test"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
	HTTPTimeout     time.Duration `json:"http_timeout" validate:"gt=0"`
	StaticPath      string        `json:"static_path"`

	// Upstream content API
	APIBaseURL          string        `json:"api_base_url" validate:"required,url"`
	APIFallbackBaseURLs []string      `json:"api_fallback_base_urls" validate:"dive,url"`
	UpstreamTimeout     time.Duration `json:"upstream_timeout" validate:"gt=0"`
	PageLimit           int           `json:"page_limit" validate:"min=1,max=100"`
	Offline             bool          `json:"offline"`

	// Redis list cache; empty URL selects the in-process cache
	RedisURL           string        `json:"redis_url" validate:"omitempty,url"`
	RedisPrefix        string        `json:"redis_prefix"`
	ListCacheTTL       time.Duration `json:"list_cache_ttl" validate:"gte=0"`
	CollectionCacheTTL time.Duration `json:"collection_cache_ttl" validate:"gte=0"`

	// Weather widget
	WeatherAPIKey  string        `json:"weather_api_key"`
	WeatherBaseURL string        `json:"weather_base_url" validate:"required,url"`
	WeatherTimeout time.Duration `json:"weather_timeout" validate:"gt=0"`
	WeatherTTL     time.Duration `json:"weather_ttl" validate:"gt=0"`
	WeatherLat     float64       `json:"weather_lat" validate:"latitude"`
	WeatherLon     float64       `json:"weather_lon" validate:"longitude"`

	// CloudFlare R2 fallback snapshot
	R2Endpoint        string `json:"r2_endpoint" validate:"omitempty,url"`
	R2AccessKey       string `json:"r2_access_key"`
	R2SecretKey       string `json:"r2_secret_key"`
	R2Bucket          string `json:"r2_bucket"`
	R2AccountID       string `json:"r2_account_id"`
	FallbackObjectKey string `json:"fallback_object_key"`

	// Rendering
	SanitizeHTML bool `json:"sanitize_html"`

	// Logging
	LogLevel  string `json:"log_level" validate:"oneof=debug info warn error fatal panic disabled"`
	LogFile   string `json:"log_file"`
	LogPretty bool   `json:"log_pretty"`

	// Security
	AdminAPIKey string `json:"admin_api_key"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),
		StaticPath:      getEnv("STATIC_PATH", "./web/static"),

		// Upstream content API
		APIBaseURL:          strings.TrimRight(getEnv("API_BASE_URL", "https://api.garhwalisonglyrics.com/api/v1"), "/"),
		APIFallbackBaseURLs: getEnvAsList("API_FALLBACK_BASE_URLS", []string{"http://api.garhwalisonglyrics.com/api/v1"}),
		UpstreamTimeout:     getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		PageLimit:           getEnvAsInt("PAGE_LIMIT", 10),
		Offline:             getEnvAsBool("OFFLINE", false),

		// Redis
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisPrefix:        getEnv("REDIS_PREFIX", "uknews:"),
		ListCacheTTL:       getEnvAsDuration("LIST_CACHE_TTL", time.Hour),
		CollectionCacheTTL: getEnvAsDuration("COLLECTION_CACHE_TTL", 5*time.Minute),

		// Weather
		WeatherAPIKey:  getEnv("WEATHER_API_KEY", ""),
		WeatherBaseURL: getEnv("WEATHER_BASE_URL", "https://api.weatherapi.com/v1"),
		WeatherTimeout: getEnvAsDuration("WEATHER_TIMEOUT", 5*time.Second),
		WeatherTTL:     getEnvAsDuration("WEATHER_TTL", 10*time.Minute),
		WeatherLat:     getEnvAsFloat("WEATHER_LAT", 30.3165),
		WeatherLon:     getEnvAsFloat("WEATHER_LON", 78.0322),

		// CloudFlare R2 Configuration
		R2Endpoint:        getEnv("R2_ENDPOINT", ""),
		R2AccessKey:       getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey:       getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:          getEnv("R2_BUCKET", "newsapi"),
		R2AccountID:       getEnv("CLOUDFLARE_ACCOUNT_ID", ""),
		FallbackObjectKey: getEnv("FALLBACK_OBJECT_KEY", ""),

		SanitizeHTML: getEnvAsBool("SANITIZE_HTML", false),

		// Logging
		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFile:   getEnv("LOG_FILE", ""),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),

		// Security
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if c.FallbackObjectKey != "" && c.R2Endpoint == "" && c.R2AccountID == "" {
		return fmt.Errorf("FALLBACK_OBJECT_KEY requires R2_ENDPOINT or CLOUDFLARE_ACCOUNT_ID")
	}
	return nil
}

// BaseURLs returns the primary upstream base URL followed by the fallbacks,
// without duplicates.
func (c *Config) BaseURLs() []string {
	out := []string{c.APIBaseURL}
	for _, u := range c.APIFallbackBaseURLs {
		u = strings.TrimRight(u, "/")
		if u == "" || u == c.APIBaseURL {
			continue
		}
		out = append(out, u)
	}
	return out
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsList(name string, defaultVal []string) []string {
	valueStr, exists := os.LookupEnv(name)
	if !exists {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

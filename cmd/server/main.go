package main

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/travelassistant/internal/assistant"
	"github.com/dharmasatrya/travelassistant/internal/handler"
	"github.com/dharmasatrya/travelassistant/internal/providers"
	"github.com/dharmasatrya/travelassistant/internal/ratelimit"
	"github.com/dharmasatrya/travelassistant/internal/tools"
)

type Config struct {
	Port         string
	RateLimit    ratelimit.RateLimitConfig
	HotelsLimit  ratelimit.RateLimitConfig
	FlightsLimit ratelimit.RateLimitConfig
	QuotaEnabled bool
	Quota        ratelimit.RedisConfig
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}
	cfg := loadConfig()

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	hotels, err := providers.NewSyntheticHotels()
	if err != nil {
		log.Fatalf("Failed to load hotel reference data: %v", err)
	}
	flights, err := providers.NewSyntheticFlights()
	if err != nil {
		log.Fatalf("Failed to load flight reference data: %v", err)
	}
	log.Printf("Initialized providers %s and %s", hotels.Name(), flights.Name())

	travel := assistant.NewAssistant(hotels, flights, assistant.DefaultConfig())
	registry, err := tools.NewTravelRegistry(travel)
	if err != nil {
		log.Fatalf("Failed to register tools: %v", err)
	}

	limiter := buildLimiter(cfg)
	defer limiter.Close()

	searchHandler := handler.NewSearchHandler(travel, registry)

	api := e.Group("/api/v1", handler.RateLimit(limiter))
	api.POST("/hotels/suggest", searchHandler.SuggestHotels)
	api.POST("/flights/suggest", searchHandler.SuggestFlights)
	api.GET("/tools", searchHandler.ListTools)
	api.POST("/tools/:name", searchHandler.CallTool)
	e.GET("/health", handler.HealthHandler)

	log.Printf("Starting travel assistant server on port %s", cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func buildLimiter(cfg Config) ratelimit.Limiter {
	local := ratelimit.NewKeyedLimiter(cfg.RateLimit)
	local.SetLimit(tools.SuggestHotels, cfg.HotelsLimit.RequestsPerSecond, cfg.HotelsLimit.BurstSize)
	local.SetLimit(tools.SuggestFlights, cfg.FlightsLimit.RequestsPerSecond, cfg.FlightsLimit.BurstSize)

	if !cfg.QuotaEnabled {
		log.Println("Shared quota disabled")
		return local
	}

	quota, err := ratelimit.NewRedisQuota(cfg.Quota)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Printf("Shared quota enabled (host: %s:%s, %d calls per %v)", cfg.Quota.Host, cfg.Quota.Port, cfg.Quota.Limit, cfg.Quota.Window)

	return ratelimit.Chain{local, quota}
}

func loadConfig() Config {
	limits := ratelimit.DefaultConfig()
	limits.RequestsPerSecond = getEnvFloat("RATE_LIMIT_RPS", limits.RequestsPerSecond)
	limits.BurstSize = getEnvInt("RATE_LIMIT_BURST", limits.BurstSize)
	limits.IdleTTL = getEnvDuration("RATE_LIMIT_IDLE_TTL", limits.IdleTTL)

	quota := ratelimit.DefaultRedisConfig()
	quota.Host = getEnv("REDIS_HOST", quota.Host)
	quota.Port = getEnv("REDIS_PORT", quota.Port)
	quota.Password = getEnv("REDIS_PASSWORD", quota.Password)
	quota.Limit = int64(getEnvInt("QUOTA_LIMIT", int(quota.Limit)))
	quota.Window = getEnvDuration("QUOTA_WINDOW", quota.Window)

	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		RateLimit: limits,
		HotelsLimit: ratelimit.RateLimitConfig{
			RequestsPerSecond: getEnvFloat("HOTELS_RATE_LIMIT_RPS", limits.RequestsPerSecond),
			BurstSize:         getEnvInt("HOTELS_RATE_LIMIT_BURST", limits.BurstSize),
		},
		FlightsLimit: ratelimit.RateLimitConfig{
			RequestsPerSecond: getEnvFloat("FLIGHTS_RATE_LIMIT_RPS", 5),
			BurstSize:         getEnvInt("FLIGHTS_RATE_LIMIT_BURST", 10),
		},
		QuotaEnabled: getEnvBool("QUOTA_ENABLED", false),
		Quota:        quota,
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

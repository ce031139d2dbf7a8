package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/bilgisen/uknews/internal/api"
	"github.com/bilgisen/uknews/internal/cache"
	"github.com/bilgisen/uknews/internal/config"
	"github.com/bilgisen/uknews/internal/fallback"
	"github.com/bilgisen/uknews/internal/i18n"
	"github.com/bilgisen/uknews/internal/logger"
	"github.com/bilgisen/uknews/internal/middleware"
	"github.com/bilgisen/uknews/internal/page"
	"github.com/bilgisen/uknews/internal/render"
	"github.com/bilgisen/uknews/internal/upstream"
	"github.com/bilgisen/uknews/internal/weather"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	output := "stdout"
	if cfg.LogFile != "" {
		output = cfg.LogFile
	}
	logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: output,
		Pretty: cfg.LogPretty,
	})
	log.Info().Str("env", cfg.Env).Bool("offline", cfg.Offline).Msg("Starting application...")

	store := newStore(cfg)
	defer func() {
		log.Info().Msg("Closing list cache...")
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing list cache")
		}
	}()

	texts, err := i18n.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load locales")
	}
	renderer, err := render.New(texts, cfg.SanitizeHTML)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse templates")
	}

	opts := page.Options{
		Fallback: loadFallback(cfg),
		Texts:    texts,
		Offline:  cfg.Offline,
		Limit:    cfg.PageLimit,
	}
	if !cfg.Offline {
		opts.Content = upstream.NewClient(upstream.Options{
			BaseURLs:      cfg.BaseURLs(),
			Timeout:       cfg.UpstreamTimeout,
			Cache:         store,
			ListTTL:       cfg.ListCacheTTL,
			CollectionTTL: cfg.CollectionCacheTTL,
		})
	}
	if cfg.WeatherAPIKey != "" {
		opts.Weather = weather.NewService(weather.Options{
			BaseURL: cfg.WeatherBaseURL,
			APIKey:  cfg.WeatherAPIKey,
			Timeout: cfg.WeatherTimeout,
			TTL:     cfg.WeatherTTL,
			Lat:     cfg.WeatherLat,
			Lon:     cfg.WeatherLon,
		})
	} else {
		log.Warn().Msg("WEATHER_API_KEY not set, weather widget disabled")
	}

	app := api.NewApp(api.AppOptions{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		ErrorHandler: middleware.NewErrorHandler(renderer, texts),
	})
	handlers := api.NewHandlers(page.NewAssembler(opts), renderer, texts, store, cfg.Offline)
	api.SetupRoutes(app, handlers, api.RouteOptions{
		AdminAPIKey: cfg.AdminAPIKey,
		StaticPath:  cfg.StaticPath,
	})

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newStore connects to Redis when configured and otherwise keeps the list
// cache in process.
func newStore(cfg *config.Config) cache.Store {
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, using in-memory list cache")
		return cache.NewMemoryStore(cfg.RedisPrefix)
	}
	store, err := cache.NewRedisStore(cfg.RedisURL, cfg.RedisPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Redis client")
	}
	return store
}

// loadFallback returns the published R2 snapshot when one is configured. Any
// problem with it keeps the built-in tables.
func loadFallback(cfg *config.Config) *fallback.Provider {
	builtin := fallback.New()
	if cfg.FallbackObjectKey == "" {
		return builtin
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.UpstreamTimeout)
	defer cancel()

	client, err := fallback.NewR2Client(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("R2 client unavailable, using built-in fallback content")
		return builtin
	}
	p, err := fallback.LoadSnapshot(ctx, client, cfg.R2Bucket, cfg.FallbackObjectKey)
	if err != nil {
		log.Error().Err(err).Str("key", cfg.FallbackObjectKey).Msg("Failed to load fallback snapshot, using built-in content")
		return builtin
	}
	log.Info().Str("key", cfg.FallbackObjectKey).Int("articles", len(p.Articles())).Msg("Loaded fallback snapshot")
	return p
}

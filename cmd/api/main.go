package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mediguide/backend/internal/adapters/cache"
	"github.com/mediguide/backend/internal/adapters/events"
	"github.com/mediguide/backend/internal/adapters/memory"
	"github.com/mediguide/backend/internal/api/handlers"
	"github.com/mediguide/backend/internal/api/middleware"
	"github.com/mediguide/backend/internal/api/routes"
	"github.com/mediguide/backend/internal/application/services"
	"github.com/mediguide/backend/internal/chat"
	"github.com/mediguide/backend/internal/domain/providers"
	redisclient "github.com/mediguide/backend/internal/infrastructure/clients/redis"
	"github.com/mediguide/backend/internal/infrastructure/observability"
	"github.com/mediguide/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Redis is optional; without it the API falls back to the in-memory
	// notification bus and serves responses uncached.
	var redisClient *redisclient.Client
	if cfg.Redis.Enabled {
		redisClient, err = redisclient.NewClient(&cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Redis client; continuing without cache")
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis client initialized")
		}
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var bus providers.NotificationBus
	if redisClient != nil {
		bus = events.NewRedisBus(redisClient)
		log.Info().Msg("notification bus backed by Redis pub/sub")
	} else {
		bus = events.NewMemoryBus()
		log.Info().Msg("notification bus running in-process")
	}

	// Adapters and services
	hospitalRepo := memory.NewHospitalAdapter()
	procedureRepo := memory.NewProcedureAdapter()
	doctorRepo := memory.NewDoctorAdapter()
	nearbyRepo := memory.NewNearbyPlaceAdapter()

	hospitalService := services.NewHospitalService(hospitalRepo, doctorRepo, nearbyRepo)

	replyDelay := time.Duration(cfg.Chat.ReplyDelayMS) * time.Millisecond
	chatService := services.NewChatService(hospitalRepo, chat.NewResponder(), bus, replyDelay)

	// Handlers
	hospitalHandler := handlers.NewHospitalHandler(hospitalService)
	procedureHandler := handlers.NewProcedureHandler(procedureRepo)
	chatHandler := handlers.NewChatHandler(chatService, metrics)
	sseHandler := handlers.NewSSEHandler(bus)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		log.Info().Msg("cache middleware initialized")
	}

	rateLimiter := middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	router := routes.NewRouter(
		hospitalHandler,
		procedureHandler,
		chatHandler,
		sseHandler,
		cacheMiddleware,
		rateLimiter,
		metrics,
		cfg.Server.Env,
		cfg.OTEL.ServiceVersion,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     router.SetupRoutes(),
		ReadTimeout: 15 * time.Second,
		// WriteTimeout stays unset so the SSE stream can outlive
		// ordinary request deadlines.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	if err := bus.Close(); err != nil {
		log.Error().Err(err).Msg("error closing notification bus")
	}

	log.Info().Msg("server stopped")
}

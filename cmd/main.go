package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"SHAREMYTRIP_WEB/internal/config"
	"SHAREMYTRIP_WEB/internal/handlers"
	"SHAREMYTRIP_WEB/internal/passengerapi"
	"SHAREMYTRIP_WEB/internal/routes"
	"SHAREMYTRIP_WEB/internal/server"
	"SHAREMYTRIP_WEB/internal/toast"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// --- Upstream passenger API ---
	api := passengerapi.NewClient(cfg.PassengerAPI.BaseURL, cfg.PassengerAPI.Timeout)
	checks := map[string]handlers.PingFunc{
		"passenger_api": api.Ping,
	}

	// --- Toast surface ---
	var toasts toast.Store
	if cfg.IsRedisConfigured() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		redisStore := toast.NewRedisStore(rdb, cfg.Redis.FlashTTL, logger)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisStore.Ping(ctx); err != nil {
			logger.Warn("redis not reachable at boot", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		cancel()

		toasts = redisStore
		checks["redis"] = redisStore.Ping
	} else {
		toasts = toast.NewMemoryStore(cfg.Redis.FlashTTL)
	}

	// --- HTTP Handlers ---
	pageHandler := handlers.NewPassengerPageHandler(api, toasts, logger)
	healthHandler := handlers.NewHealthHandler(checks)

	router := routes.SetupWebRoutes(pageHandler, healthHandler, &cfg.JWT)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := server.New(cfg.Server, cfg.Server.Port, c.Handler(router))
	server.Run(srv, cfg.Server.ShutdownTimeout, logger)
}

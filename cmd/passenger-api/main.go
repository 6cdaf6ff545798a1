// @title ShareMyTrip Passenger API
// @version 1.0
// @description Reference passenger profile API used by the passenger web

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "SHAREMYTRIP_WEB/docs" // This is required for swagger
	"SHAREMYTRIP_WEB/internal/config"
	"SHAREMYTRIP_WEB/internal/handlers"
	"SHAREMYTRIP_WEB/internal/models"
	"SHAREMYTRIP_WEB/internal/repository"
	"SHAREMYTRIP_WEB/internal/routes"
	"SHAREMYTRIP_WEB/internal/server"
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

	// ตั้งค่า pgxpool + simple protocol (จำเป็นเมื่อผ่าน PgBouncer :6543)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		logger.Fatal("parse dsn", zap.Error(err))
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "sharemytrip-passenger-api"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = "30000" // 30s
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("connect", zap.Error(err))
	}
	defer pool.Close()

	repo := repository.NewPassengerRepository(pool)

	// ทดสอบ ping + schema ตอนบูต
	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := repo.Ping(ctx); err != nil {
			logger.Fatal("ping", zap.Error(err))
		}
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatal("schema", zap.Error(err))
		}
		if cfg.PassengerAPI.Seed {
			if err := seed(ctx, repo); err != nil {
				logger.Fatal("seed", zap.Error(err))
			}
			logger.Info("seeded demo passenger", zap.String("passenger_id", demoPassengerID))
		}
	}

	// --- HTTP Handlers ---
	apiHandler := handlers.NewPassengerAPIHandler(repo, logger)
	healthHandler := handlers.NewHealthHandler(map[string]handlers.PingFunc{"db": repo.Ping})

	router := routes.SetupAPIRoutes(apiHandler, healthHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := server.New(cfg.Server, cfg.PassengerAPI.ListenPort, c.Handler(router))
	server.Run(srv, cfg.Server.ShutdownTimeout, logger)
}

const demoPassengerID = "demo-passenger"

func seed(ctx context.Context, repo *repository.PassengerRepository) error {
	str := func(s string) *string { return &s }
	dob, err := repository.ParseDate("1994-06-15")
	if err != nil {
		return err
	}
	return repo.Create(ctx, &models.Passenger{
		ID:          demoPassengerID,
		FirstName:   str("Asha"),
		LastName:    str("Rao"),
		Email:       str("asha.rao@example.com"),
		Mobile:      str("9876543210"),
		DateOfBirth: dob,
		AadharCard:  str("1234 5678 9012"),
		MiniBio:     str("Weekend commuter between Pune and Mumbai."),
	})
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/comisarias/novedades-api/internal/api"
	"github.com/comisarias/novedades-api/internal/core/service"
	"github.com/comisarias/novedades-api/internal/infrastructure/config"
	mongodb "github.com/comisarias/novedades-api/internal/infrastructure/db/mongo"
	redisdb "github.com/comisarias/novedades-api/internal/infrastructure/db/redis"
	"github.com/comisarias/novedades-api/internal/infrastructure/queue"
	"github.com/comisarias/novedades-api/pkg/logger"
)

// @title        Novedades API
// @version      1.0
// @description  CRUD backend for police-precinct incident reports with JWT auth and role-based scoping.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	novedadRepo := mongodb.NewNovedadRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := novedadRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create novedad indexes")
	}

	audit := queue.NewAuditDispatcher(0, auditRepo, log)
	audit.Start(ctx)

	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxAttempts, cfg.Throttle.Window)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, throttle, audit, log)
	novedadService := service.NewNovedadService(novedadRepo, audit, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		NovedadService: novedadService,
		TokenService:   tokens,
		Mongo:          db,
		Redis:          rdb,
		Logger:         log,
	})

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting novedades api")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}

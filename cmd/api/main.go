// @title        Finance Console API
// @version      1.0
// @description  Authentication, session and capability gating for the finance console.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/finhub/console/internal/api"
	"github.com/finhub/console/internal/api/handler"
	"github.com/finhub/console/internal/api/metrics"
	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/service"
	mongodb "github.com/finhub/console/internal/infrastructure/db/mongo"
	redisdb "github.com/finhub/console/internal/infrastructure/db/redis"
	"github.com/finhub/console/internal/pkg/config"
	"github.com/finhub/console/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "finance-console",
		Env:     cfg.Env,
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting finance console")
	if cfg.EphemeralJWTSecret {
		log.Warn().Msg("JWT_SECRET not set, using a random per-process secret; sessions end on restart")
	}

	ctx := context.Background()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "finance-console",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnect MongoDB")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to Redis")
	}
	defer rdb.Close()

	evaluator := access.NewEvaluator(access.Default(),
		metrics.DecisionRecorder(),
		access.LogUnknown(logger.For("access")),
	)

	userRepo := mongodb.NewUserRepository(db)
	sessionCache := redisdb.NewSessionCache(rdb)
	sessionSvc := service.NewSessionService(userRepo, sessionCache, cfg.SessionTTL, logger.For("session"))
	authSvc := service.NewAuthService(userRepo, sessionSvc, cfg.JWTSecret, cfg.TokenTTL, logger.For("auth"))
	userSvc := service.NewUserService(userRepo, sessionSvc, evaluator, logger.For("users"))

	e := api.NewRouter(api.Dependencies{
		Auth:         authSvc,
		Sessions:     sessionSvc,
		Users:        userSvc,
		Evaluator:    evaluator,
		Health:       []handler.DependencyCheck{handler.MongoCheck(db), handler.RedisCheck(rdb)},
		JWTSecret:    cfg.JWTSecret,
		TokenTTL:     cfg.TokenTTL,
		SecureCookie: !cfg.IsDevelopment(),
		Logger:       log,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if err := serve(e, ":"+cfg.Port, quit, log); err != nil {
		log.Error().Err(err).Msg("http server failed")
		return 1
	}
	log.Info().Msg("finance console stopped")
	return 0
}

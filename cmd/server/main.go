package main

import (
	"context"

	"github.com/devmatch/devmatch-backend/internal/app"
	"github.com/devmatch/devmatch-backend/internal/cache"
	"github.com/devmatch/devmatch-backend/internal/config"
	"github.com/devmatch/devmatch-backend/internal/db"
	"github.com/devmatch/devmatch-backend/internal/logger"
	"github.com/devmatch/devmatch-backend/internal/server"
	feedsvc "github.com/devmatch/devmatch-backend/internal/service/feed"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, log)

	registrars := []server.Registrar{
		feedsvc.NewRegistrar(appCtx),
	}

	if cfg.App.Env == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed demo data", "err", err)
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(cfg, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}

package root

import (
	"context"

	"taskquest/internal/config"
	"taskquest/internal/engine"
	"taskquest/internal/logger"
	"taskquest/internal/storage"
)

type app struct {
	cfg config.Config
	log *logger.Logger
	svc *engine.Service
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	paths := storage.PathsFor(cfg.DataDir)
	db, err := storage.Open(ctx, paths.DB)
	if err != nil {
		log.Sync()
		return nil, nil, err
	}
	svc := engine.NewService(db, paths,
		engine.WithLogger(log),
		engine.WithRand(engine.NewRand(cfg.Seed)),
	)
	cleanup := func() {
		_ = db.Close()
		log.Sync()
	}
	return &app{cfg: cfg, log: log, svc: svc}, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	a, cleanup, err := openApp(ctx)
	if err != nil {
		return nil, nil, err
	}
	return a.svc, cleanup, nil
}

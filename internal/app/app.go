package app

import (
	"ProjectTracker/internal/app/server"
	"ProjectTracker/internal/config"
	"ProjectTracker/internal/delivery/http"
	"ProjectTracker/internal/metrics"
	"ProjectTracker/internal/service"
	"ProjectTracker/internal/service/tracker"
	"ProjectTracker/internal/storage/minioStorage"
	"ProjectTracker/pkg/logger"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	repo, closeRepo, err := OpenStorage(context.Background(), cfg, log)
	if err != nil {
		log.FatalErr("error opening storage", err)
	}
	defer closeRepo()

	m := metrics.New()
	var trackerService *tracker.TrackerService
	if cfg.Minio.Enabled {
		mirror, err := minioStorage.NewSnapshotMirror(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey,
			cfg.Minio.UseSSL, cfg.Minio.Bucket, cfg.Minio.Object)
		if err != nil {
			log.FatalErr("error connecting to minio", err)
		}
		log.Info("mirroring snapshots", "bucket", cfg.Minio.Bucket, "object", cfg.Minio.Object)
		trackerService = tracker.NewTrackerService(log, repo, mirror, m)
	} else {
		trackerService = tracker.NewTrackerService(log, repo, nil, m)
	}
	u := service.Collection{TrackerService: trackerService}

	r := http.InitRoutes(log, u, m, cfg.Static.Dir)

	srv := server.New(cfg.HTTPServer.Address(), cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("Project tracker server running", "address", cfg.HTTPServer.Address())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		if err != nil {
			log.ErrorErr("server stopped", err)
		}
	}
	err = srv.Shutdown()
	if err != nil {
		log.ErrorErr("shutdown failed", err)
	}
}

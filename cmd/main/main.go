package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"replenish-service/internal/config"
	"replenish-service/internal/fileio"
	"replenish-service/internal/replenish/service"
	"replenish-service/internal/replenish/session"
	serverhttp "replenish-service/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	store := session.NewStore(time.Duration(cfg.SessionTTLMin) * time.Minute)

	// optional shared catalog: sessions that never upload their own start
	// with this read-only index
	if cfg.CatalogPath != "" {
		f, err := os.Open(cfg.CatalogPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("open catalog")
		}
		maps, err := fileio.ReadAnyMaps(f, cfg.CatalogPath, 1)
		f.Close()
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("read catalog")
		}
		rows, err := service.CatalogFromMaps(maps)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.CatalogPath).Msg("load catalog")
		}
		store.SetDefaultIndex(service.BuildIndex(rows))
		logger.Info().Str("path", cfg.CatalogPath).Int("rows", len(rows)).Msg("catalog preloaded")
	}

	r := serverhttp.NewRouter(cfg, logger, store)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}

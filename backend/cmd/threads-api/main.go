package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/threads-be/threads/backend/internal/router"
	"github.com/threads-be/threads/backend/internal/setup"
	"github.com/threads-be/threads/shared/config"
	"github.com/threads-be/threads/shared/logger"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config_folder dir] [serve|migrate]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Fatalf("failed to setup dependencies: %v", err)
	}
	defer deps.Storage.Cleanup()

	if err := deps.Storage.Migrate(); err != nil {
		logger.Log.Fatalf("migration failed: %v", err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "migrate":
		logger.Log.Info("migrations applied")
		return
	case "", "serve":
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err := serve(cfg, deps); err != nil {
		logger.Log.Errorf("server stopped: %v", err)
	}
}

// serve blocks until SIGINT or SIGTERM, then drains in-flight requests.
func serve(cfg *config.Config, deps *setup.Dependencies) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Public.HttpPort),
		Handler:      router.New(deps),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.WithField("addr", srv.Addr).Info("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

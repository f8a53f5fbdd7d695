package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmatos/gamewatch/internal/api"
	"github.com/dmatos/gamewatch/internal/config"
	"github.com/dmatos/gamewatch/internal/docstore"
	"github.com/dmatos/gamewatch/internal/logger"
	"github.com/dmatos/gamewatch/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("GameWatch Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("doc_path=%s", cfg.DocPath)
	log.Debug("doc_url=%s", cfg.DocURL)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("list_refresh_seconds=%d", cfg.ListRefreshSeconds)
	log.Debug("detail_refresh_millis=%d", cfg.DetailRefreshMillis)
	log.Debug("suggested_limit=%d", cfg.SuggestedLimit)

	// Pick the document source; a URL takes precedence over a local path.
	var loader docstore.Loader
	if cfg.DocURL != "" {
		loader = docstore.NewHTTPLoader(cfg.DocURL)
	} else {
		loader = docstore.FileLoader{Path: cfg.DocPath}
	}
	store := docstore.NewStore(loader)

	// Load the document once at startup. A failure is terminal for the
	// session: the server keeps running and every view surfaces the error.
	if _, err := store.Doc(context.Background()); err != nil {
		log.Error("games document unavailable: %v", err)
	}

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	gameService := services.NewGameService(store)

	srv := &api.Server{
		Games:               gameService,
		Templates:           tmpl,
		ListRefreshSeconds:  cfg.ListRefreshSeconds,
		DetailRefreshMillis: cfg.DetailRefreshMillis,
		SuggestedLimit:      cfg.SuggestedLimit,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("GameWatch Server Stopped")
	log.Info("===========================================")
}

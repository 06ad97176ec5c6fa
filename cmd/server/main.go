package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dolarbot/internal/adapter/cache"
	httpRouter "dolarbot/internal/adapter/http"
	"dolarbot/internal/adapter/repository"
	"dolarbot/internal/config"
	"dolarbot/internal/domain/ports"
	"dolarbot/internal/metrics"
	"dolarbot/internal/service"
	"dolarbot/pkg/logger"
)

func main() {
	log := logger.NewLogger(os.Getenv("LOG_LEVEL"))
	log.Info("Starting dollar quote service")

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appMetrics := metrics.NewMetrics()
	reportCache := cache.NewMemoryCache(cfg.Cache.TTL, log)

	quoteRepo := repository.NewDolarAPI(
		cfg.DolarAPI.BaseURL,
		cfg.DolarAPI.Timeout,
		log,
		appMetrics,
	)

	quoteService := service.NewQuoteService(quoteRepo, reportCache, log, appMetrics)
	handler := httpRouter.NewHandler(quoteService, log, appMetrics)

	router := httpRouter.NewRouter(handler, log, appMetrics)
	routes := router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      routes,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancelSweep := context.WithCancel(context.Background())
	go sweepCache(ctx, reportCache, cfg.Cache.SweepInterval, log)

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	cancelSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

// sweepCache periodically removes expired report cache entries. Expiry is
// otherwise lazy, so the sweep only bounds memory growth.
func sweepCache(ctx context.Context, reportCache ports.ReportCache, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := reportCache.ClearExpired(ctx); err != nil {
				log.Error("Failed to clear expired cache entries", "error", err)
			}
		case <-ctx.Done():
			log.Info("Stopping cache sweep goroutine")
			return
		}
	}
}

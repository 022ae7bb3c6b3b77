package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealsquare/marketplace/pkg/config"
	"github.com/dealsquare/marketplace/pkg/logger"
	"github.com/dealsquare/marketplace/pkg/shutdown"
)

// stubd serves the slice of the marketplace API the client consumes,
// backed by seeded in-memory data. It exists so the client and its
// integration tests can run without the real backend.
func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "stubd",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Text:    cfg.AppEnv == "dev",
	})

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	addr := fmt.Sprintf(":%d", cfg.StubPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           newRouter(newMemory(), cfg.StubSecret, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("stub server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("stub server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("stub shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

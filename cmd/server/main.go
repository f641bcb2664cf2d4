package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/micfx/starter/internal/assets"
	"github.com/micfx/starter/internal/config"
	"github.com/micfx/starter/internal/logging"
	appmiddleware "github.com/micfx/starter/internal/middleware"
	"github.com/micfx/starter/internal/module"
	"github.com/micfx/starter/internal/modules/health"
	"github.com/micfx/starter/internal/modules/hello"
	"github.com/micfx/starter/internal/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := logging.Sync(); err != nil {
			logging.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := logging.Err(); err != nil {
		logging.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// Only use behind a trusted reverse proxy; otherwise clients can spoof
		// their IP address.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		logging.RequestLogger(),
		logging.AccessLogger(),
		respond.Recoverer(),
	)

	resolver := assets.NewResolver(loadManifest(cfg))
	router.Handle("/dist/*", assets.Handler(cfg.Mode.IsDev()))

	apiCfg := huma.DefaultConfig("MicFx Starter API", Version)
	apiCfg.DocsPath = "/api-docs"
	// The default config carries a create hook that installs the schema-link
	// transformer, which injects a $schema field into every response body.
	// Module payloads are served exactly as modeled instead.
	apiCfg.CreateHooks = nil
	api := humachi.New(router, apiCfg)

	registry := module.NewRegistry(
		health.New(),
		hello.New(resolver),
	)
	registry.RegisterAll(api, router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		logging.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		logging.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		logging.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.LogError(ctx, "server shutdown error", err)
	}
	logging.LogInfo(context.Background(), "server exited")
}

// loadManifest reads the asset manifest for the current mode. A missing
// manifest is tolerated: view links fall back to unhashed paths until the
// first asset build runs.
func loadManifest(cfg config.Config) *assets.Manifest {
	var (
		man *assets.Manifest
		err error
	)
	if cfg.Mode.IsDev() {
		man, err = assets.LoadManifestFromDir(assets.DefaultDistDir)
	} else {
		man, err = assets.LoadManifestEmbedded()
	}
	if err != nil {
		logging.LogWarn(context.Background(), "asset manifest unavailable", zap.Error(err))
		return nil
	}
	return man
}

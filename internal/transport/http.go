package transport

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/wharris/fleetgen/internal/config"
	"github.com/wharris/fleetgen/internal/service"
)

var Module = fx.Options(
	fx.Invoke(registerHooks),
)

// NewHandler builds the fixture server routes. The document endpoint serves
// the exact bytes the sinks received.
func NewHandler(svc *service.GeneratorService, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/env.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := svc.FixtureDocument()
		if err != nil {
			logger.Error("failed to render fixture document", zap.Error(err))
			http.Error(w, "failed to render fixture document", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(doc)
	})
	return mux
}

// registerHooks registers lifecycle hooks for the optional fixture server.
// With serving disabled the process remains a plain one-shot generator.
func registerHooks(
	lifecycle fx.Lifecycle,
	cfg *config.Config,
	logger *zap.Logger,
	svc *service.GeneratorService,
) {
	if !cfg.Serve {
		return
	}

	logger = logger.Named("server")
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.ServePort),
		// Use h2c so we can serve HTTP/2 without TLS
		Handler: h2c.NewHandler(NewHandler(svc, logger), &http2.Server{}),
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting fixture server", zap.Int("port", cfg.ServePort))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", zap.Error(err))
					os.Exit(1)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down fixture server")
			return server.Shutdown(ctx)
		},
	})
}

// Command rt-mcp-server exposes a Request Tracker instance as an MCP tool
// server, over stdio or streamable HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/opsqueue/rt-mcp-server/internal/server"
	"github.com/opsqueue/rt-mcp-server/pkg/client"
	"github.com/opsqueue/rt-mcp-server/pkg/config"
	"github.com/opsqueue/rt-mcp-server/pkg/logging"
	"github.com/opsqueue/rt-mcp-server/pkg/metrics"
)

func main() {
	// A missing .env file is not an error; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup(logging.Config{Level: "info"})
		logger := logging.NewLogger("main")
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logging.Setup(logging.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger := logging.NewLogger("main")

	rt, err := client.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Creating RT client")
	}
	defer rt.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A failed probe is logged but not fatal: RT may come up after the
	// MCP server does.
	if err := rt.ValidateConnection(ctx); err != nil {
		logger.Warn().Err(err).Str("url", cfg.BaseURL()).Msg("RT connection check failed")
	} else {
		logger.Info().Str("url", cfg.BaseURL()).Msg("Connected to RT")
	}

	srv := server.New(rt)

	switch cfg.Transport {
	case config.TransportHTTP:
		err = runHTTP(ctx, logger, cfg, srv)
	default:
		logger.Info().Str("transport", cfg.Transport).Msg("Starting MCP server")
		err = srv.Run(ctx, &mcp.StdioTransport{})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("Server terminated")
	}
	logger.Info().Msg("Shutdown complete")
}

// runHTTP serves the MCP endpoint together with Prometheus metrics and a
// liveness probe, and drains connections on shutdown.
func runHTTP(ctx context.Context, logger zerolog.Logger, cfg *config.Config, srv *mcp.Server) error {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return srv
	}, nil))
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("Starting MCP server on HTTP")
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

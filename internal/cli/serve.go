// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphd/internal/config"
	"github.com/katalvlaran/graphd/internal/server"
	"github.com/katalvlaran/graphd/internal/snapshot"
	"github.com/katalvlaran/graphd/registry"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Run the HTTP service.

Settings come from, in increasing priority: built-in defaults, a TOML file
(--config, or ./graphd.toml when present), GRAPHD_* environment variables
(GRAPHD_SERVER_ADDR sets server.addr) and explicitly set flags.

When a snapshot path is configured the registry is loaded from it on start
and, unless --save=false, written back on shutdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			level, _ := log.ParseLevel(cfg.Log.Level) // validated by config.Load
			logger := newLogger(cmd.ErrOrStderr(), level, cfg.Log.Format)

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return err
			}
			return serve(withLogger(cmd.Context(), logger), cfg, ln)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

// serve runs the HTTP service on ln until ctx is cancelled, then shuts it
// down gracefully and saves the snapshot if configured.
func serve(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	logger := loggerFromContext(ctx)

	reg := registry.New()
	if cfg.Snapshot.Path != "" {
		n, err := snapshot.Load(cfg.Snapshot.Path, reg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("no snapshot to load", "path", cfg.Snapshot.Path)
		case err != nil:
			ln.Close()
			return err
		default:
			logger.Info("snapshot loaded", "path", cfg.Snapshot.Path, "graphs", n)
		}
	}

	var tp trace.TracerProvider = noop.NewTracerProvider()
	if cfg.Trace.Enabled {
		sdkTP, err := server.NewTracerProvider(ctx, cfg.Trace.Endpoint)
		if err != nil {
			ln.Close()
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := sdkTP.Shutdown(shutdownCtx); err != nil {
				logger.Warn("tracer shutdown failed", "err", err)
			}
		}()
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{}))
		tp = sdkTP
	}

	srv := server.New(reg, logger, server.Options{
		Mode:           cfg.Server.Mode,
		Metrics:        cfg.Metrics.Enabled,
		TracerProvider: tp,
		SnapshotPath:   cfg.Snapshot.Path,
	})
	httpSrv := &http.Server{
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", "addr", ln.Addr().String(), "metrics", cfg.Metrics.Enabled, "trace", cfg.Trace.Enabled)
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", "timeout", cfg.Server.Shutdown)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Shutdown)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	err := g.Wait()

	if cfg.Snapshot.Path != "" && cfg.Snapshot.Save {
		if serr := snapshot.Save(cfg.Snapshot.Path, reg); serr != nil {
			logger.Error("snapshot save failed", "path", cfg.Snapshot.Path, "err", serr)
			return errors.Join(err, serr)
		}
		logger.Info("snapshot saved", "path", cfg.Snapshot.Path, "graphs", reg.Len())
	}
	return err
}

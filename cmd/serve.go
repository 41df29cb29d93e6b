package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/live"
	"github.com/ziadkadry99/folio/internal/metrics"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/watch"
)

// historyRetention is how long load records are kept.
const historyRetention = 30 * 24 * time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio with live sessions",
	Long: `Starts the folio HTTP server. The page is rendered on every request from the
latest content snapshot, and each browser keeps a live session over a
websocket that drives the project carousel and skill tooltips.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("watch", false, "reload content when local source files change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if w, _ := cmd.Flags().GetBool("watch"); w {
		cfg.Watch = true
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	database, store, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if n, err := store.PruneLoads(ctx, time.Now().Add(-historyRetention)); err != nil {
		logger.Warn("pruning load history", zap.Error(err))
	} else if n > 0 {
		logger.Debug("pruned load history", zap.Int64("removed", n))
	}

	m := metrics.New()
	a, err := newApp(cfg, logger, store, m)
	if err != nil {
		return err
	}
	// A failed first load is served as placeholders until a reload succeeds.
	a.Reload(ctx)

	liveHandler := live.NewHandler(a, live.Options{
		Session: live.SessionConfig{
			Breakpoints: cfg.Breakpoints,
			ResizeQuiet: cfg.ResizeQuiet,
		},
		EventsPerSecond: cfg.Server.EventsPerSecond,
		AllowAllOrigins: cfg.Server.AllowAllOrigins,
		History:         store,
		Metrics:         m,
		Logger:          logger,
	})

	srv := server.New(server.Config{
		Port:      cfg.Server.Port,
		AllowAll:  cfg.Server.AllowAllOrigins,
		AssetRoot: ".",
		Assets:    cfg.Assets,
	}, a, server.Deps{
		Live:    liveHandler,
		History: store,
		Metrics: m,
		Logger:  logger,
	})

	if cfg.Watch {
		paths := localSourcePaths(newLoader(cfg))
		if len(paths) == 0 {
			logger.Warn("watch enabled but no local sources configured")
		} else {
			w, err := watch.New(paths, 0, func(ctx context.Context) { a.Reload(ctx) }, logger)
			if err != nil {
				return err
			}
			go w.Run(ctx)
			logger.Info("watching sources", zap.Int("files", w.Files()))
		}
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "folio %s serving on http://localhost:%d\n", Version, cfg.Server.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/metrics"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/view"
)

// dbFile is the history database name inside the data directory.
const dbFile = "folio.db"

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger; --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Options{Level: level, File: cfg.Log.File})
}

// openHistory opens the load history database in the data directory.
func openHistory(cfg *config.Config) (*db.DB, *history.Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating data dir: %w", err)
	}
	database, err := db.Open(filepath.Join(cfg.DataDir, dbFile))
	if err != nil {
		return nil, nil, err
	}
	return database, history.NewStore(database), nil
}

// newLoader creates the content loader for the configured sources.
func newLoader(cfg *config.Config) *loader.Loader {
	client := loader.NewClient(cfg.FetchTimeout)
	var skills loader.Source
	if cfg.Sources.Skills != "" {
		skills = loader.NewSource(cfg.Sources.Skills, client)
	}
	return loader.New(loader.NewSource(cfg.Sources.Content, client), skills, cfg.FetchTimeout)
}

// localSourcePaths returns the configured sources that are local files.
func localSourcePaths(l *loader.Loader) []string {
	var paths []string
	for _, src := range []loader.Source{l.Content, l.Skills} {
		if fs, ok := src.(*loader.FileSource); ok {
			paths = append(paths, fs.Path)
		}
	}
	return paths
}

// newApp wires the content pipeline. store and m may be nil.
func newApp(cfg *config.Config, logger *zap.Logger, store *history.Store, m *metrics.Metrics) (*app.App, error) {
	tmpl, err := page.LoadTemplate(cfg.Site.Shell)
	if err != nil {
		return nil, err
	}
	var formatter view.Formatter = view.PlainFormatter{}
	if cfg.Markdown {
		formatter = view.NewMarkdownFormatter()
	}

	return app.New(app.Options{
		Loader:    newLoader(cfg),
		Radius:    cfg.CloudRadius,
		Formatter: formatter,
		Template:  tmpl,
		Site: page.ShellData{
			Title:   cfg.Site.Title,
			Owner:   cfg.Site.Owner,
			Tagline: cfg.Site.Tagline,
		},
		EmptyPolicy: dom.EmptyPolicy(cfg.EmptyPolicy),
		History:     store,
		Metrics:     m,
		Logger:      logger,
	}), nil
}

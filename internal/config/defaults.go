package config

import (
	"github.com/ziadkadry99/folio/internal/carousel"
	"github.com/ziadkadry99/folio/internal/cloud"
	"github.com/ziadkadry99/folio/internal/loader"
)

// DefaultFile is the config file read when --config is not given.
const DefaultFile = ".folio.yml"

// DefaultAssets are glob patterns copied into the static site by default.
var DefaultAssets = []string{
	"images/**/*.{png,jpg,jpeg,gif,svg,webp}",
	"favicon.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "Portfolio",
		},
		Sources: SourcesConfig{
			Content: "data.json",
			Skills:  "skills.json",
		},
		FetchTimeout: loader.DefaultTimeout,
		CloudRadius:  cloud.DefaultRadius,
		Breakpoints:  carousel.DefaultBreakpoints(),
		ResizeQuiet:  carousel.ResizeQuiet,
		EmptyPolicy:  EmptyPlaceholder,
		Markdown:     true,
		OutputDir:    "public",
		Assets:       DefaultAssets,
		DataDir:      ".folio",
		Server: ServerConfig{
			Port:            8080,
			EventsPerSecond: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

package config

import (
	"time"

	"github.com/ziadkadry99/folio/internal/carousel"
)

// EmptyPolicy controls what a widget shows when it has no entries.
type EmptyPolicy string

const (
	EmptyPlaceholder EmptyPolicy = "placeholder"
	EmptyHide        EmptyPolicy = "hide"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Site         SiteConfig           `yaml:"site" koanf:"site"`
	Sources      SourcesConfig        `yaml:"sources" koanf:"sources"`
	FetchTimeout time.Duration        `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	CloudRadius  float64              `yaml:"cloud_radius" koanf:"cloud_radius"`
	Breakpoints  carousel.Breakpoints `yaml:"breakpoints" koanf:"breakpoints"`
	ResizeQuiet  time.Duration        `yaml:"resize_quiet" koanf:"resize_quiet"`
	EmptyPolicy  EmptyPolicy          `yaml:"empty_policy" koanf:"empty_policy"`
	Markdown     bool                 `yaml:"markdown" koanf:"markdown"`
	OutputDir    string               `yaml:"output_dir" koanf:"output_dir"`
	Assets       []string             `yaml:"assets" koanf:"assets"`
	DataDir      string               `yaml:"data_dir" koanf:"data_dir"`
	Watch        bool                 `yaml:"watch" koanf:"watch"`
	Server       ServerConfig         `yaml:"server" koanf:"server"`
	Log          LogConfig            `yaml:"log" koanf:"log"`
}

// SiteConfig holds page identity.
type SiteConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	Owner   string `yaml:"owner" koanf:"owner"`
	Tagline string `yaml:"tagline" koanf:"tagline"`
	// Shell optionally replaces the built-in page template.
	Shell string `yaml:"shell,omitempty" koanf:"shell"`
}

// SourcesConfig names the content documents. Each is a file path or an
// http(s) URL. Skills is optional.
type SourcesConfig struct {
	Content string `yaml:"content" koanf:"content"`
	Skills  string `yaml:"skills,omitempty" koanf:"skills"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int     `yaml:"port" koanf:"port"`
	AllowAllOrigins bool    `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	EventsPerSecond float64 `yaml:"events_per_second" koanf:"events_per_second"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	File  string `yaml:"file,omitempty" koanf:"file"`
}

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ziadkadry99/folio/internal/carousel"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("expected default fetch_timeout 10s, got %s", cfg.FetchTimeout)
	}
	if cfg.CloudRadius != 250 {
		t.Errorf("expected default cloud_radius 250, got %v", cfg.CloudRadius)
	}
	if cfg.ResizeQuiet != 100*time.Millisecond {
		t.Errorf("expected default resize_quiet 100ms, got %s", cfg.ResizeQuiet)
	}
	if cfg.EmptyPolicy != EmptyPlaceholder {
		t.Errorf("expected default empty_policy %q, got %q", EmptyPlaceholder, cfg.EmptyPolicy)
	}
	if got := cfg.Breakpoints.CardsPerPage(1200); got != 3 {
		t.Errorf("expected 3 cards per page on desktop, got %d", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Site.Owner = "Ada Lovelace"
	original.Sources.Content = "https://example.com/data.json"
	original.Sources.Skills = ""
	original.FetchTimeout = 3 * time.Second
	original.EmptyPolicy = EmptyHide
	original.Breakpoints = carousel.Breakpoints{
		Steps:   []carousel.Breakpoint{{MaxWidth: 600, PerPage: 1}},
		Default: 4,
	}
	original.Assets = []string{"img/*.png"}

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Owner != original.Site.Owner {
		t.Errorf("site.owner: got %q, want %q", loaded.Site.Owner, original.Site.Owner)
	}
	if loaded.Sources.Content != original.Sources.Content {
		t.Errorf("sources.content: got %q, want %q", loaded.Sources.Content, original.Sources.Content)
	}
	if loaded.FetchTimeout != original.FetchTimeout {
		t.Errorf("fetch_timeout: got %s, want %s", loaded.FetchTimeout, original.FetchTimeout)
	}
	if loaded.EmptyPolicy != EmptyHide {
		t.Errorf("empty_policy: got %q, want %q", loaded.EmptyPolicy, EmptyHide)
	}
	if got := loaded.Breakpoints.CardsPerPage(500); got != 1 {
		t.Errorf("breakpoints below 600: got %d, want 1", got)
	}
	if got := loaded.Breakpoints.CardsPerPage(900); got != 4 {
		t.Errorf("breakpoints default: got %d, want 4", got)
	}
	if len(loaded.Assets) != 1 || loaded.Assets[0] != "img/*.png" {
		t.Errorf("assets: got %v", loaded.Assets)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Sources.Content != "data.json" {
		t.Errorf("expected default content source, got %q", cfg.Sources.Content)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_EMPTY_POLICY", "hide")
	t.Setenv("FOLIO_SERVER__PORT", "9090")
	t.Setenv("FOLIO_SITE__OWNER", "Grace")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.EmptyPolicy != EmptyHide {
		t.Errorf("env override failed: got %q, want %q", loaded.EmptyPolicy, EmptyHide)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("nested env override failed: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Site.Owner != "Grace" {
		t.Errorf("nested env override failed: got %q", loaded.Site.Owner)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing content", func(c *Config) { c.Sources.Content = "" }},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"negative radius", func(c *Config) { c.CloudRadius = -1 }},
		{"bad breakpoints", func(c *Config) { c.Breakpoints.Default = 0 }},
		{"long quiet", func(c *Config) { c.ResizeQuiet = time.Minute }},
		{"unknown policy", func(c *Config) { c.EmptyPolicy = "explode" }},
		{"empty output", func(c *Config) { c.OutputDir = "" }},
		{"port range", func(c *Config) { c.Server.Port = 70000 }},
		{"no event budget", func(c *Config) { c.Server.EventsPerSecond = 0 }},
		{"log level", func(c *Config) { c.Log.Level = "chatty" }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should be valid, got: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"images/**/*.png", []string{"images/**/*.png"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

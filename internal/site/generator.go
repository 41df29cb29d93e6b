// Package site writes the portfolio as a static site. The exported page
// runs without a server; its script paginates and shows tooltips locally.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/progress"
)

// Generator exports a snapshot to OutputDir.
type Generator struct {
	OutputDir string
	// AssetRoot and Assets select the user files copied next to the page.
	AssetRoot string
	Assets    []string
	Progress  progress.Reporter
}

// NewGenerator creates a Generator writing to outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{OutputDir: outputDir, Progress: progress.Nop{}}
}

// Result summarizes a generated site.
type Result struct {
	Snapshot string
	Loaded   bool
	Files    []string
	Assets   int
}

// Generate renders snap through a and writes the page, its stylesheet and
// script, the content as JSON, and the matched assets.
func (g *Generator) Generate(a *app.App, snap *app.Snapshot) (Result, error) {
	res := Result{Snapshot: snap.ID, Loaded: snap.OK()}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, err
	}

	var buf bytes.Buffer
	if err := a.RenderPage(&buf, snap, "", false); err != nil {
		return res, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", buf.Bytes()},
		{"style.css", []byte(page.Stylesheet())},
		{"script.js", []byte(page.Script())},
	}
	if snap.OK() {
		data, err := json.MarshalIndent(exportedContent{
			Snapshot: snap.ID,
			Content:  snap.Model,
			Cloud:    snap.Cloud,
		}, "", "  ")
		if err != nil {
			return res, fmt.Errorf("encoding content: %w", err)
		}
		files = append(files, struct {
			name string
			data []byte
		}{"content.json", data})
	}

	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.data, 0o644); err != nil {
			return res, fmt.Errorf("writing %s: %w", f.name, err)
		}
		res.Files = append(res.Files, f.name)
	}

	n, err := g.copyAssets()
	res.Assets = n
	if err != nil {
		return res, err
	}
	return res, nil
}

type exportedContent struct {
	Snapshot string `json:"snapshot"`
	Content  any    `json:"content"`
	Cloud    any    `json:"cloud"`
}

package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/view"
)

func sampleWidgets() Widgets {
	return Widgets{
		Achievements: []view.AchievementCard{{Title: "Speaker", Description: "talk"}},
		Catalog: []view.SkillCategoryCard{{Title: "Backend", Skills: []view.SkillCard{
			{Index: 0, Name: "Go", WidthPercent: 80, Notes: "services"},
		}}},
		Cloud:    []view.CloudTag{{Index: 0, Name: "Go", Definition: "services"}},
		Projects: []view.ProjectCard{{Title: "Billing", Problem: "p", Solution: "s", Outcome: "o"}},
	}
}

func TestBuildDefaultShell(t *testing.T) {
	doc, skipped, err := DefaultTemplate().Build(ShellData{
		Title: "Portfolio", Owner: "Ada", Tagline: "Engineer", Live: true, SnapshotID: "snap-1",
	}, sampleWidgets(), dom.EmptyPlaceholder)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("skipped = %v, want none", skipped)
	}

	out := doc.String()
	for _, want := range []string{
		`<title>Portfolio | Ada</title>`,
		`data-live="true"`,
		`data-snapshot="snap-1"`,
		`<span class="achievement-title">Speaker</span>`,
		`<span class="skill-card-name">Go</span>`,
		`class="skill-tag"`,
		`<h3 class="project-title">Billing</h3>`,
		`id="skill-notes-tooltip"`,
		`id="skill-view-toggle-btn"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestBuildEmptyWidgets(t *testing.T) {
	doc, _, err := DefaultTemplate().Build(ShellData{Title: "P"}, Widgets{}, dom.EmptyPlaceholder)
	if err != nil {
		t.Fatal(err)
	}
	out := doc.String()
	for _, want := range []string{dom.NoAchievementsText, dom.NoSkillsText, dom.NoCloudText, dom.NoProjectsText} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing placeholder %q", want)
		}
	}
}

func TestCustomShellSkipsMissingAnchors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shell.html")
	shell := `<html><head><title>{{.Title}}</title></head><body><div id="skills-container"></div></body></html>`
	if err := os.WriteFile(path, []byte(shell), 0o644); err != nil {
		t.Fatal(err)
	}

	tmpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	doc, skipped, err := tmpl.Build(ShellData{Title: "Custom"}, sampleWidgets(), dom.EmptyPlaceholder)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(skipped) != 3 {
		t.Errorf("skipped = %d, want 3", len(skipped))
	}
	if !strings.Contains(doc.String(), "skill-category-card") {
		t.Error("present widget should still render")
	}
}

func TestLoadTemplateErrors(t *testing.T) {
	if _, err := LoadTemplate(filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.html")
	if err := os.WriteFile(path, []byte(`{{.Title`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTemplate(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestAssetsNotEmpty(t *testing.T) {
	if !strings.Contains(Stylesheet(), "@keyframes skill-drift") {
		t.Error("stylesheet missing cloud animation")
	}
	if !strings.Contains(Script(), "/ws/live") {
		t.Error("script missing live endpoint")
	}
}

// Package page assembles the portfolio page: it executes the shell template,
// then mounts every widget into the resulting document.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/view"
)

// ShellData is passed to the shell template.
type ShellData struct {
	Title      string
	Owner      string
	Tagline    string
	BasePath   string
	SnapshotID string
	Live       bool
}

// Widgets holds the view descriptions for one page.
type Widgets struct {
	Achievements []view.AchievementCard
	Catalog      []view.SkillCategoryCard
	Cloud        []view.CloudTag
	Projects     []view.ProjectCard
}

// Template is a parsed page shell.
type Template struct {
	tmpl *template.Template
}

// DefaultTemplate returns the built-in shell.
func DefaultTemplate() *Template {
	return &Template{tmpl: template.Must(template.New("shell").Parse(shellTemplate))}
}

// LoadTemplate parses a custom shell from path. An empty path yields the
// built-in shell.
func LoadTemplate(path string) (*Template, error) {
	if path == "" {
		return DefaultTemplate(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shell template: %w", err)
	}
	tmpl, err := template.New("shell").Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing shell template %s: %w", path, err)
	}
	return &Template{tmpl: tmpl}, nil
}

// Build executes the shell and mounts the widgets. Widgets whose anchor is
// missing from the shell are skipped and reported in skipped; any other
// failure is returned as err.
func (t *Template) Build(data ShellData, w Widgets, policy dom.EmptyPolicy) (doc *dom.Document, skipped []error, err error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return nil, nil, fmt.Errorf("executing shell template: %w", err)
	}
	doc, err = dom.Parse(&buf)
	if err != nil {
		return nil, nil, err
	}

	mounts := []func() error{
		func() error { return dom.MountAchievements(doc, w.Achievements, policy) },
		func() error { return dom.MountSkillCatalog(doc, w.Catalog, policy) },
		func() error { return dom.MountSkillCloud(doc, w.Cloud, policy) },
		func() error { return dom.MountProjects(doc, w.Projects, policy) },
	}
	for _, mount := range mounts {
		if err := mount(); err != nil {
			if errors.Is(err, dom.ErrMissingAnchor) {
				skipped = append(skipped, err)
				continue
			}
			return nil, skipped, err
		}
	}
	return doc, skipped, nil
}

// Stylesheet returns the page CSS.
func Stylesheet() string { return cssContent }

// Script returns the page client.
func Script() string { return jsContent }

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectSources looks in the current directory for well-known content
// documents and returns the ones it finds.
func detectSources() (contentPath, skillsPath string) {
	for _, name := range []string{"data.json", "content.json", "portfolio.json"} {
		if _, err := os.Stat(name); err == nil {
			contentPath = name
			break
		}
	}
	if _, err := os.Stat("skills.json"); err == nil {
		skillsPath = "skills.json"
	}
	return contentPath, skillsPath
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	contentPath, skillsPath := detectSources()
	if contentPath != "" {
		fmt.Printf("Detected content document: %s\n", contentPath)
		cfg.Sources.Content = contentPath
	}
	if skillsPath != "" {
		fmt.Printf("Detected skills document: %s\n", skillsPath)
	}
	cfg.Sources.Skills = skillsPath
	fmt.Println()

	// 1. Identity.
	owner, err := (&promptui.Prompt{Label: "Your name"}).Run()
	if err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	cfg.Site.Owner = strings.TrimSpace(owner)

	title, err := (&promptui.Prompt{Label: "Page title", Default: cfg.Site.Title}).Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Site.Title = strings.TrimSpace(title)

	tagline, err := (&promptui.Prompt{Label: "Tagline (optional)"}).Run()
	if err != nil {
		return nil, fmt.Errorf("tagline: %w", err)
	}
	cfg.Site.Tagline = strings.TrimSpace(tagline)

	// 2. Sources.
	content, err := (&promptui.Prompt{
		Label:    "Content document (path or URL)",
		Default:  cfg.Sources.Content,
		Validate: required,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	cfg.Sources.Content = strings.TrimSpace(content)

	skills, err := (&promptui.Prompt{
		Label:   "Skills document (path or URL, leave blank to use the flat skill list)",
		Default: cfg.Sources.Skills,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("skills source: %w", err)
	}
	cfg.Sources.Skills = strings.TrimSpace(skills)

	// 3. Empty widget behavior.
	policyPrompt := promptui.Select{
		Label: "When a section has no data",
		Items: []string{
			"placeholder: show a short notice",
			"hide: leave the section empty",
		},
	}
	policyIdx, _, err := policyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("empty policy: %w", err)
	}
	cfg.EmptyPolicy = []EmptyPolicy{EmptyPlaceholder, EmptyHide}[policyIdx]

	// 4. Output.
	outputDir, err := (&promptui.Prompt{
		Label:    "Output directory for the static site",
		Default:  cfg.OutputDir,
		Validate: required,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	assets, err := (&promptui.Prompt{
		Label:   "Asset globs to copy (comma-separated)",
		Default: strings.Join(DefaultAssets, ","),
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	cfg.Assets = splitAndTrim(assets)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

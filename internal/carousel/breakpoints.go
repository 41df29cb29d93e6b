package carousel

import (
	"fmt"
	"sort"
)

// Breakpoint maps viewports narrower than MaxWidth to PerPage cards.
type Breakpoint struct {
	MaxWidth float64 `yaml:"max_width" koanf:"max_width" json:"max_width"`
	PerPage  int     `yaml:"per_page" koanf:"per_page" json:"per_page"`
}

// Breakpoints is an ascending table of width thresholds plus the card count
// used at or above the widest threshold.
type Breakpoints struct {
	Steps   []Breakpoint `yaml:"steps" koanf:"steps" json:"steps"`
	Default int          `yaml:"default" koanf:"default" json:"default"`
}

// DefaultBreakpoints is the mobile/tablet/desktop table:
// <768px -> 1, <1024px -> 2, otherwise 3.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Steps: []Breakpoint{
			{MaxWidth: 768, PerPage: 1},
			{MaxWidth: 1024, PerPage: 2},
		},
		Default: 3,
	}
}

// CardsPerPage returns the number of cards shown at the given viewport width.
func (b Breakpoints) CardsPerPage(width float64) int {
	steps := append([]Breakpoint(nil), b.Steps...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].MaxWidth < steps[j].MaxWidth })
	for _, s := range steps {
		if width < s.MaxWidth {
			return s.PerPage
		}
	}
	return b.Default
}

// Validate reports tables that could yield a non-positive page size.
func (b Breakpoints) Validate() error {
	if b.Default < 1 {
		return fmt.Errorf("breakpoints: default per_page must be at least 1, got %d", b.Default)
	}
	for _, s := range b.Steps {
		if s.PerPage < 1 {
			return fmt.Errorf("breakpoints: per_page for width < %v must be at least 1, got %d", s.MaxWidth, s.PerPage)
		}
		if s.MaxWidth <= 0 {
			return fmt.Errorf("breakpoints: max_width must be positive, got %v", s.MaxWidth)
		}
	}
	return nil
}

package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MaxProficiency is the top of the proficiency scale.
const MaxProficiency = 5

// flatCategory is the heading used when skills come from a flat name list.
const flatCategory = "Skills"

// ParseContent decodes the achievements/projects document.
func ParseContent(data []byte) (ContentDocument, error) {
	var doc ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parsing content JSON: %w", err)
	}
	return doc, nil
}

// ParseSkills decodes the skills-detail document.
func ParseSkills(data []byte) (SkillsDocument, error) {
	var doc SkillsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parsing skills JSON: %w", err)
	}
	return doc, nil
}

// Merge combines the two source documents into one normalized Model. When
// skills is nil the flat skill list of the content document is used.
func Merge(doc ContentDocument, skills *SkillsDocument) *Model {
	var src SkillSource
	switch {
	case skills != nil && len(skills.SkillCategories) > 0:
		src = CategorizedSource(skills.SkillCategories)
	case len(doc.Skills) > 0:
		src = FlatSource(doc.Skills)
	}

	m := &Model{
		Achievements: doc.Achievements,
		Skills:       src,
		Projects:     doc.Projects,
	}
	m.Normalize()
	return m
}

// FlatSource builds a SkillSource from a list of skill names.
func FlatSource(names []string) SkillSource {
	return SkillSource{Kind: SourceFlat, Flat: names}
}

// CategorizedSource builds a SkillSource from detailed categories.
func CategorizedSource(categories []SkillCategory) SkillSource {
	return SkillSource{Kind: SourceCategorized, Categories: categories}
}

// Normalize replaces nil slices with empty ones and folds a flat skill list
// into a single category with synthesized notes. It is idempotent.
func (m *Model) Normalize() {
	if m.Achievements == nil {
		m.Achievements = []Achievement{}
	}
	if m.Projects == nil {
		m.Projects = []Project{}
	}
	m.Skills.normalize()
}

func (s *SkillSource) normalize() {
	if s.Kind == SourceFlat && len(s.Categories) == 0 {
		skills := make([]Skill, 0, len(s.Flat))
		for _, name := range s.Flat {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			skills = append(skills, Skill{Name: name, Notes: SynthesizeDefinition(name)})
		}
		if len(skills) > 0 {
			s.Categories = []SkillCategory{{Category: flatCategory, Skills: skills}}
		}
	}
	if s.Categories == nil {
		s.Categories = []SkillCategory{}
	}
	for i := range s.Categories {
		if s.Categories[i].Skills == nil {
			s.Categories[i].Skills = []Skill{}
		}
	}
}

// SynthesizeDefinition produces the tooltip text for a skill known only by name.
func SynthesizeDefinition(name string) string {
	return "Experience with " + name + "."
}

// Validate checks the required fields of every achievement.
func (m *Model) Validate() error {
	var errs []error
	for i, a := range m.Achievements {
		if strings.TrimSpace(a.Title) == "" {
			errs = append(errs, fmt.Errorf("achievement at index %d missing title", i))
		}
		if strings.TrimSpace(a.Description) == "" {
			errs = append(errs, fmt.Errorf("achievement at index %d missing description", i))
		}
	}
	return errors.Join(errs...)
}

// ClampedProficiency returns the proficiency bounded to [0, MaxProficiency].
func (s Skill) ClampedProficiency() float64 {
	switch {
	case s.Proficiency < 0:
		return 0
	case s.Proficiency > MaxProficiency:
		return MaxProficiency
	default:
		return s.Proficiency
	}
}

// Complete reports whether all four fields required for a card are present.
func (p Project) Complete() bool {
	return strings.TrimSpace(p.Title) != "" &&
		strings.TrimSpace(p.Problem) != "" &&
		strings.TrimSpace(p.Solution) != "" &&
		strings.TrimSpace(p.Outcome) != ""
}

// CloudEntry is a skill as consumed by the skill cloud: name plus definition.
type CloudEntry struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
}

// CloudEntries flattens all categories in order. The notes become definitions.
func (m *Model) CloudEntries() []CloudEntry {
	if m == nil {
		return []CloudEntry{}
	}
	entries := make([]CloudEntry, 0, m.SkillCount())
	for _, c := range m.Skills.Categories {
		for _, s := range c.Skills {
			entries = append(entries, CloudEntry{Name: s.Name, Definition: s.Notes})
		}
	}
	return entries
}

// SkillCount is the number of skills across all categories.
func (m *Model) SkillCount() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, c := range m.Skills.Categories {
		n += len(c.Skills)
	}
	return n
}

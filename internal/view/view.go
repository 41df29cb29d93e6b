// Package view maps the content model to widget descriptions. Nothing here
// touches a DOM; the dom package mounts these descriptions.
package view

import (
	"html/template"

	"github.com/ziadkadry99/folio/internal/cloud"
	"github.com/ziadkadry99/folio/internal/content"
)

// ProficiencyUnit is the bar width in percent per proficiency point.
const ProficiencyUnit = 20

// AchievementCard describes one achievement card.
type AchievementCard struct {
	Title       string
	Description template.HTML
	Category    string
	ImageURL    string
}

// SkillCard describes one skill in the structured list. Index is the
// position across all categories and identifies the card in hover events.
type SkillCard struct {
	Index        int
	Name         string
	WidthPercent float64
	Notes        string
}

// SkillCategoryCard groups skill cards under a heading.
type SkillCategoryCard struct {
	Title  string
	Skills []SkillCard
}

// CloudTag describes one tag of the skill cloud.
type CloudTag struct {
	Index      int
	Name       string
	Definition string
	Style      string
}

// ProjectCard describes one carousel card.
type ProjectCard struct {
	Index    int
	Title    string
	Problem  template.HTML
	Solution template.HTML
	Outcome  template.HTML
}

// Achievements maps every achievement, in model order.
func Achievements(m *content.Model, f Formatter) []AchievementCard {
	if m == nil {
		return []AchievementCard{}
	}
	cards := make([]AchievementCard, 0, len(m.Achievements))
	for _, a := range m.Achievements {
		cards = append(cards, AchievementCard{
			Title:       a.Title,
			Description: f.Format(a.Description),
			Category:    a.Category,
			ImageURL:    a.ImageURL,
		})
	}
	return cards
}

// SkillCatalog maps the categorized skills. Categories without skills are
// left out.
func SkillCatalog(m *content.Model) []SkillCategoryCard {
	if m == nil {
		return []SkillCategoryCard{}
	}
	cats := make([]SkillCategoryCard, 0, len(m.Skills.Categories))
	index := 0
	for _, c := range m.Skills.Categories {
		if len(c.Skills) == 0 {
			continue
		}
		card := SkillCategoryCard{Title: c.Category, Skills: make([]SkillCard, 0, len(c.Skills))}
		for _, s := range c.Skills {
			card.Skills = append(card.Skills, SkillCard{
				Index:        index,
				Name:         s.Name,
				WidthPercent: s.ClampedProficiency() * ProficiencyUnit,
				Notes:        s.Notes,
			})
			index++
		}
		cats = append(cats, card)
	}
	return cats
}

// CloudTags converts the model's skills into layout input.
func CloudTags(m *content.Model) []cloud.Tag {
	entries := m.CloudEntries()
	tags := make([]cloud.Tag, len(entries))
	for i, e := range entries {
		tags[i] = cloud.Tag{Name: e.Name, Definition: e.Definition}
	}
	return tags
}

// SkillCloud maps laid-out points to tag descriptions.
func SkillCloud(points []cloud.Point) []CloudTag {
	tags := make([]CloudTag, len(points))
	for i, p := range points {
		tags[i] = CloudTag{
			Index:      i,
			Name:       p.SkillName,
			Definition: p.Definition,
			Style:      p.Style(),
		}
	}
	return tags
}

// Projects maps complete projects, in model order. Projects missing any of
// the four fields are skipped.
func Projects(m *content.Model, f Formatter) []ProjectCard {
	if m == nil {
		return []ProjectCard{}
	}
	cards := make([]ProjectCard, 0, len(m.Projects))
	for _, p := range m.Projects {
		if !p.Complete() {
			continue
		}
		cards = append(cards, ProjectCard{
			Index:    len(cards),
			Title:    p.Title,
			Problem:  f.Format(p.Problem),
			Solution: f.Format(p.Solution),
			Outcome:  f.Format(p.Outcome),
		})
	}
	return cards
}

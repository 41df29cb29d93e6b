package view

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/cloud"
	"github.com/ziadkadry99/folio/internal/content"
)

func sampleModel() *content.Model {
	m := &content.Model{
		Achievements: []content.Achievement{
			{Title: "B first", Description: "one"},
			{Title: "A second", Description: "two", Category: "oss"},
		},
		Skills: content.CategorizedSource([]content.SkillCategory{
			{Category: "Backend", Skills: []content.Skill{
				{Name: "Go", Proficiency: 4.5, Notes: "services"},
				{Name: "SQL", Proficiency: 7, Notes: "queries"},
			}},
			{Category: "Empty"},
			{Category: "Infra", Skills: []content.Skill{
				{Name: "Kubernetes", Proficiency: -2, Notes: "clusters"},
			}},
		}),
		Projects: []content.Project{
			{Title: "Full", Problem: "p", Solution: "s", Outcome: "o"},
			{Title: "Partial", Problem: "p"},
			{Title: "Also full", Problem: "p2", Solution: "s2", Outcome: "o2"},
		},
	}
	m.Normalize()
	return m
}

func TestAchievementsPreserveOrder(t *testing.T) {
	cards := Achievements(sampleModel(), PlainFormatter{})
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	if cards[0].Title != "B first" || cards[1].Title != "A second" {
		t.Errorf("order changed: %q, %q", cards[0].Title, cards[1].Title)
	}
	if cards[1].Category != "oss" {
		t.Errorf("category = %q", cards[1].Category)
	}
}

func TestSkillCatalogWidthsAndIndexes(t *testing.T) {
	cats := SkillCatalog(sampleModel())
	if len(cats) != 2 {
		t.Fatalf("categories = %d, want 2 (empty category skipped)", len(cats))
	}

	tests := []struct {
		cat, skill int
		name       string
		width      float64
		index      int
	}{
		{0, 0, "Go", 90, 0},
		{0, 1, "SQL", 100, 1},
		{1, 0, "Kubernetes", 0, 2},
	}
	for _, tt := range tests {
		got := cats[tt.cat].Skills[tt.skill]
		if got.Name != tt.name || got.WidthPercent != tt.width || got.Index != tt.index {
			t.Errorf("skill %s = %+v, want width %v index %d", tt.name, got, tt.width, tt.index)
		}
	}
}

func TestProjectsSkipIncomplete(t *testing.T) {
	cards := Projects(sampleModel(), PlainFormatter{})
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	if cards[1].Title != "Also full" || cards[1].Index != 1 {
		t.Errorf("second card = %+v", cards[1])
	}
}

func TestNilModelYieldsEmpty(t *testing.T) {
	if got := Achievements(nil, PlainFormatter{}); len(got) != 0 || got == nil {
		t.Errorf("Achievements(nil) = %#v", got)
	}
	if got := SkillCatalog(nil); len(got) != 0 || got == nil {
		t.Errorf("SkillCatalog(nil) = %#v", got)
	}
	if got := Projects(nil, PlainFormatter{}); len(got) != 0 || got == nil {
		t.Errorf("Projects(nil) = %#v", got)
	}
	if got := CloudTags(nil); len(got) != 0 {
		t.Errorf("CloudTags(nil) = %#v", got)
	}
}

func TestMappingIsPure(t *testing.T) {
	m := sampleModel()
	f := NewMarkdownFormatter()
	if !reflect.DeepEqual(Achievements(m, f), Achievements(m, f)) {
		t.Error("Achievements differs between calls")
	}
	if !reflect.DeepEqual(SkillCatalog(m), SkillCatalog(m)) {
		t.Error("SkillCatalog differs between calls")
	}
	if !reflect.DeepEqual(Projects(m, f), Projects(m, f)) {
		t.Error("Projects differs between calls")
	}
}

func TestSkillCloudTags(t *testing.T) {
	m := sampleModel()
	points := cloud.Layout(CloudTags(m), cloud.DefaultRadius)
	tags := SkillCloud(points)
	if len(tags) != 3 {
		t.Fatalf("tags = %d, want 3", len(tags))
	}
	if tags[2].Name != "Kubernetes" || tags[2].Definition != "clusters" {
		t.Errorf("tag 2 = %+v", tags[2])
	}
	if !strings.Contains(tags[0].Style, "--x:") || !strings.Contains(tags[0].Style, "skill-drift") {
		t.Errorf("style = %q", tags[0].Style)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	f := NewMarkdownFormatter()

	got := string(f.Format("Cut latency by **40%**"))
	if got != "Cut latency by <strong>40%</strong>" {
		t.Errorf("inline = %q", got)
	}

	got = string(f.Format("<script>alert(1)</script>"))
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %q", got)
	}

	got = string(f.Format("first\n\nsecond"))
	if !strings.Contains(got, "<p>first</p>") || !strings.Contains(got, "<p>second</p>") {
		t.Errorf("multi paragraph = %q", got)
	}
}

func TestPlainFormatterEscapes(t *testing.T) {
	got := string(PlainFormatter{}.Format(`<b>"x"</b>`))
	if strings.Contains(got, "<b>") {
		t.Errorf("not escaped: %q", got)
	}
}

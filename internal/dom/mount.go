package dom

import (
	"fmt"
	"html/template"
	"strconv"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/folio/internal/view"
)

// EmptyPolicy selects what an empty widget shows.
type EmptyPolicy string

const (
	// EmptyPlaceholder renders an explicit "no data" message.
	EmptyPlaceholder EmptyPolicy = "placeholder"
	// EmptyHide leaves the container empty.
	EmptyHide EmptyPolicy = "hide"
)

// Placeholder messages for empty widgets.
const (
	NoAchievementsText = "No achievements to show yet."
	NoSkillsText       = "Skills data could not be loaded."
	NoCloudText        = "No skills to show."
	NoProjectsText     = "No projects to show yet."
)

func placeholder(container *html.Node, policy EmptyPolicy, msg string) {
	if policy == EmptyHide {
		return
	}
	container.AppendChild(withText(el("p", "class", "empty-state"), msg))
}

// MountAchievements replaces the achievement container's content with one
// card per entry.
func MountAchievements(d *Document, cards []view.AchievementCard, policy EmptyPolicy) error {
	container, err := d.Anchor(AchievementsAnchor)
	if err != nil {
		return err
	}
	clearChildren(container)

	if len(cards) == 0 {
		placeholder(container, policy, NoAchievementsText)
		return nil
	}

	for _, c := range cards {
		card := el("div", "class", "achievement-card")
		body := el("div", "class", "achievement-card-content")
		if c.ImageURL != "" {
			body.AppendChild(el("img", "class", "achievement-image", "src", c.ImageURL, "alt", c.Title, "loading", "lazy"))
		}
		body.AppendChild(withText(el("span", "class", "achievement-title"), c.Title))
		if c.Category != "" {
			body.AppendChild(withText(el("span", "class", "achievement-category"), c.Category))
		}
		desc := el("div", "class", "achievement-description")
		if err := appendHTML(desc, c.Description); err != nil {
			return fmt.Errorf("achievement %q: %w", c.Title, err)
		}
		body.AppendChild(desc)
		card.AppendChild(body)
		container.AppendChild(card)
	}
	return nil
}

// MountSkillCatalog renders the categorized skill list and makes sure the
// page holds exactly one notes tooltip.
func MountSkillCatalog(d *Document, cats []view.SkillCategoryCard, policy EmptyPolicy) error {
	container, err := d.Anchor(SkillsAnchor)
	if err != nil {
		return err
	}
	ensureNotesTooltip(d)
	clearChildren(container)

	if len(cats) == 0 {
		placeholder(container, policy, NoSkillsText)
		return nil
	}

	for _, cat := range cats {
		wrapper := el("div", "class", "skill-category-card")
		wrapper.AppendChild(withText(el("h3", "class", "skill-category-title"), cat.Title))
		grid := el("div", "class", "skills-grid")
		for _, s := range cat.Skills {
			card := el("div",
				"class", "skill-card",
				"data-index", strconv.Itoa(s.Index),
				"data-notes", s.Notes,
			)
			card.AppendChild(withText(el("span", "class", "skill-card-name"), s.Name))
			bg := el("div", "class", "skill-card-proficiency-bg")
			bg.AppendChild(el("div",
				"class", "skill-card-proficiency-fg",
				"style", "width: "+strconv.FormatFloat(s.WidthPercent, 'f', -1, 64)+"%",
			))
			card.AppendChild(bg)
			grid.AppendChild(card)
		}
		wrapper.AppendChild(grid)
		container.AppendChild(wrapper)
	}
	return nil
}

// ensureNotesTooltip reuses the existing tooltip element or appends one to
// the body, resetting it to empty.
func ensureNotesTooltip(d *Document) {
	tip, err := d.Anchor(NotesTooltipID)
	if err != nil {
		body := d.Body()
		if body == nil {
			return
		}
		tip = el("div", "id", NotesTooltipID, "class", "skill-notes-tooltip", "role", "tooltip")
		body.AppendChild(tip)
	}
	clearChildren(tip)
	SetAttr(tip, "class", "skill-notes-tooltip")
}

// MountSkillCloud renders the cloud tags with their sphere coordinates.
func MountSkillCloud(d *Document, tags []view.CloudTag, policy EmptyPolicy) error {
	container, err := d.Anchor(SkillCloudAnchor)
	if err != nil {
		return err
	}
	clearChildren(container)

	if len(tags) == 0 {
		placeholder(container, policy, NoCloudText)
		return nil
	}

	container.AppendChild(el("div", "class", "skill-definition-tooltip", "role", "tooltip"))
	cloudNode := el("div", "class", "skill-cloud")
	for _, t := range tags {
		tag := el("span",
			"class", "skill-tag",
			"data-index", strconv.Itoa(t.Index),
			"data-definition", t.Definition,
			"style", t.Style,
		)
		tag.AppendChild(withText(el("span", "class", "skill-tag-text"), t.Name))
		cloudNode.AppendChild(tag)
	}
	container.AppendChild(cloudNode)
	return nil
}

// MountProjects renders the carousel cards into the slider track. With no
// cards the pagination controls are hidden.
func MountProjects(d *Document, cards []view.ProjectCard, policy EmptyPolicy) error {
	track, err := d.Anchor(SliderTrackAnchor)
	if err != nil {
		return err
	}
	clearChildren(track)

	for _, id := range []string{SliderPrevAnchor, SliderNextAnchor, SliderProgress} {
		if n, err := d.Anchor(id); err == nil {
			if len(cards) == 0 {
				SetAttr(n, "hidden", "")
			} else {
				removeAttr(n, "hidden")
			}
		}
	}

	if len(cards) == 0 {
		placeholder(track, policy, NoProjectsText)
		return nil
	}

	for _, c := range cards {
		card := el("article", "class", "project-card", "data-index", strconv.Itoa(c.Index))
		card.AppendChild(withText(el("h3", "class", "project-title"), c.Title))
		for _, sec := range []struct {
			label string
			class string
			body  template.HTML
		}{
			{"Problem", "project-problem", c.Problem},
			{"Solution", "project-solution", c.Solution},
			{"Outcome", "project-outcome", c.Outcome},
		} {
			section := el("div", "class", "project-section "+sec.class)
			section.AppendChild(withText(el("h4", "class", "project-section-title"), sec.label))
			body := el("div", "class", "project-section-body")
			if err := appendHTML(body, sec.body); err != nil {
				return fmt.Errorf("project %q: %w", c.Title, err)
			}
			section.AppendChild(body)
			card.AppendChild(section)
		}
		track.AppendChild(card)
	}
	return nil
}

func removeAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

package view

// Rect is a tag's bounding box in viewport pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TooltipOffset lifts the tooltip above the hovered tag.
const TooltipOffset = 10

// TooltipState is what the shared tooltip element shows.
type TooltipState struct {
	Widget  string  `json:"widget"`
	Owner   int     `json:"owner"`
	Text    string  `json:"text"`
	Visible bool    `json:"visible"`
	Left    float64 `json:"left,omitempty"`
	Top     float64 `json:"top,omitempty"`
}

// Widget names used in hover events.
const (
	WidgetCatalog = "catalog"
	WidgetCloud   = "cloud"
)

// TooltipWidget owns the single tooltip of one skill widget instance and the
// text each of its tags shows.
type TooltipWidget struct {
	name       string
	texts      []string
	positioned bool
	state      TooltipState
}

// NewCatalogTooltip builds the notes tooltip of the structured skill list.
// It follows the hovered card.
func NewCatalogTooltip(cats []SkillCategoryCard) *TooltipWidget {
	var texts []string
	for _, c := range cats {
		for _, s := range c.Skills {
			texts = append(texts, s.Notes)
		}
	}
	return newTooltipWidget(WidgetCatalog, texts, true)
}

// NewCloudTooltip builds the definition tooltip of the skill cloud. Its
// position is fixed by the stylesheet.
func NewCloudTooltip(tags []CloudTag) *TooltipWidget {
	texts := make([]string, len(tags))
	for i, t := range tags {
		texts[i] = t.Definition
	}
	return newTooltipWidget(WidgetCloud, texts, false)
}

func newTooltipWidget(name string, texts []string, positioned bool) *TooltipWidget {
	return &TooltipWidget{
		name:       name,
		texts:      texts,
		positioned: positioned,
		state:      TooltipState{Widget: name, Owner: -1},
	}
}

// Len is the number of tags in the widget.
func (w *TooltipWidget) Len() int { return len(w.texts) }

// State returns the current tooltip state.
func (w *TooltipWidget) State() TooltipState { return w.state }

// Hover shows the text of tag index, anchored above the center of rect. It
// reports false for an unknown index and leaves the state untouched.
func (w *TooltipWidget) Hover(index int, rect Rect) (TooltipState, bool) {
	if index < 0 || index >= len(w.texts) {
		return w.state, false
	}
	w.state = TooltipState{
		Widget:  w.name,
		Owner:   index,
		Text:    w.texts[index],
		Visible: true,
	}
	if w.positioned {
		w.state.Left = rect.Left + rect.Width/2
		w.state.Top = rect.Top - TooltipOffset
	}
	return w.state, true
}

// Leave hides and clears the tooltip if tag index currently owns it. A late
// leave from a previously hovered tag does not hide another tag's text.
func (w *TooltipWidget) Leave(index int) TooltipState {
	if w.state.Owner == index {
		w.state = TooltipState{Widget: w.name, Owner: -1}
	}
	return w.state
}

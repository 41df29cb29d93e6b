// Package live runs per-browser sessions over a websocket. Each session owns
// a carousel controller and the tooltips of both skill widgets; the page
// relays viewport and pointer events and applies the state sent back.
package live

import (
	"github.com/ziadkadry99/folio/internal/carousel"
	"github.com/ziadkadry99/folio/internal/view"
)

// Inbound event types.
const (
	EventInit   = "init"
	EventResize = "resize"
	EventNext   = "next"
	EventPrev   = "prev"
	EventHover  = "hover"
	EventLeave  = "leave"
)

// Outbound message types.
const (
	MsgReady    = "ready"
	MsgCarousel = "carousel"
	MsgTooltip  = "tooltip"
	MsgReload   = "reload"
	MsgError    = "error"
)

// Inbound is an event relayed by the page.
type Inbound struct {
	Type       string    `json:"type"`
	Width      float64   `json:"width,omitempty"`
	CardCount  int       `json:"card_count,omitempty"`
	CardWidth  float64   `json:"card_width,omitempty"`
	CardMargin float64   `json:"card_margin,omitempty"`
	Widget     string    `json:"widget,omitempty"`
	Index      int       `json:"index"`
	Rect       view.Rect `json:"rect"`
}

// AlwaysApplied reports whether the event must reach the session even when
// the sender is over its rate. A resize carries the latest viewport the
// pending recomputation will read, and a leave releases a visible tooltip.
func (ev Inbound) AlwaysApplied() bool {
	return ev.Type == EventResize || ev.Type == EventLeave
}

// CarouselView is what the page applies to the slider controls.
type CarouselView struct {
	Visible     bool           `json:"visible"`
	Offset      float64        `json:"offset"`
	PrevEnabled bool           `json:"prev_enabled"`
	NextEnabled bool           `json:"next_enabled"`
	Progress    float64        `json:"progress"`
	State       carousel.State `json:"state"`
}

// Outbound is a message sent to the page.
type Outbound struct {
	Type     string             `json:"type"`
	Session  string             `json:"session,omitempty"`
	Snapshot string             `json:"snapshot,omitempty"`
	Carousel *CarouselView      `json:"carousel,omitempty"`
	Tooltip  *view.TooltipState `json:"tooltip,omitempty"`
	Error    string             `json:"error,omitempty"`
}

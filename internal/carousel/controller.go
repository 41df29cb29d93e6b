// Package carousel implements the paginated project slider.
package carousel

import (
	"sync"
	"time"

	"github.com/ziadkadry99/folio/internal/debounce"
)

// ResizeQuiet is the quiet period after the last resize event before the
// carousel recomputes its geometry.
const ResizeQuiet = 100 * time.Millisecond

// Viewport reports the current viewport width in pixels.
type Viewport interface {
	Width() float64
}

// Track is the laid-out row of project cards.
type Track interface {
	CardCount() int
	// CardWidth and CardMargin describe the first card as measured from the
	// live layout.
	CardWidth() float64
	CardMargin() float64
}

// Controls are the slider track transform, the prev/next buttons and the
// progress bar.
type Controls interface {
	// Bind replaces any previously attached button handlers.
	Bind(onPrev, onNext func())
	SetVisible(visible bool)
	SetOffset(px float64)
	SetPrevEnabled(enabled bool)
	SetNextEnabled(enabled bool)
	SetProgress(percent float64)
}

// Geometry is the measured size of one card slot.
type Geometry struct {
	Width  float64 `json:"width"`
	Margin float64 `json:"margin"`
}

// State is the pagination state. It is rebuilt wholesale on every
// initialization, never patched.
type State struct {
	Ready        bool     `json:"ready"`
	CurrentPage  int      `json:"current_page"`
	CardsPerPage int      `json:"cards_per_page"`
	TotalPages   int      `json:"total_pages"`
	CardCount    int      `json:"card_count"`
	Geometry     Geometry `json:"geometry"`
}

// Offset is the horizontal track translation for the current page.
func (s State) Offset() float64 {
	return -float64(s.CurrentPage) * float64(s.CardsPerPage) * (s.Geometry.Width + s.Geometry.Margin)
}

// Progress is the progress bar fill in percent.
func (s State) Progress() float64 {
	if s.TotalPages > 1 {
		return float64(s.CurrentPage) / float64(s.TotalPages-1) * 100
	}
	return 100
}

// PrevEnabled reports whether the prev button is usable.
func (s State) PrevEnabled() bool { return s.Ready && s.CurrentPage > 0 }

// NextEnabled reports whether the next button is usable.
func (s State) NextEnabled() bool { return s.Ready && s.CurrentPage < s.TotalPages-1 }

// Controller owns the pagination state of one carousel instance.
type Controller struct {
	breakpoints Breakpoints
	resize      *debounce.Debouncer

	mu       sync.Mutex
	state    State
	track    Track
	viewport Viewport
	controls Controls
	onChange func(State)
}

// Option configures a Controller.
type Option func(*Controller)

// WithDebouncer replaces the resize debouncer.
func WithDebouncer(d *debounce.Debouncer) Option {
	return func(c *Controller) { c.resize = d }
}

// WithOnChange registers a callback invoked with the new state after every
// transition, outside the controller lock.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// NewController creates an uninitialized Controller using the given
// breakpoint table.
func NewController(breakpoints Breakpoints, opts ...Option) *Controller {
	c := &Controller{breakpoints: breakpoints}
	for _, opt := range opts {
		opt(c)
	}
	if c.resize == nil {
		c.resize = debounce.New(ResizeQuiet)
	}
	return c
}

// Initialize measures the track and viewport and resets to page 0. Missing
// collaborators or an empty track leave the controller uninitialized and hide
// the controls when they exist.
func (c *Controller) Initialize(track Track, viewport Viewport, controls Controls) State {
	c.mu.Lock()
	c.track, c.viewport, c.controls = track, viewport, controls
	s := c.rebuildLocked()
	c.mu.Unlock()

	c.notify(s)
	return s
}

// rebuildLocked recomputes the state from scratch using the stored
// collaborators.
func (c *Controller) rebuildLocked() State {
	c.state = State{}
	if c.controls == nil {
		return c.state
	}
	if c.track == nil || c.viewport == nil || c.track.CardCount() == 0 {
		c.controls.Bind(nil, nil)
		c.controls.SetVisible(false)
		return c.state
	}

	perPage := c.breakpoints.CardsPerPage(c.viewport.Width())
	if perPage < 1 {
		perPage = 1
	}
	count := c.track.CardCount()
	c.state = State{
		Ready:        true,
		CurrentPage:  0,
		CardsPerPage: perPage,
		TotalPages:   (count + perPage - 1) / perPage,
		CardCount:    count,
		Geometry: Geometry{
			Width:  c.track.CardWidth(),
			Margin: c.track.CardMargin(),
		},
	}

	c.controls.Bind(c.prevHandler, c.nextHandler)
	c.controls.SetVisible(true)
	c.applyLocked()
	return c.state
}

func (c *Controller) prevHandler() { c.Prev() }
func (c *Controller) nextHandler() { c.Next() }

func (c *Controller) applyLocked() {
	s := c.state
	c.controls.SetOffset(s.Offset())
	c.controls.SetPrevEnabled(s.PrevEnabled())
	c.controls.SetNextEnabled(s.NextEnabled())
	c.controls.SetProgress(s.Progress())
}

// Next advances one page, clamped to the last page.
func (c *Controller) Next() State {
	return c.move(1)
}

// Prev retreats one page, clamped to page 0.
func (c *Controller) Prev() State {
	return c.move(-1)
}

func (c *Controller) move(delta int) State {
	c.mu.Lock()
	if !c.state.Ready {
		s := c.state
		c.mu.Unlock()
		return s
	}
	page := c.state.CurrentPage + delta
	if page < 0 {
		page = 0
	}
	if page > c.state.TotalPages-1 {
		page = c.state.TotalPages - 1
	}
	c.state.CurrentPage = page
	c.applyLocked()
	s := c.state
	c.mu.Unlock()

	c.notify(s)
	return s
}

// OnResize schedules a full re-initialization once resizing has been quiet
// for the debounce period. The page resets to 0.
func (c *Controller) OnResize() {
	c.resize.Schedule(c.Reinitialize)
}

// Reinitialize immediately rebuilds the state from the collaborators passed
// to the last Initialize.
func (c *Controller) Reinitialize() {
	c.mu.Lock()
	s := c.rebuildLocked()
	c.mu.Unlock()

	c.notify(s)
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Progress returns the progress bar fill in percent.
func (c *Controller) Progress() float64 {
	return c.State().Progress()
}

// Close cancels any pending resize recomputation.
func (c *Controller) Close() {
	c.resize.Stop()
}

func (c *Controller) notify(s State) {
	if c.onChange != nil {
		c.onChange(s)
	}
}

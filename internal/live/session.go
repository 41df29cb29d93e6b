package live

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/carousel"
	"github.com/ziadkadry99/folio/internal/debounce"
	"github.com/ziadkadry99/folio/internal/view"
)

// measurements is the layout last reported by the page. It serves as both
// the carousel's Track and Viewport.
type measurements struct {
	mu         sync.Mutex
	width      float64
	cardCount  int
	cardWidth  float64
	cardMargin float64
}

func (m *measurements) update(ev Inbound) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.width = ev.Width
	m.cardCount = ev.CardCount
	m.cardWidth = ev.CardWidth
	m.cardMargin = ev.CardMargin
}

func (m *measurements) Width() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width
}

func (m *measurements) CardCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cardCount
}

func (m *measurements) CardWidth() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cardWidth
}

func (m *measurements) CardMargin() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cardMargin
}

// remoteControls holds the handlers the controller binds to the slider
// buttons. Visual state reaches the page through viewOf, so the setters only
// satisfy carousel.Controls.
type remoteControls struct {
	mu             sync.Mutex
	onPrev, onNext func()
}

func (c *remoteControls) Bind(onPrev, onNext func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPrev, c.onNext = onPrev, onNext
}

func (c *remoteControls) SetVisible(bool)     {}
func (c *remoteControls) SetOffset(float64)   {}
func (c *remoteControls) SetPrevEnabled(bool) {}
func (c *remoteControls) SetNextEnabled(bool) {}
func (c *remoteControls) SetProgress(float64) {}

// press invokes the currently bound handler. Unbound buttons do nothing.
func (c *remoteControls) press(next bool) {
	c.mu.Lock()
	fn := c.onPrev
	if next {
		fn = c.onNext
	}
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// viewOf derives everything the page shows from a single state, so a message
// never mixes values from two transitions.
func viewOf(s carousel.State) CarouselView {
	return CarouselView{
		Visible:     s.Ready,
		Offset:      s.Offset(),
		PrevEnabled: s.PrevEnabled(),
		NextEnabled: s.NextEnabled(),
		Progress:    s.Progress(),
		State:       s,
	}
}

// SessionConfig holds the tunables shared by all sessions.
type SessionConfig struct {
	Breakpoints carousel.Breakpoints
	ResizeQuiet time.Duration
	// AfterFunc overrides the debounce timer.
	AfterFunc debounce.AfterFunc
	Logger    *zap.Logger
}

// Session is the interactive state of one page view.
type Session struct {
	ID       string
	snapshot *app.Snapshot
	send     func(Outbound) error
	logger   *zap.Logger

	measured   *measurements
	controls   *remoteControls
	controller *carousel.Controller
	catalog    *view.TooltipWidget
	cloud      *view.TooltipWidget

	mu          sync.Mutex
	initialized bool
}

// NewSession binds a session to snap. send must be safe for concurrent use;
// the resize debounce calls it from a timer goroutine.
func NewSession(id string, snap *app.Snapshot, cfg SessionConfig, send func(Outbound) error) *Session {
	quiet := cfg.ResizeQuiet
	if quiet <= 0 {
		quiet = carousel.ResizeQuiet
	}
	var d *debounce.Debouncer
	if cfg.AfterFunc != nil {
		d = debounce.NewWithTimer(quiet, cfg.AfterFunc)
	} else {
		d = debounce.New(quiet)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	w := snap.Widgets()
	s := &Session{
		ID:       id,
		snapshot: snap,
		send:     send,
		logger:   logger.With(zap.String("session", id)),
		measured: &measurements{},
		controls: &remoteControls{},
		catalog:  view.NewCatalogTooltip(w.Catalog),
		cloud:    view.NewCloudTooltip(w.Cloud),
	}
	s.controller = carousel.NewController(cfg.Breakpoints,
		carousel.WithDebouncer(d),
		carousel.WithOnChange(s.carouselChanged),
	)
	return s
}

func (s *Session) carouselChanged(st carousel.State) {
	v := viewOf(st)
	if err := s.send(Outbound{Type: MsgCarousel, Carousel: &v}); err != nil {
		s.logger.Debug("sending carousel state", zap.Error(err))
	}
}

// Handle applies one inbound event.
func (s *Session) Handle(ev Inbound) error {
	switch ev.Type {
	case EventInit:
		s.measured.update(ev)
		s.mu.Lock()
		s.initialized = true
		s.mu.Unlock()
		s.controller.Initialize(s.measured, s.measured, s.controls)
	case EventResize:
		s.measured.update(ev)
		s.mu.Lock()
		ready := s.initialized
		s.mu.Unlock()
		if ready {
			s.controller.OnResize()
		}
	case EventNext:
		s.controls.press(true)
	case EventPrev:
		s.controls.press(false)
	case EventHover:
		w, err := s.tooltip(ev.Widget)
		if err != nil {
			return err
		}
		st, ok := w.Hover(ev.Index, ev.Rect)
		if !ok {
			return fmt.Errorf("unknown %s tag %d", ev.Widget, ev.Index)
		}
		return s.send(Outbound{Type: MsgTooltip, Tooltip: &st})
	case EventLeave:
		w, err := s.tooltip(ev.Widget)
		if err != nil {
			return err
		}
		st := w.Leave(ev.Index)
		return s.send(Outbound{Type: MsgTooltip, Tooltip: &st})
	default:
		return fmt.Errorf("unknown event type: %q", ev.Type)
	}
	return nil
}

func (s *Session) tooltip(widget string) (*view.TooltipWidget, error) {
	switch widget {
	case view.WidgetCatalog:
		return s.catalog, nil
	case view.WidgetCloud:
		return s.cloud, nil
	default:
		return nil, fmt.Errorf("unknown widget: %q", widget)
	}
}

// State returns the carousel state.
func (s *Session) State() carousel.State { return s.controller.State() }

// Close stops any pending resize recomputation.
func (s *Session) Close() { s.controller.Close() }

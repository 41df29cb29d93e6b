package live

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/metrics"
)

// Options configure a Handler.
type Options struct {
	Session SessionConfig
	// EventsPerSecond limits inbound events per session. Excess events are
	// dropped, except resize and leave which are always applied.
	EventsPerSecond float64
	// AllowAllOrigins disables the same-origin check on upgrade.
	AllowAllOrigins bool
	History         *history.Store
	Metrics         *metrics.Metrics
	Logger          *zap.Logger
}

// Handler upgrades page connections to live sessions.
type Handler struct {
	app      *app.App
	opts     Options
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a Handler serving sessions for the snapshots of a.
func NewHandler(a *app.App, opts Options) *Handler {
	if opts.EventsPerSecond <= 0 {
		opts.EventsPerSecond = 30
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	h := &Handler{
		app:    a,
		opts:   opts,
		logger: opts.Logger.Named("live"),
	}
	if opts.AllowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/live", h.ServeHTTP)
}

// conn serializes writes; gorilla connections allow one concurrent writer.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) send(msg Outbound) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(msg)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer ws.Close()

	c := &conn{ws: ws}
	snap := h.app.Current()
	cfg := h.opts.Session
	if cfg.Logger == nil {
		cfg.Logger = h.logger
	}
	sess := NewSession(uuid.New().String(), snap, cfg, c.send)
	defer sess.Close()

	log := h.logger.With(zap.String("session", sess.ID), zap.String("snapshot", snap.ID))
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	h.opened(ctx, sess, log)
	var events, dropped int
	defer func() { h.closed(ctx, sess, events, dropped, log) }()

	updates, unsubscribe := h.app.Subscribe()
	defer unsubscribe()

	if err := c.send(Outbound{Type: MsgReady, Session: sess.ID, Snapshot: snap.ID}); err != nil {
		return
	}
	if latest := h.app.Current(); latest.ID != snap.ID {
		c.send(Outbound{Type: MsgReload, Snapshot: latest.ID})
	}

	go h.forwardReloads(ctx, c, snap.ID, updates)

	limiter := rate.NewLimiter(rate.Limit(h.opts.EventsPerSecond), int(h.opts.EventsPerSecond*2)+1)
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Info("websocket read", zap.Error(err))
			}
			return
		}

		var ev Inbound
		if err := json.Unmarshal(data, &ev); err != nil {
			c.send(Outbound{Type: MsgError, Error: "invalid message format"})
			continue
		}
		if !ev.AlwaysApplied() && !limiter.Allow() {
			dropped++
			continue
		}
		events++
		if h.opts.Metrics != nil {
			h.opts.Metrics.LiveEvents.WithLabelValues(ev.Type).Inc()
		}
		if err := sess.Handle(ev); err != nil {
			c.send(Outbound{Type: MsgError, Error: err.Error()})
		}
	}
}

// forwardReloads tells the page when a newer snapshot has been published.
func (h *Handler) forwardReloads(ctx context.Context, c *conn, current string, updates <-chan *app.Snapshot) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-updates:
			if snap.ID == current {
				continue
			}
			if err := c.send(Outbound{Type: MsgReload, Snapshot: snap.ID}); err != nil {
				return
			}
		}
	}
}

func (h *Handler) opened(ctx context.Context, sess *Session, log *zap.Logger) {
	log.Debug("session opened")
	if h.opts.Metrics != nil {
		h.opts.Metrics.LiveSessions.Inc()
	}
	if h.opts.History != nil {
		if err := h.opts.History.StartSession(ctx, sess.ID, sess.snapshot.ID); err != nil {
			log.Warn("recording session start", zap.Error(err))
		}
	}
}

func (h *Handler) closed(ctx context.Context, sess *Session, events, dropped int, log *zap.Logger) {
	log.Debug("session closed", zap.Int("events", events), zap.Int("dropped", dropped))
	if h.opts.Metrics != nil {
		h.opts.Metrics.LiveSessions.Dec()
	}
	if h.opts.History != nil {
		if err := h.opts.History.EndSession(ctx, sess.ID, events, dropped); err != nil {
			log.Warn("recording session end", zap.Error(err))
		}
	}
}

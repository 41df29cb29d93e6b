package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/live"
	"github.com/ziadkadry99/folio/internal/metrics"
	"github.com/ziadkadry99/folio/internal/page"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
	// AssetRoot is the directory user assets are served from; Assets are
	// doublestar patterns relative to it.
	AssetRoot string
	Assets    []string
}

// Deps are the optional collaborators of the server. Nil members disable
// their routes.
type Deps struct {
	Live    *live.Handler
	History *history.Store
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// Server serves the live portfolio page and its API.
type Server struct {
	cfg        Config
	app        *app.App
	deps       Deps
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server publishing the snapshots of a.
func New(cfg Config, a *app.App, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		app:    a,
		deps:   deps,
		logger: deps.Logger.Named("server"),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	if s.deps.Metrics != nil {
		r.Use(s.deps.Metrics.Middleware)
	}

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Websocket sessions outlive any request timeout.
	if s.deps.Live != nil {
		s.deps.Live.RegisterRoutes(r)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", s.handleHealth)
		r.Get("/", s.handlePage)
		r.Get("/style.css", asset("text/css; charset=utf-8", page.Stylesheet()))
		r.Get("/script.js", asset("application/javascript; charset=utf-8", page.Script()))

		r.Get("/api/content", s.handleContent)
		r.Get("/api/cloud", s.handleCloud)
		r.Post("/api/reload", s.handleReload)

		if s.deps.History != nil {
			history.RegisterRoutes(r, s.deps.History)
		}
		if s.deps.Metrics != nil {
			r.Method(http.MethodGet, "/metrics", s.deps.Metrics.Handler())
		}

		r.Get("/*", s.handleUserAsset)
	})

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("folio server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.app.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"snapshot": snap.ID,
		"loaded":   snap.OK(),
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.app.RenderPage(w, s.app.Current(), "/", s.deps.Live != nil); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "could not render page", http.StatusInternalServerError)
	}
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	snap := s.app.Current()
	if !snap.OK() {
		writeJSON(w, http.StatusServiceUnavailable, failureBody(snap))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot":  snap.ID,
		"loaded_at": snap.LoadedAt,
		"content":   snap.Model,
	})
}

func (s *Server) handleCloud(w http.ResponseWriter, r *http.Request) {
	snap := s.app.Current()
	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot": snap.ID,
		"points":   snap.Cloud,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.app.Reload(r.Context())
	if snap == nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadGateway, failureBody(snap))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"snapshot":     snap.ID,
		"achievements": len(snap.Model.Achievements),
		"skills":       snap.Model.SkillCount(),
		"projects":     len(snap.Model.Projects),
	})
}

// handleUserAsset serves files under AssetRoot that match one of the
// configured asset patterns.
func (s *Server) handleUserAsset(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if rel == "" || s.cfg.AssetRoot == "" || !MatchesAny(s.cfg.Assets, rel) {
		http.NotFound(w, r)
		return
	}
	path := filepath.Join(s.cfg.AssetRoot, filepath.FromSlash(rel))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// MatchesAny reports whether the slash-separated path rel matches one of
// patterns. Paths escaping the root never match.
func MatchesAny(patterns []string, rel string) bool {
	if strings.HasPrefix(rel, "../") || rel == ".." || strings.Contains(rel, "/../") {
		return false
	}
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func failureBody(snap *app.Snapshot) map[string]any {
	body := map[string]any{
		"snapshot": snap.ID,
		"error":    "content not loaded",
	}
	if snap.Failure != nil {
		body["error"] = snap.Failure.Error()
	}
	return body
}

func asset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

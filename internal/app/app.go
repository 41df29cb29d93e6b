// Package app holds the published content snapshot and the pipeline that
// rebuilds it.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/cloud"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/history"
	"github.com/ziadkadry99/folio/internal/loader"
	"github.com/ziadkadry99/folio/internal/metrics"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/view"
)

// Snapshot is one consistent view of the content. It is never modified
// after it has been published.
type Snapshot struct {
	ID       string
	LoadedAt time.Time
	// Model is nil when the load failed.
	Model *content.Model
	Cloud []cloud.Point
	// Failure is the *loader.LoadFailure that produced an empty snapshot.
	Failure error

	widgets page.Widgets
}

// OK reports whether the snapshot holds content.
func (s *Snapshot) OK() bool { return s != nil && s.Model != nil }

// Widgets returns the view descriptions of the snapshot.
func (s *Snapshot) Widgets() page.Widgets { return s.widgets }

// Options configure an App.
type Options struct {
	Loader      *loader.Loader
	Radius      float64
	Layouter    cloud.Layouter
	Formatter   view.Formatter
	Template    *page.Template
	Site        page.ShellData
	EmptyPolicy dom.EmptyPolicy
	// History and Metrics are optional.
	History *history.Store
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// App publishes snapshots to readers.
type App struct {
	opts    Options
	logger  *zap.Logger
	current atomic.Pointer[Snapshot]

	reloadMu sync.Mutex

	subMu  sync.Mutex
	nextID int
	subs   map[int]chan *Snapshot
}

// New creates an App with an empty initial snapshot.
func New(opts Options) *App {
	if opts.Radius <= 0 {
		opts.Radius = cloud.DefaultRadius
	}
	if opts.Formatter == nil {
		opts.Formatter = view.PlainFormatter{}
	}
	if opts.Template == nil {
		opts.Template = page.DefaultTemplate()
	}
	if opts.EmptyPolicy == "" {
		opts.EmptyPolicy = dom.EmptyPlaceholder
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	a := &App{
		opts:   opts,
		logger: opts.Logger.Named("app"),
		subs:   make(map[int]chan *Snapshot),
	}
	a.current.Store(a.build(nil, nil, time.Now()))
	return a
}

// Current returns the published snapshot.
func (a *App) Current() *Snapshot {
	return a.current.Load()
}

// Reload runs the loader and publishes the result. A load failure is
// logged, recorded and published as an empty snapshot; it is also returned
// so callers can report it. Concurrent reloads are serialized.
func (a *App) Reload(ctx context.Context) (*Snapshot, error) {
	if a.opts.Loader == nil {
		return nil, errors.New("no loader configured")
	}

	a.reloadMu.Lock()
	defer a.reloadMu.Unlock()

	start := time.Now()
	model, err := a.opts.Loader.Load(ctx)
	elapsed := time.Since(start)

	var failure *loader.LoadFailure
	if err != nil && !errors.As(err, &failure) {
		failure = &loader.LoadFailure{Cause: err}
	}

	var snap *Snapshot
	if failure != nil {
		a.logger.Error("could not load portfolio data",
			zap.String("source", failure.Source),
			zap.Error(failure.Cause),
			zap.Duration("elapsed", elapsed),
		)
		snap = a.build(nil, failure, start)
	} else {
		snap = a.build(model, nil, start)
		a.logger.Info("content loaded",
			zap.String("snapshot", snap.ID),
			zap.Int("achievements", len(model.Achievements)),
			zap.Int("skills", model.SkillCount()),
			zap.Int("projects", len(model.Projects)),
			zap.Duration("elapsed", elapsed),
		)
	}

	a.record(ctx, snap, elapsed)
	a.publish(snap)

	if failure != nil {
		return snap, failure
	}
	return snap, nil
}

func (a *App) build(model *content.Model, failure error, at time.Time) *Snapshot {
	points := a.opts.Layouter.Layout(view.CloudTags(model), a.opts.Radius)
	f := a.opts.Formatter
	return &Snapshot{
		ID:       uuid.New().String(),
		LoadedAt: at,
		Model:    model,
		Cloud:    points,
		Failure:  failure,
		widgets: page.Widgets{
			Achievements: view.Achievements(model, f),
			Catalog:      view.SkillCatalog(model),
			Cloud:        view.SkillCloud(points),
			Projects:     view.Projects(model, f),
		},
	}
}

func (a *App) record(ctx context.Context, snap *Snapshot, elapsed time.Duration) {
	if a.opts.Metrics != nil {
		a.opts.Metrics.ObserveLoad(snap.OK(), elapsed)
	}
	if a.opts.History == nil {
		return
	}

	l := history.Load{
		ID:       snap.ID,
		LoadedAt: snap.LoadedAt,
		Status:   history.StatusOK,
		Duration: elapsed,
	}
	if snap.OK() {
		l.Achievements = len(snap.Model.Achievements)
		l.Skills = snap.Model.SkillCount()
		l.Projects = len(snap.Model.Projects)
	} else {
		l.Status = history.StatusFailed
		l.Cause = snap.Failure.Error()
		var failure *loader.LoadFailure
		if errors.As(snap.Failure, &failure) {
			l.Source = failure.Source
		}
	}
	// Recorded even when ctx is already cancelled.
	if _, err := a.opts.History.RecordLoad(context.WithoutCancel(ctx), l); err != nil {
		a.logger.Warn("recording content load", zap.Error(err))
	}
}

func (a *App) publish(snap *Snapshot) {
	a.current.Store(snap)

	a.subMu.Lock()
	defer a.subMu.Unlock()
	for _, ch := range a.subs {
		// Drop a stale pending snapshot so the subscriber sees the newest.
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

// Subscribe returns a channel that receives every snapshot published after
// the call. Slow subscribers only see the latest one. cancel releases the
// subscription.
func (a *App) Subscribe() (updates <-chan *Snapshot, cancel func()) {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	id := a.nextID
	a.nextID++
	ch := make(chan *Snapshot, 1)
	a.subs[id] = ch

	return ch, func() {
		a.subMu.Lock()
		defer a.subMu.Unlock()
		delete(a.subs, id)
	}
}

// RenderPage writes the full page for snap.
func (a *App) RenderPage(w io.Writer, snap *Snapshot, basePath string, live bool) error {
	data := a.opts.Site
	data.BasePath = basePath
	data.Live = live
	data.SnapshotID = snap.ID

	doc, skipped, err := a.opts.Template.Build(data, snap.Widgets(), a.opts.EmptyPolicy)
	if err != nil {
		return fmt.Errorf("building page: %w", err)
	}
	for _, s := range skipped {
		a.logger.Debug("widget skipped", zap.Error(s))
	}
	return doc.Render(w)
}

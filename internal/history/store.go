package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/db"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Store persists loads and sessions.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// RecordLoad inserts a load. If l.ID is empty a UUID is generated; a zero
// LoadedAt becomes now. The stored record is returned.
func (s *Store) RecordLoad(ctx context.Context, l Load) (Load, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.LoadedAt.IsZero() {
		l.LoadedAt = time.Now()
	}
	l.LoadedAt = l.LoadedAt.UTC().Truncate(time.Millisecond)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_loads (
			id, loaded_at, status, source, cause,
			achievements, skills, projects, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID,
		l.LoadedAt.Format(timeLayout),
		string(l.Status),
		l.Source,
		l.Cause,
		l.Achievements,
		l.Skills,
		l.Projects,
		l.Duration.Milliseconds(),
	)
	if err != nil {
		return Load{}, fmt.Errorf("inserting content load: %w", err)
	}
	return l, nil
}

// GetLoad retrieves a single load.
func (s *Store) GetLoad(ctx context.Context, id string) (*Load, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, loaded_at, status, source, cause, achievements, skills, projects, duration_ms
		FROM content_loads WHERE id = ?`, id)
	l, err := scanLoad(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load %s: %w", id, ErrNotFound)
	}
	return l, err
}

// LoadFilter controls which loads RecentLoads returns.
type LoadFilter struct {
	Status Status
	Limit  int
}

// RecentLoads returns loads, newest first.
func (s *Store) RecentLoads(ctx context.Context, filter LoadFilter) ([]Load, error) {
	query := "SELECT id, loaded_at, status, source, cause, achievements, skills, projects, duration_ms FROM content_loads"
	var args []any
	if filter.Status != "" {
		query += " WHERE status = ?"
		args = append(args, string(filter.Status))
	}
	query += " ORDER BY loaded_at DESC, rowid DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying content loads: %w", err)
	}
	defer rows.Close()

	loads := []Load{}
	for rows.Next() {
		l, err := scanLoad(rows)
		if err != nil {
			return nil, err
		}
		loads = append(loads, *l)
	}
	return loads, rows.Err()
}

// PruneLoads removes loads older than before and returns how many went.
func (s *Store) PruneLoads(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM content_loads WHERE loaded_at < ?",
		before.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("pruning content loads: %w", err)
	}
	return res.RowsAffected()
}

// StartSession records a new live session.
func (s *Store) StartSession(ctx context.Context, id, snapshotID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO live_sessions (id, snapshot_id, started_at) VALUES (?, ?, ?)",
		id, snapshotID, time.Now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting live session: %w", err)
	}
	return nil
}

// EndSession closes a live session with its event counts.
func (s *Store) EndSession(ctx context.Context, id string, events, dropped int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE live_sessions SET ended_at = ?, events = ?, dropped = ? WHERE id = ?",
		time.Now().UTC().Format(timeLayout), events, dropped, id,
	)
	if err != nil {
		return fmt.Errorf("closing live session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetSession retrieves a live session.
func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	var (
		sess            Session
		started         string
		ended           sql.NullString
		events, dropped int
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, snapshot_id, started_at, ended_at, events, dropped FROM live_sessions WHERE id = ?", id,
	).Scan(&sess.ID, &sess.SnapshotID, &started, &ended, &events, &dropped)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	sess.StartedAt = parseTime(started)
	if ended.Valid {
		t := parseTime(ended.String)
		sess.EndedAt = &t
	}
	sess.Events, sess.Dropped = events, dropped
	return &sess, nil
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanLoad(sc scanner) (*Load, error) {
	var (
		l          Load
		ts, status string
		durationMS int64
	)
	err := sc.Scan(&l.ID, &ts, &status, &l.Source, &l.Cause,
		&l.Achievements, &l.Skills, &l.Projects, &durationMS)
	if err != nil {
		return nil, err
	}
	l.LoadedAt = parseTime(ts)
	l.Status = Status(status)
	l.Duration = time.Duration(durationMS) * time.Millisecond
	return &l, nil
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	return time.Time{}
}

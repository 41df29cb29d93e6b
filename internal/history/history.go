// Package history records content loads and live sessions in SQLite.
package history

import "time"

// Status is the outcome of a content load.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Load is one recorded content load.
type Load struct {
	ID           string        `json:"id"`
	LoadedAt     time.Time     `json:"loaded_at"`
	Status       Status        `json:"status"`
	Source       string        `json:"source,omitempty"`
	Cause        string        `json:"cause,omitempty"`
	Achievements int           `json:"achievements"`
	Skills       int           `json:"skills"`
	Projects     int           `json:"projects"`
	Duration     time.Duration `json:"duration"`
}

// Session is one live session.
type Session struct {
	ID         string     `json:"id"`
	SnapshotID string     `json:"snapshot_id"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	Events     int        `json:"events"`
	Dropped    int        `json:"dropped"`
}

// timeLayout sorts lexically and keeps millisecond order between rapid loads.
const timeLayout = "2006-01-02 15:04:05.000"

package activity

import "time"

// Type classifies a ledger entry
type Type string

const (
	TypeProjectCreated Type = "project_created"
	TypeStatusChanged  Type = "status_changed"
)

// Entry is one event in the board activity ledger
type Entry struct {
	ID        int64     `json:"id"`
	ProjectID string    `json:"project_id"`
	Type      Type      `json:"type"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

// Package session defines the resumable practice-session boundary. The
// engine reads and writes session progress through a Store but does not own
// how it is persisted.
package session

import (
	"context"
	"time"
)

// ItemResult is one completed question within a session.
type ItemResult struct {
	ItemID  string `json:"item_id"`
	Correct bool   `json:"correct"`
	TimeMs  int    `json:"time_ms"`
}

// State is the progress of one in-flight practice session. A learner has at
// most one session per item set; saving the same state twice must not create
// a duplicate.
type State struct {
	SessionID    string       `json:"session_id"`
	LearnerID    string       `json:"learner_id"`
	SetID        string       `json:"set_id"`
	CurrentIndex int          `json:"current_index"`
	Completed    []ItemResult `json:"completed,omitempty"`
	StartedAt    time.Time    `json:"started_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Store persists session state keyed by (learner, set). Save is a single
// upsert; Load returns nil when no session exists or the stored blob fails
// schema validation (a corrupt session is treated as no session rather than
// poisoning resume).
type Store interface {
	Save(ctx context.Context, s State) error
	Load(ctx context.Context, learnerID, setID string) (*State, error)
	Clear(ctx context.Context, learnerID, setID string) error
}

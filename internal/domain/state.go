package domain

import "time"

// SessionState is everything the interpreter remembers between commands of
// one session: the box of the most recently drawn house, if any.
type SessionState struct {
	ID        string    `json:"id"`
	LastHouse *Box      `json:"last_house,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSessionState returns an empty state for a session
func NewSessionState(id string) *SessionState {
	return &SessionState{ID: id}
}

// HistoryEntry records the outcome of one interpreted prompt
type HistoryEntry struct {
	SessionID string    `json:"session_id"`
	Prompt    string    `json:"prompt"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

// FocusResult is the outcome of bringing the target window to the foreground.
// Err is a *FocusError when OK is false.
type FocusResult struct {
	OK       bool
	Title    string
	Reason   string
	Launched bool
	Err      error
}

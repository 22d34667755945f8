// File: game/messages.go
package game

import (
	"errors"

	"github.com/lguibr/jetrun/actions"
	"github.com/lguibr/jetrun/bollywood"
	"github.com/lguibr/jetrun/geometry"
	"github.com/lguibr/jetrun/input"
)

// ErrTooManySessions is the reply to CreateSessionRequest once MaxSessions is reached.
var ErrTooManySessions = errors.New("too many sessions")

// --- SessionActor messages ---

// KeyEvent is a key press (Down) or release forwarded from a client.
type KeyEvent struct {
	Code input.KeyCode
	Down bool
}

// FrameRequest advances the player by one frame. Reply: Snapshot.
type FrameRequest struct {
	ApplyScroll bool
}

// SnapshotRequest asks for the current Snapshot.
type SnapshotRequest struct{}

// ScriptRequest plays an action script against the session.
// Reply: ScriptAccepted or an error from actions.Parse.
type ScriptRequest struct {
	Text string
}

// ScriptAccepted confirms a script started playing.
type ScriptAccepted struct {
	Segments []actions.Segment
}

// SetPhaseCommand records a phase decided outside the session (win or loss).
type SetPhaseCommand struct {
	Phase input.Phase
}

// ReleaseKeysCommand clears every latched key, e.g. when the client loses focus.
type ReleaseKeysCommand struct{}

// scriptKeyEvent is a key event produced by the script with the given
// generation. Events from a replaced or stopped script are dropped.
type scriptKeyEvent struct {
	generation int
	event      KeyEvent
}

// scriptFinished is sent by the script goroutine when it ends.
type scriptFinished struct {
	generation int
	err        error
}

// Snapshot is the observable state of one session.
type Snapshot struct {
	SessionID string
	Phase     input.Phase
	Thrust    bool
	Held      []input.KeyCode
	Player    geometry.Entity
	Resets    int
	Frames    int
	Scripting bool
}

// --- SessionManagerActor messages ---

// CreateSessionRequest spawns a new SessionActor. Reply: CreateSessionResponse.
type CreateSessionRequest struct{}

type CreateSessionResponse struct {
	ID  string
	PID *bollywood.PID
}

// CloseSessionRequest stops a session. Asking it replies with true if the
// session existed.
type CloseSessionRequest struct {
	ID string
}

// ListSessionsRequest asks for all live sessions. Reply: SessionListResponse.
type ListSessionsRequest struct{}

type SessionListResponse struct {
	Sessions map[string]*bollywood.PID
}

// File: server/messages.go
package server

import (
	"github.com/lguibr/jetrun/game"
	"github.com/lguibr/jetrun/geometry"
	"github.com/lguibr/jetrun/input"
)

// Client frame types.
const (
	TypeKeyDown  = "keydown"
	TypeKeyUp    = "keyup"
	TypeFrame    = "frame"
	TypeSnapshot = "snapshot"
	TypeScript   = "script"
	TypePhase    = "phase"
	TypeError    = "error"
)

// ClientMessage is one frame sent by a client. Code takes precedence over Key;
// Key accepts DOM names ("ArrowUp") and action names ("UP").
type ClientMessage struct {
	Type   string `json:"type" msgpack:"type"`
	Code   int    `json:"code,omitempty" msgpack:"code,omitempty"`
	Key    string `json:"key,omitempty" msgpack:"key,omitempty"`
	Scroll bool   `json:"scroll,omitempty" msgpack:"scroll,omitempty"`
	Text   string `json:"text,omitempty" msgpack:"text,omitempty"`
	Phase  string `json:"phase,omitempty" msgpack:"phase,omitempty"`
}

// SnapshotMessage is the wire form of game.Snapshot. The phase travels by name
// in both codecs.
type SnapshotMessage struct {
	Type      string          `json:"type" msgpack:"type"`
	SessionID string          `json:"sessionId" msgpack:"sessionId"`
	Phase     string          `json:"phase" msgpack:"phase"`
	Thrust    bool            `json:"thrust" msgpack:"thrust"`
	Held      []int           `json:"held" msgpack:"held"`
	Player    geometry.Entity `json:"player" msgpack:"player"`
	Resets    int             `json:"resets" msgpack:"resets"`
	Frames    int             `json:"frames" msgpack:"frames"`
	Scripting bool            `json:"scripting" msgpack:"scripting"`
}

// ErrorMessage reports a rejected client frame. The connection stays open.
type ErrorMessage struct {
	Type  string `json:"type" msgpack:"type"`
	Error string `json:"error" msgpack:"error"`
}

// SessionsResponse is the body of GET /.
type SessionsResponse struct {
	Sessions map[string]string `json:"sessions"`
}

func newSnapshotMessage(s game.Snapshot) SnapshotMessage {
	held := make([]int, len(s.Held))
	for i, code := range s.Held {
		held[i] = int(code)
	}
	return SnapshotMessage{
		Type:      TypeSnapshot,
		SessionID: s.SessionID,
		Phase:     s.Phase.String(),
		Thrust:    s.Thrust,
		Held:      held,
		Player:    s.Player,
		Resets:    s.Resets,
		Frames:    s.Frames,
		Scripting: s.Scripting,
	}
}

func newErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Type: TypeError, Error: err.Error()}
}

// keyCode resolves the key of a keydown/keyup frame.
func (m ClientMessage) keyCode() (input.KeyCode, bool) {
	if m.Code != 0 {
		return input.KeyCode(m.Code), true
	}
	if m.Key != "" {
		return input.ParseKeyName(m.Key)
	}
	return 0, false
}

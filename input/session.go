// Package input latches keyboard state for a single game session and applies
// the phase transitions bound to ENTER, ESC and R.
package input

import "golang.org/x/exp/slices"

// ResetListener is notified after R restarts a finished game.
type ResetListener interface {
	OnReset()
}

// ResetFunc adapts a plain function to ResetListener.
type ResetFunc func()

func (f ResetFunc) OnReset() { f() }

// Session holds the key latches and phase of one player.
// It is not safe for concurrent use; the owner serialises calls.
type Session struct {
	keys     map[KeyCode]bool
	phase    Phase
	listener ResetListener
}

// NewSession returns a session in PhaseStart. listener may be nil.
func NewSession(listener ResetListener) *Session {
	return &Session{
		keys:     make(map[KeyCode]bool),
		phase:    PhaseStart,
		listener: listener,
	}
}

// OnKeyDown latches code and applies the phase transition bound to it.
func (s *Session) OnKeyDown(code KeyCode) {
	s.keys[code] = true

	switch code {
	case KeyEnter:
		if s.phase == PhaseStart || s.phase == PhasePaused {
			s.phase = PhasePlaying
		}
	case KeyEscape:
		switch s.phase {
		case PhasePlaying:
			s.phase = PhasePaused
		case PhasePaused:
			s.phase = PhasePlaying
		}
	case KeyR:
		if s.phase.IsTerminal() {
			s.phase = PhaseStart
			if s.listener != nil {
				s.listener.OnReset()
			}
		}
	}
}

// OnKeyUp clears the latch for code.
func (s *Session) OnKeyUp(code KeyCode) {
	s.keys[code] = false
}

// IsThrustActive reports whether UP or SPACE is held.
func (s *Session) IsThrustActive() bool {
	return s.keys[KeyUp] || s.keys[KeySpace]
}

func (s *Session) IsHeld(code KeyCode) bool {
	return s.keys[code]
}

// Held returns the held key codes in ascending order.
func (s *Session) Held() []KeyCode {
	held := make([]KeyCode, 0, len(s.keys))
	for code, down := range s.keys {
		if down {
			held = append(held, code)
		}
	}
	slices.Sort(held)
	return held
}

// Release clears every latch without touching the phase.
func (s *Session) Release() {
	for code := range s.keys {
		delete(s.keys, code)
	}
}

func (s *Session) Phase() Phase {
	return s.phase
}

// SetPhase is used by the surrounding game to record a win or loss.
func (s *Session) SetPhase(phase Phase) {
	s.phase = phase
}

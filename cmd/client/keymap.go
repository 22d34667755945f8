package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/jetrun/input"
	"golang.org/x/exp/slices"
)

// keyCode maps a terminal key event onto the browser key code the server expects.
func keyCode(ev *tcell.EventKey) (input.KeyCode, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return input.KeySpace, true
		}
		return input.ParseKeyName(string(ev.Rune()))
	}
	return 0, false
}

// holdTracker turns the terminal's stream of key repeats into down/up pairs.
// Terminals never report a release, so a key counts as held until no repeat
// arrives within the hold window.
type holdTracker struct {
	hold      time.Duration
	deadlines map[input.KeyCode]time.Time
}

func newHoldTracker(hold time.Duration) *holdTracker {
	return &holdTracker{hold: hold, deadlines: make(map[input.KeyCode]time.Time)}
}

// press records a key event and reports whether it starts a new hold.
func (h *holdTracker) press(code input.KeyCode, now time.Time) bool {
	_, held := h.deadlines[code]
	h.deadlines[code] = now.Add(h.hold)
	return !held
}

// expire returns, in ascending order, the keys whose hold window has passed.
func (h *holdTracker) expire(now time.Time) []input.KeyCode {
	var released []input.KeyCode
	for code, deadline := range h.deadlines {
		if !now.Before(deadline) {
			released = append(released, code)
			delete(h.deadlines, code)
		}
	}
	slices.Sort(released)
	return released
}

// releaseAll ends every hold.
func (h *holdTracker) releaseAll() []input.KeyCode {
	released := make([]input.KeyCode, 0, len(h.deadlines))
	for code := range h.deadlines {
		released = append(released, code)
	}
	h.deadlines = make(map[input.KeyCode]time.Time)
	slices.Sort(released)
	return released
}

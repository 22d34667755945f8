// File: actions/actions.go
package actions

import (
	"fmt"
	"strings"

	"github.com/lguibr/jetrun/input"
)

// SegmentCount is the number of segments in a complete action script.
const SegmentCount = 5

// Action is one entry of a segment: a key pressed once, a key held for the
// whole segment, or nothing.
type Action struct {
	Code input.KeyCode `json:"code"`
	Hold bool          `json:"hold,omitempty"`
	Noop bool          `json:"noop,omitempty"`
}

// Segment is the set of actions applied together during one time slice.
type Segment []Action

// Noop is the action that presses nothing.
var Noop = Action{Noop: true}

var holdable = map[string]input.KeyCode{
	"UP":    input.KeyUp,
	"DOWN":  input.KeyDown,
	"LEFT":  input.KeyLeft,
	"RIGHT": input.KeyRight,
	"SPACE": input.KeySpace,
}

// Lookup resolves an action name such as "UP", "ESC", "R", "HOLD_SPACE" or
// "NOOP". Names are case-insensitive.
func Lookup(name string) (Action, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "NOOP" {
		return Noop, true
	}

	if key, ok := strings.CutPrefix(name, "HOLD_"); ok {
		code, ok := holdable[key]
		if !ok {
			return Action{}, false
		}
		return Action{Code: code, Hold: true}, true
	}

	// Only the upper-case names; DOM names like "ArrowUp" are not action names.
	if name == "ENTER" || name == "ESC" {
		code, _ := input.ParseKeyName(name)
		return Action{Code: code}, true
	}
	if code, ok := holdable[name]; ok {
		return Action{Code: code}, true
	}
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return Action{Code: input.KeyA + input.KeyCode(name[0]-'A')}, true
	}
	return Action{}, false
}

func (a Action) String() string {
	switch {
	case a.Noop:
		return "NOOP"
	case a.Hold:
		return fmt.Sprintf("HOLD(%s)", a.Code)
	default:
		return a.Code.String()
	}
}

// NoopSegments returns n segments that press nothing.
func NoopSegments(n int) []Segment {
	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{Noop}
	}
	return segments
}

package input

import "fmt"

// Phase is the coarse-grained game state.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOverWin
	PhaseGameOverLose
)

var phaseNames = [...]string{
	PhaseStart:        "START",
	PhasePlaying:      "PLAYING",
	PhasePaused:       "PAUSED",
	PhaseGameOverWin:  "GAME_OVER_WIN",
	PhaseGameOverLose: "GAME_OVER_LOSE",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// IsTerminal reports whether the phase is one of the game-over states.
func (p Phase) IsTerminal() bool {
	return p == PhaseGameOverWin || p == PhaseGameOverLose
}

// ParsePhase is the inverse of String.
func ParsePhase(s string) (Phase, error) {
	for i, name := range phaseNames {
		if name == s {
			return Phase(i), nil
		}
	}
	return PhaseStart, fmt.Errorf("unknown phase %q", s)
}

// MarshalText encodes the phase by name, which also covers JSON.
func (p Phase) MarshalText() ([]byte, error) {
	if int(p) >= len(phaseNames) {
		return nil, fmt.Errorf("unknown phase %d", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package input

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingListener struct {
	resets int
}

func (l *countingListener) OnReset() { l.resets++ }

func TestSession_PhaseTransitions(t *testing.T) {
	testCases := []struct {
		name     string
		from     Phase
		key      KeyCode
		expected Phase
	}{
		{name: "start + enter", from: PhaseStart, key: KeyEnter, expected: PhasePlaying},
		{name: "paused + enter", from: PhasePaused, key: KeyEnter, expected: PhasePlaying},
		{name: "playing + enter", from: PhasePlaying, key: KeyEnter, expected: PhasePlaying},
		{name: "game over + enter", from: PhaseGameOverLose, key: KeyEnter, expected: PhaseGameOverLose},
		{name: "playing + esc", from: PhasePlaying, key: KeyEscape, expected: PhasePaused},
		{name: "paused + esc", from: PhasePaused, key: KeyEscape, expected: PhasePlaying},
		{name: "start + esc", from: PhaseStart, key: KeyEscape, expected: PhaseStart},
		{name: "win + r", from: PhaseGameOverWin, key: KeyR, expected: PhaseStart},
		{name: "lose + r", from: PhaseGameOverLose, key: KeyR, expected: PhaseStart},
		{name: "playing + r", from: PhasePlaying, key: KeyR, expected: PhasePlaying},
		{name: "playing + up", from: PhasePlaying, key: KeyUp, expected: PhasePlaying},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session := NewSession(nil)
			session.SetPhase(tc.from)
			session.OnKeyDown(tc.key)
			assert.Equal(t, tc.expected, session.Phase())
			assert.True(t, session.IsHeld(tc.key), "key down always latches")
		})
	}
}

func TestSession_ResetInvokesListenerOnce(t *testing.T) {
	listener := &countingListener{}
	session := NewSession(listener)
	session.SetPhase(PhaseGameOverWin)

	session.OnKeyDown(KeyR)
	assert.Equal(t, PhaseStart, session.Phase())
	assert.Equal(t, 1, listener.resets)

	// R again outside a terminal phase does nothing.
	session.OnKeyUp(KeyR)
	session.OnKeyDown(KeyR)
	assert.Equal(t, 1, listener.resets)
}

func TestSession_ResetFunc(t *testing.T) {
	calls := 0
	session := NewSession(ResetFunc(func() { calls++ }))
	session.SetPhase(PhaseGameOverLose)
	session.OnKeyDown(KeyR)
	assert.Equal(t, 1, calls)
}

func TestSession_ResetWithoutListener(t *testing.T) {
	session := NewSession(nil)
	session.SetPhase(PhaseGameOverLose)
	assert.NotPanics(t, func() { session.OnKeyDown(KeyR) })
	assert.Equal(t, PhaseStart, session.Phase())
}

func TestSession_IsThrustActive(t *testing.T) {
	session := NewSession(nil)
	assert.False(t, session.IsThrustActive(), "nothing held")

	session.OnKeyDown(KeyUp)
	assert.True(t, session.IsThrustActive())

	session.OnKeyDown(KeySpace)
	session.OnKeyUp(KeyUp)
	assert.True(t, session.IsThrustActive(), "space alone thrusts")

	session.OnKeyUp(KeySpace)
	assert.False(t, session.IsThrustActive())

	session.OnKeyDown(KeyDown)
	assert.False(t, session.IsThrustActive(), "other keys do not thrust")
}

func TestSession_UnknownKeys(t *testing.T) {
	session := NewSession(nil)
	assert.False(t, session.IsHeld(KeyCode(1234)), "absent reads as released")

	session.OnKeyDown(KeyCode(1234))
	assert.True(t, session.IsHeld(KeyCode(1234)))
	assert.Equal(t, PhaseStart, session.Phase())

	session.OnKeyUp(KeyCode(999))
	assert.False(t, session.IsHeld(KeyCode(999)))
}

func TestSession_HeldAndRelease(t *testing.T) {
	session := NewSession(nil)
	session.OnKeyDown(KeySpace)
	session.OnKeyDown(KeyUp)
	session.OnKeyDown(KeyLeft)
	session.OnKeyUp(KeyLeft)
	session.OnKeyDown(KeyEnter)

	assert.Equal(t, []KeyCode{KeyEnter, KeySpace, KeyUp}, session.Held())

	session.Release()
	assert.Empty(t, session.Held())
	assert.False(t, session.IsThrustActive())
	assert.Equal(t, PhasePlaying, session.Phase(), "release keeps the phase")
}

func TestKeyCode_String(t *testing.T) {
	assert.Equal(t, "ArrowUp", KeyUp.String())
	assert.Equal(t, " ", KeySpace.String())
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "r", KeyR.String())
	assert.Equal(t, "a", KeyA.String())
	assert.Equal(t, "KeyCode(7)", KeyCode(7).String())
}

func TestParseKeyName(t *testing.T) {
	testCases := map[string]KeyCode{
		"ArrowUp":    KeyUp,
		"ArrowRight": KeyRight,
		" ":          KeySpace,
		"Enter":      KeyEnter,
		"UP":         KeyUp,
		"esc":        KeyEscape,
		"SPACE":      KeySpace,
		"R":          KeyR,
		"z":          KeyZ,
	}

	for name, expected := range testCases {
		code, ok := ParseKeyName(name)
		assert.True(t, ok, "ParseKeyName(%q)", name)
		assert.Equal(t, expected, code, "ParseKeyName(%q)", name)
	}

	_, ok := ParseKeyName("F13")
	assert.False(t, ok)
	_, ok = ParseKeyName("1")
	assert.False(t, ok)
}

func TestPhase_Text(t *testing.T) {
	for _, phase := range []Phase{PhaseStart, PhasePlaying, PhasePaused, PhaseGameOverWin, PhaseGameOverLose} {
		data, err := json.Marshal(phase)
		require.NoError(t, err)

		var decoded Phase
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, phase, decoded)
	}

	data, err := json.Marshal(PhaseGameOverWin)
	require.NoError(t, err)
	assert.Equal(t, `"GAME_OVER_WIN"`, string(data))

	var phase Phase
	assert.Error(t, json.Unmarshal([]byte(`"SLEEPING"`), &phase))
	assert.True(t, PhaseGameOverLose.IsTerminal())
	assert.False(t, PhasePaused.IsTerminal())
}

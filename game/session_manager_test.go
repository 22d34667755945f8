// File: game/session_manager_test.go
package game

import (
	"testing"
	"time"

	"github.com/lguibr/jetrun/bollywood"
	"github.com/lguibr/jetrun/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnManager(t *testing.T, maxSessions int) (*bollywood.Engine, *bollywood.PID) {
	t.Helper()
	cfg := testConfig()
	cfg.MaxSessions = maxSessions
	engine := bollywood.NewEngine()
	t.Cleanup(func() { engine.Shutdown(testShutdownTimeout) })
	pid := engine.Spawn(bollywood.NewProps(NewSessionManagerProducer(engine, cfg)))
	require.NotNil(t, pid)
	return engine, pid
}

func createSession(t *testing.T, engine *bollywood.Engine, manager *bollywood.PID) CreateSessionResponse {
	t.Helper()
	reply, err := engine.Ask(manager, CreateSessionRequest{}, testAskTimeout)
	require.NoError(t, err)
	created, ok := reply.(CreateSessionResponse)
	require.True(t, ok, "expected CreateSessionResponse, got %T", reply)
	return created
}

func listSessions(t *testing.T, engine *bollywood.Engine, manager *bollywood.PID) map[string]*bollywood.PID {
	t.Helper()
	reply, err := engine.Ask(manager, ListSessionsRequest{}, testAskTimeout)
	require.NoError(t, err)
	list, ok := reply.(SessionListResponse)
	require.True(t, ok, "expected SessionListResponse, got %T", reply)
	return list.Sessions
}

func TestSessionManager_CreateSessions(t *testing.T) {
	engine, manager := spawnManager(t, 4)

	first := createSession(t, engine, manager)
	second := createSession(t, engine, manager)
	assert.Equal(t, "session-1", first.ID)
	assert.Equal(t, "session-2", second.ID)
	assert.NotEqual(t, first.PID.ID, second.PID.ID)

	// Sessions are independent.
	press(t, engine, first.PID, input.KeyEnter)
	assert.Equal(t, input.PhasePlaying, ask(t, engine, first.PID, SnapshotRequest{}).Phase)
	assert.Equal(t, input.PhaseStart, ask(t, engine, second.PID, SnapshotRequest{}).Phase)
	assert.Equal(t, "session-2", ask(t, engine, second.PID, SnapshotRequest{}).SessionID)

	sessions := listSessions(t, engine, manager)
	assert.Len(t, sessions, 2)
	assert.Equal(t, first.PID, sessions["session-1"])
}

func TestSessionManager_Limit(t *testing.T) {
	engine, manager := spawnManager(t, 1)
	created := createSession(t, engine, manager)

	_, err := engine.Ask(manager, CreateSessionRequest{}, testAskTimeout)
	assert.ErrorIs(t, err, ErrTooManySessions)

	reply, err := engine.Ask(manager, CloseSessionRequest{ID: created.ID}, testAskTimeout)
	require.NoError(t, err)
	assert.Equal(t, true, reply)

	again := createSession(t, engine, manager)
	assert.Equal(t, "session-2", again.ID, "ids are never reused")
}

func TestSessionManager_CloseSession(t *testing.T) {
	engine, manager := spawnManager(t, 4)
	created := createSession(t, engine, manager)

	reply, err := engine.Ask(manager, CloseSessionRequest{ID: created.ID}, testAskTimeout)
	require.NoError(t, err)
	assert.Equal(t, true, reply)
	assert.Empty(t, listSessions(t, engine, manager))

	assert.Eventually(t, func() bool {
		_, err := engine.Ask(created.PID, SnapshotRequest{}, testAskTimeout)
		return err != nil
	}, time.Second, 10*time.Millisecond, "closed session stops answering")

	reply, err = engine.Ask(manager, CloseSessionRequest{ID: created.ID}, testAskTimeout)
	require.NoError(t, err)
	assert.Equal(t, false, reply, "closing twice reports a missing session")
}

func TestSessionManager_StopClosesSessions(t *testing.T) {
	engine, manager := spawnManager(t, 4)
	createSession(t, engine, manager)
	createSession(t, engine, manager)
	require.Equal(t, 3, engine.Count())

	engine.Stop(manager)
	assert.Eventually(t, func() bool { return engine.Count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestSessionManager_UnknownMessage(t *testing.T) {
	engine, manager := spawnManager(t, 4)
	_, err := engine.Ask(manager, KeyEvent{Code: input.KeyUp, Down: true}, testAskTimeout)
	assert.Error(t, err)
}

package bollywood

import (
	"errors"
	"io"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type echoRequest struct{ Text string }
type failRequest struct{}
type panicRequest struct{}

// recordingActor captures every message and answers echo requests.
type recordingActor struct {
	mu       sync.Mutex
	received []interface{}
}

func (a *recordingActor) Receive(ctx Context) {
	a.mu.Lock()
	a.received = append(a.received, ctx.Message())
	a.mu.Unlock()

	switch msg := ctx.Message().(type) {
	case echoRequest:
		ctx.Reply(msg.Text)
		ctx.Reply("second reply is ignored")
	case failRequest:
		ctx.Reply(errors.New("refused"))
	case panicRequest:
		panic("boom")
	}
}

func (a *recordingActor) messages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]interface{}, len(a.received))
	copy(out, a.received)
	return out
}

func spawnRecorder(t *testing.T, engine *Engine) (*recordingActor, *PID) {
	t.Helper()
	actor := &recordingActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	require.NotNil(t, pid)
	return actor, pid
}

func waitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return condition()
}

func TestEngine_SpawnAndSend(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)

	actor, pid := spawnRecorder(t, engine)
	engine.Send(pid, "hello", nil)
	engine.Send(pid, 42, nil)

	assert.True(t, waitFor(t, time.Second, func() bool { return len(actor.messages()) == 3 }))
	assert.Equal(t, []interface{}{Started{}, "hello", 42}, actor.messages(), "Started comes first, then messages in order")
}

func TestEngine_Ask(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)
	_, pid := spawnRecorder(t, engine)

	reply, err := engine.Ask(pid, echoRequest{Text: "ping"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ping", reply)

	_, err = engine.Ask(pid, failRequest{}, time.Second)
	assert.EqualError(t, err, "refused")

	_, err = engine.Ask(pid, "no reply", 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)

	_, err = engine.Ask(&PID{ID: "actor-missing"}, echoRequest{}, time.Second)
	assert.ErrorIs(t, err, ErrActorNotFound)
}

func TestEngine_PanicInReceiveKeepsActorAlive(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)
	_, pid := spawnRecorder(t, engine)

	engine.Send(pid, panicRequest{}, nil)
	reply, err := engine.Ask(pid, echoRequest{Text: "still here"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "still here", reply)
}

func TestEngine_Stop(t *testing.T) {
	engine := NewEngine()
	defer engine.Shutdown(time.Second)
	actor, pid := spawnRecorder(t, engine)
	require.True(t, waitFor(t, time.Second, func() bool { return len(actor.messages()) == 1 }), "actor started")

	engine.Stop(pid)
	assert.True(t, waitFor(t, time.Second, func() bool { return engine.Count() == 0 }))

	messages := actor.messages()
	require.GreaterOrEqual(t, len(messages), 3)
	assert.Equal(t, Stopping{}, messages[len(messages)-2])
	assert.Equal(t, Stopped{}, messages[len(messages)-1])

	engine.Send(pid, "late", nil)
	time.Sleep(20 * time.Millisecond)
	assert.NotContains(t, actor.messages(), "late")
}

func TestEngine_Shutdown(t *testing.T) {
	engine := NewEngine()
	for i := 0; i < 5; i++ {
		spawnRecorder(t, engine)
	}
	assert.Equal(t, 5, engine.Count())

	engine.Shutdown(time.Second)
	assert.Equal(t, 0, engine.Count())
	assert.Nil(t, engine.Spawn(NewProps(func() Actor { return &recordingActor{} })), "no spawning after shutdown")

	_, err := engine.Ask(&PID{ID: "actor-1"}, echoRequest{}, time.Second)
	assert.ErrorIs(t, err, ErrEngineStopping)
}

func TestNewProps_NilProducer(t *testing.T) {
	assert.Panics(t, func() { NewProps(nil) })
}

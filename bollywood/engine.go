package bollywood

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrTimeout        = errors.New("bollywood: ask timed out")
	ErrActorNotFound  = errors.New("bollywood: actor not found")
	ErrEngineStopping = errors.New("bollywood: engine is stopping")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter     uint64
	requestCounter uint64
	actors         map[string]*process
	mu             sync.RWMutex // Protects the actors map
	pending        sync.Map     // requestID -> chan interface{}
	stopping       atomic.Bool  // Indicates if the engine is shutting down
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

// nextPID generates a unique process ID.
func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns nil once the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		log.Println("bollywood: engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	proc.sendMessage(&messageEnvelope{Message: Started{}})

	return pid
}

// Send delivers a message to the actor identified by the PID.
// Messages to unknown actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil || e.stopping.Load() {
		return
	}

	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	proc.sendMessage(&messageEnvelope{Sender: sender, Message: message})
}

// Ask sends message and waits for the actor to call ctx.Reply. A reply that
// is an error is returned as the error.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if e.stopping.Load() {
		return nil, ErrEngineStopping
	}
	if pid == nil {
		return nil, ErrActorNotFound
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActorNotFound, pid)
	}

	requestID := fmt.Sprintf("ask-%d", atomic.AddUint64(&e.requestCounter, 1))
	replyCh := make(chan interface{}, 1)
	e.pending.Store(requestID, replyCh)
	defer e.pending.Delete(requestID)

	proc.sendMessage(&messageEnvelope{Message: message, RequestID: requestID})

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply := <-replyCh:
		if err, isErr := reply.(error); isErr {
			return nil, err
		}
		return reply, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w after %s waiting for %s (%T)", ErrTimeout, timeout, pid, message)
	}
}

func (e *Engine) deliverReply(requestID string, message interface{}) {
	value, ok := e.pending.Load(requestID)
	if !ok {
		return // Asker already gave up
	}
	select {
	case value.(chan interface{}) <- message:
	default:
	}
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	proc, ok := e.actors[pid.ID]
	return proc, ok
}

// Stop requests an actor to stop processing messages and shut down.
// It sends Stopping and also closes the stop channel so a full mailbox
// cannot keep the actor alive.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	proc.sendMessage(&messageEnvelope{Message: Stopping{}})
	proc.closeStop()
}

// remove removes an actor process from the engine's tracking.
func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Count returns the number of live actors.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

// Shutdown stops all actors and waits up to timeout for them to terminate.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	pidsToStop := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pidsToStop = append(pidsToStop, proc.pid)
	}
	e.mu.RUnlock()

	for _, pid := range pidsToStop {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if e.Count() == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	remaining := make([]string, 0, len(e.actors))
	for id := range e.actors {
		remaining = append(remaining, id)
	}
	e.actors = make(map[string]*process)
	e.mu.Unlock()
	log.Printf("bollywood: shutdown timeout, %d actors did not stop gracefully: %v", len(remaining), remaining)
}

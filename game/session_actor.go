// File: game/session_actor.go
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/lguibr/jetrun/actions"
	"github.com/lguibr/jetrun/bollywood"
	"github.com/lguibr/jetrun/geometry"
	"github.com/lguibr/jetrun/input"
	"github.com/lguibr/jetrun/utils"
)

// SessionActor owns the input session and player entity of one client.
// Every mutation happens inside Receive, so neither needs locking.
type SessionActor struct {
	cfg     utils.Config
	id      string
	engine  *bollywood.Engine
	selfPID *bollywood.PID

	session *input.Session
	player  geometry.Entity
	resets  int
	frames  int

	scriptGeneration int
	cancelScript     context.CancelFunc
	scriptHeld       map[input.KeyCode]bool
}

// NewSessionActorProducer creates a producer for the SessionActor.
func NewSessionActorProducer(engine *bollywood.Engine, cfg utils.Config, id string) bollywood.Producer {
	return func() bollywood.Actor {
		a := &SessionActor{
			cfg:        cfg,
			id:         id,
			engine:     engine,
			scriptHeld: make(map[input.KeyCode]bool),
		}
		a.session = input.NewSession(input.ResetFunc(a.handleReset))
		a.player = spawnEntity(cfg)
		return a
	}
}

func spawnEntity(cfg utils.Config) geometry.Entity {
	return geometry.Entity{
		X:      cfg.SpawnX,
		Y:      cfg.SpawnY,
		Radius: cfg.PlayerRadius,
		Ay:     cfg.Gravity,
	}
}

// Receive is the main message handler for the SessionActor.
func (a *SessionActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC recovered in SessionActor %s Receive: %v\nStack trace:\n%s", a.id, r, string(debug.Stack()))
			ctx.Reply(fmt.Errorf("session %s panicked: %v", a.id, r))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		log.Printf("SessionActor %s (%s): Started.", a.id, a.selfPID)

	case KeyEvent:
		if msg.Down {
			a.session.OnKeyDown(msg.Code)
		} else {
			a.session.OnKeyUp(msg.Code)
		}
		ctx.Reply(a.snapshot())

	case scriptKeyEvent:
		if msg.generation == a.scriptGeneration && a.cancelScript != nil {
			a.applyScriptKey(msg.event)
		}

	case FrameRequest:
		a.step(msg.ApplyScroll)
		ctx.Reply(a.snapshot())

	case SnapshotRequest:
		ctx.Reply(a.snapshot())

	case ScriptRequest:
		a.handleScript(ctx, msg.Text)

	case scriptFinished:
		if msg.generation == a.scriptGeneration {
			a.cancelScript = nil
		}
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			log.Printf("SessionActor %s: script ended with error: %v", a.id, msg.err)
		}

	case SetPhaseCommand:
		a.session.SetPhase(msg.Phase)
		ctx.Reply(a.snapshot())

	case ReleaseKeysCommand:
		a.session.Release()
		a.scriptHeld = make(map[input.KeyCode]bool)
		ctx.Reply(a.snapshot())

	case bollywood.Stopping:
		a.stopScript()
		a.session.Release()
		log.Printf("SessionActor %s: Stopping.", a.id)

	case bollywood.Stopped:
		log.Printf("SessionActor %s: Stopped.", a.id)

	default:
		log.Printf("SessionActor %s: Received unknown message type: %T", a.id, msg)
		ctx.Reply(fmt.Errorf("unknown message type: %T", msg))
	}
}

// step runs one frame of player physics. Outside PLAYING the player is frozen.
func (a *SessionActor) step(applyScroll bool) {
	if a.session.Phase() != input.PhasePlaying {
		return
	}

	if a.session.IsThrustActive() {
		a.player.Ay = -a.cfg.Thrust
	} else {
		a.player.Ay = a.cfg.Gravity
	}

	geometry.IntegrateMotion(&a.player, applyScroll, a.cfg.ScrollSpeed)
	geometry.ClampToBounds(&a.player, 0, float64(a.cfg.CanvasHeight))
	a.frames++
}

func (a *SessionActor) handleReset() {
	a.stopScript()
	a.player = spawnEntity(a.cfg)
	a.frames = 0
	a.resets++
	log.Printf("SessionActor %s: Reset #%d.", a.id, a.resets)
}

func (a *SessionActor) handleScript(ctx bollywood.Context, text string) {
	segments, err := actions.Parse(text)
	if err != nil {
		ctx.Reply(fmt.Errorf("session %s script: %w", a.id, err))
		return
	}

	a.stopScript()
	a.scriptGeneration++
	generation := a.scriptGeneration

	scriptCtx, cancel := context.WithCancel(context.Background())
	a.cancelScript = cancel

	player := &actions.Player{
		Keyboard: &actorKeyboard{engine: a.engine, pid: a.selfPID, generation: generation},
		Duration: a.cfg.SegmentDuration,
	}
	engine, self := a.engine, a.selfPID
	go func() {
		err := player.Play(scriptCtx, segments)
		engine.Send(self, scriptFinished{generation: generation, err: err}, self)
	}()

	ctx.Reply(ScriptAccepted{Segments: segments})
}

// stopScript cancels the running script and releases the keys it holds, so
// its late key-ups cannot release keys pressed after it.
func (a *SessionActor) stopScript() {
	if a.cancelScript != nil {
		a.cancelScript()
		a.cancelScript = nil
	}
	held := a.scriptHeld
	a.scriptHeld = make(map[input.KeyCode]bool)
	for code := range held {
		a.session.OnKeyUp(code)
	}
}

func (a *SessionActor) applyScriptKey(event KeyEvent) {
	if event.Down {
		a.scriptHeld[event.Code] = true
		a.session.OnKeyDown(event.Code)
		return
	}
	delete(a.scriptHeld, event.Code)
	a.session.OnKeyUp(event.Code)
}

func (a *SessionActor) snapshot() Snapshot {
	return Snapshot{
		SessionID: a.id,
		Phase:     a.session.Phase(),
		Thrust:    a.session.IsThrustActive(),
		Held:      a.session.Held(),
		Player:    a.player,
		Resets:    a.resets,
		Frames:    a.frames,
		Scripting: a.cancelScript != nil,
	}
}

// actorKeyboard feeds script key events back through the actor's mailbox,
// keeping them ordered with client events.
type actorKeyboard struct {
	engine     *bollywood.Engine
	pid        *bollywood.PID
	generation int
}

func (k *actorKeyboard) OnKeyDown(code input.KeyCode) {
	k.engine.Send(k.pid, scriptKeyEvent{generation: k.generation, event: KeyEvent{Code: code, Down: true}}, k.pid)
}

func (k *actorKeyboard) OnKeyUp(code input.KeyCode) {
	k.engine.Send(k.pid, scriptKeyEvent{generation: k.generation, event: KeyEvent{Code: code, Down: false}}, k.pid)
}

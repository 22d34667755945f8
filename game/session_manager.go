// File: game/session_manager.go
package game

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/lguibr/jetrun/bollywood"
	"github.com/lguibr/jetrun/utils"
)

// SessionManagerActor spawns and tracks one SessionActor per connected client.
type SessionManagerActor struct {
	engine        *bollywood.Engine
	cfg           utils.Config
	sessions      map[string]*bollywood.PID
	selfPID       *bollywood.PID
	nextSessionID int
}

// NewSessionManagerProducer creates a producer for the SessionManagerActor.
func NewSessionManagerProducer(engine *bollywood.Engine, cfg utils.Config) bollywood.Producer {
	return func() bollywood.Actor {
		return &SessionManagerActor{
			engine:        engine,
			cfg:           cfg,
			sessions:      make(map[string]*bollywood.PID),
			nextSessionID: 1,
		}
	}
}

// Receive Method
func (a *SessionManagerActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC recovered in SessionManagerActor %s Receive: %v\nStack trace:\n%s", a.selfPID, r, string(debug.Stack()))
			ctx.Reply(fmt.Errorf("session manager panicked: %v", r))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		log.Printf("SessionManagerActor %s: Started.", a.selfPID)

	case CreateSessionRequest:
		a.handleCreateSession(ctx)

	case CloseSessionRequest:
		a.handleCloseSession(ctx, msg.ID)

	case ListSessionsRequest:
		sessions := make(map[string]*bollywood.PID, len(a.sessions))
		for id, pid := range a.sessions {
			sessions[id] = pid
		}
		ctx.Reply(SessionListResponse{Sessions: sessions})

	case bollywood.Stopping:
		log.Printf("SessionManagerActor %s: Stopping. Shutting down %d sessions.", a.selfPID, len(a.sessions))
		for _, pid := range a.sessions {
			a.engine.Stop(pid)
		}
		a.sessions = make(map[string]*bollywood.PID)

	case bollywood.Stopped:
		log.Printf("SessionManagerActor %s: Stopped.", a.selfPID)

	default:
		log.Printf("SessionManagerActor %s: Received unknown message type: %T", a.selfPID, msg)
		ctx.Reply(fmt.Errorf("unknown message type: %T", msg))
	}
}

func (a *SessionManagerActor) handleCreateSession(ctx bollywood.Context) {
	if len(a.sessions) >= a.cfg.MaxSessions {
		log.Printf("SessionManagerActor %s: Max sessions (%d) reached. Rejecting request.", a.selfPID, a.cfg.MaxSessions)
		ctx.Reply(fmt.Errorf("%w: limit %d", ErrTooManySessions, a.cfg.MaxSessions))
		return
	}

	id := fmt.Sprintf("session-%d", a.nextSessionID)
	a.nextSessionID++

	pid := a.engine.Spawn(bollywood.NewProps(NewSessionActorProducer(a.engine, a.cfg, id)))
	if pid == nil {
		ctx.Reply(fmt.Errorf("spawn session %s: %w", id, bollywood.ErrEngineStopping))
		return
	}

	a.sessions[id] = pid
	ctx.Reply(CreateSessionResponse{ID: id, PID: pid})
}

func (a *SessionManagerActor) handleCloseSession(ctx bollywood.Context, id string) {
	pid, exists := a.sessions[id]
	if exists {
		delete(a.sessions, id)
		a.engine.Stop(pid)
		log.Printf("SessionManagerActor %s: Session %s closed.", a.selfPID, id)
	}
	ctx.Reply(exists)
}

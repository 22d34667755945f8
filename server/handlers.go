// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"runtime/debug"

	"github.com/lguibr/jetrun/bollywood"
	"github.com/lguibr/jetrun/game"
	"github.com/lguibr/jetrun/input"
	"golang.org/x/net/websocket"
)

var errUnknownKey = errors.New("unknown key")

// connection is one subscribed client and the session it drives.
type connection struct {
	ws        *websocket.Conn
	codec     websocket.Codec
	addr      string
	sessionID string
	session   *bollywood.PID
}

// HandleSubscribe opens a session for the websocket client and serves its
// frames until the client disconnects.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		codec, codecName := codecFor(ws.Request())
		conn := &connection{ws: ws, codec: codec, addr: remoteAddr(ws)}

		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s", conn.addr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		reply, err := s.engine.Ask(s.managerPID, game.CreateSessionRequest{}, s.cfg.AskTimeout)
		if err != nil {
			log.Printf("HandleSubscribe: Could not open session for %s: %v", conn.addr, err)
			_ = codec.Send(ws, newErrorMessage(err))
			return
		}
		created, ok := reply.(game.CreateSessionResponse)
		if !ok {
			log.Printf("HandleSubscribe: Unexpected reply %T from session manager", reply)
			return
		}
		conn.sessionID, conn.session = created.ID, created.PID
		log.Printf("HandleSubscribe: %s subscribed to %s (%s codec).", conn.addr, conn.sessionID, codecName)
		defer s.closeSession(conn)

		// The first frame tells the client its session id.
		if snapshot, err := s.askSnapshot(conn, game.SnapshotRequest{}); err == nil {
			if err := codec.Send(ws, snapshot); err != nil {
				return
			}
		}

		s.readLoop(conn)
	}
}

// readLoop decodes client frames and writes one reply per frame that has one.
func (s *Server) readLoop(conn *connection) {
	for {
		var msg ClientMessage
		if err := conn.codec.Receive(conn.ws, &msg); err != nil {
			if !isClosedErr(err) {
				log.Printf("ReadLoop: Error receiving from %s: %v", conn.addr, err)
			}
			return
		}

		reply := s.dispatch(conn, msg)
		if reply == nil {
			continue
		}
		if err := conn.codec.Send(conn.ws, reply); err != nil {
			log.Printf("ReadLoop: Error sending to %s: %v", conn.addr, err)
			return
		}
	}
}

// dispatch maps one client frame onto the session actor. A nil reply means
// nothing is written back.
func (s *Server) dispatch(conn *connection, msg ClientMessage) interface{} {
	switch msg.Type {
	case TypeKeyDown, TypeKeyUp:
		code, ok := msg.keyCode()
		if !ok {
			return newErrorMessage(fmt.Errorf("%w: code=%d key=%q", errUnknownKey, msg.Code, msg.Key))
		}
		event := game.KeyEvent{Code: code, Down: msg.Type == TypeKeyDown}
		if !s.cfg.EchoKeys {
			s.engine.Send(conn.session, event, nil)
			return nil
		}
		return s.reply(conn, event)

	case TypeFrame:
		return s.reply(conn, game.FrameRequest{ApplyScroll: msg.Scroll})

	case TypeSnapshot:
		return s.reply(conn, game.SnapshotRequest{})

	case TypeScript:
		if _, err := s.engine.Ask(conn.session, game.ScriptRequest{Text: msg.Text}, s.cfg.AskTimeout); err != nil {
			return newErrorMessage(err)
		}
		return s.reply(conn, game.SnapshotRequest{})

	case TypePhase:
		phase, err := input.ParsePhase(msg.Phase)
		if err != nil {
			return newErrorMessage(err)
		}
		if !phase.IsTerminal() {
			return newErrorMessage(fmt.Errorf("phase %s cannot be reported; only game-over phases can", phase))
		}
		return s.reply(conn, game.SetPhaseCommand{Phase: phase})

	default:
		return newErrorMessage(fmt.Errorf("unknown message type %q", msg.Type))
	}
}

func (s *Server) reply(conn *connection, request interface{}) interface{} {
	snapshot, err := s.askSnapshot(conn, request)
	if err != nil {
		return newErrorMessage(err)
	}
	return snapshot
}

func (s *Server) askSnapshot(conn *connection, request interface{}) (SnapshotMessage, error) {
	reply, err := s.engine.Ask(conn.session, request, s.cfg.AskTimeout)
	if err != nil {
		return SnapshotMessage{}, err
	}
	snapshot, ok := reply.(game.Snapshot)
	if !ok {
		return SnapshotMessage{}, fmt.Errorf("session %s: unexpected reply %T", conn.sessionID, reply)
	}
	return newSnapshotMessage(snapshot), nil
}

// closeSession releases held keys so nothing stays latched, then stops the session.
func (s *Server) closeSession(conn *connection) {
	s.engine.Send(conn.session, game.ReleaseKeysCommand{}, nil)
	if _, err := s.engine.Ask(s.managerPID, game.CloseSessionRequest{ID: conn.sessionID}, s.cfg.AskTimeout); err != nil {
		log.Printf("HandleSubscribe: Error closing %s: %v", conn.sessionID, err)
		return
	}
	log.Printf("HandleSubscribe: %s disconnected, %s closed.", conn.addr, conn.sessionID)
}

// HandleGetSessions lists live sessions and their phases as JSON.
func (s *Server) HandleGetSessions() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("PANIC recovered in HandleGetSessions: %v\nStack trace:\n%s", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		reply, err := s.engine.Ask(s.managerPID, game.ListSessionsRequest{}, s.cfg.AskTimeout)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		list, ok := reply.(game.SessionListResponse)
		if !ok {
			http.Error(w, fmt.Sprintf("unexpected reply %T", reply), http.StatusInternalServerError)
			return
		}

		response := SessionsResponse{Sessions: make(map[string]string, len(list.Sessions))}
		for id, pid := range list.Sessions {
			conn := &connection{sessionID: id, session: pid}
			snapshot, err := s.askSnapshot(conn, game.SnapshotRequest{})
			if err != nil {
				// Closed between the list and the ask.
				continue
			}
			response.Sessions[id] = snapshot.Phase
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Printf("HandleGetSessions: Error writing response: %v", err)
		}
	}
}

func remoteAddr(ws *websocket.Conn) string {
	if r := ws.Request(); r != nil && r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func isClosedErr(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}

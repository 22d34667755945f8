// File: server/server.go
package server

import (
	"github.com/lguibr/jetrun/bollywood"
	"github.com/lguibr/jetrun/utils"
)

// Server bridges websocket clients to session actors.
type Server struct {
	engine     *bollywood.Engine
	managerPID *bollywood.PID
	cfg        utils.Config
}

// New creates a Server that opens sessions through the SessionManagerActor at managerPID.
func New(engine *bollywood.Engine, managerPID *bollywood.PID, cfg utils.Config) *Server {
	return &Server{
		engine:     engine,
		managerPID: managerPID,
		cfg:        cfg,
	}
}

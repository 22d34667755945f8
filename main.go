package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/lguibr/jetrun/bollywood"
	"github.com/lguibr/jetrun/game"
	"github.com/lguibr/jetrun/server"
	"github.com/lguibr/jetrun/utils"
	"golang.org/x/net/websocket"
)

func main() {
	configPath := flag.String("config", "", "JSON config file; fields not set keep their defaults")
	flag.Parse()

	cfg := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		cfg = loaded
	}

	engine := bollywood.NewEngine()
	managerPID := engine.Spawn(bollywood.NewProps(game.NewSessionManagerProducer(engine, cfg)))
	if managerPID == nil {
		log.Fatal("Failed to spawn SessionManagerActor")
	}

	wsServer := server.New(engine, managerPID, cfg)

	http.HandleFunc("/", wsServer.HandleGetSessions())
	http.Handle("/subscribe", websocket.Handler(wsServer.HandleSubscribe()))

	log.Printf("Server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		engine.Shutdown(cfg.AskTimeout)
		log.Fatalf("Server stopped: %v", err)
	}
}

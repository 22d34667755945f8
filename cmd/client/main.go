// Command client drives one jetrun session from a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/jetrun/input"
	"github.com/lguibr/jetrun/server"
	"golang.org/x/net/websocket"
)

// serverFrame decodes both snapshot and error replies.
type serverFrame struct {
	server.SnapshotMessage `msgpack:",inline"`
	Error                  string `json:"error" msgpack:"error"`
}

type client struct {
	ws     *websocket.Conn
	codec  websocket.Codec
	screen tcell.Screen
	hold   *holdTracker
	scroll bool

	last    server.SnapshotMessage
	lastErr string
}

func main() {
	addr := flag.String("addr", "ws://localhost:3001/subscribe", "websocket endpoint of the server")
	origin := flag.String("origin", "http://localhost/", "origin sent in the websocket handshake")
	codecName := flag.String("codec", "json", "frame codec: json or msgpack")
	hold := flag.Duration("hold", 150*time.Millisecond, "how long a key stays down without a repeat")
	frame := flag.Duration("frame", 33*time.Millisecond, "interval between frame requests")
	scroll := flag.Bool("scroll", true, "apply world scroll on every frame")
	scriptPath := flag.String("script", "", "file with a <keys> action script to play on connect")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}

	codec := websocket.JSON
	url := *addr
	if *codecName == "msgpack" {
		codec = server.MsgpackCodec
		url += "?codec=msgpack"
	}

	ws, err := websocket.Dial(url, "", *origin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to server: %v\n", err)
		os.Exit(1)
	}
	defer ws.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	c := &client{
		ws:     ws,
		codec:  codec,
		screen: screen,
		hold:   newHoldTracker(*hold),
		scroll: *scroll,
	}

	if *scriptPath != "" {
		text, err := os.ReadFile(*scriptPath)
		if err != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
			os.Exit(1)
		}
		c.send(server.ClientMessage{Type: server.TypeScript, Text: string(text)})
	}

	c.run(*frame)
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

func (c *client) run(frameInterval time.Duration) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	replies := make(chan serverFrame, 16)
	go c.readLoop(replies)

	for {
		select {
		case ev := <-eventChan:
			if !c.handleInput(ev) {
				c.releaseAll()
				return
			}

		case reply, ok := <-replies:
			if !ok {
				return
			}
			if reply.Type == server.TypeError {
				c.lastErr = reply.Error
			} else {
				c.last = reply.SnapshotMessage
			}
			c.draw()

		case now := <-ticker.C:
			for _, code := range c.hold.expire(now) {
				c.send(server.ClientMessage{Type: server.TypeKeyUp, Code: int(code)})
			}
			c.send(server.ClientMessage{Type: server.TypeFrame, Scroll: c.scroll})
		}
	}
}

func (c *client) readLoop(replies chan<- serverFrame) {
	defer close(replies)
	for {
		var reply serverFrame
		if err := c.codec.Receive(c.ws, &reply); err != nil {
			log.Printf("Client: Error reading from server: %v", err)
			return
		}
		replies <- reply
	}
}

func (c *client) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
			return false
		}
		code, ok := keyCode(ev)
		if !ok {
			return true
		}
		if c.hold.press(code, time.Now()) {
			c.send(server.ClientMessage{Type: server.TypeKeyDown, Code: int(code)})
		}

	case *tcell.EventResize:
		c.screen.Sync()
		c.draw()
	}
	return true
}

func (c *client) releaseAll() {
	for _, code := range c.hold.releaseAll() {
		c.send(server.ClientMessage{Type: server.TypeKeyUp, Code: int(code)})
	}
}

func (c *client) send(msg server.ClientMessage) {
	if err := c.codec.Send(c.ws, msg); err != nil {
		log.Printf("Client: Error sending %s: %v", msg.Type, err)
	}
}

func (c *client) draw() {
	c.screen.Clear()

	s := c.last
	held := make([]string, len(s.Held))
	for i, code := range s.Held {
		held[i] = input.KeyCode(code).String()
	}
	status := fmt.Sprintf("%s  %s  y=%6.1f vy=%5.2f thrust=%-5v ground=%-5v frames=%d resets=%d held=%q",
		s.SessionID, s.Phase, s.Player.Y, s.Player.Vy, s.Thrust, s.Player.OnGround, s.Frames, s.Resets, held)

	c.drawLine(0, status, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	c.drawLine(1, "ENTER start/resume  ESC pause  UP/SPACE thrust  R restart after game over  Ctrl+C quit", tcell.StyleDefault)
	if c.lastErr != "" {
		c.drawLine(2, c.lastErr, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	c.screen.Show()
}

func (c *client) drawLine(y int, text string, style tcell.Style) {
	width, _ := c.screen.Size()
	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

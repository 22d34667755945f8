// File: utils/config.go
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidConfig is returned by Validate and LoadConfig for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configurable session and physics parameters.
type Config struct {
	// Server
	Addr        string        `json:"addr"`        // Listen address of the HTTP/websocket server
	MaxSessions int           `json:"maxSessions"` // Upper bound on concurrent sessions
	AskTimeout  time.Duration `json:"askTimeout"`  // Timeout for request/reply to session actors
	EchoKeys    bool          `json:"echoKeys"`    // Reply with a snapshot after every key event

	// Canvas
	CanvasWidth  int `json:"canvasWidth"`  // Width of the play field in pixels
	CanvasHeight int `json:"canvasHeight"` // Height of the play field in pixels

	// Player Physics
	ScrollSpeed  float64 `json:"scrollSpeed"`  // World scroll per frame, subtracted from x when scrolling
	Gravity      float64 `json:"gravity"`      // Downward acceleration while thrust is released
	Thrust       float64 `json:"thrust"`       // Upward acceleration while thrust is held
	PlayerRadius float64 `json:"playerRadius"` // Radius of the player craft
	SpawnX       float64 `json:"spawnX"`       // Spawn position (top-left of the bounding box)
	SpawnY       float64 `json:"spawnY"`

	// Scripted actions
	SegmentDuration time.Duration `json:"segmentDuration"` // Length of one action segment
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	canvasWidth := 800
	canvasHeight := 400
	playerRadius := float64(canvasHeight) / 40 // 10

	return Config{
		// Server
		Addr:        ":3001",
		MaxSessions: 64,
		AskTimeout:  500 * time.Millisecond,
		EchoKeys:    false,

		// Canvas
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,

		// Player Physics
		ScrollSpeed:  2,
		Gravity:      0.4,
		Thrust:       0.6,
		PlayerRadius: playerRadius,
		SpawnX:       float64(canvasWidth) / 5,              // 160
		SpawnY:       float64(canvasHeight)/2 - playerRadius, // centred vertically

		// Scripted actions
		SegmentDuration: 200 * time.Millisecond,
	}
}

// Validate reports the first setting that cannot drive a session.
func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %dx%d", ErrInvalidConfig, c.CanvasWidth, c.CanvasHeight)
	case c.PlayerRadius <= 0:
		return fmt.Errorf("%w: playerRadius must be positive, got %v", ErrInvalidConfig, c.PlayerRadius)
	case 2*c.PlayerRadius > float64(c.CanvasHeight):
		return fmt.Errorf("%w: player (diameter %v) does not fit canvas height %d", ErrInvalidConfig, 2*c.PlayerRadius, c.CanvasHeight)
	case !c.spawnInsideCanvas():
		return fmt.Errorf("%w: spawn (%v, %v) puts the player outside the %dx%d canvas", ErrInvalidConfig, c.SpawnX, c.SpawnY, c.CanvasWidth, c.CanvasHeight)
	case c.MaxSessions <= 0:
		return fmt.Errorf("%w: maxSessions must be positive, got %d", ErrInvalidConfig, c.MaxSessions)
	case c.AskTimeout <= 0:
		return fmt.Errorf("%w: askTimeout must be positive, got %s", ErrInvalidConfig, c.AskTimeout)
	case c.SegmentDuration <= 0:
		return fmt.Errorf("%w: segmentDuration must be positive, got %s", ErrInvalidConfig, c.SegmentDuration)
	}
	return nil
}

// spawnInsideCanvas checks the top-left of the player's bounding box against
// the positions that keep the whole box on the canvas.
func (c Config) spawnInsideCanvas() bool {
	diameter := 2 * c.PlayerRadius
	return CheckPointWithinBounds(c.SpawnX, c.SpawnY,
		[2]float64{0, 0},
		[2]float64{float64(c.CanvasWidth) - diameter, float64(c.CanvasHeight) - diameter})
}

// LoadConfig reads a JSON config file on top of DefaultConfig, so a file only
// needs the fields it overrides. Durations are given in nanoseconds.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

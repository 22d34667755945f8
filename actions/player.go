package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/lguibr/jetrun/input"
)

// DefaultSegmentDuration is used when Player.Duration is zero.
const DefaultSegmentDuration = 200 * time.Millisecond

// Keyboard receives the key events produced while playing a script.
// *input.Session satisfies it.
type Keyboard interface {
	OnKeyDown(code input.KeyCode)
	OnKeyUp(code input.KeyCode)
}

// Player applies segments to a Keyboard in real time.
type Player struct {
	Keyboard Keyboard
	Duration time.Duration
}

// Play runs the segments in order. Instant actions are pressed and released
// at the start of their segment, before any HOLD action goes down; HOLD
// actions stay down until the segment ends. Cancelling ctx releases held keys and returns ctx.Err().
func (p *Player) Play(ctx context.Context, segments []Segment) error {
	for index, segment := range segments {
		if err := p.playSegment(ctx, segment); err != nil {
			return fmt.Errorf("segment %d: %w", index, err)
		}
	}
	return nil
}

func (p *Player) playSegment(ctx context.Context, segment Segment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var instant, held []input.KeyCode
	for _, action := range segment {
		switch {
		case action.Noop:
		case action.Hold:
			held = append(held, action.Code)
		default:
			instant = append(instant, action.Code)
		}
	}

	// Instant presses go first, then every hold starts together.
	for _, code := range instant {
		p.Keyboard.OnKeyDown(code)
		p.Keyboard.OnKeyUp(code)
	}
	for _, code := range held {
		p.Keyboard.OnKeyDown(code)
	}
	defer func() {
		for _, code := range held {
			p.Keyboard.OnKeyUp(code)
		}
	}()

	timer := time.NewTimer(p.duration())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *Player) duration() time.Duration {
	if p.Duration <= 0 {
		return DefaultSegmentDuration
	}
	return p.Duration
}

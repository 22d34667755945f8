// Package bollywood is a small actor engine: every actor processes the
// messages in its mailbox one at a time on its own goroutine.
package bollywood

// Actor is the interface that defines actor behavior.
type Actor interface {
	// Receive processes one message. Use the context to reach the engine,
	// the sender, and to reply to Ask requests.
	Receive(ctx Context)
}

// Producer is a function that creates a new instance of an Actor.
type Producer func() Actor

// Props is a configuration object used to create actors.
type Props struct {
	producer Producer
}

// NewProps creates a new Props object with the given actor producer.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer}
}

// Produce creates a new actor instance using the configured producer.
func (p *Props) Produce() Actor {
	return p.producer()
}

// PID (Process ID) is a reference to a running actor.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}

// Started is sent to an actor after its goroutine has started.
type Started struct{}

// Stopping is sent to an actor to signal it should clean up.
// No more user messages are delivered after Stopping.
type Stopping struct{}

// Stopped is the final message an actor receives.
type Stopped struct{}

type messageEnvelope struct {
	Sender    *PID
	Message   interface{}
	RequestID string
}

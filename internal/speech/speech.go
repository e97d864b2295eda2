package speech

import (
	"context"
	"errors"
)

// ErrUnavailable reports that no speech engine is present. The platform
// degrades to key-only interaction in that case.
var ErrUnavailable = errors.New("speech engine unavailable")

// EventKind enumerates the typed events a recognition session emits.
type EventKind string

const (
	EventStarted EventKind = "started"
	EventResult  EventKind = "result"
	EventEnded   EventKind = "ended"
	EventError   EventKind = "error"
)

// Event is one typed recognition event.
type Event struct {
	Kind EventKind
	// Text carries the recognized utterance for EventResult.
	Text string
	// Err carries the failure for EventError.
	Err error
}

// Recognizer is a black-box speech-to-text session engine. Start opens a
// recognition session whose lifecycle is reported on Events; Stop ends it
// explicitly and must be a no-op when no session is open. Engines decide
// session length themselves — no timeout is enforced here.
type Recognizer interface {
	Start() error
	Stop() error
	Events() <-chan Event
}

// Synthesizer is a black-box text-to-speech engine. Speak utters one chunk
// and returns when the engine reports completion or ctx is canceled.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

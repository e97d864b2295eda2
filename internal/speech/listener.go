package speech

import (
	"github.com/rs/zerolog"
)

// State is the listener's finite-state machine state.
type State string

const (
	StateIdle      State = "idle"
	StateListening State = "listening"
	StateError     State = "error"
)

// Listener wraps a Recognizer behind an explicit state machine. All typed
// recognition events go through HandleEvent, the single dispatcher; the
// owning event loop is expected to forward them from Recognizer.Events.
type Listener struct {
	rec      Recognizer
	state    State
	onState  func(State)
	onResult func(text string)
	log      zerolog.Logger
}

// NewListener creates a listener over rec, which may be nil when the
// environment has no recognition engine.
func NewListener(rec Recognizer, log zerolog.Logger) *Listener {
	return &Listener{
		rec:   rec,
		state: StateIdle,
		log:   log.With().Str("component", "listener").Logger(),
	}
}

// OnState registers the state-change callback (UI indicator).
func (l *Listener) OnState(fn func(State)) { l.onState = fn }

// OnResult registers the recognized-utterance callback.
func (l *Listener) OnResult(fn func(text string)) { l.onResult = fn }

// State returns the current FSM state.
func (l *Listener) State() State { return l.state }

// Available reports whether a recognition engine is present.
func (l *Listener) Available() bool { return l.rec != nil }

// Events exposes the underlying recognizer's event stream, or nil when no
// engine is present.
func (l *Listener) Events() <-chan Event {
	if l.rec == nil {
		return nil
	}
	return l.rec.Events()
}

// Start opens a recognition session. Starting while already listening is a
// no-op; a missing engine yields ErrUnavailable.
func (l *Listener) Start() error {
	if l.rec == nil {
		return ErrUnavailable
	}
	if l.state == StateListening {
		return nil
	}
	if err := l.rec.Start(); err != nil {
		l.log.Error().Err(err).Msg("Recognition start failed")
		return err
	}
	return nil
}

// Stop ends the recognition session explicitly. The engine's Stop is
// idempotent, so this is safe even when the FSM has not yet observed the
// session ending on its own.
func (l *Listener) Stop() error {
	if l.rec == nil {
		return nil
	}
	return l.rec.Stop()
}

// HandleEvent advances the FSM for one typed recognition event. A session
// error clears the listening indicator and settles back to idle; it is
// never auto-restarted.
func (l *Listener) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventStarted:
		l.setState(StateListening)
	case EventResult:
		if l.state == StateListening && l.onResult != nil {
			l.onResult(ev.Text)
		}
	case EventEnded:
		l.setState(StateIdle)
	case EventError:
		l.log.Warn().Err(ev.Err).Msg("Recognition error")
		l.setState(StateError)
		l.setState(StateIdle)
	}
}

func (l *Listener) setState(s State) {
	if l.state == s {
		return
	}
	l.state = s
	if l.onState != nil {
		l.onState(s)
	}
}

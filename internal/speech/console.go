package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ConsoleRecognizer emulates a speech-to-text session over a terminal:
// while a session is open, every line read from the input is emitted as one
// recognized utterance. An empty line ends the session, mirroring an engine
// deciding the session is over.
//
// A single reader goroutine lives for the recognizer's whole lifetime and
// drains the input even between sessions, so feeding it over an io.Pipe
// never blocks the writer. Lines read while no session is open are
// discarded.
type ConsoleRecognizer struct {
	in     *bufio.Reader
	events chan Event

	mu   sync.Mutex
	open bool
}

// NewConsoleRecognizer creates a recognizer reading utterances from in and
// starts its reader.
func NewConsoleRecognizer(in io.Reader) *ConsoleRecognizer {
	r := &ConsoleRecognizer{
		in:     bufio.NewReader(in),
		events: make(chan Event, 8),
	}
	go r.read()
	return r
}

func (r *ConsoleRecognizer) Events() <-chan Event { return r.events }

func (r *ConsoleRecognizer) read() {
	for {
		line, err := r.in.ReadString('\n')
		if err != nil {
			if r.endSession() {
				if err != io.EOF {
					r.events <- Event{Kind: EventError, Err: err}
				}
				r.events <- Event{Kind: EventEnded}
			}
			return
		}

		r.mu.Lock()
		open := r.open
		r.mu.Unlock()
		if !open {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			if r.endSession() {
				r.events <- Event{Kind: EventEnded}
			}
			continue
		}
		r.events <- Event{Kind: EventResult, Text: line}
	}
}

// endSession closes the session flag, reporting whether it was open.
func (r *ConsoleRecognizer) endSession() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	was := r.open
	r.open = false
	return was
}

// Start opens a session and emits Started. Starting an already open
// session is a no-op. Started is sent under the lock so the reader cannot
// emit a Result ahead of it; the events consumer never takes the lock, so
// the send cannot deadlock.
func (r *ConsoleRecognizer) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.open {
		return nil
	}
	r.open = true
	r.events <- Event{Kind: EventStarted}
	return nil
}

// Stop ends the session immediately; any line already in flight is
// discarded by the reader. Stopping a closed session is a no-op.
func (r *ConsoleRecognizer) Stop() error {
	if r.endSession() {
		r.events <- Event{Kind: EventEnded}
	}
	return nil
}

// ConsoleSynthesizer emulates text-to-speech by printing each chunk and
// pausing for a duration proportional to its length, so narration pacing
// and cancellation behave like a real engine.
type ConsoleSynthesizer struct {
	out io.Writer
	// Rate scales speaking speed; 1.0 is normal, lower is slower.
	rate float64
}

// NewConsoleSynthesizer creates a synthesizer writing to out at rate.
func NewConsoleSynthesizer(out io.Writer, rate float64) *ConsoleSynthesizer {
	if rate <= 0 {
		rate = 1.0
	}
	return &ConsoleSynthesizer{out: out, rate: rate}
}

func (s *ConsoleSynthesizer) Speak(ctx context.Context, text string) error {
	fmt.Fprintln(s.out, color.CyanString("🔊 %s", text))

	// Roughly 60ms per character at normal rate.
	d := time.Duration(float64(len([]rune(text))*60)/s.rate) * time.Millisecond
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

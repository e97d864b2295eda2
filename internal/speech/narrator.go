package speech

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Narrator sequences text-to-speech output. Text is split into sentence
// chunks spoken one after another, each queued only after the previous
// chunk completes plus a fixed gap. Speaking new text cancels whatever is
// in flight — last write wins, there is no queueing across calls.
type Narrator struct {
	synth Synthesizer
	gap   time.Duration
	log   zerolog.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	gen      uint64
	speaking bool
	onDone   func()
}

// NewNarrator creates a narrator over synth, which may be nil when the
// environment has no synthesis engine (narrations become no-ops).
func NewNarrator(synth Synthesizer, gap time.Duration, log zerolog.Logger) *Narrator {
	return &Narrator{
		synth: synth,
		gap:   gap,
		log:   log.With().Str("component", "narrator").Logger(),
	}
}

// OnDone registers a callback fired when a narration finishes all of its
// chunks (not when it is canceled by a newer one).
func (n *Narrator) OnDone(fn func()) {
	n.mu.Lock()
	n.onDone = fn
	n.mu.Unlock()
}

// Speaking reports whether a narration is currently in progress. The quiz
// runtime gates answer submission on this.
func (n *Narrator) Speaking() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.speaking
}

// Stop cancels the in-flight narration, if any.
func (n *Narrator) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.speaking = false
	n.mu.Unlock()
}

// Speak narrates text, canceling any narration already in progress.
func (n *Narrator) Speak(text string) {
	if n.synth == nil {
		return
	}

	chunks := SplitChunks(text)
	if len(chunks) == 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
	}
	n.cancel = cancel
	n.gen++
	gen := n.gen
	n.speaking = true
	n.mu.Unlock()

	go n.drain(ctx, gen, chunks)
}

// drain speaks the chunk queue sequentially until done, failed or
// canceled. The generation counter keeps a stale drain from touching the
// state a newer narration owns.
func (n *Narrator) drain(ctx context.Context, gen uint64, chunks []string) {
	completed := true

	for i, chunk := range chunks {
		if err := n.synth.Speak(ctx, chunk); err != nil {
			if ctx.Err() == nil {
				n.log.Warn().Err(err).Msg("Synthesis failed")
			}
			completed = false
			break
		}
		if i == len(chunks)-1 {
			break
		}
		select {
		case <-time.After(n.gap):
		case <-ctx.Done():
			completed = false
		}
		if !completed {
			break
		}
	}

	n.mu.Lock()
	if n.gen != gen {
		n.mu.Unlock()
		return
	}
	n.speaking = false
	n.cancel = nil
	done := n.onDone
	n.mu.Unlock()

	if completed && done != nil {
		done()
	}
}

// SplitChunks breaks text into sentence chunks on terminating punctuation,
// keeping the terminator. Text without sentence punctuation is one chunk.
func SplitChunks(text string) []string {
	var chunks []string
	var b strings.Builder

	for _, r := range text {
		b.WriteRune(r)
		switch r {
		case '.', '!', '?', '؟':
			if chunk := strings.TrimSpace(b.String()); chunk != "" {
				chunks = append(chunks, chunk)
			}
			b.Reset()
		}
	}
	if chunk := strings.TrimSpace(b.String()); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

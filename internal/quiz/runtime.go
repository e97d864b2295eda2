package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// State is the quiz runtime's state machine state.
type State string

const (
	StateAwaitingStart State = "awaitingStart"
	StateInProgress    State = "inProgress"
	StateComplete      State = "complete"
)

// Runtime errors.
var (
	ErrNoQuestions   = errors.New("subject has no questions")
	ErrNotInProgress = errors.New("no test in progress")
)

// Runtime drives one user's test: drawing questions, grading answers and
// recording scores through the persistence façade. All position state
// lives on the injected session.
type Runtime struct {
	st    store.Store
	sess  *session.Session
	rng   *rand.Rand
	state State
	log   zerolog.Logger
}

// NewRuntime creates a runtime in awaitingStart. The rng is injected so
// tests can draw deterministically; pass nil for a time-seeded source.
func NewRuntime(st store.Store, sess *session.Session, rng *rand.Rand, log zerolog.Logger) *Runtime {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Runtime{
		st:    st,
		sess:  sess,
		rng:   rng,
		state: StateAwaitingStart,
		log:   log.With().Str("component", "quiz").Logger(),
	}
}

// State returns the current state machine state.
func (r *Runtime) State() State { return r.state }

// Draw picks count questions uniformly at random from questions, without
// duplicates, by shuffling a copy and taking a prefix. Fewer than count
// questions yields all of them in random order; a non-positive count
// yields none.
func Draw(questions []model.Question, count int, rng *rand.Rand) []model.Question {
	out := append([]model.Question(nil), questions...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if count < 0 {
		count = 0
	}
	if count > len(out) {
		count = len(out)
	}
	return out[:count]
}

// Start reads the subject and begins a test over a drawn question
// snapshot. A subject with zero questions keeps the runtime in
// awaitingStart and returns ErrNoQuestions.
func (r *Runtime) Start(subjectID string) error {
	sub, err := r.st.GetSubject(subjectID)
	if err != nil {
		return err
	}
	if len(sub.Questions) == 0 {
		return fmt.Errorf("subject %q: %w", sub.Name, ErrNoQuestions)
	}
	drawn := Draw(sub.Questions, sub.QuestionsPerTest, r.rng)
	if len(drawn) == 0 {
		return fmt.Errorf("subject %q: %w", sub.Name, ErrNoQuestions)
	}

	r.sess.SubjectID = sub.ID
	r.sess.Questions = drawn
	r.sess.Index = 0
	r.sess.Attempts = 0
	r.state = StateInProgress

	r.log.Info().
		Str("subject", sub.Name).
		Int("questions", len(r.sess.Questions)).
		Msg("Test started")
	return nil
}

// Current returns the question at the session's position.
func (r *Runtime) Current() (model.Question, bool) {
	if r.state != StateInProgress || r.sess.Index >= len(r.sess.Questions) {
		return model.Question{}, false
	}
	return r.sess.Questions[r.sess.Index], true
}

// Feedback is the graded outcome of one submission.
type Feedback struct {
	Correct  bool
	Attempts int
}

// SubmitAnswer grades the selected option against the current question and
// appends exactly one score record, counting the attempt either way. The
// caller is responsible for gating submissions while narration plays and
// for advancing after its feedback delay.
func (r *Runtime) SubmitAnswer(selected int) (Feedback, error) {
	q, ok := r.Current()
	if !ok {
		return Feedback{}, ErrNotInProgress
	}

	r.sess.Attempts++
	correct := selected == q.CorrectOption

	rec := model.ScoreRecord{
		ID:         uuid.NewString(),
		QuestionID: q.ID,
		Correct:    correct,
		Attempts:   r.sess.Attempts,
		Timestamp:  time.Now(),
	}
	if err := r.st.AppendScore(r.sess.User.Username, r.sess.SubjectID, rec); err != nil {
		return Feedback{}, fmt.Errorf("record score: %w", err)
	}

	return Feedback{Correct: correct, Attempts: r.sess.Attempts}, nil
}

// Advance resets the attempt counter and moves to the next question,
// transitioning to complete past the last one. It reports whether the test
// finished.
func (r *Runtime) Advance() bool {
	if r.state != StateInProgress {
		return r.state == StateComplete
	}

	r.sess.Attempts = 0
	r.sess.Index++
	if r.sess.Index >= len(r.sess.Questions) {
		r.state = StateComplete
		r.log.Info().Str("subject_id", r.sess.SubjectID).Msg("Test complete")
		return true
	}
	return false
}

// Restart re-draws the same subject and begins again. Valid from the
// complete state's "play again" offer.
func (r *Runtime) Restart() error {
	r.state = StateAwaitingStart
	return r.Start(r.sess.SubjectID)
}

// Abandon drops the test in progress, returning to awaitingStart.
func (r *Runtime) Abandon() {
	r.sess.ClearTest()
	r.state = StateAwaitingStart
}

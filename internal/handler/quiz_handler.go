package handler

import (
	"fmt"
	"time"

	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/quiz"
	"github.com/alimostafaali30/audiolearn/internal/response"
	"github.com/alimostafaali30/audiolearn/internal/router"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/rs/zerolog"
)

// QuizHandler drives a test run: narrating questions and options, grading
// answers, and advancing after the feedback delay. Scheduling is injected
// so that timers post back onto the application's event loop and tests can
// fire them synchronously.
type QuizHandler struct {
	rt           *quiz.Runtime
	sess         *session.Session
	router       *router.Router
	sp           Speaker
	notify       Notifier
	schedule     func(d time.Duration, fn func())
	advanceDelay time.Duration
	log          zerolog.Logger

	onRender       func()
	advancePending bool
}

// NewQuizHandler creates the handler.
func NewQuizHandler(rt *quiz.Runtime, sess *session.Session, rtr *router.Router, sp Speaker, n Notifier,
	schedule func(time.Duration, func()), advanceDelay time.Duration, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{
		rt:           rt,
		sess:         sess,
		router:       rtr,
		sp:           sp,
		notify:       n,
		schedule:     schedule,
		advanceDelay: advanceDelay,
		log:          log.With().Str("component", "quiz_handler").Logger(),
	}
}

// OnRender registers the redraw callback fired when the visible question
// changes outside a navigation.
func (h *QuizHandler) OnRender(fn func()) {
	h.onRender = fn
}

// Begin draws a test for the subject and navigates to the quiz screen,
// narrating the first question. Errors from the draw pass through so the
// caller can speak the matching message.
func (h *QuizHandler) Begin(subjectID string) error {
	if err := h.rt.Start(subjectID); err != nil {
		return err
	}
	h.advancePending = false
	h.router.Navigate(session.ScreenQuiz)
	h.PlayQuestion()
	return nil
}

// Current exposes the question at the session's position for rendering.
func (h *QuizHandler) Current() (model.Question, bool) {
	return h.rt.Current()
}

// PlayQuestion narrates the current question text.
func (h *QuizHandler) PlayQuestion() {
	q, ok := h.rt.Current()
	if !ok {
		return
	}
	h.sp.Speak(fmt.Sprintf("%s: %s", locale.T(h.sess.Locale, "game.question"), q.Text))
}

// PlayOptions narrates the four answer options in order.
func (h *QuizHandler) PlayOptions() {
	q, ok := h.rt.Current()
	if !ok {
		return
	}
	word := locale.T(h.sess.Locale, "game.option")
	text := ""
	for i, opt := range q.Options {
		text += fmt.Sprintf("%s %d: %s. ", word, i+1, opt)
	}
	h.sp.Speak(text)
}

// PlayInstructions narrates the in-test key and voice command summary.
func (h *QuizHandler) PlayInstructions() {
	say(h.sp, h.notify, h.sess, "game.instructions")
}

// Answer grades the zero-based selection. Submissions are ignored while
// narration plays so a spoken option is not graded against a half-read
// question. Every accepted submission is recorded, and the advance runs
// after the feedback delay whether the answer was right or wrong. A retry
// inside the delay window is still recorded but does not schedule a
// second advance.
func (h *QuizHandler) Answer(selected int) {
	if h.sp.Speaking() {
		h.log.Debug().Int("selected", selected).Msg("Answer ignored while speaking")
		return
	}

	fb, err := h.rt.SubmitAnswer(selected)
	if err != nil {
		h.log.Debug().Err(err).Msg("Answer not accepted")
		return
	}

	if fb.Correct {
		say(h.sp, h.notify, h.sess, "game.correct")
	} else {
		say(h.sp, h.notify, h.sess, "game.incorrect")
	}

	if !h.advancePending {
		h.advancePending = true
		h.schedule(h.advanceDelay, h.advance)
	}
}

// advance moves past the answered question, finishing the test or
// narrating the next one.
func (h *QuizHandler) advance() {
	h.advancePending = false
	if h.rt.State() != quiz.StateInProgress {
		return
	}
	if h.rt.Advance() {
		h.router.Navigate(session.ScreenSuccess)
		say(h.sp, h.notify, h.sess, "game.successSummary")
		return
	}
	if h.onRender != nil {
		h.onRender()
	}
	h.PlayQuestion()
}

// Restart re-draws the same subject and starts over. Offered from the
// success screen.
func (h *QuizHandler) Restart() {
	if err := h.rt.Restart(); err != nil {
		h.log.Error().Err(err).Msg("Restart failed")
		announce(h.sp, h.notify, h.sess, response.CodeStorageFailure)
		return
	}
	h.advancePending = false
	h.router.Navigate(session.ScreenQuiz)
	h.PlayQuestion()
}

// AddMore leaves the success screen for question authoring. The router's
// auth gate still applies; there is no extra role check at this hop.
func (h *QuizHandler) AddMore() {
	h.rt.Abandon()
	h.router.Navigate(session.ScreenAddQuestion)
}

// Abandon drops the test in progress, for logout or locale-safe exits.
func (h *QuizHandler) Abandon() {
	h.rt.Abandon()
}

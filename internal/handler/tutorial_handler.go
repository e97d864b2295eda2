package handler

import (
	"fmt"

	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/rs/zerolog"
)

// TutorialSteps is the number of narrated onboarding steps.
const TutorialSteps = 4

// TutorialHandler walks a first-time user through the narrated onboarding
// steps. Step position is handler-local; it does not survive restarts.
type TutorialHandler struct {
	sess   *session.Session
	sp     Speaker
	notify Notifier
	log    zerolog.Logger

	step     int
	onFinish func()
}

// NewTutorialHandler creates the handler.
func NewTutorialHandler(sess *session.Session, sp Speaker, n Notifier, log zerolog.Logger) *TutorialHandler {
	return &TutorialHandler{
		sess:   sess,
		sp:     sp,
		notify: n,
		log:    log.With().Str("component", "tutorial_handler").Logger(),
	}
}

// OnFinish registers the callback fired when the tutorial completes.
func (h *TutorialHandler) OnFinish(fn func()) {
	h.onFinish = fn
}

// Step returns the current one-based step number.
func (h *TutorialHandler) Step() int { return h.step + 1 }

// Title returns the current step's translated heading.
func (h *TutorialHandler) Title() string {
	return locale.T(h.sess.Locale, locale.Key(fmt.Sprintf("tutorial.step%d.title", h.step+1)))
}

// Begin resets to the first step and narrates it.
func (h *TutorialHandler) Begin() {
	h.step = 0
	h.play()
}

// Next advances one step, clamped at the last.
func (h *TutorialHandler) Next() {
	if h.step < TutorialSteps-1 {
		h.step++
	}
	h.play()
}

// Back moves one step back, clamped at the first.
func (h *TutorialHandler) Back() {
	if h.step > 0 {
		h.step--
	}
	h.play()
}

// Repeat narrates the current step again.
func (h *TutorialHandler) Repeat() {
	h.play()
}

// Finish narrates the closing message and hands control back to the
// registered callback.
func (h *TutorialHandler) Finish() {
	h.log.Info().Msg("Tutorial finished")
	say(h.sp, h.notify, h.sess, "tutorial.finished")
	if h.onFinish != nil {
		h.onFinish()
	}
}

func (h *TutorialHandler) play() {
	title := h.Title()
	narration := locale.T(h.sess.Locale, locale.Key(fmt.Sprintf("tutorial.step%d.narration", h.step+1)))
	h.notify.Notify(title)
	h.sp.Speak(fmt.Sprintf("%s. %s", title, narration))
}

package handler

import (
	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/response"
	"github.com/alimostafaali30/audiolearn/internal/session"
)

// Speaker voices prompts and feedback to the user.
type Speaker interface {
	Speak(text string)
	Speaking() bool
}

// Notifier surfaces a status line in the rendered screen.
type Notifier interface {
	Notify(text string)
}

// announce speaks and displays the localized message for a status code.
func announce(sp Speaker, n Notifier, sess *session.Session, code response.Code) {
	msg := response.Message(sess.Locale, code)
	n.Notify(msg)
	sp.Speak(msg)
}

// say speaks and displays a translated message key.
func say(sp Speaker, n Notifier, sess *session.Session, key locale.Key) {
	msg := locale.T(sess.Locale, key)
	n.Notify(msg)
	sp.Speak(msg)
}

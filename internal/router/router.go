package router

import (
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/rs/zerolog"
)

// Router owns screen transitions. Navigation to any screen beyond the
// authentication and tutorial surfaces requires a signed-in session;
// otherwise the user is forced back to login.
type Router struct {
	sess *session.Session
	log  zerolog.Logger

	onTransition func(from, to session.Screen)
}

// New creates a router over the session state.
func New(sess *session.Session, log zerolog.Logger) *Router {
	return &Router{
		sess: sess,
		log:  log.With().Str("component", "router").Logger(),
	}
}

// OnTransition registers the callback fired after every completed
// navigation. The application uses it to rebind voice commands and
// re-render the screen's dynamic content.
func (r *Router) OnTransition(fn func(from, to session.Screen)) {
	r.onTransition = fn
}

// Current returns the active screen.
func (r *Router) Current() session.Screen {
	return r.sess.Screen
}

// Navigate moves to the requested screen, applying the authentication
// gate. It returns the screen actually entered.
func (r *Router) Navigate(to session.Screen) session.Screen {
	if requiresAuth(to) && !r.sess.Authenticated() {
		r.log.Debug().Str("requested", string(to)).Msg("Unauthenticated, forcing login")
		to = session.ScreenLogin
	}

	from := r.sess.Screen
	if from == to {
		return to
	}
	r.sess.Screen = to

	r.log.Debug().Str("from", string(from)).Str("to", string(to)).Msg("Navigate")
	if r.onTransition != nil {
		r.onTransition(from, to)
	}
	return to
}

// Logout clears the session state and returns to login unconditionally.
// Persisted accounts, subjects, questions and scores are untouched.
func (r *Router) Logout() {
	r.sess.Clear()
	// Force the transition even if already on login, so the screen
	// re-renders in its signed-out shape.
	if r.sess.Screen == session.ScreenLogin {
		if r.onTransition != nil {
			r.onTransition(session.ScreenLogin, session.ScreenLogin)
		}
		return
	}
	r.Navigate(session.ScreenLogin)
}

// requiresAuth reports whether a screen is gated on authentication.
func requiresAuth(s session.Screen) bool {
	switch s {
	case session.ScreenLogin, session.ScreenRegister, session.ScreenTutorial:
		return false
	}
	return true
}

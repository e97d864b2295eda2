package handler

import (
	"errors"
	"strings"

	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/response"
	"github.com/alimostafaali30/audiolearn/internal/router"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/alimostafaali30/audiolearn/internal/validator"
	"github.com/rs/zerolog"
)

// AuthHandler owns the login and registration flows. Field values can be
// dictated ahead of submission ("username maria", "password 1234"), so the
// pending form lives here until Login or Register consumes it.
type AuthHandler struct {
	st     store.Store
	sess   *session.Session
	router *router.Router
	sp     Speaker
	notify Notifier
	log    zerolog.Logger

	Username string
	Password string
	Role     model.Role
}

// NewAuthHandler creates the handler.
func NewAuthHandler(st store.Store, sess *session.Session, rt *router.Router, sp Speaker, n Notifier, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		st:     st,
		sess:   sess,
		router: rt,
		sp:     sp,
		notify: n,
		log:    log.With().Str("component", "auth_handler").Logger(),
		Role:   model.RoleStudent,
	}
}

// SetUsername stores a dictated or typed username.
func (h *AuthHandler) SetUsername(v string) {
	h.Username = strings.TrimSpace(v)
}

// SetPassword stores a dictated or typed password.
func (h *AuthHandler) SetPassword(v string) {
	h.Password = strings.TrimSpace(v)
}

// SetRole stores a dictated role; unknown values fall back to student.
func (h *AuthHandler) SetRole(v string) {
	if model.Role(strings.TrimSpace(strings.ToLower(v))) == model.RoleTeacher {
		h.Role = model.RoleTeacher
		return
	}
	h.Role = model.RoleStudent
}

// reset clears the pending form.
func (h *AuthHandler) reset() {
	h.Username = ""
	h.Password = ""
	h.Role = model.RoleStudent
}

// Login validates the pending credentials against the store. Failures are
// spoken and leave the form for correction; success navigates to the
// role's dashboard.
func (h *AuthHandler) Login() {
	if h.Username == "" || h.Password == "" {
		announce(h.sp, h.notify, h.sess, response.CodeMissingCredentials)
		return
	}

	u, err := h.st.GetUser(h.Username)
	if err != nil || u.Password != h.Password {
		h.log.Debug().Str("username", h.Username).Msg("Login rejected")
		announce(h.sp, h.notify, h.sess, response.CodeInvalidCredentials)
		return
	}

	h.sess.User = &u
	h.reset()
	h.log.Info().Str("username", u.Username).Str("role", string(u.Role)).Msg("Login")

	say(h.sp, h.notify, h.sess, "welcome")
	if u.Role == model.RoleTeacher {
		h.router.Navigate(session.ScreenTeacherDashboard)
	} else {
		h.router.Navigate(session.ScreenStudentDashboard)
	}
}

// Register creates an account from the pending form. A duplicate username
// is rejected without touching the stored record.
func (h *AuthHandler) Register() {
	req := model.RegisterRequest{
		Username: h.Username,
		Password: h.Password,
		Role:     h.Role,
	}

	if fields := validator.Struct(req); fields != nil {
		h.log.Debug().Interface("fields", fields).Msg("Registration rejected")
		announce(h.sp, h.notify, h.sess, response.CodeRegistrationFields)
		for _, msg := range fields {
			h.notify.Notify(msg)
			break
		}
		return
	}

	err := h.st.PutUser(model.User{Username: req.Username, Password: req.Password, Role: req.Role})
	if errors.Is(err, store.ErrExists) {
		announce(h.sp, h.notify, h.sess, response.CodeUsernameTaken)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Registration write failed")
		announce(h.sp, h.notify, h.sess, response.CodeStorageFailure)
		return
	}

	h.log.Info().Str("username", req.Username).Str("role", string(req.Role)).Msg("Registered")
	h.reset()
	announce(h.sp, h.notify, h.sess, response.CodeRegistrationOK)
	h.router.Navigate(session.ScreenLogin)
}

// Logout clears the session and returns to login. Persisted data stays.
func (h *AuthHandler) Logout() {
	h.log.Info().Msg("Logout")
	h.reset()
	h.router.Logout()
	say(h.sp, h.notify, h.sess, locale.Key("messages.loggedOut"))
}

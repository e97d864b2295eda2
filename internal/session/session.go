package session

import (
	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/model"
)

// Screen identifies one view of the application.
type Screen string

const (
	ScreenLogin            Screen = "login"
	ScreenRegister         Screen = "register"
	ScreenTutorial         Screen = "tutorial"
	ScreenTeacherDashboard Screen = "teacherDashboard"
	ScreenStudentDashboard Screen = "studentDashboard"
	ScreenAddSubject       Screen = "addSubject"
	ScreenAddQuestion      Screen = "addQuestion"
	ScreenScores           Screen = "scores"
	ScreenQuiz             Screen = "quiz"
	ScreenSuccess          Screen = "success"
)

// Theme is the terminal color theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Session is the process-local application state. It is never persisted
// and is injected explicitly into every handler — there is no ambient
// global state.
type Session struct {
	// User is the authenticated account, nil before login.
	User *model.User

	// SubjectID is the subject of the test in progress, if any.
	SubjectID string
	// Questions is the drawn snapshot for the current test. It is a
	// copy; the subject's stored question sequence is never mutated
	// through it.
	Questions []model.Question
	// Index is the current question position within Questions.
	Index int
	// Attempts counts submissions on the current question.
	Attempts int

	Locale locale.Locale
	Theme  Theme
	Screen Screen
}

// New creates a session on the login screen with the given preferences.
func New(l locale.Locale, theme Theme) *Session {
	return &Session{
		Locale: l,
		Theme:  theme,
		Screen: ScreenLogin,
	}
}

// Authenticated reports whether a user is signed in.
func (s *Session) Authenticated() bool {
	return s.User != nil
}

// Role returns the signed-in user's role, or the empty role.
func (s *Session) Role() model.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// InTest reports whether a test is currently in progress. Locale switching
// is blocked while this holds.
func (s *Session) InTest() bool {
	return s.Screen == ScreenQuiz && len(s.Questions) > 0
}

// ClearTest resets the quiz position without touching authentication.
func (s *Session) ClearTest() {
	s.SubjectID = ""
	s.Questions = nil
	s.Index = 0
	s.Attempts = 0
}

// Clear resets everything a logout should drop. Locale and theme are
// preferences, not credentials, and survive.
func (s *Session) Clear() {
	s.User = nil
	s.ClearTest()
}

//go:build e2e
// +build e2e

// Package e2e exercises the full user journey against a real data file:
// a teacher registers content, a student registers, takes a test, and the
// teacher reads the resulting scores after a process restart.
package e2e

import (
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/alimostafaali30/audiolearn/internal/handler"
	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/quiz"
	"github.com/alimostafaali30/audiolearn/internal/router"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentSpeaker struct{}

func (silentSpeaker) Speak(string) {}
func (silentSpeaker) Speaking() bool { return false }

type silentNotifier struct{}

func (silentNotifier) Notify(string) {}

// world is one process lifetime over a shared data file.
type world struct {
	st   store.Store
	sess *session.Session
	rt   *router.Router

	auth    *handler.AuthHandler
	teacher *handler.TeacherHandler
	student *handler.StudentHandler
	qh      *handler.QuizHandler
	timers  []func()
}

func openWorld(t *testing.T, path string) *world {
	t.Helper()
	log := zerolog.Nop()

	st, err := store.OpenFileStore(path, log)
	require.NoError(t, err)

	w := &world{st: st, sess: session.New(locale.EN, session.ThemeLight)}
	w.rt = router.New(w.sess, log)

	sp, nt := silentSpeaker{}, silentNotifier{}
	runtime := quiz.NewRuntime(st, w.sess, rand.New(rand.NewSource(7)), log)
	schedule := func(d time.Duration, fn func()) { w.timers = append(w.timers, fn) }

	w.auth = handler.NewAuthHandler(st, w.sess, w.rt, sp, nt, log)
	w.teacher = handler.NewTeacherHandler(st, w.sess, sp, nt, log)
	w.qh = handler.NewQuizHandler(runtime, w.sess, w.rt, sp, nt, schedule, 0, log)
	w.student = handler.NewStudentHandler(st, w.sess, w.qh, sp, nt, log)
	return w
}

func (w *world) fireTimers() {
	timers := w.timers
	w.timers = nil
	for _, fn := range timers {
		fn()
	}
}

func (w *world) login(t *testing.T, username, password string) {
	t.Helper()
	w.auth.SetUsername(username)
	w.auth.SetPassword(password)
	w.auth.Login()
	require.NotNil(t, w.sess.User, "login failed for %s", username)
}

func TestFullJourney(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audiolearn.json")

	// ─── Teacher authors a subject ─────────────────────────────────────
	w := openWorld(t, path)
	w.login(t, store.DefaultAdminUsername, store.DefaultAdminPassword)
	require.Equal(t, session.ScreenTeacherDashboard, w.sess.Screen)

	sub, ok := w.teacher.AddSubject("Geography", 2)
	require.True(t, ok)
	for _, q := range []model.AddQuestionRequest{
		{Text: "Capital of France?", Options: [4]string{"London", "Paris", "Rome", "Oslo"}, CorrectOption: 1},
		{Text: "Largest ocean?", Options: [4]string{"Atlantic", "Indian", "Pacific", "Arctic"}, CorrectOption: 2},
		{Text: "Longest river?", Options: [4]string{"Nile", "Amazon", "Volga", "Rhine"}, CorrectOption: 0},
	} {
		_, ok := w.teacher.AddQuestion(sub.ID, q)
		require.True(t, ok)
	}
	w.auth.Logout()

	// ─── Student registers and takes the test ──────────────────────────
	w = openWorld(t, path)
	w.auth.SetUsername("maria_s")
	w.auth.SetPassword("secret99")
	w.auth.SetRole("student")
	w.auth.Register()

	w.login(t, "maria_s", "secret99")
	require.Equal(t, session.ScreenStudentDashboard, w.sess.Screen)

	tests := w.student.AvailableTests()
	require.Len(t, tests, 1)
	require.True(t, w.student.StartTestByName("geography"))
	require.Len(t, w.sess.Questions, 2)

	for w.sess.Screen == session.ScreenQuiz {
		q, ok := w.qh.Current()
		require.True(t, ok)

		// One wrong guess first, then the right answer.
		w.qh.Answer((q.CorrectOption + 1) % 4)
		w.qh.Answer(q.CorrectOption)
		w.fireTimers()
	}
	assert.Equal(t, session.ScreenSuccess, w.sess.Screen)

	records := w.st.Scores("maria_s", sub.ID)
	require.Len(t, records, 4, "every attempt is recorded")

	// ─── Teacher reviews scores after a restart ────────────────────────
	w = openWorld(t, path)
	w.login(t, store.DefaultAdminUsername, store.DefaultAdminPassword)

	reports := w.teacher.Reports(sub.ID)
	require.Len(t, reports, 1)
	assert.Equal(t, "maria_s", reports[0].Student)
	assert.Equal(t, 4, reports[0].Attempted)
	assert.Equal(t, 2, reports[0].Correct)
	assert.Equal(t, 50, reports[0].Percentage())
}

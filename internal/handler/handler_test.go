package handler

import (
	"testing"
	"time"

	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/quiz"
	"github.com/alimostafaali30/audiolearn/internal/response"
	"github.com/alimostafaali30/audiolearn/internal/router"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSpeaker records narrations; speaking can be forced to test gating.
type fakeSpeaker struct {
	spoken   []string
	speaking bool
}

func (f *fakeSpeaker) Speak(text string) { f.spoken = append(f.spoken, text) }
func (f *fakeSpeaker) Speaking() bool    { return f.speaking }

func (f *fakeSpeaker) last() string {
	if len(f.spoken) == 0 {
		return ""
	}
	return f.spoken[len(f.spoken)-1]
}

type fakeNotifier struct {
	notices []string
}

func (f *fakeNotifier) Notify(text string) { f.notices = append(f.notices, text) }

type fixture struct {
	st   store.Store
	sess *session.Session
	rt   *router.Router
	sp   *fakeSpeaker
	nt   *fakeNotifier
}

func newFixture() *fixture {
	sess := session.New(locale.EN, session.ThemeLight)
	return &fixture{
		st:   store.NewMemoryStore(),
		sess: sess,
		rt:   router.New(sess, zerolog.Nop()),
		sp:   &fakeSpeaker{},
		nt:   &fakeNotifier{},
	}
}

// ─── Auth ────────────────────────────────────────────────────────────────

func newAuth(f *fixture) *AuthHandler {
	return NewAuthHandler(f.st, f.sess, f.rt, f.sp, f.nt, zerolog.Nop())
}

func TestAuth_LoginDefaultTeacher(t *testing.T) {
	f := newFixture()
	h := newAuth(f)

	h.SetUsername(store.DefaultAdminUsername)
	h.SetPassword(store.DefaultAdminPassword)
	h.Login()

	require.NotNil(t, f.sess.User)
	assert.Equal(t, model.RoleTeacher, f.sess.User.Role)
	assert.Equal(t, session.ScreenTeacherDashboard, f.sess.Screen)
}

func TestAuth_LoginStudentLandsOnStudentDashboard(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.st.PutUser(model.User{Username: "maria", Password: "pass1234", Role: model.RoleStudent}))
	h := newAuth(f)

	h.SetUsername("maria")
	h.SetPassword("pass1234")
	h.Login()

	assert.Equal(t, session.ScreenStudentDashboard, f.sess.Screen)
}

func TestAuth_LoginMissingCredentials(t *testing.T) {
	f := newFixture()
	h := newAuth(f)

	h.Login()

	assert.Nil(t, f.sess.User)
	assert.Equal(t, response.Message(locale.EN, response.CodeMissingCredentials), f.sp.last())
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	f := newFixture()
	h := newAuth(f)

	h.SetUsername(store.DefaultAdminUsername)
	h.SetPassword("wrong")
	h.Login()

	assert.Nil(t, f.sess.User)
	assert.Equal(t, response.Message(locale.EN, response.CodeInvalidCredentials), f.sp.last())
	// The form survives for correction.
	assert.Equal(t, store.DefaultAdminUsername, h.Username)
}

func TestAuth_RegisterThenLogin(t *testing.T) {
	f := newFixture()
	h := newAuth(f)

	h.SetUsername("new_student")
	h.SetPassword("pass1234")
	h.SetRole("student")
	h.Register()

	assert.Equal(t, session.ScreenLogin, f.sess.Screen)

	h.SetUsername("new_student")
	h.SetPassword("pass1234")
	h.Login()
	require.NotNil(t, f.sess.User)
	assert.Equal(t, model.RoleStudent, f.sess.User.Role)
}

func TestAuth_RegisterRejectsShortUsername(t *testing.T) {
	f := newFixture()
	h := newAuth(f)

	h.SetUsername("ab")
	h.SetPassword("pass1234")
	h.Register()

	_, err := f.st.GetUser("ab")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, f.sp.spoken[0], response.Message(locale.EN, response.CodeRegistrationFields))
}

func TestAuth_RegisterRejectsBadCharacters(t *testing.T) {
	f := newFixture()
	h := newAuth(f)

	h.SetUsername("bad name!")
	h.SetPassword("pass1234")
	h.Register()

	_, err := f.st.GetUser("bad name!")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuth_RegisterDuplicateUsername(t *testing.T) {
	f := newFixture()
	h := newAuth(f)

	h.SetUsername(store.DefaultAdminUsername)
	h.SetPassword("pass1234")
	h.Register()

	assert.Equal(t, response.Message(locale.EN, response.CodeUsernameTaken), f.sp.last())
	// The seeded record is untouched.
	u, err := f.st.GetUser(store.DefaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultAdminPassword, u.Password)
}

func TestAuth_Logout(t *testing.T) {
	f := newFixture()
	h := newAuth(f)

	h.SetUsername(store.DefaultAdminUsername)
	h.SetPassword(store.DefaultAdminPassword)
	h.Login()
	require.NotNil(t, f.sess.User)

	h.Logout()
	assert.Nil(t, f.sess.User)
	assert.Equal(t, session.ScreenLogin, f.sess.Screen)
}

// ─── Teacher ─────────────────────────────────────────────────────────────

func newTeacher(f *fixture) *TeacherHandler {
	f.sess.User = &model.User{Username: store.DefaultAdminUsername, Role: model.RoleTeacher}
	return NewTeacherHandler(f.st, f.sess, f.sp, f.nt, zerolog.Nop())
}

func TestTeacher_AddSubjectDefaultsPerTest(t *testing.T) {
	f := newFixture()
	h := newTeacher(f)

	s, ok := h.AddSubject("Math", 0)
	require.True(t, ok)
	assert.Equal(t, model.DefaultQuestionsPerTest, s.QuestionsPerTest)
	assert.Equal(t, s.ID, f.sess.SubjectID)
}

func TestTeacher_AddSubjectRejectsEmptyName(t *testing.T) {
	f := newFixture()
	h := newTeacher(f)

	_, ok := h.AddSubject("   ", 5)
	assert.False(t, ok)
	assert.Empty(t, f.st.ListSubjects())
}

func TestTeacher_UpdateQuestionsPerTest(t *testing.T) {
	f := newFixture()
	h := newTeacher(f)
	s, _ := h.AddSubject("Math", 5)

	require.True(t, h.UpdateQuestionsPerTest(s.ID, 7))
	got, err := f.st.GetSubject(s.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.QuestionsPerTest)

	assert.False(t, h.UpdateQuestionsPerTest(s.ID, 0))
}

func TestTeacher_AddQuestion(t *testing.T) {
	f := newFixture()
	h := newTeacher(f)
	s, ok := h.AddSubject("Math", 5)
	require.True(t, ok)

	q, ok := h.AddQuestion(s.ID, model.AddQuestionRequest{
		Text:          "2+2?",
		Options:       [4]string{"3", "4", "5", "6"},
		CorrectOption: 1,
	})
	require.True(t, ok)
	assert.NotEmpty(t, q.ID)
	assert.Equal(t, response.Message(locale.EN, response.CodeQuestionAdded), f.sp.last())
}

func TestTeacher_AddQuestionRejectsBlankOption(t *testing.T) {
	f := newFixture()
	h := newTeacher(f)
	s, _ := h.AddSubject("Math", 5)

	_, ok := h.AddQuestion(s.ID, model.AddQuestionRequest{
		Text:          "2+2?",
		Options:       [4]string{"3", "", "5", "6"},
		CorrectOption: 1,
	})
	assert.False(t, ok)
}

func TestTeacher_AddQuestionWithoutSubject(t *testing.T) {
	f := newFixture()
	h := newTeacher(f)

	_, ok := h.AddQuestion("", model.AddQuestionRequest{Text: "x", Options: [4]string{"a", "b", "c", "d"}})
	assert.False(t, ok)
	assert.Equal(t, response.Message(locale.EN, response.CodeSubjectRequired), f.sp.last())
}

func TestTeacher_Reports(t *testing.T) {
	f := newFixture()
	h := newTeacher(f)
	s, _ := h.AddSubject("Math", 5)

	require.NoError(t, f.st.AppendScore("maria", s.ID, model.ScoreRecord{ID: "r1", Correct: true}))
	require.NoError(t, f.st.AppendScore("maria", s.ID, model.ScoreRecord{ID: "r2", Correct: false}))
	require.NoError(t, f.st.AppendScore("maria", s.ID, model.ScoreRecord{ID: "r3", Correct: true}))
	require.NoError(t, f.st.AppendScore("omar", s.ID, model.ScoreRecord{ID: "r4", Correct: true}))

	reports := h.Reports(s.ID)
	require.Len(t, reports, 2)

	assert.Equal(t, "maria", reports[0].Student)
	assert.Equal(t, 3, reports[0].Attempted)
	assert.Equal(t, 2, reports[0].Correct)
	assert.Equal(t, 67, reports[0].Percentage())

	assert.Equal(t, "omar", reports[1].Student)
	assert.Equal(t, 100, reports[1].Percentage())
}

// ─── Student and quiz ────────────────────────────────────────────────────

type quizFixture struct {
	*fixture
	student *StudentHandler
	qh      *QuizHandler
	timers  []func()
}

// newQuizFixture seeds one subject with questions whose correct option is
// always index 1, signs in a student, and wires a manual timer so tests
// fire the advance delay deterministically.
func newQuizFixture(t *testing.T, questions, perTest int) *quizFixture {
	t.Helper()
	f := newFixture()

	sub, err := f.st.AddSubject("Math", store.DefaultAdminUsername, perTest)
	require.NoError(t, err)
	for i := 0; i < questions; i++ {
		_, err := f.st.AddQuestion(sub.ID, model.Question{
			Text:          "q",
			Options:       [4]string{"a", "b", "c", "d"},
			CorrectOption: 1,
		})
		require.NoError(t, err)
	}

	f.sess.User = &model.User{Username: "maria", Role: model.RoleStudent}
	f.sess.Screen = session.ScreenStudentDashboard

	qf := &quizFixture{fixture: f}
	rt := quiz.NewRuntime(f.st, f.sess, nil, zerolog.Nop())
	schedule := func(d time.Duration, fn func()) { qf.timers = append(qf.timers, fn) }
	qf.qh = NewQuizHandler(rt, f.sess, f.rt, f.sp, f.nt, schedule, 2*time.Second, zerolog.Nop())
	qf.student = NewStudentHandler(f.st, f.sess, qf.qh, f.sp, f.nt, zerolog.Nop())
	return qf
}

// fireTimers runs and clears all pending scheduled callbacks.
func (qf *quizFixture) fireTimers() {
	timers := qf.timers
	qf.timers = nil
	for _, fn := range timers {
		fn()
	}
}

func TestStudent_StartTestByName(t *testing.T) {
	qf := newQuizFixture(t, 4, 2)

	ok := qf.student.StartTestByName("  MATH ")
	require.True(t, ok)
	assert.Equal(t, session.ScreenQuiz, qf.sess.Screen)
	assert.Len(t, qf.sess.Questions, 2)
}

func TestStudent_StartTestUnknownName(t *testing.T) {
	qf := newQuizFixture(t, 4, 2)

	ok := qf.student.StartTestByName("History")
	assert.False(t, ok)
	assert.Equal(t, response.Message(locale.EN, response.CodeSubjectMiss), qf.sp.last())
	assert.Equal(t, session.ScreenStudentDashboard, qf.sess.Screen)
}

func TestStudent_StartTestNoQuestions(t *testing.T) {
	qf := newQuizFixture(t, 0, 2)
	sub := qf.st.ListSubjects()[0]

	ok := qf.student.StartTest(sub.ID)
	assert.False(t, ok)
	assert.Equal(t, response.Message(locale.EN, response.CodeNoQuestions), qf.sp.last())
}

func TestQuiz_CorrectAnswerAdvancesAfterDelay(t *testing.T) {
	qf := newQuizFixture(t, 4, 2)
	require.True(t, qf.student.StartTestByName("Math"))

	qf.qh.Answer(1)
	assert.Equal(t, locale.T(locale.EN, "game.correct"), qf.sp.last())
	assert.Zero(t, qf.sess.Index, "advance waits for the delay")

	qf.fireTimers()
	assert.Equal(t, 1, qf.sess.Index)
}

func TestQuiz_IncorrectAnswerRecordsAndAdvances(t *testing.T) {
	qf := newQuizFixture(t, 4, 2)
	require.True(t, qf.student.StartTestByName("Math"))

	qf.qh.Answer(0)
	assert.Equal(t, locale.T(locale.EN, "game.incorrect"), qf.sp.last())
	assert.Zero(t, qf.sess.Index, "advance waits for the delay")

	sub := qf.st.ListSubjects()[0]
	records := qf.st.Scores("maria", sub.ID)
	require.Len(t, records, 1)
	assert.False(t, records[0].Correct)

	qf.fireTimers()
	assert.Equal(t, 1, qf.sess.Index)
}

func TestQuiz_RetryBeforeAdvanceRecordsOnce(t *testing.T) {
	qf := newQuizFixture(t, 4, 2)
	require.True(t, qf.student.StartTestByName("Math"))

	qf.qh.Answer(0)
	qf.qh.Answer(1)
	require.Len(t, qf.timers, 1, "a retry must not schedule a second advance")

	sub := qf.st.ListSubjects()[0]
	records := qf.st.Scores("maria", sub.ID)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Attempts)
	assert.Equal(t, 2, records[1].Attempts)

	qf.fireTimers()
	assert.Equal(t, 1, qf.sess.Index)
}

func TestQuiz_AnswerIgnoredWhileSpeaking(t *testing.T) {
	qf := newQuizFixture(t, 4, 2)
	require.True(t, qf.student.StartTestByName("Math"))

	qf.sp.speaking = true
	qf.qh.Answer(1)

	sub := qf.st.ListSubjects()[0]
	assert.Empty(t, qf.st.Scores("maria", sub.ID))
}

func TestQuiz_CompletionReachesSuccessScreen(t *testing.T) {
	qf := newQuizFixture(t, 2, 2)
	require.True(t, qf.student.StartTestByName("Math"))

	qf.qh.Answer(1)
	qf.fireTimers()
	qf.qh.Answer(1)
	qf.fireTimers()

	assert.Equal(t, session.ScreenSuccess, qf.sess.Screen)
	assert.Equal(t, locale.T(locale.EN, "game.successSummary"), qf.sp.last())
}

func TestQuiz_RestartFromSuccess(t *testing.T) {
	qf := newQuizFixture(t, 3, 1)
	require.True(t, qf.student.StartTestByName("Math"))
	qf.qh.Answer(1)
	qf.fireTimers()
	require.Equal(t, session.ScreenSuccess, qf.sess.Screen)

	qf.qh.Restart()
	assert.Equal(t, session.ScreenQuiz, qf.sess.Screen)
	assert.Len(t, qf.sess.Questions, 1)
	assert.Zero(t, qf.sess.Index)
}

func TestQuiz_AddMoreNavigatesToAuthoring(t *testing.T) {
	qf := newQuizFixture(t, 1, 1)
	require.True(t, qf.student.StartTestByName("Math"))
	qf.qh.Answer(1)
	qf.fireTimers()

	qf.qh.AddMore()
	assert.Equal(t, session.ScreenAddQuestion, qf.sess.Screen)
}

// ─── Tutorial ────────────────────────────────────────────────────────────

func TestTutorial_Walkthrough(t *testing.T) {
	f := newFixture()
	h := NewTutorialHandler(f.sess, f.sp, f.nt, zerolog.Nop())

	h.Begin()
	assert.Equal(t, 1, h.Step())

	h.Back()
	assert.Equal(t, 1, h.Step(), "back clamps at the first step")

	h.Next()
	h.Next()
	h.Next()
	assert.Equal(t, TutorialSteps, h.Step())

	h.Next()
	assert.Equal(t, TutorialSteps, h.Step(), "next clamps at the last step")

	finished := false
	h.OnFinish(func() { finished = true })
	h.Finish()
	assert.True(t, finished)
	assert.Equal(t, locale.T(locale.EN, "tutorial.finished"), f.sp.last())
}

func TestTutorial_RepeatNarratesSameStep(t *testing.T) {
	f := newFixture()
	h := NewTutorialHandler(f.sess, f.sp, f.nt, zerolog.Nop())

	h.Begin()
	before := len(f.sp.spoken)
	h.Repeat()
	assert.Len(t, f.sp.spoken, before+1)
	assert.Equal(t, f.sp.spoken[before-1], f.sp.spoken[before])
}

package quiz

import (
	"math/rand"
	"testing"

	"github.com/alimostafaali30/audiolearn/internal/locale"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeQuestions(n int) []model.Question {
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{
			ID:            string(rune('a' + i)),
			Text:          "q",
			Options:       [4]string{"w", "x", "y", "z"},
			CorrectOption: i % 4,
		}
	}
	return qs
}

func TestDraw_CountAndUniqueness(t *testing.T) {
	qs := makeQuestions(10)
	rng := rand.New(rand.NewSource(1))

	drawn := Draw(qs, 4, rng)
	require.Len(t, drawn, 4)

	seen := map[string]bool{}
	for _, q := range drawn {
		assert.False(t, seen[q.ID], "question drawn twice")
		seen[q.ID] = true
	}
}

func TestDraw_FewerQuestionsThanRequested(t *testing.T) {
	qs := makeQuestions(3)
	rng := rand.New(rand.NewSource(1))

	drawn := Draw(qs, 10, rng)
	assert.Len(t, drawn, 3)
}

func TestDraw_NonPositiveCount(t *testing.T) {
	qs := makeQuestions(5)
	rng := rand.New(rand.NewSource(1))

	assert.Empty(t, Draw(qs, 0, rng))
	assert.Empty(t, Draw(qs, -1, rng))
}

func TestDraw_DoesNotMutateSource(t *testing.T) {
	qs := makeQuestions(6)
	orig := make([]model.Question, len(qs))
	copy(orig, qs)

	Draw(qs, 6, rand.New(rand.NewSource(7)))
	assert.Equal(t, orig, qs)
}

func newTestRuntime(t *testing.T, questions int, perTest int) (*Runtime, *session.Session, store.Store, string) {
	t.Helper()

	st := store.NewMemoryStore()
	sub, err := st.AddSubject("Math", store.DefaultAdminUsername, perTest)
	require.NoError(t, err)
	for _, q := range makeQuestions(questions) {
		_, err := st.AddQuestion(sub.ID, q)
		require.NoError(t, err)
	}

	sess := session.New(locale.EN, session.ThemeLight)
	sess.User = &model.User{Username: "maria", Role: model.RoleStudent}

	rt := NewRuntime(st, sess, rand.New(rand.NewSource(42)), zerolog.Nop())
	return rt, sess, st, sub.ID
}

func TestRuntime_StartDrawsPerTestCount(t *testing.T) {
	rt, sess, _, subID := newTestRuntime(t, 8, 3)

	require.NoError(t, rt.Start(subID))
	assert.Equal(t, StateInProgress, rt.State())
	assert.Len(t, sess.Questions, 3)
	assert.Equal(t, subID, sess.SubjectID)
	assert.Zero(t, sess.Index)
}

func TestRuntime_StartEmptySubject(t *testing.T) {
	rt, sess, _, subID := newTestRuntime(t, 0, 3)

	err := rt.Start(subID)
	require.ErrorIs(t, err, ErrNoQuestions)
	assert.Equal(t, StateAwaitingStart, rt.State())
	assert.Empty(t, sess.Questions)
}

func TestRuntime_StartNonPositivePerTest(t *testing.T) {
	rt, sess, st, subID := newTestRuntime(t, 4, 3)
	require.NoError(t, st.SetQuestionsPerTest(subID, -1))

	err := rt.Start(subID)
	require.ErrorIs(t, err, ErrNoQuestions)
	assert.Equal(t, StateAwaitingStart, rt.State())
	assert.Empty(t, sess.Questions)
}

func TestRuntime_SubmitAnswerRecordsEveryAttempt(t *testing.T) {
	rt, sess, st, subID := newTestRuntime(t, 4, 2)
	require.NoError(t, rt.Start(subID))

	q, ok := rt.Current()
	require.True(t, ok)

	wrong := (q.CorrectOption + 1) % 4
	fb, err := rt.SubmitAnswer(wrong)
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, 1, fb.Attempts)

	fb, err = rt.SubmitAnswer(q.CorrectOption)
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.Equal(t, 2, fb.Attempts)

	records := st.Scores("maria", subID)
	require.Len(t, records, 2)
	assert.False(t, records[0].Correct)
	assert.True(t, records[1].Correct)
	assert.Equal(t, q.ID, records[0].QuestionID)
	_ = sess
}

func TestRuntime_AdvanceToCompletion(t *testing.T) {
	rt, sess, _, subID := newTestRuntime(t, 2, 2)
	require.NoError(t, rt.Start(subID))

	sess.Attempts = 3
	finished := rt.Advance()
	assert.False(t, finished)
	assert.Equal(t, 1, sess.Index)
	assert.Zero(t, sess.Attempts, "attempt counter resets per question")

	finished = rt.Advance()
	assert.True(t, finished)
	assert.Equal(t, StateComplete, rt.State())
}

func TestRuntime_SubmitAfterCompletion(t *testing.T) {
	rt, _, _, subID := newTestRuntime(t, 1, 1)
	require.NoError(t, rt.Start(subID))
	require.True(t, rt.Advance())

	_, err := rt.SubmitAnswer(0)
	assert.ErrorIs(t, err, ErrNotInProgress)
}

func TestRuntime_RestartRedraws(t *testing.T) {
	rt, sess, _, subID := newTestRuntime(t, 5, 2)
	require.NoError(t, rt.Start(subID))
	rt.Advance()
	rt.Advance()
	require.Equal(t, StateComplete, rt.State())

	require.NoError(t, rt.Restart())
	assert.Equal(t, StateInProgress, rt.State())
	assert.Len(t, sess.Questions, 2)
	assert.Zero(t, sess.Index)
}

func TestRuntime_Abandon(t *testing.T) {
	rt, sess, _, subID := newTestRuntime(t, 3, 2)
	require.NoError(t, rt.Start(subID))

	rt.Abandon()
	assert.Equal(t, StateAwaitingStart, rt.State())
	assert.Empty(t, sess.Questions)
	assert.Empty(t, sess.SubjectID)
}

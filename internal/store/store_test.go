package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SeedsDefaultTeacher(t *testing.T) {
	st := NewMemoryStore()

	u, err := st.GetUser(DefaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminPassword, u.Password)
	assert.Equal(t, model.RoleTeacher, u.Role)
}

func TestMemoryStore_PutUser_Duplicate(t *testing.T) {
	st := NewMemoryStore()

	require.NoError(t, st.PutUser(model.User{Username: "maria", Password: "secret", Role: model.RoleStudent}))

	err := st.PutUser(model.User{Username: "maria", Password: "other", Role: model.RoleTeacher})
	require.ErrorIs(t, err, ErrExists)

	// The original record must be untouched.
	u, err := st.GetUser("maria")
	require.NoError(t, err)
	assert.Equal(t, "secret", u.Password)
	assert.Equal(t, model.RoleStudent, u.Role)
}

func TestMemoryStore_GetUser_NotFound(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.GetUser("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_SubjectsAndQuestions(t *testing.T) {
	st := NewMemoryStore()

	sub, err := st.AddSubject("Math", DefaultAdminUsername, 5)
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID)
	assert.Equal(t, 5, sub.QuestionsPerTest)

	q, err := st.AddQuestion(sub.ID, model.Question{
		Text:          "2+2?",
		Options:       [4]string{"3", "4", "5", "6"},
		CorrectOption: 1,
	})
	require.NoError(t, err)
	require.NotEmpty(t, q.ID)

	got, err := st.GetSubject(sub.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 1)

	// GetSubject hands out a copy; mutating it must not leak back.
	got.Questions[0].Text = "mutated"
	again, err := st.GetSubject(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "2+2?", again.Questions[0].Text)
}

func TestMemoryStore_ListSubjectsByTeacher(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.PutUser(model.User{Username: "zee", Password: "pass1234", Role: model.RoleTeacher}))

	_, err := st.AddSubject("Math", DefaultAdminUsername, 3)
	require.NoError(t, err)
	_, err = st.AddSubject("History", "zee", 3)
	require.NoError(t, err)

	assert.Len(t, st.ListSubjects(), 2)
	assert.Len(t, st.ListSubjectsByTeacher("zee"), 1)
	assert.Equal(t, "History", st.ListSubjectsByTeacher("zee")[0].Name)
}

func TestMemoryStore_ScoreKeysDoNotCollide(t *testing.T) {
	st := NewMemoryStore()

	// With a delimited string key, ("ab","c-d") and ("ab-c","d") would
	// land in the same bucket. Structured keys keep them apart.
	require.NoError(t, st.AppendScore("ab", "c-d", model.ScoreRecord{ID: "r1", Correct: true}))
	require.NoError(t, st.AppendScore("ab-c", "d", model.ScoreRecord{ID: "r2", Correct: false}))

	first := st.Scores("ab", "c-d")
	second := st.Scores("ab-c", "d")
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "r1", first[0].ID)
	assert.Equal(t, "r2", second[0].ID)
}

func TestMemoryStore_ScoresBySubject(t *testing.T) {
	st := NewMemoryStore()

	require.NoError(t, st.AppendScore("maria", "s1", model.ScoreRecord{ID: "r1", Correct: true}))
	require.NoError(t, st.AppendScore("maria", "s1", model.ScoreRecord{ID: "r2", Correct: false}))
	require.NoError(t, st.AppendScore("omar", "s1", model.ScoreRecord{ID: "r3", Correct: true}))
	require.NoError(t, st.AppendScore("omar", "s2", model.ScoreRecord{ID: "r4", Correct: true}))

	bySubject := st.ScoresBySubject("s1")
	require.Len(t, bySubject, 2)
	assert.Len(t, bySubject["maria"], 2)
	assert.Len(t, bySubject["omar"], 1)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.PutUser(model.User{Username: "maria", Password: "secret", Role: model.RoleStudent}))
	sub, err := st.AddSubject("Math", DefaultAdminUsername, 2)
	require.NoError(t, err)
	_, err = st.AddQuestion(sub.ID, model.Question{Text: "2+2?", Options: [4]string{"3", "4", "5", "6"}, CorrectOption: 1})
	require.NoError(t, err)
	require.NoError(t, st.AppendScore("maria", sub.ID, model.ScoreRecord{ID: "r1", QuestionID: "q1", Correct: true, Attempts: 1}))

	blob, err := st.SnapshotAll()
	require.NoError(t, err)

	restored := NewMemoryStore()
	require.NoError(t, restored.Restore(blob))

	u, err := restored.GetUser("maria")
	require.NoError(t, err)
	assert.Equal(t, "secret", u.Password)

	got, err := restored.GetSubject(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", got.Name)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, 1, got.Questions[0].CorrectOption)

	scores := restored.Scores("maria", sub.ID)
	require.Len(t, scores, 1)
	assert.True(t, scores[0].Correct)
}

func TestSnapshot_NonPositivePerTestNormalized(t *testing.T) {
	blob := []byte(`{"version": 1, "users": [],
		"subjects": [{"id": "s1", "name": "Math", "teacher_username": "admin", "questions_per_test": -1}],
		"scores": []}`)

	st := NewMemoryStore()
	require.NoError(t, st.Restore(blob))

	sub, err := st.GetSubject("s1")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultQuestionsPerTest, sub.QuestionsPerTest)
}

func TestSnapshot_VersionMismatch(t *testing.T) {
	blob := []byte(`{"version": 99, "users": [], "subjects": [], "scores": []}`)

	st := NewMemoryStore()
	err := st.Restore(blob)
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestMemoryStore_Reset(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.PutUser(model.User{Username: "maria", Password: "secret", Role: model.RoleStudent}))
	_, err := st.AddSubject("Math", DefaultAdminUsername, 3)
	require.NoError(t, err)

	require.NoError(t, st.Reset())

	_, err = st.GetUser("maria")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, st.ListSubjects())

	// The default teacher comes back with the reset.
	_, err = st.GetUser(DefaultAdminUsername)
	assert.NoError(t, err)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	log := zerolog.Nop()

	st, err := OpenFileStore(path, log)
	require.NoError(t, err)

	require.NoError(t, st.PutUser(model.User{Username: "maria", Password: "secret", Role: model.RoleStudent}))
	sub, err := st.AddSubject("Math", DefaultAdminUsername, 2)
	require.NoError(t, err)
	require.NoError(t, st.AppendScore("maria", sub.ID, model.ScoreRecord{ID: "r1", Correct: true}))

	reopened, err := OpenFileStore(path, log)
	require.NoError(t, err)

	u, err := reopened.GetUser("maria")
	require.NoError(t, err)
	assert.Equal(t, "secret", u.Password)

	got, err := reopened.GetSubject(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", got.Name)

	assert.Len(t, reopened.Scores("maria", sub.ID), 1)
}

func TestFileStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st, err := OpenFileStore(path, zerolog.Nop())
	require.NoError(t, err)

	// Corruption is logged, not fatal; the store starts fresh with the
	// default teacher.
	_, err = st.GetUser(DefaultAdminUsername)
	assert.NoError(t, err)
	assert.Empty(t, st.ListSubjects())
}

package store

import (
	"errors"

	"github.com/alimostafaali30/audiolearn/internal/model"
)

// Common store errors.
var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

// Seeded default teacher account, present in every fresh store.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// Store is the persistence façade over the local collections: users,
// subjects (with embedded questions) and score sequences. Mutations are
// durable only as far as the underlying write succeeds; there is no retry
// and no partial-failure handling.
type Store interface {
	// GetUser returns the user by username or ErrNotFound.
	GetUser(username string) (model.User, error)

	// PutUser creates a user. An existing username yields ErrExists and
	// leaves the stored record untouched.
	PutUser(u model.User) error

	// ListUsers returns all users.
	ListUsers() []model.User

	// GetSubject returns a copy of the subject or ErrNotFound. The
	// returned question slice is the caller's to keep; mutating it does
	// not affect the stored subject.
	GetSubject(id string) (model.Subject, error)

	// AddSubject creates a subject owned by teacherUsername and returns
	// it with its assigned id.
	AddSubject(name, teacherUsername string, questionsPerTest int) (model.Subject, error)

	// ListSubjects returns all subjects.
	ListSubjects() []model.Subject

	// ListSubjectsByTeacher returns the subjects owned by one teacher.
	ListSubjectsByTeacher(teacherUsername string) []model.Subject

	// AddQuestion appends a question to a subject and returns it with
	// its assigned id. Questions are immutable afterwards.
	AddQuestion(subjectID string, q model.Question) (model.Question, error)

	// SetQuestionsPerTest updates a subject's per-test question count.
	SetQuestionsPerTest(subjectID string, count int) error

	// AppendScore appends one graded attempt to the (student, subject)
	// score sequence.
	AppendScore(student, subjectID string, rec model.ScoreRecord) error

	// Scores returns the recorded attempts of one student in one subject.
	Scores(student, subjectID string) []model.ScoreRecord

	// ScoresBySubject returns all recorded attempts in a subject, keyed
	// by student username.
	ScoresBySubject(subjectID string) map[string][]model.ScoreRecord

	// SnapshotAll serializes the whole store into one blob.
	SnapshotAll() ([]byte, error)

	// Restore replaces the store contents with a previously taken
	// snapshot.
	Restore(blob []byte) error

	// Reset clears all collections and reseeds the default teacher.
	Reset() error
}

package store

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/alimostafaali30/audiolearn/internal/model"
)

// MemoryStore keeps all collections in memory. It backs the tests and the
// seed tooling's dry runs, and FileStore builds on it for durability.
type MemoryStore struct {
	data   *collections
	lastID int64
}

// NewMemoryStore creates an empty store seeded with the default teacher.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{data: newCollections()}
	s.seed()
	return s
}

// seed installs the default teacher account into an empty user collection.
func (s *MemoryStore) seed() {
	if len(s.data.users) > 0 {
		return
	}
	s.data.users[DefaultAdminUsername] = model.User{
		Username: DefaultAdminUsername,
		Password: DefaultAdminPassword,
		Role:     model.RoleTeacher,
	}
}

// newID returns a timestamp-derived id, strictly increasing so two entities
// created within the same clock tick never collide.
func (s *MemoryStore) newID() string {
	id := time.Now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *MemoryStore) GetUser(username string) (model.User, error) {
	u, ok := s.data.users[username]
	if !ok {
		return model.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return u, nil
}

func (s *MemoryStore) PutUser(u model.User) error {
	if _, ok := s.data.users[u.Username]; ok {
		return fmt.Errorf("user %q: %w", u.Username, ErrExists)
	}
	s.data.users[u.Username] = u
	return nil
}

func (s *MemoryStore) ListUsers() []model.User {
	users := make([]model.User, 0, len(s.data.users))
	for _, u := range s.data.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users
}

func (s *MemoryStore) GetSubject(id string) (model.Subject, error) {
	sub, ok := s.data.subjects[id]
	if !ok {
		return model.Subject{}, fmt.Errorf("subject %q: %w", id, ErrNotFound)
	}
	return copySubject(sub), nil
}

func (s *MemoryStore) AddSubject(name, teacherUsername string, questionsPerTest int) (model.Subject, error) {
	if questionsPerTest <= 0 {
		questionsPerTest = model.DefaultQuestionsPerTest
	}
	sub := &model.Subject{
		ID:               s.newID(),
		Name:             name,
		TeacherUsername:  teacherUsername,
		QuestionsPerTest: questionsPerTest,
	}
	s.data.subjects[sub.ID] = sub
	return copySubject(sub), nil
}

func (s *MemoryStore) ListSubjects() []model.Subject {
	subjects := make([]model.Subject, 0, len(s.data.subjects))
	for _, sub := range s.data.subjects {
		subjects = append(subjects, copySubject(sub))
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects
}

func (s *MemoryStore) ListSubjectsByTeacher(teacherUsername string) []model.Subject {
	var subjects []model.Subject
	for _, sub := range s.data.subjects {
		if sub.TeacherUsername == teacherUsername {
			subjects = append(subjects, copySubject(sub))
		}
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].ID < subjects[j].ID })
	return subjects
}

func (s *MemoryStore) AddQuestion(subjectID string, q model.Question) (model.Question, error) {
	sub, ok := s.data.subjects[subjectID]
	if !ok {
		return model.Question{}, fmt.Errorf("subject %q: %w", subjectID, ErrNotFound)
	}
	q.ID = s.newID()
	sub.Questions = append(sub.Questions, q)
	return q, nil
}

func (s *MemoryStore) SetQuestionsPerTest(subjectID string, count int) error {
	sub, ok := s.data.subjects[subjectID]
	if !ok {
		return fmt.Errorf("subject %q: %w", subjectID, ErrNotFound)
	}
	sub.QuestionsPerTest = count
	return nil
}

func (s *MemoryStore) AppendScore(student, subjectID string, rec model.ScoreRecord) error {
	key := model.ScoreKey{Student: student, SubjectID: subjectID}
	s.data.scores[key] = append(s.data.scores[key], rec)
	return nil
}

func (s *MemoryStore) Scores(student, subjectID string) []model.ScoreRecord {
	key := model.ScoreKey{Student: student, SubjectID: subjectID}
	records := s.data.scores[key]
	out := make([]model.ScoreRecord, len(records))
	copy(out, records)
	return out
}

func (s *MemoryStore) ScoresBySubject(subjectID string) map[string][]model.ScoreRecord {
	out := make(map[string][]model.ScoreRecord)
	for key, records := range s.data.scores {
		if key.SubjectID != subjectID || len(records) == 0 {
			continue
		}
		cp := make([]model.ScoreRecord, len(records))
		copy(cp, records)
		out[key.Student] = cp
	}
	return out
}

func (s *MemoryStore) SnapshotAll() ([]byte, error) {
	return encodeSnapshot(s.data)
}

func (s *MemoryStore) Restore(blob []byte) error {
	data, err := decodeSnapshot(blob)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}

func (s *MemoryStore) Reset() error {
	s.data = newCollections()
	s.seed()
	return nil
}

// copySubject returns a deep copy so the live question sequence is never
// exposed for in-place mutation.
func copySubject(sub *model.Subject) model.Subject {
	cp := *sub
	cp.Questions = make([]model.Question, len(sub.Questions))
	copy(cp.Questions, sub.Questions)
	return cp
}

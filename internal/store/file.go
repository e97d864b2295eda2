package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/rs/zerolog"
)

// FileStore persists every mutation by re-encoding the whole snapshot and
// rewriting the data file. There is no incremental update and no retry; a
// failed write surfaces as the mutation's error.
type FileStore struct {
	mem  *MemoryStore
	path string
	log  zerolog.Logger
}

// OpenFileStore loads the last snapshot from path if present, otherwise
// starts with empty collections and the seeded default teacher. A snapshot
// with an unknown format version is not migrated — the store starts empty
// and the old file is overwritten on the first mutation.
func OpenFileStore(path string, log zerolog.Logger) (*FileStore, error) {
	s := &FileStore{
		mem:  NewMemoryStore(),
		path: path,
		log:  log.With().Str("component", "file_store").Logger(),
	}

	blob, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.log.Info().Str("path", path).Msg("No data file, starting fresh")
		if err := s.flush(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("read data file: %w", err)
	default:
		if err := s.mem.Restore(blob); err != nil {
			if errors.Is(err, ErrVersionMismatch) {
				s.log.Warn().Err(err).Msg("Snapshot version mismatch, starting empty")
			} else {
				s.log.Warn().Err(err).Msg("Corrupt data file, starting empty")
			}
			s.mem = NewMemoryStore()
		}
	}

	return s, nil
}

// flush rewrites the whole data file. Write goes to a temp file first, then
// renames over the target so readers never observe a torn snapshot.
func (s *FileStore) flush() error {
	blob, err := s.mem.SnapshotAll()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (s *FileStore) GetUser(username string) (model.User, error) {
	return s.mem.GetUser(username)
}

func (s *FileStore) PutUser(u model.User) error {
	if err := s.mem.PutUser(u); err != nil {
		return err
	}
	return s.flush()
}

func (s *FileStore) ListUsers() []model.User {
	return s.mem.ListUsers()
}

func (s *FileStore) GetSubject(id string) (model.Subject, error) {
	return s.mem.GetSubject(id)
}

func (s *FileStore) AddSubject(name, teacherUsername string, questionsPerTest int) (model.Subject, error) {
	sub, err := s.mem.AddSubject(name, teacherUsername, questionsPerTest)
	if err != nil {
		return model.Subject{}, err
	}
	return sub, s.flush()
}

func (s *FileStore) ListSubjects() []model.Subject {
	return s.mem.ListSubjects()
}

func (s *FileStore) ListSubjectsByTeacher(teacherUsername string) []model.Subject {
	return s.mem.ListSubjectsByTeacher(teacherUsername)
}

func (s *FileStore) AddQuestion(subjectID string, q model.Question) (model.Question, error) {
	added, err := s.mem.AddQuestion(subjectID, q)
	if err != nil {
		return model.Question{}, err
	}
	return added, s.flush()
}

func (s *FileStore) SetQuestionsPerTest(subjectID string, count int) error {
	if err := s.mem.SetQuestionsPerTest(subjectID, count); err != nil {
		return err
	}
	return s.flush()
}

func (s *FileStore) AppendScore(student, subjectID string, rec model.ScoreRecord) error {
	if err := s.mem.AppendScore(student, subjectID, rec); err != nil {
		return err
	}
	return s.flush()
}

func (s *FileStore) Scores(student, subjectID string) []model.ScoreRecord {
	return s.mem.Scores(student, subjectID)
}

func (s *FileStore) ScoresBySubject(subjectID string) map[string][]model.ScoreRecord {
	return s.mem.ScoresBySubject(subjectID)
}

func (s *FileStore) SnapshotAll() ([]byte, error) {
	return s.mem.SnapshotAll()
}

func (s *FileStore) Restore(blob []byte) error {
	if err := s.mem.Restore(blob); err != nil {
		return err
	}
	return s.flush()
}

func (s *FileStore) Reset() error {
	if err := s.mem.Reset(); err != nil {
		return err
	}
	return s.flush()
}

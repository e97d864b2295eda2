package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/alimostafaali30/audiolearn/internal/model"
)

// FormatVersion tags the snapshot layout. A snapshot carrying a different
// version is not migrated; the store starts empty instead (the original
// behavior, kept deliberately).
const FormatVersion = 1

// ErrVersionMismatch reports a snapshot written by a different format
// version.
var ErrVersionMismatch = errors.New("snapshot format version mismatch")

// snapshot is the on-disk envelope. Collections are stored as entry arrays
// so the blob stays diff-able and order-stable.
type snapshot struct {
	Version  int             `json:"version"`
	Users    []model.User    `json:"users"`
	Subjects []model.Subject `json:"subjects"`
	Scores   []scoreEntry    `json:"scores"`
}

type scoreEntry struct {
	Key     model.ScoreKey      `json:"key"`
	Records []model.ScoreRecord `json:"records"`
}

// collections is the in-memory shape shared by the store implementations.
type collections struct {
	users    map[string]model.User
	subjects map[string]*model.Subject
	scores   map[model.ScoreKey][]model.ScoreRecord
}

func newCollections() *collections {
	return &collections{
		users:    make(map[string]model.User),
		subjects: make(map[string]*model.Subject),
		scores:   make(map[model.ScoreKey][]model.ScoreRecord),
	}
}

// encodeSnapshot serializes the collections with deterministic ordering.
func encodeSnapshot(c *collections) ([]byte, error) {
	snap := snapshot{Version: FormatVersion}

	for _, u := range c.users {
		snap.Users = append(snap.Users, u)
	}
	sort.Slice(snap.Users, func(i, j int) bool {
		return snap.Users[i].Username < snap.Users[j].Username
	})

	for _, s := range c.subjects {
		snap.Subjects = append(snap.Subjects, *s)
	}
	sort.Slice(snap.Subjects, func(i, j int) bool {
		return snap.Subjects[i].ID < snap.Subjects[j].ID
	})

	for key, records := range c.scores {
		snap.Scores = append(snap.Scores, scoreEntry{Key: key, Records: records})
	}
	sort.Slice(snap.Scores, func(i, j int) bool {
		a, b := snap.Scores[i].Key, snap.Scores[j].Key
		if a.Student != b.Student {
			return a.Student < b.Student
		}
		return a.SubjectID < b.SubjectID
	})

	return json.Marshal(snap)
}

// decodeSnapshot parses a blob back into collections. A version mismatch
// yields ErrVersionMismatch so the caller can decide to start empty.
func decodeSnapshot(blob []byte) (*collections, error) {
	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != FormatVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, snap.Version, FormatVersion)
	}

	c := newCollections()
	for _, u := range snap.Users {
		c.users[u.Username] = u
	}
	for i := range snap.Subjects {
		s := snap.Subjects[i]
		// A hand-edited or damaged blob may carry a non-positive per-test
		// count; normalize it the same way subject creation does.
		if s.QuestionsPerTest <= 0 {
			s.QuestionsPerTest = model.DefaultQuestionsPerTest
		}
		c.subjects[s.ID] = &s
	}
	for _, entry := range snap.Scores {
		c.scores[entry.Key] = entry.Records
	}
	return c, nil
}

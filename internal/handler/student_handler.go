package handler

import (
	"errors"
	"sort"

	"github.com/alimostafaali30/audiolearn/internal/command"
	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/quiz"
	"github.com/alimostafaali30/audiolearn/internal/response"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/rs/zerolog"
)

// StudentHandler lists available tests and starts quiz runs.
type StudentHandler struct {
	st     store.Store
	sess   *session.Session
	quiz   *QuizHandler
	sp     Speaker
	notify Notifier
	log    zerolog.Logger
}

// NewStudentHandler creates the handler.
func NewStudentHandler(st store.Store, sess *session.Session, qh *QuizHandler, sp Speaker, n Notifier, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		st:     st,
		sess:   sess,
		quiz:   qh,
		sp:     sp,
		notify: n,
		log:    log.With().Str("component", "student_handler").Logger(),
	}
}

// AvailableTests returns every subject, name-sorted. Students may take any
// teacher's test.
func (h *StudentHandler) AvailableTests() []model.Subject {
	subjects := h.st.ListSubjects()
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Name < subjects[j].Name })
	return subjects
}

// StartTest begins a quiz run for the given subject id.
func (h *StudentHandler) StartTest(subjectID string) bool {
	err := h.quiz.Begin(subjectID)
	if errors.Is(err, quiz.ErrNoQuestions) {
		announce(h.sp, h.notify, h.sess, response.CodeNoQuestions)
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		announce(h.sp, h.notify, h.sess, response.CodeSubjectMiss)
		return false
	}
	if err != nil {
		h.log.Error().Err(err).Str("subject_id", subjectID).Msg("Test start failed")
		announce(h.sp, h.notify, h.sess, response.CodeStorageFailure)
		return false
	}
	return true
}

// StartTestByName resolves a spoken subject name case-insensitively and
// starts that test. An unknown name is reported, not treated as an error.
func (h *StudentHandler) StartTestByName(name string) bool {
	want := command.Normalize(name)
	for _, s := range h.st.ListSubjects() {
		if command.Normalize(s.Name) == want {
			return h.StartTest(s.ID)
		}
	}
	h.log.Debug().Str("name", name).Msg("Subject name did not match")
	announce(h.sp, h.notify, h.sess, response.CodeSubjectMiss)
	return false
}

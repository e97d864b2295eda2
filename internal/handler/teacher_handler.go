package handler

import (
	"sort"
	"strings"

	"github.com/alimostafaali30/audiolearn/internal/model"
	"github.com/alimostafaali30/audiolearn/internal/response"
	"github.com/alimostafaali30/audiolearn/internal/session"
	"github.com/alimostafaali30/audiolearn/internal/store"
	"github.com/alimostafaali30/audiolearn/internal/validator"
	"github.com/rs/zerolog"
)

// TeacherHandler covers subject authoring and score review.
type TeacherHandler struct {
	st     store.Store
	sess   *session.Session
	sp     Speaker
	notify Notifier
	log    zerolog.Logger
}

// NewTeacherHandler creates the handler.
func NewTeacherHandler(st store.Store, sess *session.Session, sp Speaker, n Notifier, log zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{
		st:     st,
		sess:   sess,
		sp:     sp,
		notify: n,
		log:    log.With().Str("component", "teacher_handler").Logger(),
	}
}

// Subjects returns the signed-in teacher's subjects, name-sorted for a
// stable dashboard listing.
func (h *TeacherHandler) Subjects() []model.Subject {
	if h.sess.User == nil {
		return nil
	}
	subjects := h.st.ListSubjectsByTeacher(h.sess.User.Username)
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Name < subjects[j].Name })
	return subjects
}

// AddSubject creates a subject owned by the signed-in teacher. A zero
// per-test count falls back to the default.
func (h *TeacherHandler) AddSubject(name string, questionsPerTest int) (model.Subject, bool) {
	if questionsPerTest <= 0 {
		questionsPerTest = model.DefaultQuestionsPerTest
	}
	req := model.CreateSubjectRequest{Name: strings.TrimSpace(name), QuestionsPerTest: questionsPerTest}
	if fields := validator.Struct(req); fields != nil {
		h.log.Debug().Interface("fields", fields).Msg("Subject rejected")
		announce(h.sp, h.notify, h.sess, response.CodeSubjectDetails)
		return model.Subject{}, false
	}

	s, err := h.st.AddSubject(req.Name, h.sess.User.Username, req.QuestionsPerTest)
	if err != nil {
		h.log.Error().Err(err).Msg("Subject write failed")
		announce(h.sp, h.notify, h.sess, response.CodeStorageFailure)
		return model.Subject{}, false
	}

	h.log.Info().Str("subject_id", s.ID).Str("name", s.Name).Msg("Subject created")
	h.sess.SubjectID = s.ID
	return s, true
}

// UpdateQuestionsPerTest changes how many questions a test draws.
func (h *TeacherHandler) UpdateQuestionsPerTest(subjectID string, count int) bool {
	if count <= 0 {
		announce(h.sp, h.notify, h.sess, response.CodeSubjectDetails)
		return false
	}
	if err := h.st.SetQuestionsPerTest(subjectID, count); err != nil {
		announce(h.sp, h.notify, h.sess, response.CodeStorageFailure)
		return false
	}
	return true
}

// AddQuestion appends a question to the selected subject. All four options
// must be filled in; blanks are rejected alongside validator failures.
func (h *TeacherHandler) AddQuestion(subjectID string, req model.AddQuestionRequest) (model.Question, bool) {
	if subjectID == "" {
		announce(h.sp, h.notify, h.sess, response.CodeSubjectRequired)
		return model.Question{}, false
	}
	if fields := validator.Struct(req); fields != nil || hasEmptyOption(req.Options) {
		h.log.Debug().Interface("fields", fields).Msg("Question rejected")
		announce(h.sp, h.notify, h.sess, response.CodeQuestionFields)
		return model.Question{}, false
	}

	q, err := h.st.AddQuestion(subjectID, model.Question{
		Text:          strings.TrimSpace(req.Text),
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
	})
	if err != nil {
		h.log.Error().Err(err).Str("subject_id", subjectID).Msg("Question write failed")
		announce(h.sp, h.notify, h.sess, response.CodeStorageFailure)
		return model.Question{}, false
	}

	h.log.Info().Str("subject_id", subjectID).Str("question_id", q.ID).Msg("Question added")
	announce(h.sp, h.notify, h.sess, response.CodeQuestionAdded)
	return q, true
}

// Reports aggregates every student's recorded attempts in a subject into
// one report row per student, sorted by username.
func (h *TeacherHandler) Reports(subjectID string) []model.StudentReport {
	byStudent := h.st.ScoresBySubject(subjectID)

	reports := make([]model.StudentReport, 0, len(byStudent))
	for student, records := range byStudent {
		r := model.StudentReport{Student: student}
		for _, rec := range records {
			r.Attempted++
			if rec.Correct {
				r.Correct++
			}
		}
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Student < reports[j].Student })
	return reports
}

func hasEmptyOption(options [4]string) bool {
	for _, o := range options {
		if strings.TrimSpace(o) == "" {
			return true
		}
	}
	return false
}

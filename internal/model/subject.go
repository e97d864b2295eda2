package model

// DefaultQuestionsPerTest is applied when a subject is created without an
// explicit per-test question count.
const DefaultQuestionsPerTest = 10

// Subject is a named collection of questions owned by one teacher.
type Subject struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	TeacherUsername  string     `json:"teacher_username"`
	Questions        []Question `json:"questions"`
	QuestionsPerTest int        `json:"questions_per_test"`
}

// Question is a single four-option multiple choice question. Questions are
// immutable once created; there is no edit or delete operation.
type Question struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	Options       [4]string `json:"options"`
	CorrectOption int       `json:"correct_option"`
}

// CreateSubjectRequest is the payload for creating a subject.
type CreateSubjectRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=100"`
	QuestionsPerTest int    `json:"questions_per_test" validate:"required,min=1"`
}

// AddQuestionRequest is the payload for appending a question to a subject.
// CorrectOption is the zero-based index into Options.
type AddQuestionRequest struct {
	Text          string    `json:"text" validate:"required,min=1,max=2000"`
	Options       [4]string `json:"options"`
	CorrectOption int       `json:"correct_option" validate:"min=0,max=3"`
}

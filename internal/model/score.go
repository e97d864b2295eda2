package model

import "time"

// ScoreKey identifies the append-only score sequence of one student within
// one subject. Keeping the two fields separate avoids the key collisions a
// delimited string concatenation would allow.
type ScoreKey struct {
	Student   string `json:"student"`
	SubjectID string `json:"subject_id"`
}

// ScoreRecord is one graded attempt at a single question. Records are
// appended on every submission and never mutated or pruned.
type ScoreRecord struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Correct    bool      `json:"correct"`
	Attempts   int       `json:"attempts"`
	Timestamp  time.Time `json:"timestamp"`
}

// StudentReport aggregates one student's recorded attempts within a subject,
// as shown on the teacher's scores view.
type StudentReport struct {
	Student   string `json:"student"`
	Attempted int    `json:"attempted"`
	Correct   int    `json:"correct"`
}

// Percentage returns the correct-answer share in whole percent, rounded to
// nearest. Zero attempts yield zero.
func (r StudentReport) Percentage() int {
	if r.Attempted == 0 {
		return 0
	}
	return (r.Correct*100 + r.Attempted/2) / r.Attempted
}

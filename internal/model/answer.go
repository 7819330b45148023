package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const MaxAnswerLength = 500

type ListeningAnswer struct {
	ID            uint               `gorm:"primarykey" json:"id"`
	TestAttemptID uint               `json:"test_attempt_id" gorm:"not null;uniqueIndex:idx_listening_answers_attempt_question"`
	QuestionID    uint               `json:"question_id" gorm:"not null;uniqueIndex:idx_listening_answers_attempt_question"`
	Question      *ListeningQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserAnswer    string             `json:"user_answer" gorm:"type:varchar(500);not null"`
	AnsweredAt    time.Time          `json:"answered_at"`
}

type ReadingAnswer struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	TestAttemptID uint             `json:"test_attempt_id" gorm:"not null;uniqueIndex:idx_reading_answers_attempt_question"`
	QuestionID    uint             `json:"question_id" gorm:"not null;uniqueIndex:idx_reading_answers_attempt_question"`
	Question      *ReadingQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserAnswer    string           `json:"user_answer" gorm:"type:varchar(500);not null"`
	AnsweredAt    time.Time        `json:"answered_at"`
}

type WritingSubmission struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	TestAttemptID  uint         `json:"test_attempt_id" gorm:"not null;uniqueIndex:idx_writing_submissions_attempt_task"`
	WritingTaskID  uint         `json:"writing_task_id" gorm:"not null;uniqueIndex:idx_writing_submissions_attempt_task"`
	Task           *WritingTask `json:"task,omitempty" gorm:"foreignKey:WritingTaskID"`
	SubmissionText string       `json:"submission_text" gorm:"type:text;not null"`
	WordCount      int          `json:"word_count" gorm:"not null"`
	SubmittedAt    time.Time    `json:"submitted_at"`
}

// CountWords counts whitespace separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

func NewWritingSubmission(attemptID, taskID uint, text string, now time.Time) WritingSubmission {
	return WritingSubmission{
		TestAttemptID:  attemptID,
		WritingTaskID:  taskID,
		SubmissionText: text,
		WordCount:      CountWords(text),
		SubmittedAt:    now,
	}
}

// BeforeSave keeps the word count derived from the text whatever the caller set.
func (w *WritingSubmission) BeforeSave(tx *gorm.DB) error {
	w.WordCount = CountWords(w.SubmissionText)
	return nil
}

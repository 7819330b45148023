package model

import "time"

type ReadingPassage struct {
	ID                 uint              `gorm:"primarykey" json:"id"`
	TestID             uint              `json:"test_id" gorm:"not null;uniqueIndex:idx_reading_passages_test_number"`
	PassageNumber      int               `json:"passage_number" gorm:"not null;uniqueIndex:idx_reading_passages_test_number"` // 1-3
	Title              string            `json:"title" gorm:"not null"`
	PassageText        string            `json:"passage_text" gorm:"type:text;not null"`
	WordCount          int               `json:"word_count"`
	Source             string            `json:"source,omitempty"`
	NextQuestionNumber int               `json:"-" gorm:"not null;default:1"`
	Questions          []ReadingQuestion `json:"questions,omitempty" gorm:"foreignKey:PassageID"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type ReadingQuestion struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	PassageID       uint            `json:"passage_id" gorm:"not null;uniqueIndex:idx_reading_questions_passage_number"`
	Passage         *ReadingPassage `json:"passage,omitempty" gorm:"foreignKey:PassageID"`
	QuestionNumber  int             `json:"question_number" gorm:"not null;uniqueIndex:idx_reading_questions_passage_number"`
	QuestionContent `gorm:"embedded"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

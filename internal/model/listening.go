package model

import "time"

type ListeningSection struct {
	ID                 uint                `gorm:"primarykey" json:"id"`
	TestID             uint                `json:"test_id" gorm:"not null;uniqueIndex:idx_listening_sections_test_number"`
	SectionNumber      int                 `json:"section_number" gorm:"not null;uniqueIndex:idx_listening_sections_test_number"` // 1-4
	AudioURL           string              `json:"audio_url" gorm:"not null"`
	AudioDuration      int                 `json:"audio_duration" gorm:"not null"` // seconds
	Instructions       string              `json:"instructions,omitempty" gorm:"type:text"`
	NextQuestionNumber int                 `json:"-" gorm:"not null;default:1"`
	Questions          []ListeningQuestion `json:"questions,omitempty" gorm:"foreignKey:SectionID"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

type ListeningQuestion struct {
	ID              uint              `gorm:"primarykey" json:"id"`
	SectionID       uint              `json:"section_id" gorm:"not null;uniqueIndex:idx_listening_questions_section_number"`
	Section         *ListeningSection `json:"section,omitempty" gorm:"foreignKey:SectionID"`
	QuestionNumber  int               `json:"question_number" gorm:"not null;uniqueIndex:idx_listening_questions_section_number"`
	QuestionContent `gorm:"embedded"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

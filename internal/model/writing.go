package model

import "time"

const (
	WritingTaskType1 = "TASK_1" // data description / letter
	WritingTaskType2 = "TASK_2" // essay
)

type WritingTask struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	TestID         uint      `json:"test_id" gorm:"not null;uniqueIndex:idx_writing_tasks_test_number"`
	TaskNumber     int       `json:"task_number" gorm:"not null;uniqueIndex:idx_writing_tasks_test_number"` // 1-2
	TaskType       string    `json:"task_type" gorm:"type:varchar(20);not null"`
	PromptText     string    `json:"prompt_text" gorm:"type:text;not null"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Instructions   string    `json:"instructions,omitempty" gorm:"type:text"`
	WordLimit      *int      `json:"word_limit,omitempty"`      // minimum words, 150 or 250
	TimeSuggestion *int      `json:"time_suggestion,omitempty"` // minutes, 20 or 40
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

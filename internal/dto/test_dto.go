package dto

import (
	"encoding/json"
	"time"
)

// QuestionView is a question as shown to one viewer. CorrectAnswer and
// Explanation are only set for staff.
type QuestionView struct {
	ID             uint            `json:"id"`
	QuestionNumber int             `json:"question_number"`
	QuestionText   string          `json:"question_text"`
	QuestionType   string          `json:"question_type"`
	QuestionData   json.RawMessage `json:"question_data,omitempty" swaggertype:"object"`
	Points         int             `json:"points"`
	CorrectAnswer  json.RawMessage `json:"correct_answer,omitempty" swaggertype:"object"`
	Explanation    string          `json:"explanation,omitempty"`
}

type ListeningSectionView struct {
	ID            uint           `json:"id"`
	SectionNumber int            `json:"section_number"`
	AudioURL      string         `json:"audio_url"`
	AudioDuration int            `json:"audio_duration"`
	Instructions  string         `json:"instructions,omitempty"`
	Questions     []QuestionView `json:"questions"`
}

type ReadingPassageView struct {
	ID            uint           `json:"id"`
	PassageNumber int            `json:"passage_number"`
	Title         string         `json:"title"`
	PassageText   string         `json:"passage_text"`
	WordCount     int            `json:"word_count"`
	Source        string         `json:"source,omitempty"`
	Questions     []QuestionView `json:"questions"`
}

type WritingTaskView struct {
	ID             uint    `json:"id"`
	TaskNumber     int     `json:"task_number"`
	TaskType       string  `json:"task_type"`
	PromptText     string  `json:"prompt_text"`
	ImageURL       *string `json:"image_url,omitempty"`
	Instructions   string  `json:"instructions,omitempty"`
	WordLimit      *int    `json:"word_limit,omitempty"`
	TimeSuggestion *int    `json:"time_suggestion,omitempty"`
}

// TestDetailDTO is the full content of a test.
type TestDetailDTO struct {
	ID                uint                   `json:"id"`
	Title             string                 `json:"title"`
	Description       string                 `json:"description,omitempty"`
	DifficultyLevel   string                 `json:"difficulty_level"`
	IsPublished       bool                   `json:"is_published"`
	ListeningSections []ListeningSectionView `json:"listening_sections"`
	ReadingPassages   []ReadingPassageView   `json:"reading_passages"`
	WritingTasks      []WritingTaskView      `json:"writing_tasks"`
	CreatedAt         time.Time              `json:"created_at"`
}

// TestSummaryDTO is used for listing tests.
type TestSummaryDTO struct {
	ID                    uint      `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description,omitempty"`
	DifficultyLevel       string    `json:"difficulty_level"`
	IsPublished           bool      `json:"is_published"`
	ListeningSectionCount int       `json:"listening_section_count"`
	ReadingPassageCount   int       `json:"reading_passage_count"`
	WritingTaskCount      int       `json:"writing_task_count"`
	QuestionCount         int       `json:"question_count"`
	CreatedAt             time.Time `json:"created_at"`
}

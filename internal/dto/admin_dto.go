package dto

import "encoding/json"

// QuestionCreateDTO is one question inside a section or passage. QuestionNumber
// is optional; omitted numbers are taken from the parent's sequence.
type QuestionCreateDTO struct {
	QuestionNumber int             `json:"question_number" binding:"omitempty,min=1,max=40"`
	QuestionText   string          `json:"question_text" binding:"required"`
	QuestionType   string          `json:"question_type" binding:"required,oneof=multiple_choice completion matching table"`
	QuestionData   json.RawMessage `json:"question_data" swaggertype:"object"`
	CorrectAnswer  json.RawMessage `json:"correct_answer" binding:"required" swaggertype:"object"`
	Points         int             `json:"points" binding:"omitempty,min=1"`
	Explanation    string          `json:"explanation,omitempty"`
}

type ListeningSectionCreateDTO struct {
	SectionNumber int                 `json:"section_number" binding:"required,min=1,max=4"`
	AudioURL      string              `json:"audio_url" binding:"required"`
	AudioDuration int                 `json:"audio_duration" binding:"required,min=1"` // seconds
	Instructions  string              `json:"instructions,omitempty"`
	Questions     []QuestionCreateDTO `json:"questions" binding:"omitempty,max=40,dive"`
}

type ReadingPassageCreateDTO struct {
	PassageNumber int                 `json:"passage_number" binding:"required,min=1,max=3"`
	Title         string              `json:"title" binding:"required"`
	PassageText   string              `json:"passage_text" binding:"required"`
	Source        string              `json:"source,omitempty"`
	Questions     []QuestionCreateDTO `json:"questions" binding:"omitempty,max=40,dive"`
}

type WritingTaskCreateDTO struct {
	TaskNumber     int     `json:"task_number" binding:"omitempty,min=1,max=2"`
	TaskType       string  `json:"task_type" binding:"required,oneof=TASK_1 TASK_2"`
	PromptText     string  `json:"prompt_text" binding:"required"`
	ImageURL       *string `json:"image_url"`
	Instructions   string  `json:"instructions,omitempty"`
	WordLimit      *int    `json:"word_limit" binding:"omitempty,min=1"`
	TimeSuggestion *int    `json:"time_suggestion" binding:"omitempty,min=1"`
}

// TestCreateDTO is for admin to create a test together with its content.
type TestCreateDTO struct {
	Title             string                      `json:"title" binding:"required"`
	Description       string                      `json:"description,omitempty"`
	DifficultyLevel   string                      `json:"difficulty_level" binding:"omitempty,oneof=beginner intermediate advanced"`
	IsPublished       bool                        `json:"is_published"`
	ListeningSections []ListeningSectionCreateDTO `json:"listening_sections" binding:"omitempty,max=4,dive"`
	ReadingPassages   []ReadingPassageCreateDTO   `json:"reading_passages" binding:"omitempty,max=3,dive"`
	WritingTasks      []WritingTaskCreateDTO      `json:"writing_tasks" binding:"omitempty,max=2,dive"`
}

type PublishTestDTO struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

// GradeAttemptDTO carries the bands a teacher assigns. Omitted bands keep
// their stored value.
type GradeAttemptDTO struct {
	ListeningBand  *float64 `json:"listening_band" example:"7.5"`
	ReadingBand    *float64 `json:"reading_band" example:"7"`
	WritingBand    *float64 `json:"writing_band" example:"6.5"`
	TeacherComment *string  `json:"teacher_comment"`
}

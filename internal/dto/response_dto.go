package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type SectionStartResponse struct {
	AttemptID     uint      `json:"attempt_id"`
	TestID        uint      `json:"test_id"`
	Section       string    `json:"section"`
	StartedAt     time.Time `json:"started_at"`
	TimeLimit     int       `json:"time_limit"` // seconds
	AudioDuration *int      `json:"audio_duration,omitempty"`
	ExtraTime     *int      `json:"extra_time,omitempty"`
}

// SectionSubmitResponse summarises one section submit. Unanswered and ignored
// counts and the warnings are advisory.
type SectionSubmitResponse struct {
	AttemptID         uint      `json:"attempt_id"`
	Section           string    `json:"section"`
	SubmittedAt       time.Time `json:"submitted_at"`
	TimeSpent         int       `json:"time_spent"`
	TotalQuestions    int       `json:"total_questions"`
	AnsweredCount     int       `json:"answered_count"`
	UnansweredCount   int       `json:"unanswered_count"`
	IgnoredCount      int       `json:"ignored_count"`
	Task1WordCount    *int      `json:"task1_word_count,omitempty"`
	Task2WordCount    *int      `json:"task2_word_count,omitempty"`
	AutoCompleted     bool      `json:"auto_completed"`
	AttemptStatus     string    `json:"attempt_status"`
	ExceededTimeLimit bool      `json:"exceeded_time_limit"`
	Warnings          []string  `json:"warnings,omitempty"`
}

type SectionProgressDTO struct {
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Submitted   bool       `json:"submitted"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	TimeSpent   int        `json:"time_spent"`
}

type AttemptSummaryDTO struct {
	ID             uint               `json:"id"`
	UserID         uint               `json:"user_id"`
	TestID         uint               `json:"test_id"`
	TestTitle      string             `json:"test_title,omitempty"`
	Status         string             `json:"status"`
	StartedAt      time.Time          `json:"started_at"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
	Listening      SectionProgressDTO `json:"listening"`
	Reading        SectionProgressDTO `json:"reading"`
	Writing        SectionProgressDTO `json:"writing"`
	ListeningBand  *float64           `json:"listening_band"`
	ReadingBand    *float64           `json:"reading_band"`
	WritingBand    *float64           `json:"writing_band"`
	OverallBand    *float64           `json:"overall_band"`
	GradedBy       *uint              `json:"graded_by,omitempty"`
	GradedAt       *time.Time         `json:"graded_at,omitempty"`
	TeacherComment string             `json:"teacher_comment,omitempty"`
}

// AnswerDTO is one ledger row. SectionNumber is the listening section or the
// reading passage the question belongs to.
type AnswerDTO struct {
	ID             uint          `json:"id"`
	QuestionID     uint          `json:"question_id"`
	QuestionNumber int           `json:"question_number"`
	SectionNumber  int           `json:"section_number"`
	UserAnswer     string        `json:"user_answer"`
	AnsweredAt     time.Time     `json:"answered_at"`
	Question       *QuestionView `json:"question,omitempty"`
}

type WritingSubmissionDTO struct {
	ID             uint      `json:"id"`
	WritingTaskID  uint      `json:"writing_task_id"`
	TaskNumber     int       `json:"task_number"`
	TaskType       string    `json:"task_type"`
	SubmissionText string    `json:"submission_text"`
	WordCount      int       `json:"word_count"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type AttemptDetailDTO struct {
	AttemptSummaryDTO
	ListeningAnswers   []AnswerDTO            `json:"listening_answers"`
	ReadingAnswers     []AnswerDTO            `json:"reading_answers"`
	WritingSubmissions []WritingSubmissionDTO `json:"writing_submissions"`
}

type ListeningBandResponse struct {
	Correct int     `json:"correct"`
	Band    float64 `json:"band"`
}

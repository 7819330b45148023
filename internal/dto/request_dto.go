package dto

// StartSectionDTO is the body of every /{section}/start call.
type StartSectionDTO struct {
	TestID uint `json:"test_id" binding:"required"`
}

// SubmitAnswersDTO is the listening/reading submit body. Answers maps the
// question number ("1".."40") to the raw answer text.
type SubmitAnswersDTO struct {
	TestID    uint              `json:"test_id" binding:"required"`
	Answers   map[string]string `json:"answers" binding:"required"`
	TimeSpent *int              `json:"time_spent" binding:"required,min=0"` // seconds
}

func (d SubmitAnswersDTO) Seconds() int { return derefSeconds(d.TimeSpent) }

type SubmitWritingDTO struct {
	TestID    uint   `json:"test_id" binding:"required"`
	Task1Text string `json:"task1_text"`
	Task2Text string `json:"task2_text"`
	TimeSpent *int   `json:"time_spent" binding:"required,min=0"`
}

func (d SubmitWritingDTO) Seconds() int { return derefSeconds(d.TimeSpent) }

func derefSeconds(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// AttemptListQuery filters GET /attempts.
type AttemptListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=in_progress completed"`
	Graded *bool  `form:"graded"`
}

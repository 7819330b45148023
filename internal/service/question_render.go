package service

import (
	"encoding/json"

	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/model"
)

// RenderQuestion builds the view of a question for a viewer role. Staff get
// the full view; everyone else gets it without correct answer and explanation.
func RenderQuestion(id uint, number int, content model.QuestionContent, viewer identity.Role) dto.QuestionView {
	view := dto.QuestionView{
		ID:             id,
		QuestionNumber: number,
		QuestionText:   content.QuestionText,
		QuestionType:   string(content.QuestionType),
		QuestionData:   json.RawMessage(content.QuestionData),
		Points:         content.Points,
	}
	if (identity.Identity{Role: viewer}).IsStaff() {
		view.CorrectAnswer = json.RawMessage(content.CorrectAnswer)
		view.Explanation = content.Explanation
	}
	return view
}

func renderListeningQuestions(questions []model.ListeningQuestion, viewer identity.Role) []dto.QuestionView {
	views := make([]dto.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, RenderQuestion(q.ID, q.QuestionNumber, q.QuestionContent, viewer))
	}
	return views
}

func renderReadingQuestions(questions []model.ReadingQuestion, viewer identity.Role) []dto.QuestionView {
	views := make([]dto.QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, RenderQuestion(q.ID, q.QuestionNumber, q.QuestionContent, viewer))
	}
	return views
}

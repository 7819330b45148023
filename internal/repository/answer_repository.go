package repository

import (
	"context"

	"github.com/lshigami/ielts-mock/internal/model"
	"gorm.io/gorm"
)

const answerBatchSize = 100

// AnswerRepository is the answer ledger. Every write replaces the whole set
// for one attempt and one section; call it inside the submit transaction.
type AnswerRepository interface {
	ReplaceListeningAnswers(ctx context.Context, attemptID uint, answers []model.ListeningAnswer) error
	ReplaceReadingAnswers(ctx context.Context, attemptID uint, answers []model.ReadingAnswer) error
	ReplaceWritingSubmissions(ctx context.Context, attemptID uint, submissions []model.WritingSubmission) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) ReplaceListeningAnswers(ctx context.Context, attemptID uint, answers []model.ListeningAnswer) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("test_attempt_id = ?", attemptID).Delete(&model.ListeningAnswer{}).Error; err != nil {
		return err
	}
	if len(answers) == 0 {
		return nil
	}
	return db.Omit("Question").CreateInBatches(answers, answerBatchSize).Error
}

func (r *answerRepository) ReplaceReadingAnswers(ctx context.Context, attemptID uint, answers []model.ReadingAnswer) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("test_attempt_id = ?", attemptID).Delete(&model.ReadingAnswer{}).Error; err != nil {
		return err
	}
	if len(answers) == 0 {
		return nil
	}
	return db.Omit("Question").CreateInBatches(answers, answerBatchSize).Error
}

func (r *answerRepository) ReplaceWritingSubmissions(ctx context.Context, attemptID uint, submissions []model.WritingSubmission) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("test_attempt_id = ?", attemptID).Delete(&model.WritingSubmission{}).Error; err != nil {
		return err
	}
	if len(submissions) == 0 {
		return nil
	}
	return db.Omit("Task").CreateInBatches(submissions, answerBatchSize).Error
}

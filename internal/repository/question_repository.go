package repository

import (
	"context"

	"github.com/lshigami/ielts-mock/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionRepository appends questions to a section or passage. The parent
// owns a next_question_number sequence; append must run inside a transaction
// so the parent row lock covers both the insert and the sequence bump.
type QuestionRepository interface {
	AppendListeningQuestion(ctx context.Context, sectionID uint, question *model.ListeningQuestion) error
	AppendReadingQuestion(ctx context.Context, passageID uint, question *model.ReadingQuestion) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) AppendListeningQuestion(ctx context.Context, sectionID uint, question *model.ListeningQuestion) error {
	db := r.db.WithContext(ctx)

	var section model.ListeningSection
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&section, sectionID).Error; err != nil {
		return translate(err)
	}

	question.SectionID = section.ID
	number, next, err := NextNumber(question.QuestionNumber, section.NextQuestionNumber)
	if err != nil {
		return err
	}
	question.QuestionNumber, section.NextQuestionNumber = number, next
	if err := db.Create(question).Error; err != nil {
		return translate(err)
	}
	return db.Model(&section).Update("next_question_number", section.NextQuestionNumber).Error
}

func (r *questionRepository) AppendReadingQuestion(ctx context.Context, passageID uint, question *model.ReadingQuestion) error {
	db := r.db.WithContext(ctx)

	var passage model.ReadingPassage
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&passage, passageID).Error; err != nil {
		return translate(err)
	}

	question.PassageID = passage.ID
	number, next, err := NextNumber(question.QuestionNumber, passage.NextQuestionNumber)
	if err != nil {
		return err
	}
	question.QuestionNumber, passage.NextQuestionNumber = number, next
	if err := db.Create(question).Error; err != nil {
		return translate(err)
	}
	return db.Model(&passage).Update("next_question_number", passage.NextQuestionNumber).Error
}

// NextNumber resolves the number for a new question and the parent's next
// sequence value. An explicit number moves the sequence past itself. Numbers
// above MaxQuestionNumber fail with ErrNumberExhausted.
func NextNumber(requested, next int) (number, newNext int, err error) {
	if next < 1 {
		next = 1
	}
	switch {
	case requested <= 0:
		number, newNext = next, next+1
	case requested >= next:
		number, newNext = requested, requested+1
	default:
		number, newNext = requested, next
	}
	if number > MaxQuestionNumber {
		return 0, 0, ErrNumberExhausted
	}
	return number, newNext, nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// MaxQuestionNumber is the highest number a section or passage question can carry.
const MaxQuestionNumber = 40

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("duplicate record")
	ErrNumberExhausted = errors.New("question numbers exhausted")
)

// translate needs gorm.Config.TranslateError for duplicate keys to be recognised.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}

// Store groups the repositories that have to commit together. Repositories
// obtained from the tx argument of Transaction share that transaction.
type Store interface {
	Tests() TestRepository
	Questions() QuestionRepository
	Attempts() TestAttemptRepository
	Answers() AnswerRepository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Tests() TestRepository           { return NewTestRepository(s.db) }
func (s *store) Questions() QuestionRepository   { return NewQuestionRepository(s.db) }
func (s *store) Attempts() TestAttemptRepository { return NewTestAttemptRepository(s.db) }
func (s *store) Answers() AnswerRepository       { return NewAnswerRepository(s.db) }

func (s *store) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx})
	})
}

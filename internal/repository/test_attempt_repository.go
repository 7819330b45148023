package repository

import (
	"context"
	"time"

	"github.com/lshigami/ielts-mock/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptFilter narrows List. Nil fields do not filter.
type AttemptFilter struct {
	UserID *uint
	TestID *uint
	Status *model.AttemptStatus
	Graded *bool
}

type TestAttemptRepository interface {
	// Ensure returns the attempt for (user, test), creating it when absent.
	// The (user_id, test_id) unique index resolves concurrent first calls to one row.
	Ensure(ctx context.Context, userID, testID uint, now time.Time) (*model.TestAttempt, bool, error)
	FindByUserAndTest(ctx context.Context, userID, testID uint, forUpdate bool) (*model.TestAttempt, error)
	FindByID(ctx context.Context, id uint, forUpdate bool) (*model.TestAttempt, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*model.TestAttempt, error)
	List(ctx context.Context, filter AttemptFilter) ([]model.TestAttempt, error)
	Save(ctx context.Context, attempt *model.TestAttempt) error
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

func (r *testAttemptRepository) Ensure(ctx context.Context, userID, testID uint, now time.Time) (*model.TestAttempt, bool, error) {
	attempt := model.NewTestAttempt(userID, testID, now)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "test_id"}},
			DoNothing: true,
		}).
		Create(attempt)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 {
		return attempt, true, nil
	}

	existing, err := r.FindByUserAndTest(ctx, userID, testID, false)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *testAttemptRepository) FindByUserAndTest(ctx context.Context, userID, testID uint, forUpdate bool) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.Where("user_id = ? AND test_id = ?", userID, testID).First(&attempt).Error; err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindByID(ctx context.Context, id uint, forUpdate bool) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := query.First(&attempt, id).Error; err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).
		Preload("Test").
		Preload("ListeningAnswers.Question.Section").
		Preload("ReadingAnswers.Question.Passage").
		Preload("WritingSubmissions.Task").
		First(&attempt, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &attempt, nil
}

func (r *testAttemptRepository) List(ctx context.Context, filter AttemptFilter) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	query := r.db.WithContext(ctx).Preload("Test")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.TestID != nil {
		query = query.Where("test_id = ?", *filter.TestID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Graded != nil {
		if *filter.Graded {
			query = query.Where("graded_at IS NOT NULL")
		} else {
			query = query.Where("graded_at IS NULL")
		}
	}
	err := query.Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *testAttemptRepository) Save(ctx context.Context, attempt *model.TestAttempt) error {
	// Answers and submissions are only ever written through AnswerRepository.
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(attempt).Error
}

package repository

import (
	"context"

	"github.com/lshigami/ielts-mock/internal/model"
	"gorm.io/gorm"
)

// TestWithCounts is a test row plus the size of its content.
type TestWithCounts struct {
	model.Test
	ListeningSectionCount int
	ReadingPassageCount   int
	WritingTaskCount      int
	QuestionCount         int
}

// TestRepository is the read side of the content repository plus the admin
// seeding writes.
type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithContent(ctx context.Context, id uint) (*model.Test, error)
	FindAllWithCounts(ctx context.Context, publishedOnly bool) ([]TestWithCounts, error)
	SetPublished(ctx context.Context, id uint, published bool) error
	SumAudioDuration(ctx context.Context, testID uint) (int, error)
	ListeningQuestions(ctx context.Context, testID uint) ([]model.ListeningQuestion, error)
	ReadingQuestions(ctx context.Context, testID uint) ([]model.ReadingQuestion, error)
	WritingTasks(ctx context.Context, testID uint) ([]model.WritingTask, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// Sections, passages, tasks and their questions are created through the associations.
	return translate(r.db.WithContext(ctx).Create(test).Error)
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, translate(err)
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithContent(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).
		Preload("ListeningSections", func(db *gorm.DB) *gorm.DB {
			return db.Order("listening_sections.section_number ASC")
		}).
		Preload("ListeningSections.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("listening_questions.question_number ASC")
		}).
		Preload("ReadingPassages", func(db *gorm.DB) *gorm.DB {
			return db.Order("reading_passages.passage_number ASC")
		}).
		Preload("ReadingPassages.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("reading_questions.question_number ASC")
		}).
		Preload("WritingTasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("writing_tasks.task_number ASC")
		}).
		First(&test, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &test, nil
}

func (r *testRepository) FindAllWithCounts(ctx context.Context, publishedOnly bool) ([]TestWithCounts, error) {
	var results []TestWithCounts
	query := r.db.WithContext(ctx).Model(&model.Test{}).
		Select(`tests.*,
			(SELECT COUNT(*) FROM listening_sections ls WHERE ls.test_id = tests.id) AS listening_section_count,
			(SELECT COUNT(*) FROM reading_passages rp WHERE rp.test_id = tests.id) AS reading_passage_count,
			(SELECT COUNT(*) FROM writing_tasks wt WHERE wt.test_id = tests.id) AS writing_task_count,
			(SELECT COUNT(*) FROM listening_questions lq JOIN listening_sections ls ON ls.id = lq.section_id WHERE ls.test_id = tests.id)
			+ (SELECT COUNT(*) FROM reading_questions rq JOIN reading_passages rp ON rp.id = rq.passage_id WHERE rp.test_id = tests.id) AS question_count`).
		Where("tests.deleted_at IS NULL")
	if publishedOnly {
		query = query.Where("tests.is_published = ?", true)
	}
	err := query.Order("tests.created_at DESC").Scan(&results).Error
	return results, err
}

func (r *testRepository) SetPublished(ctx context.Context, id uint, published bool) error {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Update("is_published", published)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *testRepository) SumAudioDuration(ctx context.Context, testID uint) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Model(&model.ListeningSection{}).
		Select("COALESCE(SUM(audio_duration), 0)").
		Where("test_id = ?", testID).
		Scan(&total).Error
	return total, err
}

func (r *testRepository) ListeningQuestions(ctx context.Context, testID uint) ([]model.ListeningQuestion, error) {
	var questions []model.ListeningQuestion
	err := r.db.WithContext(ctx).
		Joins("Section").
		Where(`"Section".test_id = ?`, testID).
		Order(`"Section".section_number ASC`).
		Order("listening_questions.question_number ASC").
		Find(&questions).Error
	return questions, err
}

func (r *testRepository) ReadingQuestions(ctx context.Context, testID uint) ([]model.ReadingQuestion, error) {
	var questions []model.ReadingQuestion
	err := r.db.WithContext(ctx).
		Joins("Passage").
		Where(`"Passage".test_id = ?`, testID).
		Order(`"Passage".passage_number ASC`).
		Order("reading_questions.question_number ASC").
		Find(&questions).Error
	return questions, err
}

func (r *testRepository) WritingTasks(ctx context.Context, testID uint) ([]model.WritingTask, error) {
	var tasks []model.WritingTask
	err := r.db.WithContext(ctx).
		Where("test_id = ?", testID).
		Order("task_number ASC").
		Find(&tasks).Error
	return tasks, err
}

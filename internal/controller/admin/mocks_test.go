package admin

import (
	"context"
	"errors"

	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
)

var errNotMocked = errors.New("not mocked")

type mockAdminTestService struct {
	createTestFn           func(ctx context.Context, who identity.Identity, req dto.TestCreateDTO) (*dto.TestDetailDTO, error)
	addListeningQuestionFn func(ctx context.Context, who identity.Identity, sectionID uint, req dto.QuestionCreateDTO) (*dto.QuestionView, error)
	addReadingQuestionFn   func(ctx context.Context, who identity.Identity, passageID uint, req dto.QuestionCreateDTO) (*dto.QuestionView, error)
	setPublishedFn         func(ctx context.Context, who identity.Identity, testID uint, published bool) (*dto.TestDetailDTO, error)
}

func (m *mockAdminTestService) CreateTest(ctx context.Context, who identity.Identity, req dto.TestCreateDTO) (*dto.TestDetailDTO, error) {
	if m.createTestFn == nil {
		return nil, errNotMocked
	}
	return m.createTestFn(ctx, who, req)
}

func (m *mockAdminTestService) AddListeningQuestion(ctx context.Context, who identity.Identity, sectionID uint, req dto.QuestionCreateDTO) (*dto.QuestionView, error) {
	if m.addListeningQuestionFn == nil {
		return nil, errNotMocked
	}
	return m.addListeningQuestionFn(ctx, who, sectionID, req)
}

func (m *mockAdminTestService) AddReadingQuestion(ctx context.Context, who identity.Identity, passageID uint, req dto.QuestionCreateDTO) (*dto.QuestionView, error) {
	if m.addReadingQuestionFn == nil {
		return nil, errNotMocked
	}
	return m.addReadingQuestionFn(ctx, who, passageID, req)
}

func (m *mockAdminTestService) SetPublished(ctx context.Context, who identity.Identity, testID uint, published bool) (*dto.TestDetailDTO, error) {
	if m.setPublishedFn == nil {
		return nil, errNotMocked
	}
	return m.setPublishedFn(ctx, who, testID, published)
}

type mockGradingService struct {
	gradeFn func(ctx context.Context, who identity.Identity, attemptID uint, req dto.GradeAttemptDTO) (*dto.AttemptSummaryDTO, error)
}

func (m *mockGradingService) Grade(ctx context.Context, who identity.Identity, attemptID uint, req dto.GradeAttemptDTO) (*dto.AttemptSummaryDTO, error) {
	if m.gradeFn == nil {
		return nil, errNotMocked
	}
	return m.gradeFn(ctx, who, attemptID, req)
}

type mockAttemptService struct {
	listUngradedFn func(ctx context.Context, who identity.Identity) ([]dto.AttemptSummaryDTO, error)
}

func (m *mockAttemptService) ListAttempts(ctx context.Context, who identity.Identity, query dto.AttemptListQuery) ([]dto.AttemptSummaryDTO, error) {
	return nil, errNotMocked
}

func (m *mockAttemptService) ListUngraded(ctx context.Context, who identity.Identity) ([]dto.AttemptSummaryDTO, error) {
	if m.listUngradedFn == nil {
		return nil, errNotMocked
	}
	return m.listUngradedFn(ctx, who)
}

func (m *mockAttemptService) GetAttemptDetails(ctx context.Context, who identity.Identity, attemptID uint) (*dto.AttemptDetailDTO, error) {
	return nil, errNotMocked
}

func (m *mockAttemptService) GetMyAttempt(ctx context.Context, who identity.Identity, testID uint) (*dto.AttemptSummaryDTO, error) {
	return nil, errNotMocked
}

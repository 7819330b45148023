package user

import (
	"context"
	"errors"

	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/model"
)

var errNotMocked = errors.New("not mocked")

type mockSectionService struct {
	startFn         func(ctx context.Context, who identity.Identity, kind model.SectionKind, testID uint) (*dto.SectionStartResponse, error)
	submitAnswersFn func(ctx context.Context, who identity.Identity, kind model.SectionKind, req dto.SubmitAnswersDTO) (*dto.SectionSubmitResponse, error)
	submitWritingFn func(ctx context.Context, who identity.Identity, req dto.SubmitWritingDTO) (*dto.SectionSubmitResponse, error)
}

func (m *mockSectionService) Start(ctx context.Context, who identity.Identity, kind model.SectionKind, testID uint) (*dto.SectionStartResponse, error) {
	if m.startFn == nil {
		return nil, errNotMocked
	}
	return m.startFn(ctx, who, kind, testID)
}

func (m *mockSectionService) SubmitAnswers(ctx context.Context, who identity.Identity, kind model.SectionKind, req dto.SubmitAnswersDTO) (*dto.SectionSubmitResponse, error) {
	if m.submitAnswersFn == nil {
		return nil, errNotMocked
	}
	return m.submitAnswersFn(ctx, who, kind, req)
}

func (m *mockSectionService) SubmitWriting(ctx context.Context, who identity.Identity, req dto.SubmitWritingDTO) (*dto.SectionSubmitResponse, error) {
	if m.submitWritingFn == nil {
		return nil, errNotMocked
	}
	return m.submitWritingFn(ctx, who, req)
}

type mockUserTestService struct {
	getAllTestsFn    func(ctx context.Context, who identity.Identity) ([]dto.TestSummaryDTO, error)
	getTestDetailsFn func(ctx context.Context, who identity.Identity, testID uint) (*dto.TestDetailDTO, error)
}

func (m *mockUserTestService) GetAllTests(ctx context.Context, who identity.Identity) ([]dto.TestSummaryDTO, error) {
	if m.getAllTestsFn == nil {
		return nil, errNotMocked
	}
	return m.getAllTestsFn(ctx, who)
}

func (m *mockUserTestService) GetTestDetails(ctx context.Context, who identity.Identity, testID uint) (*dto.TestDetailDTO, error) {
	if m.getTestDetailsFn == nil {
		return nil, errNotMocked
	}
	return m.getTestDetailsFn(ctx, who, testID)
}

type mockAttemptService struct {
	listAttemptsFn      func(ctx context.Context, who identity.Identity, query dto.AttemptListQuery) ([]dto.AttemptSummaryDTO, error)
	listUngradedFn      func(ctx context.Context, who identity.Identity) ([]dto.AttemptSummaryDTO, error)
	getAttemptDetailsFn func(ctx context.Context, who identity.Identity, attemptID uint) (*dto.AttemptDetailDTO, error)
	getMyAttemptFn      func(ctx context.Context, who identity.Identity, testID uint) (*dto.AttemptSummaryDTO, error)
}

func (m *mockAttemptService) ListAttempts(ctx context.Context, who identity.Identity, query dto.AttemptListQuery) ([]dto.AttemptSummaryDTO, error) {
	if m.listAttemptsFn == nil {
		return nil, errNotMocked
	}
	return m.listAttemptsFn(ctx, who, query)
}

func (m *mockAttemptService) ListUngraded(ctx context.Context, who identity.Identity) ([]dto.AttemptSummaryDTO, error) {
	if m.listUngradedFn == nil {
		return nil, errNotMocked
	}
	return m.listUngradedFn(ctx, who)
}

func (m *mockAttemptService) GetAttemptDetails(ctx context.Context, who identity.Identity, attemptID uint) (*dto.AttemptDetailDTO, error) {
	if m.getAttemptDetailsFn == nil {
		return nil, errNotMocked
	}
	return m.getAttemptDetailsFn(ctx, who, attemptID)
}

func (m *mockAttemptService) GetMyAttempt(ctx context.Context, who identity.Identity, testID uint) (*dto.AttemptSummaryDTO, error) {
	if m.getMyAttemptFn == nil {
		return nil, errNotMocked
	}
	return m.getMyAttemptFn(ctx, who, testID)
}

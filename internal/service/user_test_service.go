package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserTestService is the test catalogue. Students only see published tests.
type UserTestService interface {
	GetAllTests(ctx context.Context, who identity.Identity) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, who identity.Identity, testID uint) (*dto.TestDetailDTO, error)
}

type userTestService struct {
	store repository.Store
}

func NewUserTestService(store repository.Store) UserTestService {
	return &userTestService{store: store}
}

func (s *userTestService) GetAllTests(ctx context.Context, who identity.Identity) ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.store.Tests().FindAllWithCounts(ctx, !who.IsStaff())
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests with counts from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		var summary dto.TestSummaryDTO
		if err := copier.Copy(&summary, &twc); err != nil {
			log.Error().Err(err).Uint("testID", twc.ID).Msg("Failed to copy test to TestSummaryDTO")
			return nil, fmt.Errorf("error preparing tests response: %w", err)
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *userTestService) GetTestDetails(ctx context.Context, who identity.Identity, testID uint) (*dto.TestDetailDTO, error) {
	test, err := s.store.Tests().FindByIDWithContent(ctx, testID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: test %d", ErrNotFound, testID)
		}
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to get test details from repository")
		return nil, fmt.Errorf("error fetching test %d: %w", testID, err)
	}
	if !test.IsPublished && !who.IsStaff() {
		return nil, fmt.Errorf("%w: test %d", ErrNotFound, testID)
	}

	resp := dto.TestDetailDTO{
		ID:                test.ID,
		Title:             test.Title,
		Description:       test.Description,
		DifficultyLevel:   test.DifficultyLevel,
		IsPublished:       test.IsPublished,
		CreatedAt:         test.CreatedAt,
		ListeningSections: make([]dto.ListeningSectionView, 0, len(test.ListeningSections)),
		ReadingPassages:   make([]dto.ReadingPassageView, 0, len(test.ReadingPassages)),
		WritingTasks:      make([]dto.WritingTaskView, 0, len(test.WritingTasks)),
	}
	for _, section := range test.ListeningSections {
		resp.ListeningSections = append(resp.ListeningSections, dto.ListeningSectionView{
			ID:            section.ID,
			SectionNumber: section.SectionNumber,
			AudioURL:      section.AudioURL,
			AudioDuration: section.AudioDuration,
			Instructions:  section.Instructions,
			Questions:     renderListeningQuestions(section.Questions, who.Role),
		})
	}
	for _, passage := range test.ReadingPassages {
		resp.ReadingPassages = append(resp.ReadingPassages, dto.ReadingPassageView{
			ID:            passage.ID,
			PassageNumber: passage.PassageNumber,
			Title:         passage.Title,
			PassageText:   passage.PassageText,
			WordCount:     passage.WordCount,
			Source:        passage.Source,
			Questions:     renderReadingQuestions(passage.Questions, who.Role),
		})
	}
	if err := copier.Copy(&resp.WritingTasks, &test.WritingTasks); err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to copy writing tasks to WritingTaskView")
		return nil, fmt.Errorf("error preparing test details response: %w", err)
	}
	return &resp, nil
}

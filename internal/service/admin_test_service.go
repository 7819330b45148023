package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lshigami/ielts-mock/internal/cache"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/model"
	"github.com/lshigami/ielts-mock/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminTestService interface {
	CreateTest(ctx context.Context, who identity.Identity, req dto.TestCreateDTO) (*dto.TestDetailDTO, error)
	AddListeningQuestion(ctx context.Context, who identity.Identity, sectionID uint, req dto.QuestionCreateDTO) (*dto.QuestionView, error)
	AddReadingQuestion(ctx context.Context, who identity.Identity, passageID uint, req dto.QuestionCreateDTO) (*dto.QuestionView, error)
	SetPublished(ctx context.Context, who identity.Identity, testID uint, published bool) (*dto.TestDetailDTO, error)
}

type adminTestService struct {
	store   repository.Store
	catalog UserTestService
	content *cache.ContentCache
}

func NewAdminTestService(store repository.Store, catalog UserTestService, content *cache.ContentCache) AdminTestService {
	return &adminTestService{store: store, catalog: catalog, content: content}
}

func (s *adminTestService) CreateTest(ctx context.Context, who identity.Identity, req dto.TestCreateDTO) (*dto.TestDetailDTO, error) {
	testModel := model.Test{
		Title:           req.Title,
		Description:     req.Description,
		DifficultyLevel: req.DifficultyLevel,
		IsPublished:     req.IsPublished,
	}
	if testModel.DifficultyLevel == "" {
		testModel.DifficultyLevel = "intermediate"
	}
	if who.UserID != 0 {
		creator := who.UserID
		testModel.CreatedBy = &creator
	}

	seenSections := make(map[int]bool)
	for _, sDto := range req.ListeningSections {
		if seenSections[sDto.SectionNumber] {
			return nil, fmt.Errorf("%w: duplicate listening section_number %d", ErrValidation, sDto.SectionNumber)
		}
		seenSections[sDto.SectionNumber] = true

		section := model.ListeningSection{
			SectionNumber: sDto.SectionNumber,
			AudioURL:      sDto.AudioURL,
			AudioDuration: sDto.AudioDuration,
			Instructions:  sDto.Instructions,
		}
		next := 1
		seen := make(map[int]bool)
		for _, qDto := range sDto.Questions {
			content, err := buildQuestionContent(qDto)
			if err != nil {
				return nil, fmt.Errorf("listening section %d: %w", sDto.SectionNumber, err)
			}
			var number int
			number, next, err = repository.NextNumber(qDto.QuestionNumber, next)
			if err != nil {
				return nil, fmt.Errorf("%w: listening section %d: question numbers run past %d", ErrValidation, sDto.SectionNumber, repository.MaxQuestionNumber)
			}
			if seen[number] {
				return nil, fmt.Errorf("%w: listening section %d: duplicate question_number %d", ErrValidation, sDto.SectionNumber, number)
			}
			seen[number] = true
			section.Questions = append(section.Questions, model.ListeningQuestion{QuestionNumber: number, QuestionContent: content})
		}
		section.NextQuestionNumber = next
		testModel.ListeningSections = append(testModel.ListeningSections, section)
	}

	seenPassages := make(map[int]bool)
	for _, pDto := range req.ReadingPassages {
		if seenPassages[pDto.PassageNumber] {
			return nil, fmt.Errorf("%w: duplicate reading passage_number %d", ErrValidation, pDto.PassageNumber)
		}
		seenPassages[pDto.PassageNumber] = true

		passage := model.ReadingPassage{
			PassageNumber: pDto.PassageNumber,
			Title:         pDto.Title,
			PassageText:   pDto.PassageText,
			WordCount:     model.CountWords(pDto.PassageText),
			Source:        pDto.Source,
		}
		next := 1
		seen := make(map[int]bool)
		for _, qDto := range pDto.Questions {
			content, err := buildQuestionContent(qDto)
			if err != nil {
				return nil, fmt.Errorf("reading passage %d: %w", pDto.PassageNumber, err)
			}
			var number int
			number, next, err = repository.NextNumber(qDto.QuestionNumber, next)
			if err != nil {
				return nil, fmt.Errorf("%w: reading passage %d: question numbers run past %d", ErrValidation, pDto.PassageNumber, repository.MaxQuestionNumber)
			}
			if seen[number] {
				return nil, fmt.Errorf("%w: reading passage %d: duplicate question_number %d", ErrValidation, pDto.PassageNumber, number)
			}
			seen[number] = true
			passage.Questions = append(passage.Questions, model.ReadingQuestion{QuestionNumber: number, QuestionContent: content})
		}
		passage.NextQuestionNumber = next
		testModel.ReadingPassages = append(testModel.ReadingPassages, passage)
	}

	seenTasks := make(map[int]bool)
	for i, tDto := range req.WritingTasks {
		number := tDto.TaskNumber
		if number == 0 {
			number = i + 1
		}
		if seenTasks[number] {
			return nil, fmt.Errorf("%w: duplicate writing task_number %d", ErrValidation, number)
		}
		seenTasks[number] = true
		testModel.WritingTasks = append(testModel.WritingTasks, model.WritingTask{
			TaskNumber:     number,
			TaskType:       tDto.TaskType,
			PromptText:     tDto.PromptText,
			ImageURL:       tDto.ImageURL,
			Instructions:   tDto.Instructions,
			WordLimit:      tDto.WordLimit,
			TimeSuggestion: tDto.TimeSuggestion,
		})
	}

	if err := s.store.Tests().Create(ctx, &testModel); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		log.Error().Err(err).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	s.content.InvalidateTest(ctx, testModel.ID)
	log.Info().Uint("testID", testModel.ID).Uint("createdBy", who.UserID).
		Int("listeningSections", len(testModel.ListeningSections)).
		Int("readingPassages", len(testModel.ReadingPassages)).
		Int("writingTasks", len(testModel.WritingTasks)).
		Msg("Admin CreateTest: Test created")

	return s.catalog.GetTestDetails(ctx, who, testModel.ID)
}

func (s *adminTestService) AddListeningQuestion(ctx context.Context, who identity.Identity, sectionID uint, req dto.QuestionCreateDTO) (*dto.QuestionView, error) {
	content, err := buildQuestionContent(req)
	if err != nil {
		return nil, err
	}
	question := model.ListeningQuestion{QuestionNumber: req.QuestionNumber, QuestionContent: content}
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Questions().AppendListeningQuestion(ctx, sectionID, &question)
	})
	if err != nil {
		return nil, questionWriteError(err, "listening section", sectionID)
	}
	log.Info().Uint("sectionID", sectionID).Int("questionNumber", question.QuestionNumber).Msg("Admin AddListeningQuestion: Question added")
	view := RenderQuestion(question.ID, question.QuestionNumber, question.QuestionContent, who.Role)
	return &view, nil
}

func (s *adminTestService) AddReadingQuestion(ctx context.Context, who identity.Identity, passageID uint, req dto.QuestionCreateDTO) (*dto.QuestionView, error) {
	content, err := buildQuestionContent(req)
	if err != nil {
		return nil, err
	}
	question := model.ReadingQuestion{QuestionNumber: req.QuestionNumber, QuestionContent: content}
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		return tx.Questions().AppendReadingQuestion(ctx, passageID, &question)
	})
	if err != nil {
		return nil, questionWriteError(err, "reading passage", passageID)
	}
	log.Info().Uint("passageID", passageID).Int("questionNumber", question.QuestionNumber).Msg("Admin AddReadingQuestion: Question added")
	view := RenderQuestion(question.ID, question.QuestionNumber, question.QuestionContent, who.Role)
	return &view, nil
}

func (s *adminTestService) SetPublished(ctx context.Context, who identity.Identity, testID uint, published bool) (*dto.TestDetailDTO, error) {
	if err := s.store.Tests().SetPublished(ctx, testID, published); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: test %d", ErrNotFound, testID)
		}
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to update publication flag")
		return nil, fmt.Errorf("error updating test %d: %w", testID, err)
	}
	log.Info().Uint("testID", testID).Bool("published", published).Msg("Admin SetPublished: Test updated")
	return s.catalog.GetTestDetails(ctx, who, testID)
}

func buildQuestionContent(req dto.QuestionCreateDTO) (model.QuestionContent, error) {
	content, err := model.NewQuestionContent(
		req.QuestionText,
		model.QuestionType(req.QuestionType),
		json.RawMessage(req.QuestionData),
		json.RawMessage(req.CorrectAnswer),
		req.Points,
		req.Explanation,
	)
	if err != nil {
		if errors.Is(err, model.ErrInvalidQuestion) {
			return model.QuestionContent{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return model.QuestionContent{}, err
	}
	return content, nil
}

func questionWriteError(err error, parent string, parentID uint) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %s %d", ErrNotFound, parent, parentID)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%w: question number already used in %s %d", ErrValidation, parent, parentID)
	case errors.Is(err, repository.ErrNumberExhausted):
		return fmt.Errorf("%w: %s %d already has question %d", ErrValidation, parent, parentID, repository.MaxQuestionNumber)
	}
	log.Error().Err(err).Uint("parentID", parentID).Str("parent", parent).Msg("Failed to append question")
	return fmt.Errorf("error adding question: %w", err)
}

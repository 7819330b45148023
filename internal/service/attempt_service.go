package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jinzhu/copier"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/model"
	"github.com/lshigami/ielts-mock/internal/repository"
	"github.com/rs/zerolog/log"
)

// AttemptService is the read side of the attempt store.
type AttemptService interface {
	ListAttempts(ctx context.Context, who identity.Identity, query dto.AttemptListQuery) ([]dto.AttemptSummaryDTO, error)
	ListUngraded(ctx context.Context, who identity.Identity) ([]dto.AttemptSummaryDTO, error)
	GetAttemptDetails(ctx context.Context, who identity.Identity, attemptID uint) (*dto.AttemptDetailDTO, error)
	GetMyAttempt(ctx context.Context, who identity.Identity, testID uint) (*dto.AttemptSummaryDTO, error)
}

type attemptService struct {
	store repository.Store
}

func NewAttemptService(store repository.Store) AttemptService {
	return &attemptService{store: store}
}

func (s *attemptService) ListAttempts(ctx context.Context, who identity.Identity, query dto.AttemptListQuery) ([]dto.AttemptSummaryDTO, error) {
	var filter repository.AttemptFilter
	if !who.IsStaff() {
		userID := who.UserID
		filter.UserID = &userID
	}
	if query.Status != "" {
		status := model.AttemptStatus(query.Status)
		if status != model.AttemptStatusInProgress && status != model.AttemptStatusCompleted {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, query.Status)
		}
		filter.Status = &status
	}
	filter.Graded = query.Graded

	return s.list(ctx, filter, "ListAttempts")
}

func (s *attemptService) ListUngraded(ctx context.Context, who identity.Identity) ([]dto.AttemptSummaryDTO, error) {
	if !who.IsStaff() {
		return nil, fmt.Errorf("%w: only teachers and admins can list ungraded attempts", ErrForbidden)
	}
	completed := model.AttemptStatusCompleted
	graded := false
	return s.list(ctx, repository.AttemptFilter{Status: &completed, Graded: &graded}, "ListUngraded")
}

func (s *attemptService) list(ctx context.Context, filter repository.AttemptFilter, op string) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.store.Attempts().List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg(op + ": Failed to list attempts")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}

	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for i := range attempts {
		summary, err := toAttemptSummary(&attempts[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *attemptService) GetAttemptDetails(ctx context.Context, who identity.Identity, attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.store.Attempts().FindByIDWithDetails(ctx, attemptID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: attempt %d", ErrNotFound, attemptID)
		}
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttemptDetails: Failed to find attempt")
		return nil, fmt.Errorf("error fetching attempt %d: %w", attemptID, err)
	}
	if attempt.UserID != who.UserID && !who.IsStaff() {
		return nil, fmt.Errorf("%w: attempt %d belongs to another user", ErrForbidden, attemptID)
	}

	summary, err := toAttemptSummary(attempt)
	if err != nil {
		return nil, err
	}
	detail := &dto.AttemptDetailDTO{
		AttemptSummaryDTO:  *summary,
		ListeningAnswers:   make([]dto.AnswerDTO, 0, len(attempt.ListeningAnswers)),
		ReadingAnswers:     make([]dto.AnswerDTO, 0, len(attempt.ReadingAnswers)),
		WritingSubmissions: make([]dto.WritingSubmissionDTO, 0, len(attempt.WritingSubmissions)),
	}

	for _, a := range attempt.ListeningAnswers {
		answer := dto.AnswerDTO{ID: a.ID, QuestionID: a.QuestionID, UserAnswer: a.UserAnswer, AnsweredAt: a.AnsweredAt}
		if q := a.Question; q != nil {
			view := RenderQuestion(q.ID, q.QuestionNumber, q.QuestionContent, who.Role)
			answer.Question = &view
			answer.QuestionNumber = q.QuestionNumber
			if q.Section != nil {
				answer.SectionNumber = q.Section.SectionNumber
			}
		}
		detail.ListeningAnswers = append(detail.ListeningAnswers, answer)
	}
	for _, a := range attempt.ReadingAnswers {
		answer := dto.AnswerDTO{ID: a.ID, QuestionID: a.QuestionID, UserAnswer: a.UserAnswer, AnsweredAt: a.AnsweredAt}
		if q := a.Question; q != nil {
			view := RenderQuestion(q.ID, q.QuestionNumber, q.QuestionContent, who.Role)
			answer.Question = &view
			answer.QuestionNumber = q.QuestionNumber
			if q.Passage != nil {
				answer.SectionNumber = q.Passage.PassageNumber
			}
		}
		detail.ReadingAnswers = append(detail.ReadingAnswers, answer)
	}
	for _, w := range attempt.WritingSubmissions {
		var sub dto.WritingSubmissionDTO
		if err := copier.Copy(&sub, &w); err != nil {
			log.Error().Err(err).Uint("submissionID", w.ID).Msg("GetAttemptDetails: Failed to copy writing submission")
			return nil, fmt.Errorf("error preparing response data: %w", err)
		}
		if w.Task != nil {
			sub.TaskNumber = w.Task.TaskNumber
			sub.TaskType = w.Task.TaskType
		}
		detail.WritingSubmissions = append(detail.WritingSubmissions, sub)
	}
	sortAnswers(detail.ListeningAnswers)
	sortAnswers(detail.ReadingAnswers)
	return detail, nil
}

func (s *attemptService) GetMyAttempt(ctx context.Context, who identity.Identity, testID uint) (*dto.AttemptSummaryDTO, error) {
	attempt, err := s.store.Attempts().FindByUserAndTest(ctx, who.UserID, testID, false)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: no attempt for test %d", ErrNotFound, testID)
		}
		log.Error().Err(err).Uint("testID", testID).Uint("userID", who.UserID).Msg("GetMyAttempt: Failed to find attempt")
		return nil, fmt.Errorf("error fetching attempt: %w", err)
	}
	return toAttemptSummary(attempt)
}

func toAttemptSummary(attempt *model.TestAttempt) (*dto.AttemptSummaryDTO, error) {
	var summary dto.AttemptSummaryDTO
	if err := copier.Copy(&summary, attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Failed to copy TestAttempt to AttemptSummaryDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	summary.Status = string(attempt.Status)
	summary.TestTitle = attempt.Test.Title
	return &summary, nil
}

// sortAnswers orders answers by section then question number.
func sortAnswers(answers []dto.AnswerDTO) {
	sort.SliceStable(answers, func(i, j int) bool {
		if answers[i].SectionNumber != answers[j].SectionNumber {
			return answers[i].SectionNumber < answers[j].SectionNumber
		}
		return answers[i].QuestionNumber < answers[j].QuestionNumber
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/ielts-mock/internal/clock"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/model"
	"github.com/lshigami/ielts-mock/internal/repository"
	"github.com/rs/zerolog/log"
)

type GradingService interface {
	Grade(ctx context.Context, who identity.Identity, attemptID uint, req dto.GradeAttemptDTO) (*dto.AttemptSummaryDTO, error)
}

type gradingService struct {
	store repository.Store
	sc    ScoreConverterService
	clock clock.Clock
}

func NewGradingService(store repository.Store, sc ScoreConverterService, clk clock.Clock) GradingService {
	return &gradingService{store: store, sc: sc, clock: clk}
}

// Grade applies the supplied bands on top of the stored ones. The overall band
// is only derived once all three section bands are present.
func (s *gradingService) Grade(ctx context.Context, who identity.Identity, attemptID uint, req dto.GradeAttemptDTO) (*dto.AttemptSummaryDTO, error) {
	if !who.IsStaff() {
		return nil, fmt.Errorf("%w: only teachers and admins can grade", ErrForbidden)
	}
	if req.ListeningBand == nil && req.ReadingBand == nil && req.WritingBand == nil {
		return nil, fmt.Errorf("%w: at least one band score is required", ErrValidation)
	}

	now := s.clock.Now()
	var graded *model.TestAttempt
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		attempt, err := tx.Attempts().FindByID(ctx, attemptID, true)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: attempt %d", ErrNotFound, attemptID)
			}
			return fmt.Errorf("error loading attempt: %w", err)
		}

		if req.ListeningBand != nil {
			attempt.ListeningBand = s.clamp(*req.ListeningBand)
		}
		if req.ReadingBand != nil {
			attempt.ReadingBand = s.clamp(*req.ReadingBand)
		}
		if req.WritingBand != nil {
			attempt.WritingBand = s.clamp(*req.WritingBand)
		}
		attempt.OverallBand = nil
		if attempt.ListeningBand != nil && attempt.ReadingBand != nil && attempt.WritingBand != nil {
			overall := s.sc.OverallBand(*attempt.ListeningBand, *attempt.ReadingBand, *attempt.WritingBand)
			attempt.OverallBand = &overall
		}
		if req.TeacherComment != nil {
			if comment := strings.TrimSpace(*req.TeacherComment); comment != "" {
				attempt.TeacherComment = comment
			}
		}
		graderID := who.UserID
		attempt.GradedBy = &graderID
		attempt.GradedAt = &now

		if err := tx.Attempts().Save(ctx, attempt); err != nil {
			return fmt.Errorf("error saving grade: %w", err)
		}
		graded = attempt
		return nil
	})
	if err != nil {
		if isClientError(err) {
			log.Warn().Err(err).Uint("attemptID", attemptID).Uint("graderID", who.UserID).Msg("Grade: Rejected")
		} else {
			log.Error().Err(err).Uint("attemptID", attemptID).Uint("graderID", who.UserID).Msg("Grade: Failed")
		}
		return nil, err
	}

	log.Info().Uint("attemptID", attemptID).Uint("graderID", who.UserID).Bool("overall", graded.OverallBand != nil).Msg("Grade: Attempt graded")
	summary, err := toAttemptSummary(graded)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *gradingService) clamp(band float64) *float64 {
	v := s.sc.ClampBand(band)
	return &v
}

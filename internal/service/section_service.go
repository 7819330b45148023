package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lshigami/ielts-mock/internal/cache"
	"github.com/lshigami/ielts-mock/internal/clock"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/model"
	"github.com/lshigami/ielts-mock/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	ListeningExtraTime = 600  // seconds added on top of the audio for transfer time
	SectionTimeLimit   = 3600 // reading and writing, seconds

	MaxAnswersPerSection = 40
	MinQuestionNumber    = 1
	MaxQuestionNumber    = repository.MaxQuestionNumber
	RequiredWritingTasks = 2
)

// SectionService drives the start/submit lifecycle of the three sections of
// an attempt. Each section goes NOT_STARTED -> STARTED -> SUBMITTED once.
type SectionService interface {
	Start(ctx context.Context, who identity.Identity, kind model.SectionKind, testID uint) (*dto.SectionStartResponse, error)
	SubmitAnswers(ctx context.Context, who identity.Identity, kind model.SectionKind, req dto.SubmitAnswersDTO) (*dto.SectionSubmitResponse, error)
	SubmitWriting(ctx context.Context, who identity.Identity, req dto.SubmitWritingDTO) (*dto.SectionSubmitResponse, error)
}

type sectionService struct {
	store   repository.Store
	content *cache.ContentCache
	clock   clock.Clock
}

func NewSectionService(store repository.Store, content *cache.ContentCache, clk clock.Clock) SectionService {
	return &sectionService{store: store, content: content, clock: clk}
}

func (s *sectionService) Start(ctx context.Context, who identity.Identity, kind model.SectionKind, testID uint) (*dto.SectionStartResponse, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown section %q", ErrValidation, kind)
	}
	if _, err := loadVisibleTest(ctx, s.store, who, testID); err != nil {
		return nil, err
	}

	resp := &dto.SectionStartResponse{TestID: testID, Section: string(kind)}
	switch kind {
	case model.SectionListening:
		audio, err := s.audioDuration(ctx, testID)
		if err != nil {
			return nil, err
		}
		extra := ListeningExtraTime
		resp.AudioDuration = &audio
		resp.ExtraTime = &extra
		resp.TimeLimit = audio + extra
	default:
		resp.TimeLimit = SectionTimeLimit
	}

	now := s.clock.Now()
	if kind == model.SectionListening {
		if _, created, err := s.store.Attempts().Ensure(ctx, who.UserID, testID, now); err != nil {
			log.Error().Err(err).Uint("userID", who.UserID).Uint("testID", testID).Msg("Start: Failed to ensure attempt")
			return nil, fmt.Errorf("error creating attempt: %w", err)
		} else if created {
			log.Info().Uint("userID", who.UserID).Uint("testID", testID).Msg("Start: Attempt created")
		}
	}

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		attempt, err := lockOwnAttempt(ctx, tx, who, testID)
		if err != nil {
			return err
		}
		progress := attempt.Progress(kind)
		if progress.Submitted {
			return fmt.Errorf("%w: %s section cannot be restarted", ErrAlreadySubmitted, kind)
		}
		if attempt.MarkStarted(kind, now) {
			if err := tx.Attempts().Save(ctx, attempt); err != nil {
				return fmt.Errorf("error saving attempt: %w", err)
			}
		}
		resp.AttemptID = attempt.ID
		resp.StartedAt = *progress.StartedAt
		return nil
	})
	if err != nil {
		logFailure(err, "Start", who, testID, kind)
		return nil, err
	}
	return resp, nil
}

func (s *sectionService) SubmitAnswers(ctx context.Context, who identity.Identity, kind model.SectionKind, req dto.SubmitAnswersDTO) (*dto.SectionSubmitResponse, error) {
	if kind != model.SectionListening && kind != model.SectionReading {
		return nil, fmt.Errorf("%w: answers can only be submitted for listening or reading", ErrValidation)
	}
	if err := validateTimeSpent(kind, req.Seconds()); err != nil {
		return nil, err
	}
	answers, err := parseAnswers(req.Answers)
	if err != nil {
		return nil, err
	}
	if err := testExists(ctx, s.store, req.TestID); err != nil {
		return nil, err
	}
	timeLimit, err := s.timeLimit(ctx, kind, req.TestID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	resp := &dto.SectionSubmitResponse{Section: string(kind), SubmittedAt: now, TimeSpent: req.Seconds()}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		attempt, err := lockOwnAttempt(ctx, tx, who, req.TestID)
		if err != nil {
			return err
		}
		if err := checkSubmittable(attempt, kind); err != nil {
			return err
		}

		byNumber, total, err := questionIndex(ctx, tx, kind, req.TestID)
		if err != nil {
			return err
		}

		matched := 0
		switch kind {
		case model.SectionListening:
			records := make([]model.ListeningAnswer, 0, len(answers))
			for key, text := range answers {
				questionID, ok := byNumber[key]
				if !ok {
					continue
				}
				records = append(records, model.ListeningAnswer{
					TestAttemptID: attempt.ID,
					QuestionID:    questionID,
					UserAnswer:    text,
					AnsweredAt:    now,
				})
			}
			if err := tx.Answers().ReplaceListeningAnswers(ctx, attempt.ID, records); err != nil {
				return fmt.Errorf("error saving listening answers: %w", err)
			}
			matched = len(records)
		case model.SectionReading:
			records := make([]model.ReadingAnswer, 0, len(answers))
			for key, text := range answers {
				questionID, ok := byNumber[key]
				if !ok {
					continue
				}
				records = append(records, model.ReadingAnswer{
					TestAttemptID: attempt.ID,
					QuestionID:    questionID,
					UserAnswer:    text,
					AnsweredAt:    now,
				})
			}
			if err := tx.Answers().ReplaceReadingAnswers(ctx, attempt.ID, records); err != nil {
				return fmt.Errorf("error saving reading answers: %w", err)
			}
			matched = len(records)
		}

		resp.ExceededTimeLimit = exceeded(attempt.Progress(kind).StartedAt, timeLimit, now)
		resp.AutoCompleted = finishSection(attempt, kind, now, req.Seconds())
		if err := tx.Attempts().Save(ctx, attempt); err != nil {
			return fmt.Errorf("error saving attempt: %w", err)
		}

		resp.AttemptID = attempt.ID
		resp.AttemptStatus = string(attempt.Status)
		resp.TotalQuestions = total
		resp.AnsweredCount = matched
		resp.UnansweredCount = total - matched
		resp.IgnoredCount = len(answers) - matched
		return nil
	})
	if err != nil {
		logFailure(err, "Submit", who, req.TestID, kind)
		return nil, err
	}

	if resp.IgnoredCount > 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("%d answers did not match any question and were ignored", resp.IgnoredCount))
	}
	if resp.UnansweredCount > 0 {
		resp.Warnings = append(resp.Warnings, fmt.Sprintf("%d questions were left unanswered", resp.UnansweredCount))
	}
	if resp.ExceededTimeLimit {
		resp.Warnings = append(resp.Warnings, "Submitted after the time limit")
	}
	log.Info().Uint("attemptID", resp.AttemptID).Str("section", string(kind)).
		Int("answered", resp.AnsweredCount).Bool("autoCompleted", resp.AutoCompleted).
		Msg("Submit: Section submitted")
	return resp, nil
}

func (s *sectionService) SubmitWriting(ctx context.Context, who identity.Identity, req dto.SubmitWritingDTO) (*dto.SectionSubmitResponse, error) {
	kind := model.SectionWriting
	if err := validateTimeSpent(kind, req.Seconds()); err != nil {
		return nil, err
	}
	texts := []string{strings.TrimSpace(req.Task1Text), strings.TrimSpace(req.Task2Text)}
	if texts[0] == "" && texts[1] == "" {
		return nil, fmt.Errorf("%w: at least one writing task must be answered", ErrValidation)
	}
	if err := testExists(ctx, s.store, req.TestID); err != nil {
		return nil, err
	}
	tasks, err := s.store.Tests().WritingTasks(ctx, req.TestID)
	if err != nil {
		return nil, fmt.Errorf("error loading writing tasks: %w", err)
	}
	if len(tasks) < RequiredWritingTasks {
		return nil, fmt.Errorf("%w: test %d has %d writing tasks configured, %d required", ErrValidation, req.TestID, len(tasks), RequiredWritingTasks)
	}

	now := s.clock.Now()
	resp := &dto.SectionSubmitResponse{Section: string(kind), SubmittedAt: now, TimeSpent: req.Seconds()}
	wordCounts := make([]int, RequiredWritingTasks)

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		attempt, err := lockOwnAttempt(ctx, tx, who, req.TestID)
		if err != nil {
			return err
		}
		if err := checkSubmittable(attempt, kind); err != nil {
			return err
		}

		submissions := make([]model.WritingSubmission, 0, RequiredWritingTasks)
		for i, text := range texts {
			if text == "" {
				continue
			}
			sub := model.NewWritingSubmission(attempt.ID, tasks[i].ID, text, now)
			wordCounts[i] = sub.WordCount
			submissions = append(submissions, sub)
		}
		if err := tx.Answers().ReplaceWritingSubmissions(ctx, attempt.ID, submissions); err != nil {
			return fmt.Errorf("error saving writing submissions: %w", err)
		}

		resp.ExceededTimeLimit = exceeded(attempt.Writing.StartedAt, SectionTimeLimit, now)
		resp.AutoCompleted = finishSection(attempt, kind, now, req.Seconds())
		if err := tx.Attempts().Save(ctx, attempt); err != nil {
			return fmt.Errorf("error saving attempt: %w", err)
		}

		resp.AttemptID = attempt.ID
		resp.AttemptStatus = string(attempt.Status)
		resp.TotalQuestions = RequiredWritingTasks
		resp.AnsweredCount = len(submissions)
		resp.UnansweredCount = RequiredWritingTasks - len(submissions)
		return nil
	})
	if err != nil {
		logFailure(err, "SubmitWriting", who, req.TestID, kind)
		return nil, err
	}

	resp.Task1WordCount = &wordCounts[0]
	resp.Task2WordCount = &wordCounts[1]
	for i, text := range texts {
		if text == "" {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("Task %d is blank", i+1))
		}
	}
	if resp.ExceededTimeLimit {
		resp.Warnings = append(resp.Warnings, "Submitted after the time limit")
	}
	log.Info().Uint("attemptID", resp.AttemptID).Int("task1Words", wordCounts[0]).Int("task2Words", wordCounts[1]).
		Bool("autoCompleted", resp.AutoCompleted).Msg("SubmitWriting: Section submitted")
	return resp, nil
}

func (s *sectionService) audioDuration(ctx context.Context, testID uint) (int, error) {
	audio, err := s.content.AudioDuration(ctx, testID, func(ctx context.Context) (int, error) {
		return s.store.Tests().SumAudioDuration(ctx, testID)
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to sum audio duration")
		return 0, fmt.Errorf("error computing audio duration: %w", err)
	}
	return audio, nil
}

func (s *sectionService) timeLimit(ctx context.Context, kind model.SectionKind, testID uint) (int, error) {
	if kind != model.SectionListening {
		return SectionTimeLimit, nil
	}
	audio, err := s.audioDuration(ctx, testID)
	if err != nil {
		return 0, err
	}
	return audio + ListeningExtraTime, nil
}

// loadVisibleTest returns the test when the caller may see it. Unpublished
// tests do not exist for students.
func loadVisibleTest(ctx context.Context, store repository.Store, who identity.Identity, testID uint) (*model.Test, error) {
	test, err := store.Tests().FindByID(ctx, testID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: test %d", ErrNotFound, testID)
		}
		return nil, fmt.Errorf("error loading test %d: %w", testID, err)
	}
	if !test.IsPublished && !who.IsStaff() {
		return nil, fmt.Errorf("%w: test %d", ErrNotFound, testID)
	}
	return test, nil
}

// testExists checks the test row only. Submits act on an attempt that was
// opened while the test was visible, so unpublishing it later does not strand
// the attempt.
func testExists(ctx context.Context, store repository.Store, testID uint) error {
	if _, err := store.Tests().FindByID(ctx, testID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: test %d", ErrNotFound, testID)
		}
		return fmt.Errorf("error loading test %d: %w", testID, err)
	}
	return nil
}

// lockOwnAttempt loads the caller's attempt for the test with a row lock held
// until the transaction ends.
func lockOwnAttempt(ctx context.Context, tx repository.Store, who identity.Identity, testID uint) (*model.TestAttempt, error) {
	attempt, err := tx.Attempts().FindByUserAndTest(ctx, who.UserID, testID, true)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: no attempt for test %d, start listening first", ErrPrecondition, testID)
		}
		return nil, fmt.Errorf("error loading attempt: %w", err)
	}
	return attempt, nil
}

func checkSubmittable(attempt *model.TestAttempt, kind model.SectionKind) error {
	progress := attempt.Progress(kind)
	if progress.Submitted {
		return fmt.Errorf("%w: %s was submitted at %s", ErrAlreadySubmitted, kind, progress.SubmittedAt.Format(time.RFC3339))
	}
	if attempt.Status == model.AttemptStatusCompleted {
		return fmt.Errorf("%w: attempt %d is already completed", ErrPrecondition, attempt.ID)
	}
	if progress.StartedAt == nil {
		return fmt.Errorf("%w: call start for the %s section first", ErrPrecondition, kind)
	}
	return nil
}

// finishSection flips the section flag and runs the completion trigger. It
// reports whether this submit completed the attempt.
func finishSection(attempt *model.TestAttempt, kind model.SectionKind, now time.Time, timeSpent int) bool {
	attempt.MarkSubmitted(kind, now, timeSpent)
	return attempt.CompleteIfReady(now)
}

// questionIndex maps the decimal question number to the question id. Answer
// keys are looked up verbatim, so "01" does not name question 1.
func questionIndex(ctx context.Context, tx repository.Store, kind model.SectionKind, testID uint) (map[string]uint, int, error) {
	byNumber := make(map[string]uint)
	switch kind {
	case model.SectionListening:
		questions, err := tx.Tests().ListeningQuestions(ctx, testID)
		if err != nil {
			return nil, 0, fmt.Errorf("error loading listening questions: %w", err)
		}
		for _, q := range questions {
			key := strconv.Itoa(q.QuestionNumber)
			if _, dup := byNumber[key]; !dup {
				byNumber[key] = q.ID
			}
		}
		return byNumber, len(questions), nil
	case model.SectionReading:
		questions, err := tx.Tests().ReadingQuestions(ctx, testID)
		if err != nil {
			return nil, 0, fmt.Errorf("error loading reading questions: %w", err)
		}
		for _, q := range questions {
			key := strconv.Itoa(q.QuestionNumber)
			if _, dup := byNumber[key]; !dup {
				byNumber[key] = q.ID
			}
		}
		return byNumber, len(questions), nil
	}
	return nil, 0, fmt.Errorf("%w: no questions for section %q", ErrValidation, kind)
}

func validateTimeSpent(kind model.SectionKind, seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("%w: time_spent must not be negative", ErrValidation)
	}
	if kind != model.SectionListening && seconds > SectionTimeLimit {
		return fmt.Errorf("%w: time_spent %d exceeds %d seconds", ErrValidation, seconds, SectionTimeLimit)
	}
	return nil
}

// parseAnswers checks that every key is a question number in range and
// trims the values. Blank answers are kept.
func parseAnswers(raw map[string]string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one answer is required", ErrValidation)
	}
	if len(raw) > MaxAnswersPerSection {
		return nil, fmt.Errorf("%w: at most %d answers are accepted, got %d", ErrValidation, MaxAnswersPerSection, len(raw))
	}

	answers := make(map[string]string, len(raw))
	for key, value := range raw {
		number, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || number < MinQuestionNumber || number > MaxQuestionNumber {
			return nil, fmt.Errorf("%w: question number %q must be between %d and %d", ErrValidation, key, MinQuestionNumber, MaxQuestionNumber)
		}
		if utf8.RuneCountInString(value) > model.MaxAnswerLength {
			return nil, fmt.Errorf("%w: answer to question %q is longer than %d characters", ErrValidation, key, model.MaxAnswerLength)
		}
		answers[key] = strings.TrimSpace(value)
	}
	return answers, nil
}

func exceeded(startedAt *time.Time, limitSeconds int, now time.Time) bool {
	if startedAt == nil {
		return false
	}
	return now.After(startedAt.Add(time.Duration(limitSeconds) * time.Second))
}

func logFailure(err error, op string, who identity.Identity, testID uint, kind model.SectionKind) {
	if isClientError(err) {
		log.Warn().Err(err).Uint("userID", who.UserID).Uint("testID", testID).Str("section", string(kind)).Msg(op + ": Rejected")
		return
	}
	log.Error().Err(err).Uint("userID", who.UserID).Uint("testID", testID).Str("section", string(kind)).Msg(op + ": Failed")
}

func isClientError(err error) bool {
	for _, target := range []error{ErrNotFound, ErrPrecondition, ErrAlreadySubmitted, ErrValidation, ErrForbidden} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

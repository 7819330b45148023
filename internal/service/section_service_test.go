package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/model"
)

func TestStartListeningCreatesAttemptOnce(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()

	first, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("first Start: %v", err)
	}
	if first.TimeLimit != 1500+ListeningExtraTime {
		t.Errorf("TimeLimit = %d, want %d", first.TimeLimit, 1500+ListeningExtraTime)
	}
	if first.AudioDuration == nil || *first.AudioDuration != 1500 {
		t.Errorf("AudioDuration = %v, want 1500", first.AudioDuration)
	}
	if first.ExtraTime == nil || *first.ExtraTime != 600 {
		t.Errorf("ExtraTime = %v, want 600", first.ExtraTime)
	}

	f.clock.Advance(5 * time.Minute)
	second, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if second.AttemptID != first.AttemptID {
		t.Errorf("second Start returned attempt %d, want %d", second.AttemptID, first.AttemptID)
	}
	if !second.StartedAt.Equal(first.StartedAt) {
		t.Errorf("started_at moved from %s to %s", first.StartedAt, second.StartedAt)
	}
	if n := f.store.attemptCount(); n != 1 {
		t.Errorf("attempts stored = %d, want 1", n)
	}
}

func TestStartReadingAndWritingUseFixedLimit(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID); err != nil {
		t.Fatalf("Start listening: %v", err)
	}

	for _, kind := range []model.SectionKind{model.SectionReading, model.SectionWriting} {
		resp, err := f.svc.Start(ctx, student, kind, f.test.ID)
		if err != nil {
			t.Fatalf("Start %s: %v", kind, err)
		}
		if resp.TimeLimit != SectionTimeLimit {
			t.Errorf("%s TimeLimit = %d, want %d", kind, resp.TimeLimit, SectionTimeLimit)
		}
		if resp.AudioDuration != nil || resp.ExtraTime != nil {
			t.Errorf("%s start carries listening fields", kind)
		}
	}
}

func TestStartErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		prepare func(t *testing.T, f *sectionFixture) uint
		kind    model.SectionKind
		wantErr error
	}{
		{
			name:    "reading before listening",
			prepare: func(t *testing.T, f *sectionFixture) uint { return f.test.ID },
			kind:    model.SectionReading,
			wantErr: ErrPrecondition,
		},
		{
			name:    "writing before listening",
			prepare: func(t *testing.T, f *sectionFixture) uint { return f.test.ID },
			kind:    model.SectionWriting,
			wantErr: ErrPrecondition,
		},
		{
			name:    "unknown test",
			prepare: func(t *testing.T, f *sectionFixture) uint { return 999 },
			kind:    model.SectionListening,
			wantErr: ErrNotFound,
		},
		{
			name: "unpublished test for student",
			prepare: func(t *testing.T, f *sectionFixture) uint {
				return f.store.seedTest(sampleTest(t, false)).ID
			},
			kind:    model.SectionListening,
			wantErr: ErrNotFound,
		},
		{
			name:    "unknown section kind",
			prepare: func(t *testing.T, f *sectionFixture) uint { return f.test.ID },
			kind:    model.SectionKind("speaking"),
			wantErr: ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newSectionFixture(t)
			testID := tc.prepare(t, f)
			_, err := f.svc.Start(ctx, student, tc.kind, testID)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Start err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestStaffCanStartUnpublishedTest(t *testing.T) {
	f := newSectionFixture(t)
	draft := f.store.seedTest(sampleTest(t, false))
	if _, err := f.svc.Start(context.Background(), teacher, model.SectionListening, draft.ID); err != nil {
		t.Fatalf("Start as teacher: %v", err)
	}
}

func TestStartAfterSubmitIsRejected(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, dto.SubmitAnswersDTO{
		TestID: f.test.ID, Answers: map[string]string{"1": "A"},
	}); err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}

	_, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("restart err = %v, want ErrAlreadySubmitted", err)
	}
}

func TestSubmitListeningRoundTrip(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	start, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	f.clock.Advance(20 * time.Minute)
	resp, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, dto.SubmitAnswersDTO{
		TestID:    f.test.ID,
		Answers:   map[string]string{"1": "A", "2": "library"},
		TimeSpent: secs(1200),
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if resp.AnsweredCount != 2 || resp.TotalQuestions != 3 || resp.UnansweredCount != 1 || resp.IgnoredCount != 0 {
		t.Errorf("counts = answered %d total %d unanswered %d ignored %d",
			resp.AnsweredCount, resp.TotalQuestions, resp.UnansweredCount, resp.IgnoredCount)
	}
	if resp.AutoCompleted {
		t.Error("listening alone must not complete the attempt")
	}
	if resp.ExceededTimeLimit {
		t.Error("20 minutes is within the listening limit")
	}

	ledger := f.store.listeningLedger(start.AttemptID)
	if len(ledger) != 2 {
		t.Fatalf("ledger has %d answers, want 2", len(ledger))
	}
	byQuestion := map[uint]string{}
	for _, a := range ledger {
		byQuestion[a.QuestionID] = a.UserAnswer
	}
	q1 := f.test.ListeningSections[0].Questions[0].ID
	q2 := f.test.ListeningSections[0].Questions[1].ID
	if byQuestion[q1] != "A" || byQuestion[q2] != "library" {
		t.Errorf("ledger = %v, want question %d=A and %d=library", byQuestion, q1, q2)
	}

	attempt, _ := f.store.attempt(start.AttemptID)
	if !attempt.Listening.Submitted || attempt.Listening.SubmittedAt == nil || attempt.Listening.TimeSpent != 1200 {
		t.Errorf("listening progress = %+v", attempt.Listening)
	}

	_, err = f.svc.SubmitAnswers(ctx, student, model.SectionListening, dto.SubmitAnswersDTO{
		TestID:  f.test.ID,
		Answers: map[string]string{"1": "C", "2": "museum", "3": "12"},
	})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("resubmit err = %v, want ErrAlreadySubmitted", err)
	}
	after := f.store.listeningLedger(start.AttemptID)
	if len(after) != 2 {
		t.Fatalf("ledger changed after rejected resubmit: %+v", after)
	}
	for _, a := range after {
		if byQuestion[a.QuestionID] != a.UserAnswer {
			t.Errorf("answer to question %d changed to %q", a.QuestionID, a.UserAnswer)
		}
	}
}

func TestSubmitMatchesKeysVerbatimAndKeepsBlanks(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	start, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.svc.Start(ctx, student, model.SectionReading, f.test.ID); err != nil {
		t.Fatalf("Start reading: %v", err)
	}

	resp, err := f.svc.SubmitAnswers(ctx, student, model.SectionReading, dto.SubmitAnswersDTO{
		TestID:  f.test.ID,
		Answers: map[string]string{"01": "B", "3": "  Paris ", "39": "extra", "2": "   "},
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if resp.AnsweredCount != 2 || resp.IgnoredCount != 2 || resp.UnansweredCount != 1 {
		t.Errorf("answered %d ignored %d unanswered %d, want 2 2 1", resp.AnsweredCount, resp.IgnoredCount, resp.UnansweredCount)
	}
	if len(resp.Warnings) != 2 {
		t.Errorf("warnings = %v, want ignored and unanswered", resp.Warnings)
	}

	questions := f.test.ReadingPassages[0].Questions
	got := map[uint]string{}
	for _, a := range f.store.readingLedger(start.AttemptID) {
		got[a.QuestionID] = a.UserAnswer
	}
	want := map[uint]string{questions[1].ID: "", questions[2].ID: "Paris"}
	if len(got) != len(want) {
		t.Fatalf("ledger = %v, want %v", got, want)
	}
	for id, text := range want {
		if answer, ok := got[id]; !ok || answer != text {
			t.Errorf("answer to question %d = %q (stored %v), want %q", id, answer, ok, text)
		}
	}
}

func TestSubmitLeadingZeroKeyDoesNotCollide(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	start, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, dto.SubmitAnswersDTO{
		TestID:  f.test.ID,
		Answers: map[string]string{"1": "A", "01": "B"},
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if resp.AnsweredCount != 1 || resp.IgnoredCount != 1 {
		t.Errorf("answered %d ignored %d, want 1 1", resp.AnsweredCount, resp.IgnoredCount)
	}
	ledger := f.store.listeningLedger(start.AttemptID)
	if len(ledger) != 1 || ledger[0].UserAnswer != "A" {
		t.Errorf("ledger = %+v, want only question 1 = A", ledger)
	}
}

func TestSubmitAfterUnpublish(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := f.store.Tests().SetPublished(ctx, f.test.ID, false); err != nil {
		t.Fatalf("SetPublished: %v", err)
	}

	resp, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, dto.SubmitAnswersDTO{
		TestID: f.test.ID, Answers: map[string]string{"1": "A"},
	})
	if err != nil {
		t.Fatalf("SubmitAnswers on an unpublished test: %v", err)
	}
	if resp.AnsweredCount != 1 {
		t.Errorf("AnsweredCount = %d, want 1", resp.AnsweredCount)
	}

	if _, err := f.svc.Start(ctx, student, model.SectionReading, f.test.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Start reading err = %v, want ErrNotFound", err)
	}
}

func TestSubmitAnswersValidation(t *testing.T) {
	tooMany := map[string]string{}
	for i := 1; i <= 41; i++ {
		tooMany[fmt.Sprintf("%02d", i)] = "x"
	}

	tests := []struct {
		name string
		kind model.SectionKind
		req  dto.SubmitAnswersDTO
	}{
		{name: "no answers", kind: model.SectionListening, req: dto.SubmitAnswersDTO{Answers: map[string]string{}}},
		{name: "41 answers", kind: model.SectionListening, req: dto.SubmitAnswersDTO{Answers: tooMany}},
		{name: "number zero", kind: model.SectionListening, req: dto.SubmitAnswersDTO{Answers: map[string]string{"0": "A"}}},
		{name: "number 41", kind: model.SectionListening, req: dto.SubmitAnswersDTO{Answers: map[string]string{"41": "A"}}},
		{name: "non numeric key", kind: model.SectionListening, req: dto.SubmitAnswersDTO{Answers: map[string]string{"q1": "A"}}},
		{name: "padded number out of range", kind: model.SectionListening, req: dto.SubmitAnswersDTO{Answers: map[string]string{"1": "A", "041": "B"}}},
		{name: "answer too long", kind: model.SectionListening, req: dto.SubmitAnswersDTO{Answers: map[string]string{"1": strings.Repeat("a", 501)}}},
		{name: "negative time", kind: model.SectionListening, req: dto.SubmitAnswersDTO{Answers: map[string]string{"1": "A"}, TimeSpent: secs(-1)}},
		{name: "reading over an hour", kind: model.SectionReading, req: dto.SubmitAnswersDTO{Answers: map[string]string{"1": "B"}, TimeSpent: secs(4000)}},
		{name: "writing through answers", kind: model.SectionWriting, req: dto.SubmitAnswersDTO{Answers: map[string]string{"1": "B"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newSectionFixture(t)
			ctx := context.Background()
			start, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
			if err != nil {
				t.Fatalf("Start: %v", err)
			}
			if _, err := f.svc.Start(ctx, student, model.SectionReading, f.test.ID); err != nil {
				t.Fatalf("Start reading: %v", err)
			}

			tc.req.TestID = f.test.ID
			_, err = f.svc.SubmitAnswers(ctx, student, tc.kind, tc.req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}

			attempt, _ := f.store.attempt(start.AttemptID)
			if attempt.Listening.Submitted || attempt.Reading.Submitted {
				t.Error("rejected submit flipped a section flag")
			}
			if len(f.store.listeningLedger(start.AttemptID)) != 0 || len(f.store.readingLedger(start.AttemptID)) != 0 {
				t.Error("rejected submit wrote to the answer ledger")
			}
		})
	}
}

func TestSubmitPreconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("no attempt", func(t *testing.T) {
		f := newSectionFixture(t)
		_, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, dto.SubmitAnswersDTO{
			TestID: f.test.ID, Answers: map[string]string{"1": "A"},
		})
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("err = %v, want ErrPrecondition", err)
		}
	})

	t.Run("section not started", func(t *testing.T) {
		f := newSectionFixture(t)
		if _, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID); err != nil {
			t.Fatalf("Start: %v", err)
		}
		_, err := f.svc.SubmitAnswers(ctx, student, model.SectionReading, dto.SubmitAnswersDTO{
			TestID: f.test.ID, Answers: map[string]string{"1": "B"},
		})
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("err = %v, want ErrPrecondition", err)
		}
	})

	t.Run("another user's attempt is invisible", func(t *testing.T) {
		f := newSectionFixture(t)
		if _, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID); err != nil {
			t.Fatalf("Start: %v", err)
		}
		_, err := f.svc.SubmitAnswers(ctx, otherStudent, model.SectionListening, dto.SubmitAnswersDTO{
			TestID: f.test.ID, Answers: map[string]string{"1": "B"},
		})
		if !errors.Is(err, ErrPrecondition) {
			t.Fatalf("err = %v, want ErrPrecondition", err)
		}
	})
}

func TestSubmitWritingWithBlankTask(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	start, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.svc.Start(ctx, student, model.SectionWriting, f.test.ID); err != nil {
		t.Fatalf("Start writing: %v", err)
	}

	resp, err := f.svc.SubmitWriting(ctx, student, dto.SubmitWritingDTO{
		TestID:    f.test.ID,
		Task1Text: "",
		Task2Text: "some essay",
		TimeSpent: secs(2400),
	})
	if err != nil {
		t.Fatalf("SubmitWriting: %v", err)
	}
	if resp.AnsweredCount != 1 || resp.UnansweredCount != 1 {
		t.Errorf("answered %d unanswered %d, want 1 1", resp.AnsweredCount, resp.UnansweredCount)
	}
	if *resp.Task1WordCount != 0 || *resp.Task2WordCount != 2 {
		t.Errorf("word counts = %d %d, want 0 2", *resp.Task1WordCount, *resp.Task2WordCount)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0] != "Task 1 is blank" {
		t.Errorf("warnings = %v, want [Task 1 is blank]", resp.Warnings)
	}

	subs := f.store.writingLedger(start.AttemptID)
	if len(subs) != 1 {
		t.Fatalf("stored %d submissions, want 1", len(subs))
	}
	if subs[0].WritingTaskID != f.test.WritingTasks[1].ID {
		t.Errorf("submission bound to task %d, want task 2 (%d)", subs[0].WritingTaskID, f.test.WritingTasks[1].ID)
	}
	if subs[0].WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", subs[0].WordCount)
	}
}

func TestSubmitWritingValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("both tasks blank", func(t *testing.T) {
		f := newSectionFixture(t)
		_, err := f.svc.SubmitWriting(ctx, student, dto.SubmitWritingDTO{TestID: f.test.ID, Task1Text: " ", Task2Text: "\n"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("time spent over an hour", func(t *testing.T) {
		f := newSectionFixture(t)
		_, err := f.svc.SubmitWriting(ctx, student, dto.SubmitWritingDTO{TestID: f.test.ID, Task1Text: "text", TimeSpent: secs(3601)})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("test with one task", func(t *testing.T) {
		f := newSectionFixture(t)
		oneTask := sampleTest(t, true)
		oneTask.WritingTasks = oneTask.WritingTasks[:1]
		test := f.store.seedTest(oneTask)
		if _, err := f.svc.Start(ctx, student, model.SectionListening, test.ID); err != nil {
			t.Fatalf("Start: %v", err)
		}
		if _, err := f.svc.Start(ctx, student, model.SectionWriting, test.ID); err != nil {
			t.Fatalf("Start writing: %v", err)
		}
		_, err := f.svc.SubmitWriting(ctx, student, dto.SubmitWritingDTO{TestID: test.ID, Task1Text: "text"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})
}

func TestAttemptCompletesAfterAllSections(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	start, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, kind := range []model.SectionKind{model.SectionReading, model.SectionWriting} {
		if _, err := f.svc.Start(ctx, student, kind, f.test.ID); err != nil {
			t.Fatalf("Start %s: %v", kind, err)
		}
	}

	// Sections are order independent; submit writing first.
	w, err := f.svc.SubmitWriting(ctx, student, dto.SubmitWritingDTO{TestID: f.test.ID, Task1Text: "a chart", Task2Text: "an essay"})
	if err != nil {
		t.Fatalf("SubmitWriting: %v", err)
	}
	r, err := f.svc.SubmitAnswers(ctx, student, model.SectionReading, dto.SubmitAnswersDTO{TestID: f.test.ID, Answers: map[string]string{"1": "B"}})
	if err != nil {
		t.Fatalf("Submit reading: %v", err)
	}
	if w.AutoCompleted || r.AutoCompleted {
		t.Fatal("attempt completed before every section was submitted")
	}
	if attempt, _ := f.store.attempt(start.AttemptID); attempt.Status != model.AttemptStatusInProgress || attempt.CompletedAt != nil {
		t.Fatalf("attempt = %s completed_at %v, want in_progress", attempt.Status, attempt.CompletedAt)
	}

	f.clock.Advance(time.Minute)
	l, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, dto.SubmitAnswersDTO{TestID: f.test.ID, Answers: map[string]string{"3": "12"}})
	if err != nil {
		t.Fatalf("Submit listening: %v", err)
	}
	if !l.AutoCompleted || l.AttemptStatus != string(model.AttemptStatusCompleted) {
		t.Fatalf("last submit: auto_completed %v status %s", l.AutoCompleted, l.AttemptStatus)
	}
	attempt, _ := f.store.attempt(start.AttemptID)
	if attempt.Status != model.AttemptStatusCompleted || attempt.CompletedAt == nil || !attempt.CompletedAt.Equal(f.clock.Now()) {
		t.Errorf("attempt = %s completed_at %v", attempt.Status, attempt.CompletedAt)
	}
}

func TestSubmitRollsBackWhenAttemptSaveFails(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	start, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	boom := errors.New("connection reset")
	f.store.failNextAttemptSave(boom)
	req := dto.SubmitAnswersDTO{TestID: f.test.ID, Answers: map[string]string{"1": "A", "2": "library"}}
	if _, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, req); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if n := len(f.store.listeningLedger(start.AttemptID)); n != 0 {
		t.Fatalf("ledger kept %d answers after rollback", n)
	}
	if attempt, _ := f.store.attempt(start.AttemptID); attempt.Listening.Submitted {
		t.Fatal("submitted flag survived rollback")
	}

	if _, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, req); err != nil {
		t.Fatalf("retry after rollback: %v", err)
	}
}

func TestLateSubmitIsAccepted(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	if _, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := f.svc.Start(ctx, student, model.SectionReading, f.test.ID); err != nil {
		t.Fatalf("Start reading: %v", err)
	}

	f.clock.Advance(2 * time.Hour)
	resp, err := f.svc.SubmitAnswers(ctx, student, model.SectionReading, dto.SubmitAnswersDTO{
		TestID: f.test.ID, Answers: map[string]string{"1": "B"}, TimeSpent: secs(3600),
	})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if !resp.ExceededTimeLimit {
		t.Error("ExceededTimeLimit = false after two hours")
	}
}

func TestConcurrentSubmitsOnlyOneSucceeds(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()
	start, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	const callers = 8
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.SubmitAnswers(ctx, student, model.SectionListening, dto.SubmitAnswersDTO{
				TestID: f.test.ID, Answers: map[string]string{"1": fmt.Sprintf("answer-%d", i)},
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrAlreadySubmitted):
		default:
			t.Errorf("unexpected error %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("%d submits succeeded, want exactly 1", succeeded)
	}
	if n := len(f.store.listeningLedger(start.AttemptID)); n != 1 {
		t.Fatalf("ledger has %d answers, want 1", n)
	}
}

func TestConcurrentFirstStartsShareOneAttempt(t *testing.T) {
	f := newSectionFixture(t)
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	ids := make(chan uint, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := f.svc.Start(ctx, student, model.SectionListening, f.test.ID)
			if err != nil {
				t.Errorf("Start: %v", err)
				return
			}
			ids <- resp.AttemptID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[uint]bool{}
	for id := range ids {
		seen[id] = true
	}
	if len(seen) != 1 || f.store.attemptCount() != 1 {
		t.Fatalf("attempt ids %v, stored %d, want one attempt", seen, f.store.attemptCount())
	}
}

package model

import "time"

type AttemptStatus string

const (
	AttemptStatusInProgress AttemptStatus = "in_progress"
	AttemptStatusCompleted  AttemptStatus = "completed"
)

type SectionKind string

const (
	SectionListening SectionKind = "listening"
	SectionReading   SectionKind = "reading"
	SectionWriting   SectionKind = "writing"
)

var SectionKinds = []SectionKind{SectionListening, SectionReading, SectionWriting}

func (k SectionKind) Valid() bool {
	switch k {
	case SectionListening, SectionReading, SectionWriting:
		return true
	}
	return false
}

// SectionProgress is one section's start/submit state inside an attempt.
// NOT_STARTED: StartedAt nil. STARTED: StartedAt set. SUBMITTED: Submitted true (terminal).
type SectionProgress struct {
	StartedAt   *time.Time `json:"started_at,omitempty"`
	Submitted   bool       `json:"submitted" gorm:"not null;default:false"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	TimeSpent   int        `json:"time_spent" gorm:"not null;default:0"` // seconds, client reported
}

// TestAttempt is one user's single engagement with one test.
type TestAttempt struct {
	ID     uint          `gorm:"primarykey" json:"id"`
	UserID uint          `json:"user_id" gorm:"not null;uniqueIndex:idx_test_attempts_user_test"`
	TestID uint          `json:"test_id" gorm:"not null;uniqueIndex:idx_test_attempts_user_test;index"`
	Test   Test          `json:"test,omitempty" gorm:"foreignKey:TestID"`
	Status AttemptStatus `json:"status" gorm:"type:varchar(20);not null;default:'in_progress';index"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Listening SectionProgress `json:"listening" gorm:"embedded;embeddedPrefix:listening_"`
	Reading   SectionProgress `json:"reading" gorm:"embedded;embeddedPrefix:reading_"`
	Writing   SectionProgress `json:"writing" gorm:"embedded;embeddedPrefix:writing_"`

	ListeningBand *float64 `json:"listening_band,omitempty" gorm:"type:numeric(2,1)"`
	ReadingBand   *float64 `json:"reading_band,omitempty" gorm:"type:numeric(2,1)"`
	WritingBand   *float64 `json:"writing_band,omitempty" gorm:"type:numeric(2,1)"`
	OverallBand   *float64 `json:"overall_band,omitempty" gorm:"type:numeric(2,1)"`

	GradedBy       *uint      `json:"graded_by,omitempty"`
	GradedAt       *time.Time `json:"graded_at,omitempty" gorm:"index"`
	TeacherComment string     `json:"teacher_comment,omitempty" gorm:"type:text"`

	ListeningAnswers   []ListeningAnswer   `json:"listening_answers,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ReadingAnswers     []ReadingAnswer     `json:"reading_answers,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	WritingSubmissions []WritingSubmission `json:"writing_submissions,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewTestAttempt(userID, testID uint, now time.Time) *TestAttempt {
	return &TestAttempt{
		UserID:    userID,
		TestID:    testID,
		Status:    AttemptStatusInProgress,
		StartedAt: now,
	}
}

// Progress returns a pointer into the attempt for the given section, or nil
// for an unknown kind.
func (a *TestAttempt) Progress(kind SectionKind) *SectionProgress {
	switch kind {
	case SectionListening:
		return &a.Listening
	case SectionReading:
		return &a.Reading
	case SectionWriting:
		return &a.Writing
	}
	return nil
}

// MarkStarted stamps the section start on the first call only and reports
// whether the stamp was newly set.
func (a *TestAttempt) MarkStarted(kind SectionKind, now time.Time) bool {
	p := a.Progress(kind)
	if p == nil || p.StartedAt != nil {
		return false
	}
	p.StartedAt = &now
	return true
}

func (a *TestAttempt) MarkSubmitted(kind SectionKind, now time.Time, timeSpent int) {
	p := a.Progress(kind)
	if p == nil {
		return
	}
	p.Submitted = true
	p.SubmittedAt = &now
	p.TimeSpent = timeSpent
}

func (a *TestAttempt) AllSectionsSubmitted() bool {
	return a.Listening.Submitted && a.Reading.Submitted && a.Writing.Submitted
}

// CompleteIfReady moves the attempt to completed once every section is
// submitted. It reports true only on the transition itself.
func (a *TestAttempt) CompleteIfReady(now time.Time) bool {
	if a.Status == AttemptStatusCompleted || !a.AllSectionsSubmitted() {
		return false
	}
	a.Status = AttemptStatusCompleted
	a.CompletedAt = &now
	return true
}

func (a *TestAttempt) IsGraded() bool {
	return a.GradedAt != nil
}

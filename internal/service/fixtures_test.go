package service

import (
	"encoding/json"
	"testing"

	"github.com/lshigami/ielts-mock/config"
	"github.com/lshigami/ielts-mock/internal/cache"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/lshigami/ielts-mock/internal/model"
)

var (
	student      = identity.Identity{UserID: 7, Username: "lan", Role: identity.RoleStudent}
	otherStudent = identity.Identity{UserID: 8, Username: "minh", Role: identity.RoleStudent}
	teacher      = identity.Identity{UserID: 100, Username: "ms.ha", Role: identity.RoleTeacher}
)

func completionContent(t *testing.T, text, correct string) model.QuestionContent {
	t.Helper()
	answer, _ := json.Marshal(correct)
	content, err := model.NewQuestionContent(text, model.QuestionTypeCompletion, json.RawMessage(`{"word_limit":2}`), answer, 1, "")
	if err != nil {
		t.Fatalf("NewQuestionContent: %v", err)
	}
	return content
}

func choiceContent(t *testing.T, text, correct string) model.QuestionContent {
	t.Helper()
	answer, _ := json.Marshal(correct)
	content, err := model.NewQuestionContent(text, model.QuestionTypeMultipleChoice, json.RawMessage(`{"options":["A","B","C"]}`), answer, 1, "see paragraph B")
	if err != nil {
		t.Fatalf("NewQuestionContent: %v", err)
	}
	return content
}

// sampleTest has two listening sections (600s + 900s of audio) holding
// questions 1-2 and 3, one reading passage with questions 1-3 and both
// writing tasks.
func sampleTest(t *testing.T, published bool) model.Test {
	t.Helper()
	return model.Test{
		Title:           "Cambridge 18 Test 1",
		DifficultyLevel: "intermediate",
		IsPublished:     published,
		ListeningSections: []model.ListeningSection{
			{
				SectionNumber: 1,
				AudioURL:      "s3://audio/c18t1s1.mp3",
				AudioDuration: 600,
				Questions: []model.ListeningQuestion{
					{QuestionNumber: 1, QuestionContent: choiceContent(t, "Where does the speaker work?", "A")},
					{QuestionNumber: 2, QuestionContent: completionContent(t, "The meeting is held in the ____", "library")},
				},
			},
			{
				SectionNumber: 2,
				AudioURL:      "s3://audio/c18t1s2.mp3",
				AudioDuration: 900,
				Questions: []model.ListeningQuestion{
					{QuestionNumber: 3, QuestionContent: completionContent(t, "Tickets cost ____ pounds", "12")},
				},
			},
		},
		ReadingPassages: []model.ReadingPassage{
			{
				PassageNumber: 1,
				Title:         "Urban farming",
				PassageText:   "In Paris a rooftop farm grows vegetables.",
				Questions: []model.ReadingQuestion{
					{QuestionNumber: 1, QuestionContent: choiceContent(t, "What is grown?", "B")},
					{QuestionNumber: 2, QuestionContent: completionContent(t, "The farm is on a ____", "rooftop")},
					{QuestionNumber: 3, QuestionContent: completionContent(t, "The city is ____", "Paris")},
				},
			},
		},
		WritingTasks: []model.WritingTask{
			{TaskNumber: 1, TaskType: model.WritingTaskType1, PromptText: "Describe the chart."},
			{TaskNumber: 2, TaskType: model.WritingTaskType2, PromptText: "Discuss both views."},
		},
	}
}

func newTestContentCache() *cache.ContentCache {
	return cache.NewContentCache(nil, &config.Config{})
}

type sectionFixture struct {
	store *fakeStore
	clock *fixedClock
	svc   SectionService
	test  *model.Test
}

func newSectionFixture(t *testing.T) *sectionFixture {
	t.Helper()
	store := newFakeStore()
	clk := newFixedClock()
	test := store.seedTest(sampleTest(t, true))
	return &sectionFixture{
		store: store,
		clock: clk,
		svc:   NewSectionService(store, newTestContentCache(), clk),
		test:  test,
	}
}

package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lshigami/ielts-mock/internal/model"
	"github.com/lshigami/ielts-mock/internal/repository"
)

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeState struct {
	nextID           uint
	tests            map[uint]*model.Test
	attempts         map[uint]model.TestAttempt
	listeningAnswers map[uint][]model.ListeningAnswer
	readingAnswers   map[uint][]model.ReadingAnswer
	writingSubs      map[uint][]model.WritingSubmission
}

func (st *fakeState) id() uint {
	st.nextID++
	return st.nextID
}

func (st *fakeState) clone() *fakeState {
	c := &fakeState{
		nextID:           st.nextID,
		tests:            make(map[uint]*model.Test, len(st.tests)),
		attempts:         make(map[uint]model.TestAttempt, len(st.attempts)),
		listeningAnswers: make(map[uint][]model.ListeningAnswer, len(st.listeningAnswers)),
		readingAnswers:   make(map[uint][]model.ReadingAnswer, len(st.readingAnswers)),
		writingSubs:      make(map[uint][]model.WritingSubmission, len(st.writingSubs)),
	}
	for id, t := range st.tests {
		c.tests[id] = cloneTest(t)
	}
	for id, a := range st.attempts {
		c.attempts[id] = a
	}
	for id, rows := range st.listeningAnswers {
		c.listeningAnswers[id] = append([]model.ListeningAnswer(nil), rows...)
	}
	for id, rows := range st.readingAnswers {
		c.readingAnswers[id] = append([]model.ReadingAnswer(nil), rows...)
	}
	for id, rows := range st.writingSubs {
		c.writingSubs[id] = append([]model.WritingSubmission(nil), rows...)
	}
	return c
}

func cloneTest(t *model.Test) *model.Test {
	c := *t
	c.ListeningSections = make([]model.ListeningSection, len(t.ListeningSections))
	for i, s := range t.ListeningSections {
		s.Questions = append([]model.ListeningQuestion(nil), s.Questions...)
		c.ListeningSections[i] = s
	}
	c.ReadingPassages = make([]model.ReadingPassage, len(t.ReadingPassages))
	for i, p := range t.ReadingPassages {
		p.Questions = append([]model.ReadingQuestion(nil), p.Questions...)
		c.ReadingPassages[i] = p
	}
	c.WritingTasks = append([]model.WritingTask(nil), t.WritingTasks...)
	return &c
}

// fakeStore is an in-memory repository.Store. Transactions run one at a time
// and restore the previous state when fn fails.
type fakeStore struct {
	txMu  *sync.Mutex
	mu    *sync.Mutex
	state *fakeState

	// saveAttemptErr makes the next attempt Save fail once. It is not part of
	// the rolled back state.
	saveAttemptErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		txMu: &sync.Mutex{},
		mu:   &sync.Mutex{},
		state: &fakeState{
			tests:            make(map[uint]*model.Test),
			attempts:         make(map[uint]model.TestAttempt),
			listeningAnswers: make(map[uint][]model.ListeningAnswer),
			readingAnswers:   make(map[uint][]model.ReadingAnswer),
			writingSubs:      make(map[uint][]model.WritingSubmission),
		},
	}
}

func (s *fakeStore) Tests() repository.TestRepository           { return &fakeTestRepo{s} }
func (s *fakeStore) Questions() repository.QuestionRepository   { return &fakeQuestionRepo{s} }
func (s *fakeStore) Attempts() repository.TestAttemptRepository { return &fakeAttemptRepo{s} }
func (s *fakeStore) Answers() repository.AnswerRepository       { return &fakeAnswerRepo{s} }

func (s *fakeStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.state.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		*s.state = *snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// seedTest stores a test with its content and assigns ids to everything.
func (s *fakeStore) seedTest(t model.Test) *model.Test {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	t.ID = st.id()
	for i := range t.ListeningSections {
		sec := &t.ListeningSections[i]
		sec.ID = st.id()
		sec.TestID = t.ID
		for j := range sec.Questions {
			sec.Questions[j].ID = st.id()
			sec.Questions[j].SectionID = sec.ID
			if sec.Questions[j].QuestionNumber >= sec.NextQuestionNumber {
				sec.NextQuestionNumber = sec.Questions[j].QuestionNumber + 1
			}
		}
	}
	for i := range t.ReadingPassages {
		p := &t.ReadingPassages[i]
		p.ID = st.id()
		p.TestID = t.ID
		for j := range p.Questions {
			p.Questions[j].ID = st.id()
			p.Questions[j].PassageID = p.ID
			if p.Questions[j].QuestionNumber >= p.NextQuestionNumber {
				p.NextQuestionNumber = p.Questions[j].QuestionNumber + 1
			}
		}
	}
	for i := range t.WritingTasks {
		t.WritingTasks[i].ID = st.id()
		t.WritingTasks[i].TestID = t.ID
	}
	st.tests[t.ID] = cloneTest(&t)
	return cloneTest(&t)
}

func (s *fakeStore) failNextAttemptSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveAttemptErr = err
}

func (s *fakeStore) attempt(id uint) (model.TestAttempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.state.attempts[id]
	return a, ok
}

func (s *fakeStore) attemptCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.attempts)
}

func (s *fakeStore) listeningLedger(attemptID uint) []model.ListeningAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ListeningAnswer(nil), s.state.listeningAnswers[attemptID]...)
}

func (s *fakeStore) readingLedger(attemptID uint) []model.ReadingAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ReadingAnswer(nil), s.state.readingAnswers[attemptID]...)
}

func (s *fakeStore) writingLedger(attemptID uint) []model.WritingSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.WritingSubmission(nil), s.state.writingSubs[attemptID]...)
}

type fakeTestRepo struct{ s *fakeStore }

func (r *fakeTestRepo) Create(ctx context.Context, test *model.Test) error {
	stored := r.s.seedTest(*test)
	*test = *stored
	return nil
}

func (r *fakeTestRepo) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.state.tests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	plain := *t
	plain.ListeningSections, plain.ReadingPassages, plain.WritingTasks = nil, nil, nil
	return &plain, nil
}

func (r *fakeTestRepo) FindByIDWithContent(ctx context.Context, id uint) (*model.Test, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.state.tests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := cloneTest(t)
	sort.Slice(c.ListeningSections, func(i, j int) bool {
		return c.ListeningSections[i].SectionNumber < c.ListeningSections[j].SectionNumber
	})
	for _, sec := range c.ListeningSections {
		sort.Slice(sec.Questions, func(i, j int) bool { return sec.Questions[i].QuestionNumber < sec.Questions[j].QuestionNumber })
	}
	sort.Slice(c.ReadingPassages, func(i, j int) bool {
		return c.ReadingPassages[i].PassageNumber < c.ReadingPassages[j].PassageNumber
	})
	for _, p := range c.ReadingPassages {
		sort.Slice(p.Questions, func(i, j int) bool { return p.Questions[i].QuestionNumber < p.Questions[j].QuestionNumber })
	}
	sort.Slice(c.WritingTasks, func(i, j int) bool { return c.WritingTasks[i].TaskNumber < c.WritingTasks[j].TaskNumber })
	return c, nil
}

func (r *fakeTestRepo) FindAllWithCounts(ctx context.Context, publishedOnly bool) ([]repository.TestWithCounts, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.TestWithCounts
	for _, t := range r.s.state.tests {
		if publishedOnly && !t.IsPublished {
			continue
		}
		row := repository.TestWithCounts{
			Test:                  *t,
			ListeningSectionCount: len(t.ListeningSections),
			ReadingPassageCount:   len(t.ReadingPassages),
			WritingTaskCount:      len(t.WritingTasks),
		}
		for _, sec := range t.ListeningSections {
			row.QuestionCount += len(sec.Questions)
		}
		for _, p := range t.ReadingPassages {
			row.QuestionCount += len(p.Questions)
		}
		row.Test.ListeningSections, row.Test.ReadingPassages, row.Test.WritingTasks = nil, nil, nil
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTestRepo) SetPublished(ctx context.Context, id uint, published bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.state.tests[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.IsPublished = published
	return nil
}

func (r *fakeTestRepo) SumAudioDuration(ctx context.Context, testID uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := 0
	if t, ok := r.s.state.tests[testID]; ok {
		for _, sec := range t.ListeningSections {
			total += sec.AudioDuration
		}
	}
	return total, nil
}

func (r *fakeTestRepo) ListeningQuestions(ctx context.Context, testID uint) ([]model.ListeningQuestion, error) {
	t, err := r.FindByIDWithContent(ctx, testID)
	if err != nil {
		return nil, nil
	}
	var out []model.ListeningQuestion
	for i := range t.ListeningSections {
		sec := t.ListeningSections[i]
		for _, q := range sec.Questions {
			q.Section = &sec
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeTestRepo) ReadingQuestions(ctx context.Context, testID uint) ([]model.ReadingQuestion, error) {
	t, err := r.FindByIDWithContent(ctx, testID)
	if err != nil {
		return nil, nil
	}
	var out []model.ReadingQuestion
	for i := range t.ReadingPassages {
		p := t.ReadingPassages[i]
		for _, q := range p.Questions {
			q.Passage = &p
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeTestRepo) WritingTasks(ctx context.Context, testID uint) ([]model.WritingTask, error) {
	t, err := r.FindByIDWithContent(ctx, testID)
	if err != nil {
		return nil, nil
	}
	return t.WritingTasks, nil
}

type fakeQuestionRepo struct{ s *fakeStore }

func (r *fakeQuestionRepo) AppendListeningQuestion(ctx context.Context, sectionID uint, question *model.ListeningQuestion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.state.tests {
		for i := range t.ListeningSections {
			sec := &t.ListeningSections[i]
			if sec.ID != sectionID {
				continue
			}
			number, next, err := repository.NextNumber(question.QuestionNumber, sec.NextQuestionNumber)
			if err != nil {
				return err
			}
			for _, q := range sec.Questions {
				if q.QuestionNumber == number {
					return repository.ErrDuplicate
				}
			}
			question.ID = r.s.state.id()
			question.SectionID = sectionID
			question.QuestionNumber = number
			sec.NextQuestionNumber = next
			sec.Questions = append(sec.Questions, *question)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeQuestionRepo) AppendReadingQuestion(ctx context.Context, passageID uint, question *model.ReadingQuestion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.state.tests {
		for i := range t.ReadingPassages {
			p := &t.ReadingPassages[i]
			if p.ID != passageID {
				continue
			}
			number, next, err := repository.NextNumber(question.QuestionNumber, p.NextQuestionNumber)
			if err != nil {
				return err
			}
			for _, q := range p.Questions {
				if q.QuestionNumber == number {
					return repository.ErrDuplicate
				}
			}
			question.ID = r.s.state.id()
			question.PassageID = passageID
			question.QuestionNumber = number
			p.NextQuestionNumber = next
			p.Questions = append(p.Questions, *question)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeAttemptRepo struct{ s *fakeStore }

func (r *fakeAttemptRepo) Ensure(ctx context.Context, userID, testID uint, now time.Time) (*model.TestAttempt, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.state.attempts {
		if a.UserID == userID && a.TestID == testID {
			return &a, false, nil
		}
	}
	a := model.NewTestAttempt(userID, testID, now)
	a.ID = r.s.state.id()
	a.CreatedAt, a.UpdatedAt = now, now
	r.s.state.attempts[a.ID] = *a
	return a, true, nil
}

func (r *fakeAttemptRepo) FindByUserAndTest(ctx context.Context, userID, testID uint, forUpdate bool) (*model.TestAttempt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.state.attempts {
		if a.UserID == userID && a.TestID == testID {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAttemptRepo) FindByID(ctx context.Context, id uint, forUpdate bool) (*model.TestAttempt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.state.attempts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *fakeAttemptRepo) FindByIDWithDetails(ctx context.Context, id uint) (*model.TestAttempt, error) {
	r.s.mu.Lock()
	a, ok := r.s.state.attempts[id]
	if !ok {
		r.s.mu.Unlock()
		return nil, repository.ErrNotFound
	}
	listening := append([]model.ListeningAnswer(nil), r.s.state.listeningAnswers[id]...)
	reading := append([]model.ReadingAnswer(nil), r.s.state.readingAnswers[id]...)
	writing := append([]model.WritingSubmission(nil), r.s.state.writingSubs[id]...)
	r.s.mu.Unlock()

	tests := &fakeTestRepo{r.s}
	if t, err := tests.FindByID(ctx, a.TestID); err == nil {
		a.Test = *t
	}
	lqs, _ := tests.ListeningQuestions(ctx, a.TestID)
	for i := range listening {
		for j := range lqs {
			if lqs[j].ID == listening[i].QuestionID {
				listening[i].Question = &lqs[j]
			}
		}
	}
	rqs, _ := tests.ReadingQuestions(ctx, a.TestID)
	for i := range reading {
		for j := range rqs {
			if rqs[j].ID == reading[i].QuestionID {
				reading[i].Question = &rqs[j]
			}
		}
	}
	tasks, _ := tests.WritingTasks(ctx, a.TestID)
	for i := range writing {
		for j := range tasks {
			if tasks[j].ID == writing[i].WritingTaskID {
				writing[i].Task = &tasks[j]
			}
		}
	}
	a.ListeningAnswers, a.ReadingAnswers, a.WritingSubmissions = listening, reading, writing
	return &a, nil
}

func (r *fakeAttemptRepo) List(ctx context.Context, filter repository.AttemptFilter) ([]model.TestAttempt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.TestAttempt
	for _, a := range r.s.state.attempts {
		if filter.UserID != nil && a.UserID != *filter.UserID {
			continue
		}
		if filter.TestID != nil && a.TestID != *filter.TestID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.Graded != nil && a.IsGraded() != *filter.Graded {
			continue
		}
		if t, ok := r.s.state.tests[a.TestID]; ok {
			a.Test = model.Test{ID: t.ID, Title: t.Title}
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAttemptRepo) Save(ctx context.Context, attempt *model.TestAttempt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.saveAttemptErr; err != nil {
		r.s.saveAttemptErr = nil
		return err
	}
	stored := *attempt
	stored.Test = model.Test{}
	stored.ListeningAnswers, stored.ReadingAnswers, stored.WritingSubmissions = nil, nil, nil
	r.s.state.attempts[stored.ID] = stored
	return nil
}

type fakeAnswerRepo struct{ s *fakeStore }

func (r *fakeAnswerRepo) ReplaceListeningAnswers(ctx context.Context, attemptID uint, answers []model.ListeningAnswer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]model.ListeningAnswer, len(answers))
	for i, a := range answers {
		a.ID = r.s.state.id()
		rows[i] = a
	}
	r.s.state.listeningAnswers[attemptID] = rows
	return nil
}

func (r *fakeAnswerRepo) ReplaceReadingAnswers(ctx context.Context, attemptID uint, answers []model.ReadingAnswer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]model.ReadingAnswer, len(answers))
	for i, a := range answers {
		a.ID = r.s.state.id()
		rows[i] = a
	}
	r.s.state.readingAnswers[attemptID] = rows
	return nil
}

func (r *fakeAnswerRepo) ReplaceWritingSubmissions(ctx context.Context, attemptID uint, submissions []model.WritingSubmission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rows := make([]model.WritingSubmission, len(submissions))
	for i, sub := range submissions {
		sub.ID = r.s.state.id()
		sub.WordCount = model.CountWords(sub.SubmissionText)
		rows[i] = sub
	}
	r.s.state.writingSubs[attemptID] = rows
	return nil
}

package quiz

import (
	"context"
	"errors"
	"testing"
)

type fakeCatalogRepo struct {
	quizzes   []Quiz
	questions map[int64][]Question

	createdName      string
	createdTheme     string
	createdQuestions []QuestionInput
	createCalls      int

	appliedChanges []AvailabilityChange
	updateCalls    int

	deletedIDs []int64
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{questions: make(map[int64][]Question)}
}

func (f *fakeCatalogRepo) CreateQuiz(_ context.Context, name, theme string, questions []QuestionInput) (int64, error) {
	f.createCalls++
	f.createdName = name
	f.createdTheme = theme
	f.createdQuestions = questions
	return int64(len(f.quizzes) + 1), nil
}

func (f *fakeCatalogRepo) ListQuizzes(_ context.Context) ([]Quiz, error) {
	return f.quizzes, nil
}

func (f *fakeCatalogRepo) ListAvailable(_ context.Context) ([]Quiz, error) {
	available := make([]Quiz, 0, len(f.quizzes))
	for _, q := range f.quizzes {
		if q.Dispo == 1 {
			available = append(available, q)
		}
	}
	return available, nil
}

func (f *fakeCatalogRepo) GetQuiz(_ context.Context, id int64) (Quiz, error) {
	for _, q := range f.quizzes {
		if q.ID == id {
			return q, nil
		}
	}
	return Quiz{}, ErrQuizNotFound
}

func (f *fakeCatalogRepo) GetQuizQuestions(_ context.Context, id int64) ([]Question, error) {
	return f.questions[id], nil
}

func (f *fakeCatalogRepo) ListAllQuestions(_ context.Context) ([]Question, error) {
	all := make([]Question, 0)
	for _, questions := range f.questions {
		all = append(all, questions...)
	}
	return all, nil
}

func (f *fakeCatalogRepo) DeleteQuiz(_ context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeCatalogRepo) UpdateAvailability(_ context.Context, changes []AvailabilityChange) error {
	f.updateCalls++
	f.appliedChanges = append(f.appliedChanges, changes...)
	return nil
}

type fakeAnswerRepo struct {
	answeredByUser map[int64][]int64
	records        []AnswerRecord

	createCalls int
	lastRecord  AnswerRecord
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answeredByUser: make(map[int64][]int64)}
}

func (f *fakeAnswerRepo) CreateAnswerRecord(_ context.Context, record AnswerRecord) error {
	f.createCalls++
	f.lastRecord = record
	f.records = append(f.records, record)
	return nil
}

func (f *fakeAnswerRepo) ListAnsweredQuizIDs(_ context.Context, userID int64) ([]int64, error) {
	return f.answeredByUser[userID], nil
}

func (f *fakeAnswerRepo) ListAnswerRecords(_ context.Context) ([]AnswerRecord, error) {
	return f.records, nil
}

type fakeUserDirectory struct {
	idsByUsername map[string]int64
}

func (f *fakeUserDirectory) LookupUserID(_ context.Context, username string) (int64, error) {
	id, ok := f.idsByUsername[username]
	if !ok {
		return 0, ErrUserNotFound
	}
	return id, nil
}

func newTestService(catalog *fakeCatalogRepo, answers *fakeAnswerRepo, users *fakeUserDirectory) *Service {
	if catalog == nil {
		catalog = newFakeCatalogRepo()
	}
	if answers == nil {
		answers = newFakeAnswerRepo()
	}
	if users == nil {
		users = &fakeUserDirectory{idsByUsername: map[string]int64{}}
	}
	service := NewService(catalog, answers, users)
	service.newID = func() string { return "fixed-id" }
	return service
}

func TestCreateRejectsMissingFields(t *testing.T) {
	catalog := newFakeCatalogRepo()
	service := newTestService(catalog, nil, nil)

	cases := []struct {
		name      string
		theme     string
		questions []QuestionInput
	}{
		{"", "horror", []QuestionInput{{Text: "q", Answers: []string{"a"}}}},
		{"   ", "horror", []QuestionInput{{Text: "q", Answers: []string{"a"}}}},
		{"movies", "", []QuestionInput{{Text: "q", Answers: []string{"a"}}}},
		{"movies", "horror", nil},
	}
	for _, tc := range cases {
		_, err := service.Create(context.Background(), tc.name, tc.theme, tc.questions)
		if !errors.Is(err, ErrInvalidQuiz) {
			t.Fatalf("Create(%q, %q) expected ErrInvalidQuiz, got %v", tc.name, tc.theme, err)
		}
	}
	if catalog.createCalls != 0 {
		t.Fatalf("expected no repository writes on invalid input, got %d", catalog.createCalls)
	}
}

func TestCreateDropsBlankAnswersAndEmptyQuestions(t *testing.T) {
	catalog := newFakeCatalogRepo()
	service := newTestService(catalog, nil, nil)

	_, err := service.Create(context.Background(), " movies ", "horror", []QuestionInput{
		{Text: "first", Answers: []string{"yes", "  ", "no"}, CorrectAnswer: "yes"},
		{Text: "all blank", Answers: []string{"", "   "}, CorrectAnswer: ""},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if catalog.createdName != "movies" || catalog.createdTheme != "horror" {
		t.Fatalf("name/theme not trimmed: %q %q", catalog.createdName, catalog.createdTheme)
	}
	if len(catalog.createdQuestions) != 1 {
		t.Fatalf("expected question with only blank answers to be skipped, got %d questions", len(catalog.createdQuestions))
	}
	got := catalog.createdQuestions[0].Answers
	if len(got) != 2 || got[0] != "yes" || got[1] != "no" {
		t.Fatalf("blank answers not filtered: %v", got)
	}
}

func TestUpdateAvailabilityRejectsWholeBatch(t *testing.T) {
	catalog := newFakeCatalogRepo()
	service := newTestService(catalog, nil, nil)

	err := service.UpdateAvailability(context.Background(), []AvailabilityChange{
		{QuizID: 1, Dispo: 1},
		{QuizID: 2, Dispo: 7},
	})
	if !errors.Is(err, ErrInvalidAvailability) {
		t.Fatalf("expected ErrInvalidAvailability, got %v", err)
	}
	if catalog.updateCalls != 0 {
		t.Fatalf("expected no repository call when any entry is invalid, got %d", catalog.updateCalls)
	}

	err = service.UpdateAvailability(context.Background(), nil)
	if !errors.Is(err, ErrInvalidAvailability) {
		t.Fatalf("expected ErrInvalidAvailability for empty batch, got %v", err)
	}
}

func TestUpdateAvailabilityAppliesValidBatch(t *testing.T) {
	catalog := newFakeCatalogRepo()
	service := newTestService(catalog, nil, nil)

	changes := []AvailabilityChange{
		{QuizID: 1, Dispo: 1},
		{QuizID: 2, Dispo: 0},
	}
	if err := service.UpdateAvailability(context.Background(), changes); err != nil {
		t.Fatalf("UpdateAvailability failed: %v", err)
	}
	if catalog.updateCalls != 1 || len(catalog.appliedChanges) != 2 {
		t.Fatalf("batch not forwarded as one call: calls=%d changes=%v", catalog.updateCalls, catalog.appliedChanges)
	}
}

func TestUnansweredFiltersAnsweredAndHiddenQuizzes(t *testing.T) {
	catalog := newFakeCatalogRepo()
	catalog.quizzes = []Quiz{
		{ID: 1, Name: "first", Dispo: 1},
		{ID: 2, Name: "second", Dispo: 1},
		{ID: 3, Name: "hidden", Dispo: 0},
		{ID: 4, Name: "fourth", Dispo: 1},
	}
	answers := newFakeAnswerRepo()
	answers.answeredByUser[42] = []int64{2}
	users := &fakeUserDirectory{idsByUsername: map[string]int64{"alice": 42}}
	service := newTestService(catalog, answers, users)

	got, err := service.Unanswered(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Unanswered failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 4 {
		t.Fatalf("unexpected unanswered quizzes: %+v", got)
	}
}

func TestUnansweredEmptyWhenEverythingAnswered(t *testing.T) {
	catalog := newFakeCatalogRepo()
	catalog.quizzes = []Quiz{{ID: 1, Dispo: 1}}
	answers := newFakeAnswerRepo()
	answers.answeredByUser[42] = []int64{1}
	users := &fakeUserDirectory{idsByUsername: map[string]int64{"alice": 42}}
	service := newTestService(catalog, answers, users)

	got, err := service.Unanswered(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Unanswered failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}

func TestUnansweredUnknownUser(t *testing.T) {
	service := newTestService(nil, nil, &fakeUserDirectory{idsByUsername: map[string]int64{}})

	_, err := service.Unanswered(context.Background(), "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	answers := newFakeAnswerRepo()
	users := &fakeUserDirectory{idsByUsername: map[string]int64{"alice": 42}}
	service := newTestService(nil, answers, users)

	cases := []struct {
		username string
		quizID   int64
		answers  []string
	}{
		{"alice", 1, nil},
		{"", 1, []string{"a"}},
		{"   ", 1, []string{"a"}},
		{"alice", 0, []string{"a"}},
	}
	for _, tc := range cases {
		err := service.Submit(context.Background(), tc.username, tc.quizID, tc.answers)
		if !errors.Is(err, ErrInvalidSubmission) {
			t.Fatalf("Submit(%q, %d, %v) expected ErrInvalidSubmission, got %v", tc.username, tc.quizID, tc.answers, err)
		}
	}
	if answers.createCalls != 0 {
		t.Fatalf("expected no records from invalid submissions, got %d", answers.createCalls)
	}
}

func TestSubmitRecordsAnswersInOrder(t *testing.T) {
	answers := newFakeAnswerRepo()
	users := &fakeUserDirectory{idsByUsername: map[string]int64{"alice": 42}}
	service := newTestService(nil, answers, users)

	submitted := []string{"b", "a", "c"}
	if err := service.Submit(context.Background(), "alice", 7, submitted); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	record := answers.lastRecord
	if record.ID != "fixed-id" || record.UserID != 42 || record.QuizID != 7 {
		t.Fatalf("unexpected record: %+v", record)
	}
	if len(record.Answers) != 3 || record.Answers[0] != "b" || record.Answers[1] != "a" || record.Answers[2] != "c" {
		t.Fatalf("answer order not preserved: %v", record.Answers)
	}
	if record.SubmittedAt.IsZero() {
		t.Fatalf("expected submission timestamp to be set")
	}
}

func TestSubmitAllowsRepeatSubmissions(t *testing.T) {
	answers := newFakeAnswerRepo()
	users := &fakeUserDirectory{idsByUsername: map[string]int64{"alice": 42}}
	service := newTestService(nil, answers, users)

	if err := service.Submit(context.Background(), "alice", 7, []string{"a"}); err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	if err := service.Submit(context.Background(), "alice", 7, []string{"b"}); err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}
	if answers.createCalls != 2 {
		t.Fatalf("expected two records for repeat submissions, got %d", answers.createCalls)
	}
}

func TestResultsEmpty(t *testing.T) {
	service := newTestService(nil, nil, nil)

	_, err := service.Results(context.Background())
	if !errors.Is(err, ErrNoAnswers) {
		t.Fatalf("expected ErrNoAnswers, got %v", err)
	}
}

func TestResultsIncludesRecordsAndQuestions(t *testing.T) {
	catalog := newFakeCatalogRepo()
	catalog.questions[1] = []Question{{ID: 10, QuizID: 1, Text: "q1"}}
	answers := newFakeAnswerRepo()
	answers.records = []AnswerRecord{{ID: "r1", UserID: 42, QuizID: 1, Answers: []string{"a"}}}
	service := newTestService(catalog, answers, nil)

	dump, err := service.Results(context.Background())
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(dump.Records) != 1 || dump.Records[0].ID != "r1" {
		t.Fatalf("unexpected records: %+v", dump.Records)
	}
	if len(dump.Questions) != 1 || dump.Questions[0].ID != 10 {
		t.Fatalf("unexpected questions: %+v", dump.Questions)
	}
}

func TestGetCombinesQuizAndQuestions(t *testing.T) {
	catalog := newFakeCatalogRepo()
	catalog.quizzes = []Quiz{{ID: 1, Name: "movies", Theme: "horror", Dispo: 1}}
	catalog.questions[1] = []Question{{ID: 10, QuizID: 1, Text: "q1"}}
	service := newTestService(catalog, nil, nil)

	got, err := service.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "movies" || len(got.Questions) != 1 {
		t.Fatalf("unexpected quiz: %+v", got)
	}

	_, err = service.Get(context.Background(), 999)
	if !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

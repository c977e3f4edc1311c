package quiz

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	catalog CatalogRepository
	answers AnswerRepository
	users   UserDirectory
	newID   func() string
}

func NewService(catalog CatalogRepository, answers AnswerRepository, users UserDirectory) *Service {
	return &Service{
		catalog: catalog,
		answers: answers,
		users:   users,
		newID:   uuid.NewString,
	}
}

// Create inserts a quiz with its questions. Candidate answers that are blank
// after trimming are dropped, and a question left with no candidates is
// skipped rather than rejected, so the stored quiz can end up with fewer
// questions than submitted.
func (s *Service) Create(ctx context.Context, name, theme string, questions []QuestionInput) (int64, error) {
	name = strings.TrimSpace(name)
	theme = strings.TrimSpace(theme)
	if name == "" || theme == "" || len(questions) == 0 {
		return 0, ErrInvalidQuiz
	}

	kept := make([]QuestionInput, 0, len(questions))
	for _, question := range questions {
		answers := make([]string, 0, len(question.Answers))
		for _, answer := range question.Answers {
			if strings.TrimSpace(answer) == "" {
				continue
			}
			answers = append(answers, answer)
		}
		if len(answers) == 0 {
			continue
		}
		kept = append(kept, QuestionInput{
			Text:          question.Text,
			Answers:       answers,
			CorrectAnswer: question.CorrectAnswer,
		})
	}

	return s.catalog.CreateQuiz(ctx, name, theme, kept)
}

func (s *Service) List(ctx context.Context) ([]Quiz, error) {
	return s.catalog.ListQuizzes(ctx)
}

func (s *Service) Available(ctx context.Context) ([]Quiz, error) {
	return s.catalog.ListAvailable(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (QuizWithQuestions, error) {
	q, err := s.catalog.GetQuiz(ctx, id)
	if err != nil {
		return QuizWithQuestions{}, err
	}

	questions, err := s.catalog.GetQuizQuestions(ctx, id)
	if err != nil {
		return QuizWithQuestions{}, err
	}

	return QuizWithQuestions{Quiz: q, Questions: questions}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.catalog.DeleteQuiz(ctx, id)
}

// UpdateAvailability validates every entry before any row is touched: one
// invalid dispo value fails the whole batch and no quiz is updated.
func (s *Service) UpdateAvailability(ctx context.Context, changes []AvailabilityChange) error {
	if len(changes) == 0 {
		return ErrInvalidAvailability
	}
	for _, change := range changes {
		if change.QuizID <= 0 || (change.Dispo != 0 && change.Dispo != 1) {
			return ErrInvalidAvailability
		}
	}
	return s.catalog.UpdateAvailability(ctx, changes)
}

// Unanswered returns the available quizzes the user has not yet answered, in
// catalog order. A quiz with dispo=0 is excluded regardless of answer status.
func (s *Service) Unanswered(ctx context.Context, username string) ([]Quiz, error) {
	userID, err := s.users.LookupUserID(ctx, username)
	if err != nil {
		return nil, err
	}

	answeredIDs, err := s.answers.ListAnsweredQuizIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	answered := make(map[int64]struct{}, len(answeredIDs))
	for _, id := range answeredIDs {
		answered[id] = struct{}{}
	}

	available, err := s.catalog.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	unanswered := make([]Quiz, 0, len(available))
	for _, q := range available {
		if _, ok := answered[q.ID]; ok {
			continue
		}
		unanswered = append(unanswered, q)
	}
	return unanswered, nil
}

// Submit records the answers as-is. There is no duplicate check here: a
// second submission for the same (user, quiz) pair creates a second record,
// and callers are expected to consult Unanswered first.
func (s *Service) Submit(ctx context.Context, username string, quizID int64, answers []string) error {
	if answers == nil || strings.TrimSpace(username) == "" || quizID <= 0 {
		return ErrInvalidSubmission
	}

	userID, err := s.users.LookupUserID(ctx, username)
	if err != nil {
		return err
	}

	return s.answers.CreateAnswerRecord(ctx, AnswerRecord{
		ID:          s.newID(),
		UserID:      userID,
		QuizID:      quizID,
		Answers:     answers,
		SubmittedAt: time.Now().UTC(),
	})
}

// Results returns every answer record together with the question catalog.
func (s *Service) Results(ctx context.Context) (ResultsDump, error) {
	records, err := s.answers.ListAnswerRecords(ctx)
	if err != nil {
		return ResultsDump{}, err
	}
	if len(records) == 0 {
		return ResultsDump{}, ErrNoAnswers
	}

	questions, err := s.catalog.ListAllQuestions(ctx)
	if err != nil {
		return ResultsDump{}, err
	}

	return ResultsDump{Records: records, Questions: questions}, nil
}

package quiz

import (
	"context"
	"errors"
	"time"
)

var (
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidQuiz         = errors.New("quiz name, theme and questions are required")
	ErrInvalidAvailability = errors.New("availability must be 0 or 1")
	ErrInvalidSubmission   = errors.New("answers, username and quizId are required")
	ErrNoAnswers           = errors.New("no answer records")
)

// Quiz is a named collection of questions gated by the dispo flag
// (1 = offered to users, 0 = hidden).
type Quiz struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Theme string `json:"theme"`
	Dispo int    `json:"dispo"`
}

type Question struct {
	ID            int64    `json:"id"`
	QuizID        int64    `json:"quizId"`
	Text          string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type QuizWithQuestions struct {
	Quiz
	Questions []Question `json:"questions"`
}

// AnswerRecord is one user's submitted answers to one quiz. The answer list
// is stored as an opaque, order-preserving blob.
type AnswerRecord struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"userId"`
	QuizID      int64     `json:"quizId"`
	Answers     []string  `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type QuestionInput struct {
	Text          string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type AvailabilityChange struct {
	QuizID int64 `json:"quizId"`
	Dispo  int   `json:"dispo"`
}

// ResultsDump pairs every answer record with the full question catalog so a
// grader can score submissions offline.
type ResultsDump struct {
	Records   []AnswerRecord `json:"answers"`
	Questions []Question     `json:"questions"`
}

type CatalogRepository interface {
	// CreateQuiz inserts the quiz row and all question rows atomically.
	CreateQuiz(ctx context.Context, name, theme string, questions []QuestionInput) (int64, error)
	ListQuizzes(ctx context.Context) ([]Quiz, error)
	ListAvailable(ctx context.Context) ([]Quiz, error)
	GetQuiz(ctx context.Context, id int64) (Quiz, error)
	GetQuizQuestions(ctx context.Context, id int64) ([]Question, error)
	// ListAllQuestions returns the full question catalog, including rows
	// orphaned by a quiz deletion.
	ListAllQuestions(ctx context.Context) ([]Question, error)
	// DeleteQuiz removes the quiz row only; question rows are left behind.
	DeleteQuiz(ctx context.Context, id int64) error
	// UpdateAvailability applies the whole batch in one transaction.
	UpdateAvailability(ctx context.Context, changes []AvailabilityChange) error
}

type AnswerRepository interface {
	CreateAnswerRecord(ctx context.Context, record AnswerRecord) error
	ListAnsweredQuizIDs(ctx context.Context, userID int64) ([]int64, error)
	ListAnswerRecords(ctx context.Context) ([]AnswerRecord, error)
}

// UserDirectory resolves usernames to ids; implementations return
// ErrUserNotFound when no user matches.
type UserDirectory interface {
	LookupUserID(ctx context.Context, username string) (int64, error)
}

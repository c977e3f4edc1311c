package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/navalnorth/back-chillz/internal/quiz"
)

// CreateQuiz inserts the quiz row and its question rows in one transaction:
// a failure on any question rolls back the quiz itself, so no orphaned quiz
// without questions can survive a partial insert.
func (s *Store) CreateQuiz(ctx context.Context, name, theme string, questions []quiz.QuestionInput) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(
		ctx,
		`INSERT INTO quizzes (name, theme, dispo) VALUES (?, ?, 0)`,
		name,
		theme,
	)
	if err != nil {
		return 0, err
	}

	quizID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, question := range questions {
		answersJSON, err := json.Marshal(question.Answers)
		if err != nil {
			return 0, err
		}

		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO questions (quiz_id, question, answers_json, correct_answer) VALUES (?, ?, ?, ?)`,
			quizID,
			question.Text,
			string(answersJSON),
			question.CorrectAnswer,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return quizID, nil
}

func (s *Store) ListQuizzes(ctx context.Context) ([]quiz.Quiz, error) {
	return s.queryQuizzes(ctx, `SELECT id, name, theme, dispo FROM quizzes ORDER BY id ASC`)
}

func (s *Store) ListAvailable(ctx context.Context) ([]quiz.Quiz, error) {
	return s.queryQuizzes(ctx, `SELECT id, name, theme, dispo FROM quizzes WHERE dispo = 1 ORDER BY id ASC`)
}

func (s *Store) GetQuiz(ctx context.Context, id int64) (quiz.Quiz, error) {
	var q quiz.Quiz
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, name, theme, dispo FROM quizzes WHERE id = ?`,
		id,
	).Scan(&q.ID, &q.Name, &q.Theme, &q.Dispo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Quiz{}, quiz.ErrQuizNotFound
		}
		return quiz.Quiz{}, err
	}
	return q, nil
}

func (s *Store) GetQuizQuestions(ctx context.Context, id int64) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, quiz_id, question, answers_json, correct_answer FROM questions WHERE quiz_id = ? ORDER BY id ASC`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// DeleteQuiz removes the quiz row only. Question rows keep their quiz_id and
// become orphans; that matches the contract pinned by the catalog tests.
func (s *Store) DeleteQuiz(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	return err
}

// UpdateAvailability applies the whole batch inside one transaction so a
// failing row leaves every quiz untouched.
func (s *Store) UpdateAvailability(ctx context.Context, changes []quiz.AvailabilityChange) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, change := range changes {
		if _, err := tx.ExecContext(
			ctx,
			`UPDATE quizzes SET dispo = ? WHERE id = ?`,
			change.Dispo,
			change.QuizID,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListAllQuestions returns the full question catalog, quiz order preserved.
func (s *Store) ListAllQuestions(ctx context.Context) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, quiz_id, question, answers_json, correct_answer FROM questions ORDER BY quiz_id ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func (s *Store) queryQuizzes(ctx context.Context, query string) ([]quiz.Quiz, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := make([]quiz.Quiz, 0)
	for rows.Next() {
		var q quiz.Quiz
		if err := rows.Scan(&q.ID, &q.Name, &q.Theme, &q.Dispo); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}

	return quizzes, rows.Err()
}

func scanQuestions(rows *sql.Rows) ([]quiz.Question, error) {
	questions := make([]quiz.Question, 0)
	for rows.Next() {
		var (
			question    quiz.Question
			answersJSON string
		)
		if err := rows.Scan(&question.ID, &question.QuizID, &question.Text, &answersJSON, &question.CorrectAnswer); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(answersJSON), &question.Answers); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

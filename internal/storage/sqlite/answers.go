package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/navalnorth/back-chillz/internal/quiz"
)

// CreateAnswerRecord inserts unconditionally. Duplicate (user, quiz) pairs
// are legal here; the availability filter hides already-answered quizzes at
// read time instead.
func (s *Store) CreateAnswerRecord(ctx context.Context, record quiz.AnswerRecord) error {
	answersJSON, err := json.Marshal(record.Answers)
	if err != nil {
		return err
	}

	if record.SubmittedAt.IsZero() {
		record.SubmittedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO answer_records (id, user_id, quiz_id, answers_json, submitted_at_unix) VALUES (?, ?, ?, ?, ?)`,
		record.ID,
		record.UserID,
		record.QuizID,
		string(answersJSON),
		record.SubmittedAt.UnixNano(),
	)
	return err
}

func (s *Store) ListAnsweredQuizIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT DISTINCT quiz_id FROM answer_records WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *Store) ListAnswerRecords(ctx context.Context) ([]quiz.AnswerRecord, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, user_id, quiz_id, answers_json, submitted_at_unix FROM answer_records ORDER BY submitted_at_unix ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]quiz.AnswerRecord, 0)
	for rows.Next() {
		var (
			record          quiz.AnswerRecord
			answersJSON     string
			submittedAtUnix int64
		)
		if err := rows.Scan(&record.ID, &record.UserID, &record.QuizID, &answersJSON, &submittedAtUnix); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(answersJSON), &record.Answers); err != nil {
			return nil, err
		}
		record.SubmittedAt = time.Unix(0, submittedAtUnix).UTC()
		records = append(records, record)
	}

	return records, rows.Err()
}

// LookupUserID resolves a username for the quiz service.
func (s *Store) LookupUserID(ctx context.Context, username string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, quiz.ErrUserNotFound
		}
		return 0, err
	}
	return id, nil
}

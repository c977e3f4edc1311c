package sqlite

import (
	"context"
)

func (s *Store) initSchema(ctx context.Context) error {
	// No FK constraints: deleting a quiz keeps its question rows, and answer
	// records outlive both the quiz and the user. The availability filter is
	// the only place that reconciles answers against the catalog.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			age INTEGER NOT NULL DEFAULT 0,
			role TEXT NOT NULL DEFAULT 'user',
			created_at_unix INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quizzes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			theme TEXT NOT NULL,
			dispo INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quiz_id INTEGER NOT NULL,
			question TEXT NOT NULL,
			answers_json TEXT NOT NULL,
			correct_answer TEXT NOT NULL
		);`,
		// Intentionally no UNIQUE(user_id, quiz_id): duplicate submissions are
		// allowed at this layer and filtered out at read time.
		`CREATE TABLE IF NOT EXISTS answer_records (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL,
			quiz_id INTEGER NOT NULL,
			answers_json TEXT NOT NULL,
			submitted_at_unix INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			movie_id TEXT NOT NULL,
			watched INTEGER NOT NULL,
			rent_or_buy INTEGER NOT NULL,
			created_at_unix INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			movie_id TEXT NOT NULL,
			created_at_unix INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_quiz ON questions(quiz_id);`,
		`CREATE INDEX IF NOT EXISTS idx_answer_records_user ON answer_records(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_history_user ON history(user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

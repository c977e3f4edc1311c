package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/navalnorth/back-chillz/internal/user"
)

func (s *Store) Create(ctx context.Context, u user.User) (int64, error) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if u.Role == "" {
		u.Role = user.DefaultRole
	}

	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO users (username, email, password_hash, first_name, last_name, phone, city, age, role, created_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.Phone,
		u.City,
		u.Age,
		u.Role,
		u.CreatedAt.UnixNano(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, user.ErrDuplicateUsername
		}
		return 0, err
	}
	return result.LastInsertId()
}

func (s *Store) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return s.scanUser(s.db.QueryRowContext(
		ctx,
		`SELECT id, username, email, password_hash, first_name, last_name, phone, city, age, role, created_at_unix
		 FROM users WHERE username = ?`,
		username,
	))
}

func (s *Store) GetByID(ctx context.Context, id int64) (user.User, error) {
	return s.scanUser(s.db.QueryRowContext(
		ctx,
		`SELECT id, username, email, password_hash, first_name, last_name, phone, city, age, role, created_at_unix
		 FROM users WHERE id = ?`,
		id,
	))
}

func (s *Store) List(ctx context.Context) ([]user.User, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, username, email, password_hash, first_name, last_name, phone, city, age, role, created_at_unix
		 FROM users ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		var (
			u             user.User
			createdAtUnix int64
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone, &u.City, &u.Age, &u.Role, &createdAtUnix); err != nil {
			return nil, err
		}
		u.CreatedAt = time.Unix(0, createdAtUnix).UTC()
		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *Store) UpdateProfile(ctx context.Context, id int64, update user.ProfileUpdate) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE users SET username = ?, first_name = ?, last_name = ?, phone = ?, city = ? WHERE id = ?`,
		update.Username,
		update.FirstName,
		update.LastName,
		update.Phone,
		update.City,
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrDuplicateUsername
		}
		return err
	}
	return requireRowAffected(result)
}

func (s *Store) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`,
		passwordHash,
		id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (s *Store) scanUser(row *sql.Row) (user.User, error) {
	var (
		u             user.User
		createdAtUnix int64
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone, &u.City, &u.Age, &u.Role, &createdAtUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	u.CreatedAt = time.Unix(0, createdAtUnix).UTC()
	return u, nil
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

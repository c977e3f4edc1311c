package sqlite

import (
	"context"
	"time"

	"github.com/navalnorth/back-chillz/internal/history"
)

// AddEntry mirrors the pre-insert duplicate check of the original flow: the
// same (user, movie, watched, rentOrBuy) tuple is rejected. Check and insert
// share a transaction so concurrent adds cannot slip a duplicate through.
func (s *Store) AddEntry(ctx context.Context, entry history.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM history WHERE user_id = ? AND movie_id = ? AND watched = ? AND rent_or_buy = ?`,
		entry.UserID,
		entry.MovieID,
		entry.Watched,
		entry.RentOrBuy,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return history.ErrDuplicate
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO history (user_id, movie_id, watched, rent_or_buy, created_at_unix) VALUES (?, ?, ?, ?, ?)`,
		entry.UserID,
		entry.MovieID,
		entry.Watched,
		entry.RentOrBuy,
		time.Now().UTC().UnixNano(),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) ListEntries(ctx context.Context, userID int64) ([]history.Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, user_id, movie_id, watched, rent_or_buy, created_at_unix FROM history WHERE user_id = ? ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]history.Entry, 0)
	for rows.Next() {
		var (
			entry         history.Entry
			createdAtUnix int64
		)
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.MovieID, &entry.Watched, &entry.RentOrBuy, &createdAtUnix); err != nil {
			return nil, err
		}
		entry.CreatedAt = time.Unix(0, createdAtUnix).UTC()
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *Store) AddFavorite(ctx context.Context, favorite history.Favorite) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = ? AND movie_id = ?`,
		favorite.UserID,
		favorite.MovieID,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return history.ErrDuplicate
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO favorites (user_id, movie_id, created_at_unix) VALUES (?, ?, ?)`,
		favorite.UserID,
		favorite.MovieID,
		time.Now().UTC().UnixNano(),
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) ListFavorites(ctx context.Context, userID int64) ([]history.Favorite, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, user_id, movie_id, created_at_unix FROM favorites WHERE user_id = ? ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]history.Favorite, 0)
	for rows.Next() {
		var (
			favorite      history.Favorite
			createdAtUnix int64
		)
		if err := rows.Scan(&favorite.ID, &favorite.UserID, &favorite.MovieID, &createdAtUnix); err != nil {
			return nil, err
		}
		favorite.CreatedAt = time.Unix(0, createdAtUnix).UTC()
		favorites = append(favorites, favorite)
	}

	return favorites, rows.Err()
}

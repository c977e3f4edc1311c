package history

import (
	"context"
	"errors"
	"time"
)

var (
	ErrDuplicate    = errors.New("entry already recorded")
	ErrNoEntries    = errors.New("no entries found")
	ErrInvalidEntry = errors.New("movie id is required")
)

// Entry is one watched/rented movie in a user's history. MovieID is the
// external catalog identifier (imdb id), not a local row.
type Entry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	MovieID   string    `json:"movieId"`
	Watched   int       `json:"watched"`
	RentOrBuy int       `json:"rentOrBuy"`
	CreatedAt time.Time `json:"createdAt"`
}

type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	MovieID   string    `json:"movieId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	// AddEntry rejects an exact duplicate of (user, movie, watched, rentOrBuy)
	// with ErrDuplicate.
	AddEntry(ctx context.Context, entry Entry) error
	ListEntries(ctx context.Context, userID int64) ([]Entry, error)
	// AddFavorite rejects a duplicate (user, movie) pair with ErrDuplicate.
	AddFavorite(ctx context.Context, favorite Favorite) error
	ListFavorites(ctx context.Context, userID int64) ([]Favorite, error)
}

package history

import (
	"context"
	"strings"
)

type Service struct {
	entries Repository
}

func NewService(entries Repository) *Service {
	return &Service{entries: entries}
}

func (s *Service) AddEntry(ctx context.Context, userID int64, movieID string, watched, rentOrBuy int) error {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return ErrInvalidEntry
	}
	if watched != 0 && watched != 1 {
		return ErrInvalidEntry
	}
	if rentOrBuy != 0 && rentOrBuy != 1 {
		return ErrInvalidEntry
	}

	return s.entries.AddEntry(ctx, Entry{
		UserID:    userID,
		MovieID:   movieID,
		Watched:   watched,
		RentOrBuy: rentOrBuy,
	})
}

func (s *Service) ListEntries(ctx context.Context, userID int64) ([]Entry, error) {
	entries, err := s.entries.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

func (s *Service) AddFavorite(ctx context.Context, userID int64, movieID string) error {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return ErrInvalidEntry
	}

	return s.entries.AddFavorite(ctx, Favorite{
		UserID:  userID,
		MovieID: movieID,
	})
}

func (s *Service) ListFavorites(ctx context.Context, userID int64) ([]Favorite, error) {
	favorites, err := s.entries.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return nil, ErrNoEntries
	}
	return favorites, nil
}

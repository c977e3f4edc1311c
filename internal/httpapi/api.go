package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/navalnorth/back-chillz/internal/history"
	"github.com/navalnorth/back-chillz/internal/movies"
	"github.com/navalnorth/back-chillz/internal/quiz"
	"github.com/navalnorth/back-chillz/internal/user"
)

// MovieClient is the slice of the movies client the handlers consume;
// tests substitute a fake.
type MovieClient interface {
	SearchFilmsByTitle(ctx context.Context, title string) ([]json.RawMessage, error)
	SearchSeriesByTitle(ctx context.Context, title string) ([]json.RawMessage, error)
	MovieByID(ctx context.Context, imdbID string) (json.RawMessage, error)
	ActorByID(ctx context.Context, imdbID string) (json.RawMessage, error)
	MoviesByActor(ctx context.Context, actorID string) ([]movies.TitleMatch, error)
}

type API struct {
	users   *user.Service
	quizzes *quiz.Service
	history *history.Service
	movies  MovieClient
	log     *slog.Logger
}

func NewAPI(users *user.Service, quizzes *quiz.Service, historySvc *history.Service, movieClient MovieClient, log *slog.Logger) *API {
	if log == nil {
		log = slog.Default()
	}
	return &API{
		users:   users,
		quizzes: quizzes,
		history: historySvc,
		movies:  movieClient,
		log:     log,
	}
}

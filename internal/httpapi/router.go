package httpapi

import (
	"log/slog"
	"net/http"
)

func NewRouter(api *API, tokens TokenVerifier, log *slog.Logger) http.Handler {
	requireAuth := RequireAuth(tokens)
	authed := func(handler http.HandlerFunc) http.Handler {
		return requireAuth(handler)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/register", api.HandleRegister)
	mux.HandleFunc("POST /api/users/login", api.HandleLogin)
	mux.HandleFunc("GET /api/users/profile/{id}", api.HandleGetProfile)
	mux.Handle("GET /api/users", authed(api.HandleListUsers))
	mux.Handle("PUT /api/users/profile/{id}", authed(api.HandleUpdateProfile))
	mux.Handle("PUT /api/users/password/{id}", authed(api.HandleChangePassword))
	mux.Handle("DELETE /api/users/{id}", authed(api.HandleDeleteUser))

	mux.HandleFunc("POST /quiz/add", api.HandleCreateQuiz)
	mux.HandleFunc("GET /quiz", api.HandleListQuizzes)
	mux.HandleFunc("GET /quiz/dispo/all", api.HandleAvailableQuizzes)
	mux.HandleFunc("GET /quiz/check/{username}", api.HandleUnansweredQuizzes)
	mux.HandleFunc("GET /quiz/finish", api.HandleQuizResults)
	mux.HandleFunc("PUT /quiz/update", api.HandleUpdateAvailability)
	mux.HandleFunc("POST /quiz/submit", api.HandleSubmitAnswers)
	mux.HandleFunc("GET /quiz/{id}", api.HandleGetQuiz)
	mux.HandleFunc("DELETE /quiz/{id}", api.HandleDeleteQuiz)

	mux.Handle("POST /api/historique/{id}", authed(api.HandleAddHistory))
	mux.Handle("GET /api/historique/{id}", authed(api.HandleListHistory))
	mux.Handle("POST /api/favoris/{id}", authed(api.HandleAddFavorite))
	mux.Handle("GET /api/favoris/{id}", authed(api.HandleListFavorites))

	mux.HandleFunc("GET /api/search/film/{title}", api.HandleSearchFilms)
	mux.HandleFunc("GET /api/search/serie/{title}", api.HandleSearchSeries)
	mux.HandleFunc("GET /api/search/film/id/{imdbId}", api.HandleMovieByID)
	mux.HandleFunc("GET /api/search/actor/{imdbId}", api.HandleActorByID)
	mux.HandleFunc("GET /api/search/film/byactor/{imdbId}", api.HandleFilmsByActor)

	return withRequestLogging(log, mux)
}

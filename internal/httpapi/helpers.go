package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/navalnorth/back-chillz/internal/history"
	"github.com/navalnorth/back-chillz/internal/movies"
	"github.com/navalnorth/back-chillz/internal/quiz"
	"github.com/navalnorth/back-chillz/internal/user"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps domain sentinels to responses. Anything unmapped is
// a storage or upstream failure: it is logged with detail and answered with
// a fixed message so internals never reach the client.
func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound), errors.Is(err, quiz.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "user not found"})
	case errors.Is(err, quiz.ErrQuizNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "quiz not found"})
	case errors.Is(err, quiz.ErrNoAnswers):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "no answers recorded yet"})
	case errors.Is(err, history.ErrNoEntries):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "no entries found for this user"})
	case errors.Is(err, movies.ErrNoResults):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "no results found"})
	case errors.Is(err, user.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "incorrect username or password"})
	case errors.Is(err, user.ErrDuplicateUsername):
		writeJSON(w, http.StatusConflict, errorResponse{Message: "username already taken"})
	case errors.Is(err, user.ErrMissingFields),
		errors.Is(err, quiz.ErrInvalidQuiz),
		errors.Is(err, quiz.ErrInvalidAvailability),
		errors.Is(err, quiz.ErrInvalidSubmission),
		errors.Is(err, history.ErrInvalidEntry):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, history.ErrDuplicate):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "already recorded for this user"})
	default:
		a.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func (a *API) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, movies.ErrNoResults) {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "no results found"})
		return
	}
	a.log.Error("movie api request failed", "path", r.URL.Path, "err", err)
	writeJSON(w, http.StatusBadGateway, errorResponse{Message: "error reaching the movie database"})
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeInvalidBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON body"})
}

func pathID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(key))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New(key + " must be a positive integer")
	}
	return id, nil
}

package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (a *API) HandleSearchFilms(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.PathValue("title"))

	results, err := a.movies.SearchFilmsByTitle(r.Context(), title)
	if err != nil {
		a.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

func (a *API) HandleSearchSeries(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.PathValue("title"))

	results, err := a.movies.SearchSeriesByTitle(r.Context(), title)
	if err != nil {
		a.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

func (a *API) HandleMovieByID(w http.ResponseWriter, r *http.Request) {
	imdbID := strings.TrimSpace(r.PathValue("imdbId"))

	result, err := a.movies.MovieByID(r.Context(), imdbID)
	if err != nil {
		a.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: []json.RawMessage{result}})
}

func (a *API) HandleActorByID(w http.ResponseWriter, r *http.Request) {
	imdbID := strings.TrimSpace(r.PathValue("imdbId"))

	result, err := a.movies.ActorByID(r.Context(), imdbID)
	if err != nil {
		a.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: []json.RawMessage{result}})
}

// HandleFilmsByActor lists an actor's films and fetches each film's detail
// record, so one inbound request fans out to several upstream calls. A film
// that fails to resolve is skipped rather than failing the whole response.
func (a *API) HandleFilmsByActor(w http.ResponseWriter, r *http.Request) {
	imdbID := strings.TrimSpace(r.PathValue("imdbId"))

	matches, err := a.movies.MoviesByActor(r.Context(), imdbID)
	if err != nil {
		a.writeUpstreamError(w, r, err)
		return
	}

	films := make([]json.RawMessage, 0, len(matches))
	for _, match := range matches {
		detail, err := a.movies.MovieByID(r.Context(), match.IMDBID)
		if err != nil {
			a.log.Warn("skipping film detail", "imdb_id", match.IMDBID, "err", err)
			continue
		}
		films = append(films, detail)
	}

	writeJSON(w, http.StatusOK, filmsByActorResponse{ActorID: imdbID, Films: films})
}

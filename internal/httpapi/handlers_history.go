package httpapi

import (
	"net/http"
)

func (a *API) HandleAddHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	var request historyRequest
	if err := decodeJSON(r, &request); err != nil {
		writeInvalidBody(w)
		return
	}

	if err := a.history.AddEntry(r.Context(), userID, request.MovieID, request.Watched, request.RentOrBuy); err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "movie added to history"})
}

func (a *API) HandleListHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	entries, err := a.history.ListEntries(r.Context(), userID)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (a *API) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	var request favoriteRequest
	if err := decodeJSON(r, &request); err != nil {
		writeInvalidBody(w)
		return
	}

	if err := a.history.AddFavorite(r.Context(), userID, request.MovieID); err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "movie added to favorites"})
}

func (a *API) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	favorites, err := a.history.ListFavorites(r.Context(), userID)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favorites)
}

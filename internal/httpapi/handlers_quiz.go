package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/navalnorth/back-chillz/internal/quiz"
)

func (a *API) HandleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	var request createQuizRequest
	if err := decodeJSON(r, &request); err != nil {
		writeInvalidBody(w)
		return
	}

	quizID, err := a.quizzes.Create(r.Context(), request.Name, request.Theme, request.Questions)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createQuizResponse{Message: "quiz created", QuizID: quizID})
}

func (a *API) HandleListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := a.quizzes.List(r.Context())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

func (a *API) HandleAvailableQuizzes(w http.ResponseWriter, r *http.Request) {
	available, err := a.quizzes.Available(r.Context())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	if len(available) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "no available quiz found"})
		return
	}
	writeJSON(w, http.StatusOK, available)
}

// HandleUnansweredQuizzes serves the availability filter. An empty result is
// a success, answered with a message body instead of an empty list so
// clients can tell "all done" apart from "unknown user" (404).
func (a *API) HandleUnansweredQuizzes(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PathValue("username"))

	unanswered, err := a.quizzes.Unanswered(r.Context(), username)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	if len(unanswered) == 0 {
		writeJSON(w, http.StatusOK, messageResponse{Message: "user has answered every available quiz"})
		return
	}
	writeJSON(w, http.StatusOK, unanswered)
}

func (a *API) HandleQuizResults(w http.ResponseWriter, r *http.Request) {
	dump, err := a.quizzes.Results(r.Context())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dump)
}

func (a *API) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	quizWithQuestions, err := a.quizzes.Get(r.Context(), id)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizWithQuestions)
}

// HandleDeleteQuiz acknowledges with 200 whether or not the id existed,
// matching the catalog contract.
func (a *API) HandleDeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	if err := a.quizzes.Delete(r.Context(), id); err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("quiz %d deleted", id)})
}

func (a *API) HandleUpdateAvailability(w http.ResponseWriter, r *http.Request) {
	var changes []quiz.AvailabilityChange
	if err := decodeJSON(r, &changes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "body must be an array of {quizId, dispo}"})
		return
	}

	if err := a.quizzes.UpdateAvailability(r.Context(), changes); err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "availability updated"})
}

func (a *API) HandleSubmitAnswers(w http.ResponseWriter, r *http.Request) {
	var request submitRequest
	if err := decodeJSON(r, &request); err != nil {
		writeInvalidBody(w)
		return
	}

	if err := a.quizzes.Submit(r.Context(), request.Username, request.QuizID, request.Answers); err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "answers recorded"})
}

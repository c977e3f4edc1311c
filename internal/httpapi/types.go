package httpapi

import (
	"encoding/json"

	"github.com/navalnorth/back-chillz/internal/quiz"
)

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Age       int    `json:"age"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type profileUpdateRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

type passwordChangeRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type createQuizRequest struct {
	Name      string               `json:"name"`
	Theme     string               `json:"theme"`
	Questions []quiz.QuestionInput `json:"questions"`
}

type createQuizResponse struct {
	Message string `json:"message"`
	QuizID  int64  `json:"quizId"`
}

type submitRequest struct {
	Answers  []string `json:"answers"`
	Username string   `json:"username"`
	QuizID   int64    `json:"quizId"`
}

type historyRequest struct {
	MovieID   string `json:"movieId"`
	Watched   int    `json:"watched"`
	RentOrBuy int    `json:"rentOrBuy"`
}

type favoriteRequest struct {
	MovieID string `json:"movieId"`
}

type searchResponse struct {
	Results []json.RawMessage `json:"results"`
}

type filmsByActorResponse struct {
	ActorID string            `json:"actorId"`
	Films   []json.RawMessage `json:"films"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse keeps a single human-readable message field; internal error
// detail stays in the server log.
type errorResponse struct {
	Message string `json:"message"`
}

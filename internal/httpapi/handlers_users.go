package httpapi

import (
	"net/http"
	"strings"

	"github.com/navalnorth/back-chillz/internal/user"
)

func (a *API) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var request registerRequest
	if err := decodeJSON(r, &request); err != nil {
		writeInvalidBody(w)
		return
	}

	err := a.users.Register(r.Context(), user.RegisterInput{
		Username:  request.Username,
		Email:     request.Email,
		Password:  request.Password,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		City:      request.City,
		Age:       request.Age,
	})
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "user created"})
}

func (a *API) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request loginRequest
	if err := decodeJSON(r, &request); err != nil {
		writeInvalidBody(w)
		return
	}
	if strings.TrimSpace(request.Username) == "" || request.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "username and password are required"})
		return
	}

	token, err := a.users.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Message: "user logged in", Token: token})
}

func (a *API) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := a.users.List(r.Context())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (a *API) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	profile, err := a.users.GetProfile(r.Context(), id)
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (a *API) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	var request profileUpdateRequest
	if err := decodeJSON(r, &request); err != nil {
		writeInvalidBody(w)
		return
	}

	err = a.users.UpdateProfile(r.Context(), id, user.ProfileUpdate{
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		City:      request.City,
	})
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "profile updated"})
}

func (a *API) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	var request passwordChangeRequest
	if err := decodeJSON(r, &request); err != nil {
		writeInvalidBody(w)
		return
	}

	if err := a.users.ChangePassword(r.Context(), id, request.OldPassword, request.NewPassword); err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "password updated"})
}

func (a *API) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	if err := a.users.Delete(r.Context(), id); err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "user deleted"})
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"accountd/app/dto"
	"accountd/app/services"
)

// UserController serves the admin-only user-management routes. The admin gate
// itself lives in middleware; by the time these handlers run the caller has
// already been resolved to a superuser.
type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	views, err := c.Users.GetAllUsers()
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(views)
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	view, err := c.Users.CreateUser(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			writeError(w, http.StatusConflict, err)
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrPasswordTooShort):
			writeError(w, http.StatusBadRequest, err)
		default:
			internalError(w, err)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(view)
}

func (c *UserController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusNotFound, services.ErrUserNotFound)
		return
	}
	var req dto.UpdateUserStatusRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Enabled == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"enabled status is required"}`))
		return
	}
	view, err := c.Users.UpdateUserStatus(uint(id), *req.Enabled)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, services.ErrAdminDisable):
			writeError(w, http.StatusBadRequest, err)
		default:
			internalError(w, err)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: err.Error()})
}

package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"accountd/app/dto"
	"accountd/app/services"
)

type AuthController struct {
	Users *services.UserService
	Auth  *services.AuthService
}

func NewAuthController(users *services.UserService, auth *services.AuthService) *AuthController {
	return &AuthController{Users: users, Auth: auth}
}

// Login checks credentials and mints a bearer token. Every failure mode is a
// bare 401 so the response does not reveal whether the username exists or the
// account is disabled.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		internalError(w, err)
		return
	}
	token, err := c.Auth.CreateToken(u)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.LoginResponse{Token: token, User: dto.NewUserView(u)})
}

// Logout deletes the presented token. It answers 200 even when the header is
// missing or malformed so clients can always treat logout as idempotent.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		_ = c.Auth.DeleteToken(strings.TrimPrefix(authz, "Bearer "))
	}
	w.WriteHeader(http.StatusOK)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	u, err := c.Auth.GetUserByToken(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dto.AuthResponse{User: dto.NewUserView(u)})
}

func internalError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Error: err.Error()})
}

package dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type AuthResponse struct {
	User UserView `json:"user"`
}

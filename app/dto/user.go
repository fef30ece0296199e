package dto

import (
	"time"

	"accountd/app/models"
)

// UserView is the public projection of a user row. The password hash never
// crosses this boundary.
type UserView struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email,omitempty"`
	Enabled     bool      `json:"enabled"`
	IsSuperuser bool      `json:"isSuperuser"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewUserView(u *models.User) UserView {
	return UserView{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Enabled:     u.Enabled,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type UpdateUserStatusRequest struct {
	Enabled *bool `json:"enabled"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

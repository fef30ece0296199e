package services

import (
	"errors"

	"accountd/app/models"
	"accountd/app/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct{ tokens *repo.TokenRepository }

func NewAuthService(tokens *repo.TokenRepository) *AuthService { return &AuthService{tokens: tokens} }

// CreateToken mints an opaque bearer value for the user and persists the
// mapping. The value is a random UUID, so collisions with existing rows are
// not a practical concern; the unique index backstops it regardless.
func (s *AuthService) CreateToken(user *models.User) (string, error) {
	value := uuid.NewString()
	if err := s.tokens.Create(&models.Token{Token: value, UserID: user.ID}); err != nil {
		return "", err
	}
	return value, nil
}

func (s *AuthService) GetUserByToken(value string) (*models.User, error) {
	t, err := s.tokens.FindByToken(value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &t.User, nil
}

// DeleteToken revokes a bearer value. Unknown values are a no-op.
func (s *AuthService) DeleteToken(value string) error {
	return s.tokens.DeleteByToken(value)
}

// IsAdmin reports whether the value belongs to a superuser. Unknown tokens
// are simply not admin tokens.
func (s *AuthService) IsAdmin(value string) bool {
	u, err := s.GetUserByToken(value)
	if err != nil {
		return false
	}
	return u.IsSuperuser
}

package services

import (
	"errors"
	"regexp"

	"accountd/app/dto"
	"accountd/app/models"
	"accountd/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// EnsureAdmin seeds a superuser account on first start so the instance is
// administrable before any user rows exist.
func (s *UserService) EnsureAdmin(username, password string) error {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Username: username, PasswordHash: string(hash), Enabled: true, IsSuperuser: true})
}

// Authenticate verifies a username/password pair. Unknown usernames,
// disabled accounts, and wrong passwords all fail with the same error so the
// response cannot be used to probe which usernames exist.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.Enabled {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) GetAllUsers() ([]dto.UserView, error) {
	users, err := s.users.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]dto.UserView, 0, len(users))
	for i := range users {
		views = append(views, dto.NewUserView(&users[i]))
	}
	return views, nil
}

// CreateUser validates and persists a new enabled, non-superuser account.
// Validation order is fixed: duplicate username, then email shape, then
// password length. Nothing is written until all checks pass.
func (s *UserService) CreateUser(req dto.CreateUserRequest) (*dto.UserView, error) {
	count, err := s.users.CountByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: req.Username, PasswordHash: string(hash), Email: req.Email, Enabled: true}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	view := dto.NewUserView(u)
	return &view, nil
}

// UpdateUserStatus flips the enabled flag. Superusers cannot be disabled.
func (s *UserService) UpdateUserStatus(id uint, enabled bool) (*dto.UserView, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.IsSuperuser && !enabled {
		return nil, ErrAdminDisable
	}
	u.Enabled = enabled
	if err := s.users.Save(u); err != nil {
		return nil, err
	}
	view := dto.NewUserView(u)
	return &view, nil
}

package services

import "errors"

var (
	// login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// token resolution
	ErrTokenNotFound = errors.New("token not found")

	// user management
	ErrUsernameTaken    = errors.New("username already exists")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrUserNotFound     = errors.New("user not found")
	ErrAdminDisable     = errors.New("cannot disable superuser")
)

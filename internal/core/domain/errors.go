package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidRole        = errors.New("invalid role")
	ErrForbidden          = errors.New("access forbidden")
	ErrSessionNotFound    = errors.New("session not found")
)

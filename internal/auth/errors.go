package auth

import "errors"

var (
	ErrMissingField       = errors.New("missing required field")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidInput       = errors.New("invalid hash input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid session token")
	ErrTokenExpired       = errors.New("session token expired")
	ErrUnauthorized       = errors.New("unauthorized")
)

package shared

import "errors"

var (

	// common errors
	ErrNotFound = errors.New("not found")

	// auth-specific errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// request/collaborator errors
	ErrValidation = errors.New("validation error")
	ErrUpstream   = errors.New("upstream failure")
)

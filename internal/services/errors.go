package services

import "errors"

// Sentinel errors returned by the services. Handlers map them to HTTP
// status codes; anything else is an internal failure.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrConflict     = errors.New("already exists")
)

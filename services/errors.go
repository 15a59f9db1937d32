package services

import "errors"

// Operation errors. Handlers match these with errors.Is and map them to HTTP
// statuses; everything else is treated as an internal error.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNameTaken    = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

package services

import "errors"

// Error conditions the handlers classify explicitly. Anything else coming out
// of a service is treated as an unexpected store failure.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateCategory  = errors.New("category name already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedVariants  = errors.New("malformed variants payload")
)

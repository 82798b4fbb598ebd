package service

import "errors"

// Sentinel errors shared by the services. Controllers translate these into
// HTTP statuses; anything else coming out of a service is a datastore
// failure and is sanitized to a 500 at the boundary.
var (
	ErrValidation       = errors.New("validation failed")
	ErrUsernameTaken    = errors.New("username already registered")
	ErrBadCredentials   = errors.New("incorrect username or password")
	ErrInvalidToken     = errors.New("could not validate credentials")
	ErrForbidden        = errors.New("not authorized")
	ErrCartItemNotFound = errors.New("cart item not found")
)

package user

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrNotFound           = errors.New("user not found")
	ErrForbidden          = errors.New("forbidden")
)

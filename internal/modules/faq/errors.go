package faq

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("faq not found")
	ErrForbidden  = errors.New("forbidden")
)

package auth

import "errors"

var (
	ErrInvalidLoginToken  = errors.New("invalid or expired login token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRateLimitExceeded  = errors.New("too many login link requests")
)

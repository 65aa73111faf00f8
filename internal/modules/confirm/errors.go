package confirm

import "errors"

var (
	// ErrNotFound means the event behind the link no longer exists.
	ErrNotFound = errors.New("event not found")
	// ErrNotAssigned means the event exists but the photographer is not
	// (or is no longer) on its assignment list.
	ErrNotAssigned = errors.New("photographer not assigned to event")
)

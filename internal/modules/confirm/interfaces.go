package confirm

import (
	"context"

	"sportshots/internal/domain"
)

type EventRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	SetConfirmation(ctx context.Context, eventID, photographerID string, accepted bool) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

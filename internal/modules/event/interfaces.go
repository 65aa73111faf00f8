package event

import (
	"context"

	"sportshots/internal/domain"
	"sportshots/internal/notify"
	"sportshots/internal/repository"
)

type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f repository.EventFilter, limit, offset int) ([]domain.Event, error)
}

// Notifier is the outbound side effect of create/update. Implementations
// are best effort; the service never inspects the result beyond logging.
type Notifier interface {
	EventCreated(ctx context.Context, e *domain.Event, opts notify.Options) notify.Result
	EventUpdated(ctx context.Context, e *domain.Event, changes []string, opts notify.Options) notify.Result
}

// FeedPublisher pushes back-office activity messages. Optional.
type FeedPublisher interface {
	Publish(kind string, payload any)
}

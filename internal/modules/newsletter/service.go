package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sportshots/internal/domain"
	"sportshots/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("subscriber not found")
)

type SubscriberRepository interface {
	Create(ctx context.Context, s *domain.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	ListActive(ctx context.Context) ([]domain.Subscriber, error)
	Reactivate(ctx context.Context, email string) error
	Deactivate(ctx context.Context, email string) error
}

type Service struct {
	subscribers SubscriberRepository
}

func NewService(subscribers SubscriberRepository) *Service {
	return &Service{subscribers: subscribers}
}

// Subscribe registers an email for broadcasts. Subscribing an address
// that unsubscribed earlier reactivates it; subscribing an already
// active address is a no-op. Both report success to the caller.
func (s *Service) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	email = repository.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}

	sub := &domain.Subscriber{Email: email}
	err := s.subscribers.Create(ctx, sub)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		return nil, err
	}

	if err := s.subscribers.Reactivate(ctx, email); err != nil {
		return nil, err
	}
	return s.subscribers.GetByEmail(ctx, email)
}

func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	email = repository.NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	if _, err := s.subscribers.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.subscribers.Deactivate(ctx, email)
}

func (s *Service) ListActive(ctx context.Context, actor domain.Actor) ([]domain.Subscriber, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.subscribers.ListActive(ctx)
}

package eventtype

import (
	"context"
	"errors"

	"sportshots/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("event type not found")
	ErrForbidden = errors.New("forbidden")
)

type EventTypeRepository interface {
	Create(ctx context.Context, t *domain.EventType) error
	GetByID(ctx context.Context, id string) (*domain.EventType, error)
	List(ctx context.Context) ([]domain.EventType, error)
	Update(ctx context.Context, t *domain.EventType) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	types EventTypeRepository
}

func NewService(types EventTypeRepository) *Service {
	return &Service{types: types}
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, t *domain.EventType) (*domain.EventType, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) List(ctx context.Context) ([]domain.EventType, error) {
	return s.types.List(ctx)
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, id string, name, description, color string) (*domain.EventType, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	t, err := s.types.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if name != "" {
		t.Name = name
	}
	if description != "" {
		t.Description = description
	}
	if color != "" {
		t.Color = color
	}

	if err := s.types.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.types.Delete(ctx, id)
}

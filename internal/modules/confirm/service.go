package confirm

import (
	"context"
	"errors"

	"sportshots/internal/domain"

	"gorm.io/gorm"
)

// PhotographerProfile is the display subset of a user record. Photographer
// accounts deleted after assignment leave dangling ids on events; those
// resolve to a nil profile and the page renders without one.
type PhotographerProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Context is everything the unauthenticated confirmation page needs.
type Context struct {
	Event        *domain.Event             `json:"event"`
	Status       domain.ConfirmationStatus `json:"status"`
	Photographer *PhotographerProfile      `json:"photographer,omitempty"`
}

type Service struct {
	events EventRepository
	users  UserRepository
}

func NewService(events EventRepository, users UserRepository) *Service {
	return &Service{events: events, users: users}
}

// ResolveContext loads the event behind a confirmation link and resolves
// the photographer's current answer. Assignment membership is the only
// thing that grants access: a leftover confirmation entry from a past
// assignment does not.
func (s *Service) ResolveContext(ctx context.Context, eventID, photographerID string) (*Context, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !e.IsAssigned(photographerID) {
		return nil, ErrNotAssigned
	}

	result := &Context{
		Event:  e,
		Status: e.ConfirmationStatusFor(photographerID),
	}

	if p, err := s.users.GetByID(ctx, photographerID); err == nil {
		result.Photographer = &PhotographerProfile{
			ID:        p.ID,
			Name:      p.Name,
			AvatarURL: p.AvatarURL,
		}
	}

	return result, nil
}

// SetConfirmation records the photographer's answer. Membership is
// re-checked so a stale link issued before a reassignment cannot write.
// The write touches only the one map entry; repeating the same answer is
// a no-op and answers may be changed any number of times, last write wins.
func (s *Service) SetConfirmation(ctx context.Context, eventID, photographerID string, accepted bool) (*Context, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !e.IsAssigned(photographerID) {
		return nil, ErrNotAssigned
	}

	if err := s.events.SetConfirmation(ctx, eventID, photographerID, accepted); err != nil {
		return nil, err
	}

	return s.ResolveContext(ctx, eventID, photographerID)
}

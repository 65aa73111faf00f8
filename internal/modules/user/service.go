package user

import (
	"context"
	"errors"

	"sportshots/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// ProvisionPhotographer creates a photographer account on behalf of an
// admin. The optional password gives the account a fallback credential
// next to the magic link.
func (s *Service) ProvisionPhotographer(ctx context.Context, actor domain.Actor, req ProvisionPhotographerRequest) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	u := &domain.User{
		Email:     req.Email,
		Name:      req.Name,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Role:      domain.RolePhotographer,
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) ListPhotographers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	photographers, err := s.users.ListByRole(ctx, domain.RolePhotographer)
	if err != nil {
		return nil, err
	}
	for i := range photographers {
		photographers[i].PasswordHash = ""
	}
	return photographers, nil
}

func (s *Service) UpdatePhotographer(ctx context.Context, actor domain.Actor, id string, req UpdatePhotographerRequest) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		u.AvatarURL = *req.AvatarURL
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

// DeletePhotographer removes the account only. Ids already referenced by
// event assignment lists or confirmation maps stay behind; readers handle
// them defensively.
func (s *Service) DeletePhotographer(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.users.Delete(ctx, id)
}

package auth

import (
	"context"

	"sportshots/internal/domain"
	"sportshots/internal/repository"
)

type UserRepository interface {
	CreateFirstOrRegular(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type LoginTokenRepository interface {
	Create(ctx context.Context, t *repository.LoginToken) error
	GetByHash(ctx context.Context, hash string) (*repository.LoginToken, error)
	GetLatestByEmail(ctx context.Context, email string) (*repository.LoginToken, error)
	MarkUsed(ctx context.Context, id int64) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}

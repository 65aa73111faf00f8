package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"sportshots/internal/domain"
	"sportshots/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service implements passwordless (magic link) login plus an optional
// password credential for staff accounts provisioned by an admin.
type Service struct {
	users    UserRepository
	tokens   LoginTokenRepository
	jwt      jwtService
	mailer   Mailer
	baseURL  string
	pepper   string
	linkTTL  time.Duration
	cooldown time.Duration
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(
	users UserRepository,
	tokens LoginTokenRepository,
	jwt jwtService,
	mailer Mailer,
	baseURL string,
	pepper string,
	linkTTL time.Duration,
	cooldown time.Duration,
) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		jwt:      jwt,
		mailer:   mailer,
		baseURL:  strings.TrimRight(baseURL, "/"),
		pepper:   pepper,
		linkTTL:  linkTTL,
		cooldown: cooldown,
	}
}

// RequestMagicLink issues a single-use login token and emails the link.
// Unknown addresses are accepted the same way as known ones so the
// endpoint does not leak which emails have accounts.
func (s *Service) RequestMagicLink(ctx context.Context, email string) error {
	normalized := repository.NormalizeEmail(email)

	latest, err := s.tokens.GetLatestByEmail(ctx, normalized)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil && latest.CreatedAt.Add(s.cooldown).After(time.Now()) {
		return ErrRateLimitExceeded
	}

	raw, hash, err := generateLoginToken(s.pepper)
	if err != nil {
		return err
	}

	row := &repository.LoginToken{
		Email:     normalized,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(s.linkTTL),
	}
	if err := s.tokens.Create(ctx, row); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/login?token=%s", s.baseURL, url.QueryEscape(raw))
	body := fmt.Sprintf(
		"Click the link below to sign in. It expires in %s and can be used once.\n\n%s\n",
		s.linkTTL, link)

	if err := s.mailer.Send(ctx, normalized, "Your sign-in link", body); err != nil {
		return err
	}
	return nil
}

// ConsumeMagicLink validates a token from an emailed link, creates the
// account on first sign-in, and returns a session token. The very first
// account ever created becomes admin; the promotion happens in the same
// transaction as the insert (reproduced bootstrap rule, see DESIGN.md).
func (s *Service) ConsumeMagicLink(ctx context.Context, token string) (*LoginResult, error) {
	hash := hashLoginToken(token, s.pepper)

	row, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidLoginToken
		}
		return nil, err
	}
	if row.UsedAt != nil || !row.ExpiresAt.After(time.Now()) {
		return nil, ErrInvalidLoginToken
	}

	if err := s.tokens.MarkUsed(ctx, row.ID); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, row.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = &domain.User{
			Email: row.Email,
			Role:  domain.RoleUser,
		}
		if err := s.users.CreateFirstOrRegular(ctx, user); err != nil {
			return nil, err
		}
		log.Printf("auth: first login created user id=%s role=%s", user.ID, user.Role)
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: accessToken}, nil
}

// LoginWithPassword authenticates a provisioned staff account. Accounts
// without a stored credential can only use the magic link.
func (s *Service) LoginWithPassword(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: accessToken}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile is self-service; email is immutable once set.
func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func generateLoginToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashLoginToken(raw, pepper)
	return raw, hash, nil
}

func hashLoginToken(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}

package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"sportshots/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when a subscriber email already exists.
var ErrDuplicateEmail = errors.New("email already subscribed")

type SubscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.Email = NormalizeEmail(s.Email)
	s.SubscribedAt = time.Now()
	s.Active = true

	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var s domain.Subscriber
	tx := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

func (r *SubscriberRepository) ListActive(ctx context.Context) ([]domain.Subscriber, error) {
	var subs []domain.Subscriber
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("subscribed_at ASC").
		Find(&subs).Error
	return subs, err
}

// Reactivate flips an existing subscriber back to active.
func (r *SubscriberRepository) Reactivate(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Model(&domain.Subscriber{}).
		Where("email = ?", NormalizeEmail(email)).
		Updates(map[string]any{"active": true, "unsubscribed_at": nil}).Error
}

func (r *SubscriberRepository) Deactivate(ctx context.Context, email string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.Subscriber{}).
		Where("email = ?", NormalizeEmail(email)).
		Updates(map[string]any{"active": false, "unsubscribed_at": now}).Error
}

// NormalizeEmail is the canonical form used for dedup and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite driver reports constraint failures as plain errors
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

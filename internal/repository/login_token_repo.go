package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// LoginToken is one issued magic-link token, stored hashed.
type LoginToken struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Email     string     `gorm:"column:email;index"`
	TokenHash string     `gorm:"column:token_hash;uniqueIndex"`
	ExpiresAt time.Time  `gorm:"column:expires_at"`
	UsedAt    *time.Time `gorm:"column:used_at"`
	CreatedAt time.Time  `gorm:"column:created_at"`
}

func (LoginToken) TableName() string { return "login_tokens" }

type LoginTokenRepository struct {
	db *gorm.DB
}

func NewLoginTokenRepository(db *gorm.DB) *LoginTokenRepository {
	return &LoginTokenRepository{db: db}
}

func (r *LoginTokenRepository) Create(ctx context.Context, t *LoginToken) error {
	t.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LoginTokenRepository) GetByHash(ctx context.Context, hash string) (*LoginToken, error) {
	var t LoginToken
	tx := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&t)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *LoginTokenRepository) GetLatestByEmail(ctx context.Context, email string) (*LoginToken, error) {
	var t LoginToken
	tx := r.db.WithContext(ctx).
		Where("email = ?", NormalizeEmail(email)).
		Order("created_at DESC").
		First(&t)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *LoginTokenRepository) MarkUsed(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&LoginToken{}).
		Where("id = ?", id).
		Update("used_at", now).Error
}

// DeleteExpired removes tokens past their expiry, used by the cleanup job.
func (r *LoginTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&LoginToken{})
	return tx.RowsAffected, tx.Error
}

package repository

import (
	"context"
	"time"

	"sportshots/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) Create(ctx context.Context, f *domain.FAQ) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FAQRepository) GetByID(ctx context.Context, id string) (*domain.FAQ, error) {
	var f domain.FAQ
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FAQRepository) List(ctx context.Context, status domain.FAQStatus, category string) ([]domain.FAQ, error) {
	q := r.db.WithContext(ctx).Model(&domain.FAQ{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var faqs []domain.FAQ
	err := q.Order("created_at DESC").Find(&faqs).Error
	return faqs, err
}

func (r *FAQRepository) Update(ctx context.Context, f *domain.FAQ) error {
	f.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *FAQRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.FAQ{}).Error
}

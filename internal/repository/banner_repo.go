package repository

import (
	"context"
	"time"

	"sportshots/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

func (r *BannerRepository) Create(ctx context.Context, b *domain.BannerImage) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BannerRepository) GetByID(ctx context.Context, id string) (*domain.BannerImage, error) {
	var b domain.BannerImage
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BannerRepository) List(ctx context.Context) ([]domain.BannerImage, error) {
	var banners []domain.BannerImage
	err := r.db.WithContext(ctx).Order("display_order ASC").Find(&banners).Error
	return banners, err
}

func (r *BannerRepository) CountByType(ctx context.Context, t domain.BannerType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.BannerImage{}).
		Where("type = ?", t).
		Count(&count).Error
	return count, err
}

func (r *BannerRepository) Update(ctx context.Context, b *domain.BannerImage) error {
	b.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.BannerImage{}).Error
}

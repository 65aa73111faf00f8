package banner

import (
	"context"
	"errors"
	"fmt"

	"sportshots/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("banner not found")
	ErrForbidden    = errors.New("forbidden")
	ErrLimitReached = errors.New("banner limit reached")
)

const (
	maxCenterBanners   = 1
	maxParallaxBanners = 4
)

type BannerRepository interface {
	Create(ctx context.Context, b *domain.BannerImage) error
	GetByID(ctx context.Context, id string) (*domain.BannerImage, error)
	List(ctx context.Context) ([]domain.BannerImage, error)
	CountByType(ctx context.Context, t domain.BannerType) (int64, error)
	Update(ctx context.Context, b *domain.BannerImage) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	banners BannerRepository
}

func NewService(banners BannerRepository) *Service {
	return &Service{banners: banners}
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateBannerRequest) (*domain.BannerImage, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	t := domain.BannerType(req.Type)
	if t != domain.BannerCenter && t != domain.BannerParallax {
		return nil, fmt.Errorf("%w: type must be center or parallax", ErrValidation)
	}
	if req.ImageURL == "" {
		return nil, fmt.Errorf("%w: image_url is required", ErrValidation)
	}

	limit := int64(maxParallaxBanners)
	if t == domain.BannerCenter {
		limit = maxCenterBanners
	}
	count, err := s.banners.CountByType(ctx, t)
	if err != nil {
		return nil, err
	}
	if count >= limit {
		return nil, fmt.Errorf("%w: at most %d %s banners allowed", ErrLimitReached, limit, t)
	}

	b := &domain.BannerImage{
		Type:         t,
		DisplayOrder: req.DisplayOrder,
		ScrollStart:  req.ScrollStart,
		ScrollEnd:    req.ScrollEnd,
		ImageURL:     req.ImageURL,
	}
	if err := s.banners.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]domain.BannerImage, error) {
	return s.banners.List(ctx)
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateBannerRequest) (*domain.BannerImage, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	b, err := s.banners.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.DisplayOrder != nil {
		b.DisplayOrder = *req.DisplayOrder
	}
	if req.ScrollStart != nil {
		b.ScrollStart = req.ScrollStart
	}
	if req.ScrollEnd != nil {
		b.ScrollEnd = req.ScrollEnd
	}
	if req.ImageURL != nil {
		b.ImageURL = *req.ImageURL
	}

	if err := s.banners.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.banners.Delete(ctx, id)
}

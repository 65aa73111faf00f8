package repository

import (
	"context"
	"time"

	"sportshots/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventTypeRepository struct {
	db *gorm.DB
}

func NewEventTypeRepository(db *gorm.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

func (r *EventTypeRepository) Create(ctx context.Context, t *domain.EventType) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *EventTypeRepository) GetByID(ctx context.Context, id string) (*domain.EventType, error) {
	var t domain.EventType
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&t)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &t, nil
}

func (r *EventTypeRepository) List(ctx context.Context) ([]domain.EventType, error) {
	var types []domain.EventType
	err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error
	return types, err
}

func (r *EventTypeRepository) Update(ctx context.Context, t *domain.EventType) error {
	t.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *EventTypeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.EventType{}).Error
}

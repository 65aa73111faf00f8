package repository

import (
	"context"
	"time"

	"sportshots/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventFilter narrows List results. Zero values mean "no filter".
type EventFilter struct {
	EventTypeID string
	Country     string
	FromDate    string
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.ConfirmationMap == nil {
		e.ConfirmationMap = map[string]bool{}
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var e domain.Event
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&e)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	e.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(e).Error
}

// Delete removes the event row. Deleting an id that does not exist is not
// an error.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Event{}).Error
}

func (r *EventRepository) List(ctx context.Context, f EventFilter, limit, offset int) ([]domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&domain.Event{})
	if f.EventTypeID != "" {
		q = q.Where("event_type_id = ?", f.EventTypeID)
	}
	if f.Country != "" {
		q = q.Where("country = ?", f.Country)
	}
	if f.FromDate != "" {
		q = q.Where("date >= ?", f.FromDate)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var events []domain.Event
	if err := q.Order("date DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// SetConfirmation writes a single confirmation map entry without touching
// any other event field. The read-modify-write runs in a transaction so
// two photographers answering at once cannot drop each other's entry;
// updated_at is intentionally left alone.
func (r *EventRepository) SetConfirmation(ctx context.Context, eventID, photographerID string, accepted bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e domain.Event
		if err := tx.Where("id = ?", eventID).First(&e).Error; err != nil {
			return err
		}

		if e.ConfirmationMap == nil {
			e.ConfirmationMap = map[string]bool{}
		}
		e.ConfirmationMap[photographerID] = accepted

		// Updating through the struct field runs the json serializer;
		// Select keeps every other column, updated_at included, out of
		// the statement.
		return tx.Model(&e).
			Select("confirmation_map").
			Updates(&e).Error
	})
}

package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"sportshots/internal/domain"
	"sportshots/internal/notify"
	"sportshots/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	events EventRepository
	notifs Notifier
	feed   FeedPublisher
}

func NewService(events EventRepository, notifs Notifier, feed FeedPublisher) *Service {
	return &Service{
		events: events,
		notifs: notifs,
		feed:   feed,
	}
}

// Create validates and persists a new event. Image files are uploaded by
// the upload module before this is called; the request carries URLs only,
// so a failed upload can never leave a half-written event behind.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateEventRequest) (*domain.Event, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if err := validateRequired(req.Title, req.Date, req.Location, req.ImageURL); err != nil {
		return nil, err
	}
	if err := validateDates(req.Date, req.EndDate); err != nil {
		return nil, err
	}

	e := &domain.Event{
		Title:              strings.TrimSpace(req.Title),
		Description:        req.Description,
		Date:               req.Date,
		EndDate:            req.EndDate,
		Time:               req.Time,
		Location:           strings.TrimSpace(req.Location),
		Country:            req.Country,
		EventTypeID:        req.EventTypeID,
		Tags:               dedupe(req.Tags),
		URL:                req.URL,
		NoteToPhotographer: req.NoteToPhotographer,
		GeoSnapshotEmbed:   req.GeoSnapshotEmbed,
		ImageURL:           req.ImageURL,
		BestOfImages:       req.BestOfImages,
		PhotographerIDs:    dedupe(req.PhotographerIDs),
		ConfirmationMap:    map[string]bool{},
	}

	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.EventCreated(ctx, e, notify.Options{
			ConfirmationRequests: req.NotifyPhotographers && len(e.PhotographerIDs) > 0,
			NewsletterBroadcast:  req.NotifySubscribers,
		})
	}
	if s.feed != nil {
		s.feed.Publish("event.created", e)
	}

	return e, nil
}

// Update merges the request into the stored event. The gallery is kept
// unless the caller replaces it; confirmation entries of photographers
// removed from the assignment list survive on purpose.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateEventRequest) (*domain.Event, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	original := *existing
	newImages := applyUpdate(existing, req)

	if err := validateRequired(existing.Title, existing.Date, existing.Location, existing.ImageURL); err != nil {
		return nil, err
	}
	if err := validateDates(existing.Date, existing.EndDate); err != nil {
		return nil, err
	}

	if err := s.events.Update(ctx, existing); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		changes := DetectChanges(&original, existing, newImages)
		_ = s.notifs.EventUpdated(ctx, existing, changes, notify.Options{
			ConfirmationRequests: req.NotifyPhotographers && len(existing.PhotographerIDs) > 0,
			NewsletterBroadcast:  req.NotifySubscribers,
		})
	}
	if s.feed != nil {
		s.feed.Publish("event.updated", existing)
	}

	return existing, nil
}

// Delete removes the event permanently. Deleting an unknown id succeeds;
// the admin UI confirms before calling.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	if s.feed != nil {
		s.feed.Publish("event.deleted", map[string]string{"id": id})
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) List(ctx context.Context, f repository.EventFilter, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.events.List(ctx, f, limit, offset)
}

// applyUpdate merges req into e and reports whether new image URLs were
// attached.
func applyUpdate(e *domain.Event, req UpdateEventRequest) (newImages bool) {
	if req.Title != nil {
		e.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.EndDate != nil {
		e.EndDate = *req.EndDate
	}
	if req.Time != nil {
		e.Time = *req.Time
	}
	if req.Location != nil {
		e.Location = strings.TrimSpace(*req.Location)
	}
	if req.Country != nil {
		e.Country = *req.Country
	}
	if req.EventTypeID != nil {
		e.EventTypeID = *req.EventTypeID
	}
	if req.Tags != nil {
		e.Tags = dedupe(*req.Tags)
	}
	if req.URL != nil {
		e.URL = *req.URL
	}
	if req.NoteToPhotographer != nil {
		e.NoteToPhotographer = *req.NoteToPhotographer
	}
	if req.GeoSnapshotEmbed != nil {
		e.GeoSnapshotEmbed = *req.GeoSnapshotEmbed
	}
	if req.ImageURL != nil && *req.ImageURL != e.ImageURL {
		e.ImageURL = *req.ImageURL
		newImages = true
	}
	if req.BestOfImages != nil {
		if len(*req.BestOfImages) > len(e.BestOfImages) {
			newImages = true
		}
		e.BestOfImages = *req.BestOfImages
	}
	if req.PhotographerIDs != nil {
		e.PhotographerIDs = dedupe(*req.PhotographerIDs)
	}
	return newImages
}

func validateRequired(title, date, location, imageURL string) error {
	if strings.TrimSpace(title) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(date) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(location) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(imageURL) == "" {
		return ErrValidation
	}
	return nil
}

func validateDates(date, endDate string) error {
	start, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return ErrValidation
	}
	if endDate == "" {
		return nil
	}
	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return ErrValidation
	}
	if end.Before(start) {
		return ErrValidation
	}
	return nil
}

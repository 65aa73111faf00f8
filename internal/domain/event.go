package domain

import "time"

// ConfirmationStatus is the tri-state answer of an assigned photographer.
// Absence of a confirmation map entry means pending.
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationDeclined  ConfirmationStatus = "declined"
)

type Event struct {
	ID                 string          `json:"id" gorm:"primaryKey"`
	Title              string          `json:"title" validate:"required"`
	Description        string          `json:"description,omitempty"`
	Date               string          `json:"date" validate:"required"`
	EndDate            string          `json:"end_date,omitempty"`
	Time               string          `json:"time,omitempty"`
	Location           string          `json:"location" validate:"required"`
	Country            string          `json:"country,omitempty"`
	EventTypeID        string          `json:"event_type_id,omitempty"`
	Tags               []string        `json:"tags,omitempty" gorm:"serializer:json"`
	URL                string          `json:"url,omitempty"`
	NoteToPhotographer string          `json:"note_to_photographer,omitempty"`
	GeoSnapshotEmbed   string          `json:"geo_snapshot_embed,omitempty"`
	ImageURL           string          `json:"image_url"`
	BestOfImages       []string        `json:"best_of_images,omitempty" gorm:"serializer:json"`
	PhotographerIDs    []string        `json:"photographer_ids,omitempty" gorm:"serializer:json"`
	ConfirmationMap    map[string]bool `json:"confirmation_map" gorm:"serializer:json"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// IsAssigned reports whether the photographer is on the assignment list.
func (e *Event) IsAssigned(photographerID string) bool {
	for _, id := range e.PhotographerIDs {
		if id == photographerID {
			return true
		}
	}
	return false
}

// ConfirmationStatusFor resolves the tri-state answer for an assigned
// photographer. Callers must check IsAssigned first; for unknown ids this
// simply reports pending.
func (e *Event) ConfirmationStatusFor(photographerID string) ConfirmationStatus {
	accepted, ok := e.ConfirmationMap[photographerID]
	if !ok {
		return ConfirmationPending
	}
	if accepted {
		return ConfirmationConfirmed
	}
	return ConfirmationDeclined
}

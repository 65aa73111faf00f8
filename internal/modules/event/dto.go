package event

type CreateEventRequest struct {
	Title              string   `json:"title" validate:"required"`
	Description        string   `json:"description"`
	Date               string   `json:"date" validate:"required"`
	EndDate            string   `json:"end_date"`
	Time               string   `json:"time"`
	Location           string   `json:"location" validate:"required"`
	Country            string   `json:"country"`
	EventTypeID        string   `json:"event_type_id"`
	Tags               []string `json:"tags"`
	URL                string   `json:"url"`
	NoteToPhotographer string   `json:"note_to_photographer"`
	GeoSnapshotEmbed   string   `json:"geo_snapshot_embed"`
	ImageURL           string   `json:"image_url" validate:"required"`
	BestOfImages       []string `json:"best_of_images"`
	PhotographerIDs    []string `json:"photographer_ids"`

	NotifyPhotographers bool `json:"notify_photographers"`
	NotifySubscribers   bool `json:"notify_subscribers"`
}

// UpdateEventRequest merges into the stored event. Nil pointers leave the
// field untouched; BestOfImages replaces the gallery wholesale when set.
type UpdateEventRequest struct {
	Title              *string   `json:"title"`
	Description        *string   `json:"description"`
	Date               *string   `json:"date"`
	EndDate            *string   `json:"end_date"`
	Time               *string   `json:"time"`
	Location           *string   `json:"location"`
	Country            *string   `json:"country"`
	EventTypeID        *string   `json:"event_type_id"`
	Tags               *[]string `json:"tags"`
	URL                *string   `json:"url"`
	NoteToPhotographer *string   `json:"note_to_photographer"`
	GeoSnapshotEmbed   *string   `json:"geo_snapshot_embed"`
	ImageURL           *string   `json:"image_url"`
	BestOfImages       *[]string `json:"best_of_images"`
	PhotographerIDs    *[]string `json:"photographer_ids"`

	NotifyPhotographers bool `json:"notify_photographers"`
	NotifySubscribers   bool `json:"notify_subscribers"`
}

package domain

import "time"

type FAQStatus string

const (
	FAQPending  FAQStatus = "pending"
	FAQApproved FAQStatus = "approved"
	FAQRejected FAQStatus = "rejected"
)

// FAQTranslation is one cached machine translation of an FAQ entry.
type FAQTranslation struct {
	Title    string `json:"title,omitempty"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
}

type FAQ struct {
	ID             string                    `json:"id" gorm:"primaryKey"`
	Title          string                    `json:"title,omitempty"`
	Question       string                    `json:"question" validate:"required"`
	Answer         string                    `json:"answer,omitempty"`
	Category       string                    `json:"category"`
	Status         FAQStatus                 `json:"status"`
	SubmitterName  string                    `json:"submitter_name,omitempty"`
	SubmitterEmail string                    `json:"submitter_email,omitempty"`
	Translations   map[string]FAQTranslation `json:"translations,omitempty" gorm:"serializer:json"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

func (f *FAQ) IsApproved() bool {
	return f.Status == FAQApproved
}

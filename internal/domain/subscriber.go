package domain

import "time"

// Subscriber is an email address opted into newsletter broadcasts,
// independent of any user account.
type Subscriber struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Active         bool       `json:"active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

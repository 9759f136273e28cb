package entity

import "time"

// EventPhoto is a user-contributed image in an event's gallery.
type EventPhoto struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	EventID   string    `gorm:"not null;type:uuid;index" json:"eventId"`
	UserID    string    `gorm:"not null;type:uuid" json:"userId"`
	URL       string    `gorm:"not null" json:"url"`
	Caption   string    `json:"caption,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

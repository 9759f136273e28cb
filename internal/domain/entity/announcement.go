package entity

import "time"

// Announcement is a host-authored message fanned out to an event's attendees.
type Announcement struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	EventID   string    `gorm:"not null;type:uuid;index" json:"eventId"`
	HostID    string    `gorm:"not null;type:uuid" json:"hostId"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

package entity

import "time"

type Review struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	EventID   string    `gorm:"not null;type:uuid;index" json:"eventId"`
	UserID    string    `gorm:"not null;type:uuid" json:"userId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

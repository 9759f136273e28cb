package entity

import "time"

type RsvpStatus string

const (
	RsvpStatusAttending    RsvpStatus = "attending"
	RsvpStatusMaybe        RsvpStatus = "maybe"
	RsvpStatusNotAttending RsvpStatus = "not_attending"
)

// Valid reports whether s is one of the known RSVP statuses.
func (s RsvpStatus) Valid() bool {
	switch s {
	case RsvpStatusAttending, RsvpStatusMaybe, RsvpStatusNotAttending:
		return true
	}
	return false
}

type Rsvp struct {
	ID        string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	EventID   string     `gorm:"not null;type:uuid;uniqueIndex:idx_rsvps_event_user" json:"eventId"`
	UserID    string     `gorm:"not null;type:uuid;uniqueIndex:idx_rsvps_event_user" json:"userId"`
	Status    RsvpStatus `gorm:"not null" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"-"`

	Event Event `gorm:"foreignKey:EventID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

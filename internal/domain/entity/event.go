package entity

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID          string         `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	CategoryID  string         `gorm:"not null" json:"categoryId"`
	HostID      string         `gorm:"not null;type:uuid" json:"hostId"`
	Host        User           `gorm:"foreignKey:HostID" json:"-"`
	Location    string         `gorm:"not null" json:"location"`
	StartTime   time.Time      `gorm:"not null" json:"startTime"`
	Capacity    int            `gorm:"not null" json:"capacity"`
	Price       float64        `gorm:"type:decimal(10,2);default:0" json:"price"`
	IsPaid      bool           `json:"isPaid"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Status      EventStatus    `gorm:"not null;default:upcoming" json:"status"`
}

// IsFull reports whether the given attending count has reached capacity.
// A capacity of zero means unlimited.
func (e *Event) IsFull(attending int64) bool {
	return e.Capacity > 0 && attending >= int64(e.Capacity)
}

// Link generates a shareable link to the event page.
func (e *Event) Link(baseURL string) string {
	return fmt.Sprintf("%s/events/%s", baseURL, e.ID)
}

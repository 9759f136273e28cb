package entity

import "time"

type NotificationType string

const (
	NotificationTypeReminderDay  NotificationType = "event_reminder_24h"
	NotificationTypeReminderHour NotificationType = "event_reminder_1h"
	NotificationTypeRsvpUpdate   NotificationType = "rsvp_update"
	NotificationTypeAnnouncement NotificationType = "announcement"
	NotificationTypeReview       NotificationType = "review"
	NotificationTypeEventUpdate  NotificationType = "event_update"
	NotificationTypeCalendarSync NotificationType = "calendar_sync"
)

// Notification is an in-app message shown to a user. Records are append-only;
// the only mutation after creation is flipping the read flag.
type Notification struct {
	ID        string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string           `gorm:"not null;type:uuid;index" json:"userId"`
	Type      NotificationType `gorm:"not null" json:"type"`
	Title     string           `gorm:"not null" json:"title"`
	Message   string           `gorm:"not null" json:"message"`
	EventID   string           `gorm:"type:uuid" json:"eventId,omitempty"`
	IsRead    bool             `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time        `gorm:"not null" json:"createdAt"`
}

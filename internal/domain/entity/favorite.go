package entity

import "time"

type Favorite struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"not null;type:uuid;uniqueIndex:idx_favorites_user_event" json:"userId"`
	EventID   string    `gorm:"not null;type:uuid;uniqueIndex:idx_favorites_user_event" json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`

	Event Event `gorm:"foreignKey:EventID" json:"-"`
}

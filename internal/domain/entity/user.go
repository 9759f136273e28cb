package entity

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	GoogleID  string    `gorm:"index" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

package postgres

import "github.com/gatherhub/gatherhub/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Category{},
	&entity.Event{},
	&entity.Rsvp{},
	&entity.Notification{},
	&entity.Favorite{},
	&entity.Announcement{},
	&entity.Review{},
	&entity.EventPhoto{},
}

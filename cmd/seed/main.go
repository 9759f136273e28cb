// Command seed fills the database with fake users, events and RSVPs for
// local development.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gatherhub/gatherhub/internal/adapters/config"
	"github.com/gatherhub/gatherhub/internal/adapters/database/postgres"
	"github.com/gatherhub/gatherhub/internal/domain/entity"

	_ "time/tzdata"
)

const (
	userCount  = 25
	eventCount = 40
)

func main() {
	cfg := config.Get()
	ctx := context.Background()

	userStorage := postgres.NewUserStorage(cfg.Database)
	categoryStorage := postgres.NewCategoryStorage(cfg.Database)
	eventStorage := postgres.NewEventStorage(cfg.Database)
	rsvpStorage := postgres.NewRsvpStorage(cfg.Database)

	if err := categoryStorage.Seed(ctx, entity.DefaultCategories); err != nil {
		log.Panicf("failed to seed categories: %v", err)
	}

	users := make([]entity.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		user, err := userStorage.Create(ctx, &entity.User{
			Email:  fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Name:   gofakeit.Name(),
			Avatar: gofakeit.ImageURL(128, 128),
		})
		if err != nil {
			log.Panicf("failed to seed user: %v", err)
		}
		users = append(users, *user)
	}
	log.Printf("seeded %d users", len(users))

	events := make([]entity.Event, 0, eventCount)
	for i := 0; i < eventCount; i++ {
		host := users[gofakeit.Number(0, len(users)-1)]
		category := entity.DefaultCategories[gofakeit.Number(0, len(entity.DefaultCategories)-1)]
		isPaid := gofakeit.Bool()

		var price float64
		if isPaid {
			price = gofakeit.Price(5, 120)
		}

		event, err := eventStorage.Create(ctx, &entity.Event{
			Title:       gofakeit.Sentence(3),
			Description: gofakeit.Paragraph(1, 3, 12, " "),
			CategoryID:  category.ID,
			HostID:      host.ID,
			Location:    fmt.Sprintf("%s, %s", gofakeit.Company(), gofakeit.City()),
			StartTime:   time.Now().Add(time.Duration(gofakeit.Number(1, 24*30)) * time.Hour),
			Capacity:    gofakeit.Number(0, 200),
			Price:       price,
			IsPaid:      isPaid,
			Tags:        []string{gofakeit.BuzzWord(), gofakeit.BuzzWord()},
			ImageURL:    gofakeit.ImageURL(640, 360),
			Status:      entity.EventStatusUpcoming,
		})
		if err != nil {
			log.Panicf("failed to seed event: %v", err)
		}
		events = append(events, *event)
	}
	log.Printf("seeded %d events", len(events))

	statuses := []entity.RsvpStatus{
		entity.RsvpStatusAttending,
		entity.RsvpStatusAttending,
		entity.RsvpStatusMaybe,
		entity.RsvpStatusNotAttending,
	}

	var rsvpCount int
	for _, event := range events {
		for _, user := range users {
			if user.ID == event.HostID || gofakeit.Number(0, 2) != 0 {
				continue
			}
			_, err := rsvpStorage.Create(ctx, &entity.Rsvp{
				EventID: event.ID,
				UserID:  user.ID,
				Status:  statuses[gofakeit.Number(0, len(statuses)-1)],
			})
			if err != nil {
				log.Panicf("failed to seed rsvp: %v", err)
			}
			rsvpCount++
		}
	}
	log.Printf("seeded %d rsvps", rsvpCount)
}

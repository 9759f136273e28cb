package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gatherhub/gatherhub/internal/adapters/config"
	"github.com/gatherhub/gatherhub/internal/adapters/controller/rest"
	"github.com/gatherhub/gatherhub/internal/adapters/database/postgres"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/gatherhub/gatherhub/internal/domain/service"
	"github.com/gatherhub/gatherhub/pkg/logger"
	"github.com/gatherhub/gatherhub/pkg/logger/types"
	"github.com/gatherhub/gatherhub/pkg/smtp"
	"github.com/spf13/viper"
)

// App is the composition root: it owns the HTTP server and the reminder
// scheduler and wires every layer together.
type App struct {
	Server   *http.Server
	Reminder *service.ReminderService
	Logger   *types.Logger
}

func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}
	reminderLogger, err := logger.Named("reminder")
	if err != nil {
		return nil, err
	}
	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}

	userStorage := postgres.NewUserStorage(cfg.Database)
	categoryStorage := postgres.NewCategoryStorage(cfg.Database)
	eventStorage := postgres.NewEventStorage(cfg.Database)
	rsvpStorage := postgres.NewRsvpStorage(cfg.Database)
	notificationStorage := postgres.NewNotificationStorage(cfg.Database)
	favoriteStorage := postgres.NewFavoriteStorage(cfg.Database)
	announcementStorage := postgres.NewAnnouncementStorage(cfg.Database)
	reviewStorage := postgres.NewReviewStorage(cfg.Database)
	photoStorage := postgres.NewPhotoStorage(cfg.Database)

	if err := categoryStorage.Seed(context.Background(), entity.DefaultCategories); err != nil {
		return nil, err
	}

	var mailer *smtp.Client
	if cfg.SMTPDialer != nil {
		mailer = smtp.NewClient(cfg.SMTPDialer)
	}

	userService := service.NewUserService(userStorage)
	eventService := service.NewEventService(
		appLogger, eventStorage, categoryStorage, rsvpStorage, userStorage,
		reviewStorage, favoriteStorage, photoStorage, notificationStorage, cfg.Redis.Events)
	rsvpService := service.NewRsvpService(
		appLogger, rsvpStorage, eventStorage, notificationStorage, userStorage, cfg.Redis.Events)
	notificationService := service.NewNotificationService(notificationStorage)
	favoriteService := service.NewFavoriteService(favoriteStorage, eventStorage)
	announcementService := service.NewAnnouncementService(
		appLogger, announcementStorage, eventStorage, rsvpStorage, notificationStorage)
	reviewService := service.NewReviewService(
		appLogger, reviewStorage, eventStorage, notificationStorage, userStorage)
	photoService := service.NewPhotoService(photoStorage, eventStorage)
	dashboardService := service.NewDashboardService(eventStorage, rsvpStorage, reviewStorage)
	calendarService := service.NewCalendarService(eventStorage, rsvpStorage, notificationStorage)

	var reminderService *service.ReminderService
	if mailer != nil && viper.GetBool("settings.reminders.email") {
		reminderService = service.NewReminderService(
			reminderLogger,
			viper.GetDuration("settings.reminders.period"),
			eventStorage, rsvpStorage, notificationStorage, userStorage, mailer)
	} else {
		reminderService = service.NewReminderService(
			reminderLogger,
			viper.GetDuration("settings.reminders.period"),
			eventStorage, rsvpStorage, notificationStorage, userStorage, nil)
	}

	handler := rest.NewHandler(httpLogger, viper.GetString("settings.base-url"), rest.Services{
		Users:         userService,
		Events:        eventService,
		Rsvps:         rsvpService,
		Notifications: notificationService,
		Favorites:     favoriteService,
		Announcements: announcementService,
		Reviews:       reviewService,
		Photos:        photoService,
		Dashboard:     dashboardService,
		Calendar:      calendarService,
	})

	port := viper.GetString("service.http.port")
	if port == "" {
		port = "8080"
	}

	return &App{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      handler.Router(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Reminder: reminderService,
		Logger:   appLogger,
	}, nil
}

// Start runs the reminder scheduler and the HTTP server, blocking until
// SIGINT/SIGTERM, then shuts both down cleanly.
func (a *App) Start() {
	a.Reminder.Start()

	go func() {
		a.Logger.Infof("HTTP server listening on %s", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Panicf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.Logger.Info("Shutting down")
	a.Reminder.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Errorf("graceful shutdown failed: %v", err)
	}
	a.Logger.Info("Server stopped")
}

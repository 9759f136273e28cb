package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/gatherhub/gatherhub/internal/domain/utils/location"
	"github.com/gatherhub/gatherhub/pkg/logger/types"
)

type reminderEventStorage interface {
	GetUpcoming(ctx context.Context, before time.Time) ([]entity.Event, error)
}

type reminderRsvpStorage interface {
	GetByEvent(ctx context.Context, eventID string) ([]entity.Rsvp, error)
}

type reminderNotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	GetByUser(ctx context.Context, userID string) ([]entity.Notification, error)
}

type reminderUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type reminderMailer interface {
	SendEventReminder(to string, subject string, body string)
}

// ReminderWindow is a time band before an event's start during which one
// class of reminder fires. Horizon is the dedup lookback, intentionally
// wider than the band so adjacent ticks cannot re-send.
type ReminderWindow struct {
	Type    entity.NotificationType
	Lower   time.Duration
	Upper   time.Duration
	Horizon time.Duration
}

var reminderWindows = []ReminderWindow{
	{
		Type:    entity.NotificationTypeReminderDay,
		Lower:   23*time.Hour + 45*time.Minute,
		Upper:   24*time.Hour + 15*time.Minute,
		Horizon: 25 * time.Hour,
	},
	{
		Type:    entity.NotificationTypeReminderHour,
		Lower:   45 * time.Minute,
		Upper:   time.Hour + 15*time.Minute,
		Horizon: 2 * time.Hour,
	},
}

const defaultReminderPeriod = 15 * time.Minute

// ReminderService periodically scans upcoming events and sends day-before
// and hour-before reminders to attending users, at most once per
// (event, user, window).
type ReminderService struct {
	eventStorage        reminderEventStorage
	rsvpStorage         reminderRsvpStorage
	notificationStorage reminderNotificationStorage
	userStorage         reminderUserStorage
	mailer              reminderMailer

	logger *types.Logger
	period time.Duration
	now    func() time.Time

	ticking atomic.Bool
	started atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

// NewReminderService builds the scheduler. A nil mailer disables the email
// channel; period <= 0 selects the default 15 minute tick.
func NewReminderService(
	logger *types.Logger,
	period time.Duration,
	eventStorage reminderEventStorage,
	rsvpStorage reminderRsvpStorage,
	notificationStorage reminderNotificationStorage,
	userStorage reminderUserStorage,
	mailer reminderMailer,
) *ReminderService {
	if period <= 0 {
		period = defaultReminderPeriod
	}
	return &ReminderService{
		eventStorage:        eventStorage,
		rsvpStorage:         rsvpStorage,
		notificationStorage: notificationStorage,
		userStorage:         userStorage,
		mailer:              mailer,
		logger:              logger,
		period:              period,
		now:                 time.Now,
		stop:                make(chan struct{}),
		done:                make(chan struct{}),
	}
}

// Start launches the reminder loop. An immediate tick runs before the
// periodic schedule begins. Calling Start twice is a no-op.
func (s *ReminderService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	s.logger.Infof("Starting event reminder scheduler (period=%s)", s.period)
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.period)
		defer ticker.Stop()

		s.runTick()
		for {
			select {
			case <-ticker.C:
				s.runTick()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop cancels the timer and waits for any in-flight tick to finish.
// Stop without a prior Start, and repeated Stop, are no-ops.
func (s *ReminderService) Stop() {
	if !s.started.CompareAndSwap(true, false) {
		return
	}

	close(s.stop)
	<-s.done
	s.logger.Info("Event reminder scheduler stopped")
}

// runTick guards against overlap: a tick still in flight when the next
// period elapses causes the new tick to be skipped, not queued.
func (s *ReminderService) runTick() {
	if !s.ticking.CompareAndSwap(false, true) {
		s.logger.Warn("Previous reminder tick still running, skipping this one")
		return
	}
	defer s.ticking.Store(false)

	s.Tick(context.Background(), s.now())
}

// Tick runs one scheduler pass as of the given instant. It never returns
// an error: every failure is contained per event and logged so one bad
// record cannot abort the scan.
func (s *ReminderService) Tick(ctx context.Context, now time.Time) {
	s.logger.Debug("Checking upcoming events for due reminders")

	events, err := s.eventStorage.GetUpcoming(ctx, now.Add(maxReminderHorizon()))
	if err != nil {
		s.logger.Errorf("failed to get upcoming events: %v", err)
		return
	}

	for _, event := range events {
		s.processEvent(ctx, event, now)
	}
}

func (s *ReminderService) processEvent(ctx context.Context, event entity.Event, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("panic while processing reminders for event %s: %v", event.ID, r)
		}
	}()

	untilStart := event.StartTime.Sub(now)
	s.logger.Debugf("Event %s starts in %s", event.ID, untilStart)

	for _, window := range reminderWindows {
		if untilStart >= window.Lower && untilStart <= window.Upper {
			s.logger.Infof("Sending %s reminders for event (event_id=%s)", window.Type, event.ID)
			s.sendReminders(ctx, event, window, now)
		}
	}
}

// sendReminders emits one reminder per attending user for the given
// window, skipping users that already received this reminder within the
// window's lookback horizon.
func (s *ReminderService) sendReminders(ctx context.Context, event entity.Event, window ReminderWindow, now time.Time) {
	rsvps, err := s.rsvpStorage.GetByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Errorf("failed to get attendees for event %s: %v", event.ID, err)
		return
	}

	title, message := reminderMessage(event, window.Type)
	since := now.Add(-window.Horizon)

	for _, rsvp := range rsvps {
		if rsvp.Status != entity.RsvpStatusAttending {
			continue
		}

		sent, err := s.alreadySent(ctx, rsvp.UserID, event.ID, window.Type, since)
		if err != nil {
			s.logger.Errorf("failed to check sent reminders for user %s (event_id=%s): %v", rsvp.UserID, event.ID, err)
			continue
		}
		if sent {
			continue
		}

		notification := &entity.Notification{
			UserID:  rsvp.UserID,
			Type:    window.Type,
			Title:   title,
			Message: message,
			EventID: event.ID,
		}
		if _, err = s.notificationStorage.Create(ctx, notification); err != nil {
			s.logger.Errorf("failed to create %s reminder for user %s (event_id=%s): %v", window.Type, rsvp.UserID, event.ID, err)
			continue
		}

		s.logger.Infof("Sent %s reminder to user %s (event_id=%s)", window.Type, rsvp.UserID, event.ID)
		s.emailReminder(ctx, rsvp.UserID, title, message)
	}
}

// alreadySent reports whether a reminder of the given type for this event
// was created for the user after since. The record itself is never
// deleted; it merely falls out of the lookback once the horizon elapses.
func (s *ReminderService) alreadySent(ctx context.Context, userID string, eventID string, kind entity.NotificationType, since time.Time) (bool, error) {
	notifications, err := s.notificationStorage.GetByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, notification := range notifications {
		if notification.EventID == eventID &&
			notification.Type == kind &&
			notification.CreatedAt.After(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *ReminderService) emailReminder(ctx context.Context, userID string, subject string, body string) {
	if s.mailer == nil || s.userStorage == nil {
		return
	}

	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to get user %s for reminder email: %v", userID, err)
		return
	}
	if user.Email == "" {
		return
	}
	s.mailer.SendEventReminder(user.Email, subject, body)
}

func reminderMessage(event entity.Event, kind entity.NotificationType) (title string, message string) {
	start := event.StartTime.In(location.Location())

	switch kind {
	case entity.NotificationTypeReminderDay:
		title = "Event Tomorrow!"
		message = fmt.Sprintf(
			"Don't forget about %q tomorrow (%s) at %s. Location: %s",
			event.Title,
			start.Format("Monday, January 2, 2006"),
			start.Format("3:04 PM"),
			event.Location,
		)
	case entity.NotificationTypeReminderHour:
		title = "Event Starting Soon!"
		message = fmt.Sprintf(
			"%q starts in about 1 hour at %s. Get ready! Location: %s",
			event.Title,
			start.Format("3:04 PM"),
			event.Location,
		)
	}
	return title, message
}

// maxReminderHorizon bounds the upcoming-events scan to the furthest
// window edge, so each tick fetches only events that could possibly fire.
func maxReminderHorizon() time.Duration {
	var max time.Duration
	for _, window := range reminderWindows {
		if window.Upper > max {
			max = window.Upper
		}
	}
	return max
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain/dto"
	"github.com/gatherhub/gatherhub/internal/domain/entity"
	"github.com/gatherhub/gatherhub/pkg/logger/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testLogger() *types.Logger {
	return &types.Logger{SugaredLogger: zap.NewNop().Sugar(), Name: "test"}
}

type fakeEventStorage struct {
	events         []entity.Event
	getUpcomingErr error
}

func (f *fakeEventStorage) GetUpcoming(_ context.Context, before time.Time) ([]entity.Event, error) {
	if f.getUpcomingErr != nil {
		return nil, f.getUpcomingErr
	}
	var out []entity.Event
	for _, event := range f.events {
		if event.Status == entity.EventStatusUpcoming && !event.StartTime.After(before) {
			out = append(out, event)
		}
	}
	return out, nil
}

func (f *fakeEventStorage) Get(_ context.Context, id string) (*entity.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			event := f.events[i]
			return &event, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventStorage) GetByHost(_ context.Context, hostID string) ([]entity.Event, error) {
	var out []entity.Event
	for _, event := range f.events {
		if event.HostID == hostID {
			out = append(out, event)
		}
	}
	return out, nil
}

func (f *fakeEventStorage) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	stored := *event
	if stored.ID == "" {
		stored.ID = fmt.Sprintf("event-%d", len(f.events)+1)
	}
	stored.CreatedAt = time.Now()
	f.events = append(f.events, stored)
	return &stored, nil
}

func (f *fakeEventStorage) GetFiltered(_ context.Context, filter dto.EventFilter) ([]entity.Event, error) {
	var out []entity.Event
	for _, event := range f.events {
		if filter.CategoryID != "" && event.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.HostID != "" && event.HostID != filter.HostID {
			continue
		}
		if filter.IsPaid != nil && event.IsPaid != *filter.IsPaid {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(event.Title), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(event.Description), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, event)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeEventStorage) Update(_ context.Context, event *entity.Event) (*entity.Event, error) {
	for i := range f.events {
		if f.events[i].ID == event.ID {
			f.events[i] = *event
			return event, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventStorage) Delete(_ context.Context, id string) error {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeEventStorage) Count(_ context.Context) (int64, error) {
	return int64(len(f.events)), nil
}

type fakeCategoryStorage struct {
	categories []entity.Category
}

func (f *fakeCategoryStorage) Get(_ context.Context, id string) (*entity.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			category := f.categories[i]
			return &category, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryStorage) GetAll(_ context.Context) ([]entity.Category, error) {
	return f.categories, nil
}

type fakeFavoriteStorage struct {
	favorites map[string]bool // userID + "/" + eventID
}

func (f *fakeFavoriteStorage) Create(_ context.Context, favorite *entity.Favorite) (*entity.Favorite, error) {
	f.favorites[favorite.UserID+"/"+favorite.EventID] = true
	return favorite, nil
}

func (f *fakeFavoriteStorage) Delete(_ context.Context, userID string, eventID string) error {
	delete(f.favorites, userID+"/"+eventID)
	return nil
}

func (f *fakeFavoriteStorage) Exists(_ context.Context, userID string, eventID string) (bool, error) {
	return f.favorites[userID+"/"+eventID], nil
}

func (f *fakeFavoriteStorage) GetByUser(_ context.Context, userID string) ([]entity.Favorite, error) {
	var out []entity.Favorite
	for key, ok := range f.favorites {
		if !ok {
			continue
		}
		if strings.HasPrefix(key, userID+"/") {
			out = append(out, entity.Favorite{
				UserID:  userID,
				EventID: strings.TrimPrefix(key, userID+"/"),
			})
		}
	}
	return out, nil
}

type fakeSummaryCache struct {
	summaries map[string]dto.EventSummary
	hits      int
	cleared   []string
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{summaries: map[string]dto.EventSummary{}}
}

func (f *fakeSummaryCache) Get(_ context.Context, eventID string) (dto.EventSummary, bool) {
	summary, ok := f.summaries[eventID]
	if ok {
		f.hits++
	}
	return summary, ok
}

func (f *fakeSummaryCache) Set(_ context.Context, summary dto.EventSummary, _ time.Duration) {
	f.summaries[summary.ID] = summary
}

func (f *fakeSummaryCache) Clear(_ context.Context, eventID string) {
	delete(f.summaries, eventID)
	f.cleared = append(f.cleared, eventID)
}

type fakeRsvpStorage struct {
	rsvps           []entity.Rsvp
	getByEventErrFor map[string]error
}

func (f *fakeRsvpStorage) Create(_ context.Context, rsvp *entity.Rsvp) (*entity.Rsvp, error) {
	stored := *rsvp
	stored.ID = fmt.Sprintf("rsvp-%d", len(f.rsvps)+1)
	stored.CreatedAt = time.Now()
	f.rsvps = append(f.rsvps, stored)
	return &stored, nil
}

func (f *fakeRsvpStorage) Get(_ context.Context, eventID string, userID string) (*entity.Rsvp, error) {
	for i := range f.rsvps {
		if f.rsvps[i].EventID == eventID && f.rsvps[i].UserID == userID {
			rsvp := f.rsvps[i]
			return &rsvp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRsvpStorage) Update(_ context.Context, rsvp *entity.Rsvp) (*entity.Rsvp, error) {
	for i := range f.rsvps {
		if f.rsvps[i].EventID == rsvp.EventID && f.rsvps[i].UserID == rsvp.UserID {
			f.rsvps[i] = *rsvp
			return rsvp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRsvpStorage) Delete(_ context.Context, eventID string, userID string) error {
	for i := range f.rsvps {
		if f.rsvps[i].EventID == eventID && f.rsvps[i].UserID == userID {
			f.rsvps = append(f.rsvps[:i], f.rsvps[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRsvpStorage) GetByEvent(_ context.Context, eventID string) ([]entity.Rsvp, error) {
	if err := f.getByEventErrFor[eventID]; err != nil {
		return nil, err
	}
	var out []entity.Rsvp
	for _, rsvp := range f.rsvps {
		if rsvp.EventID == eventID {
			out = append(out, rsvp)
		}
	}
	return out, nil
}

func (f *fakeRsvpStorage) GetByUser(_ context.Context, userID string) ([]entity.Rsvp, error) {
	var out []entity.Rsvp
	for _, rsvp := range f.rsvps {
		if rsvp.UserID == userID {
			out = append(out, rsvp)
		}
	}
	return out, nil
}

func (f *fakeRsvpStorage) CountAttending(_ context.Context, eventID string) (int64, error) {
	var count int64
	for _, rsvp := range f.rsvps {
		if rsvp.EventID == eventID && rsvp.Status == entity.RsvpStatusAttending {
			count++
		}
	}
	return count, nil
}

type fakeNotificationStorage struct {
	now           time.Time
	notifications []entity.Notification
	createErrFor  map[string]error
	getByUserErr  error
}

func (f *fakeNotificationStorage) Create(_ context.Context, notification *entity.Notification) (*entity.Notification, error) {
	if err := f.createErrFor[notification.UserID]; err != nil {
		return nil, err
	}
	stored := *notification
	stored.ID = fmt.Sprintf("notification-%d", len(f.notifications)+1)
	if stored.CreatedAt.IsZero() {
		if f.now.IsZero() {
			stored.CreatedAt = time.Now()
		} else {
			stored.CreatedAt = f.now
		}
	}
	f.notifications = append(f.notifications, stored)
	return &stored, nil
}

func (f *fakeNotificationStorage) GetByUser(_ context.Context, userID string) ([]entity.Notification, error) {
	if f.getByUserErr != nil {
		return nil, f.getByUserErr
	}
	var out []entity.Notification
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			out = append(out, notification)
		}
	}
	return out, nil
}

func (f *fakeNotificationStorage) count(userID string, kind entity.NotificationType) int {
	var n int
	for _, notification := range f.notifications {
		if notification.UserID == userID && notification.Type == kind {
			n++
		}
	}
	return n
}

type fakeUserStorage struct {
	users map[string]entity.User
}

func (f *fakeUserStorage) Get(_ context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentEmail
}

func (f *fakeMailer) SendEventReminder(to string, subject string, body string) {
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, body: body})
}

type fakeCache struct {
	cleared []string
}

func (f *fakeCache) Clear(_ context.Context, eventID string) {
	f.cleared = append(f.cleared, eventID)
}

type fakeAnnouncementStorage struct {
	announcements []entity.Announcement
}

func (f *fakeAnnouncementStorage) Create(_ context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	stored := *announcement
	stored.ID = fmt.Sprintf("announcement-%d", len(f.announcements)+1)
	stored.CreatedAt = time.Now()
	f.announcements = append(f.announcements, stored)
	return &stored, nil
}

func (f *fakeAnnouncementStorage) GetByEvent(_ context.Context, eventID string) ([]entity.Announcement, error) {
	var out []entity.Announcement
	for _, announcement := range f.announcements {
		if announcement.EventID == eventID {
			out = append(out, announcement)
		}
	}
	return out, nil
}

type fakePhotoStorage struct {
	photos []entity.EventPhoto
}

func (f *fakePhotoStorage) Create(_ context.Context, photo *entity.EventPhoto) (*entity.EventPhoto, error) {
	stored := *photo
	stored.ID = fmt.Sprintf("photo-%d", len(f.photos)+1)
	stored.CreatedAt = time.Now()
	f.photos = append(f.photos, stored)
	return &stored, nil
}

func (f *fakePhotoStorage) GetByEvent(_ context.Context, eventID string) ([]entity.EventPhoto, error) {
	var out []entity.EventPhoto
	for _, photo := range f.photos {
		if photo.EventID == eventID {
			out = append(out, photo)
		}
	}
	return out, nil
}

type fakeReviewStorage struct {
	reviews []entity.Review
}

func (f *fakeReviewStorage) Create(_ context.Context, review *entity.Review) (*entity.Review, error) {
	stored := *review
	stored.ID = fmt.Sprintf("review-%d", len(f.reviews)+1)
	stored.CreatedAt = time.Now()
	f.reviews = append(f.reviews, stored)
	return &stored, nil
}

func (f *fakeReviewStorage) GetByEvent(_ context.Context, eventID string) ([]entity.Review, error) {
	var out []entity.Review
	for _, review := range f.reviews {
		if review.EventID == eventID {
			out = append(out, review)
		}
	}
	return out, nil
}

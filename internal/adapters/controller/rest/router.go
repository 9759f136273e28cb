package rest

import (
	"net/http"

	"github.com/gatherhub/gatherhub/internal/domain/service"
	"github.com/gatherhub/gatherhub/pkg/logger/types"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handler holds all HTTP handlers of the API.
type Handler struct {
	users         *service.UserService
	events        *service.EventService
	rsvps         *service.RsvpService
	notifications *service.NotificationService
	favorites     *service.FavoriteService
	announcements *service.AnnouncementService
	reviews       *service.ReviewService
	photos        *service.PhotoService
	dashboard     *service.DashboardService
	calendar      *service.CalendarService

	logger  *types.Logger
	baseURL string
}

type Services struct {
	Users         *service.UserService
	Events        *service.EventService
	Rsvps         *service.RsvpService
	Notifications *service.NotificationService
	Favorites     *service.FavoriteService
	Announcements *service.AnnouncementService
	Reviews       *service.ReviewService
	Photos        *service.PhotoService
	Dashboard     *service.DashboardService
	Calendar      *service.CalendarService
}

func NewHandler(logger *types.Logger, baseURL string, services Services) *Handler {
	return &Handler{
		users:         services.Users,
		events:        services.Events,
		rsvps:         services.Rsvps,
		notifications: services.Notifications,
		favorites:     services.Favorites,
		announcements: services.Announcements,
		reviews:       services.Reviews,
		photos:        services.Photos,
		dashboard:     services.Dashboard,
		calendar:      services.Calendar,
		logger:        logger,
		baseURL:       baseURL,
	}
}

// Router builds the chi mux with the full API surface.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.requestLogger)

	r.Get("/health", h.health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.listCategories)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.listEvents)
			r.Post("/", h.requireUser(h.createEvent))

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", h.getEvent)
				r.Put("/", h.requireUser(h.updateEvent))
				r.Delete("/", h.requireUser(h.deleteEvent))

				r.Get("/rsvps", h.listEventRsvps)
				r.Post("/rsvp", h.requireUser(h.setRsvp))
				r.Delete("/rsvp", h.requireUser(h.deleteRsvp))
				r.Get("/user-rsvp", h.requireUser(h.getUserRsvp))

				r.Get("/reviews", h.listReviews)
				r.Post("/reviews", h.requireUser(h.createReview))

				r.Get("/announcements", h.listAnnouncements)
				r.Post("/announcements", h.requireUser(h.sendAnnouncement))

				r.Get("/photos", h.listEventPhotos)
				r.Post("/photos", h.requireUser(h.addEventPhoto))

				r.Get("/favorite", h.requireUser(h.getFavorite))
				r.Post("/favorite", h.requireUser(h.toggleFavorite))

				r.Get("/ticket", h.requireUser(h.eventTicket))
				r.Get("/calendar.ics", h.eventCalendar)
				r.Post("/sync-calendar", h.requireUser(h.syncCalendar))
			})
		})

		r.Post("/users", h.registerUser)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/", h.getUser)
			r.Put("/", h.requireUser(h.updateUser))
			r.Get("/rsvps", h.listUserRsvps)
			r.Get("/favorites", h.requireUser(h.listUserFavorites))
			r.Get("/notifications", h.requireUser(h.listUserNotifications))
			r.Get("/dashboard", h.requireUser(h.hostDashboard))
			r.Get("/calendar.ics", h.userCalendar)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Post("/{notificationID}/read", h.requireUser(h.markNotificationRead))
			r.Post("/read-all", h.requireUser(h.markAllNotificationsRead))
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package getEvents

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/http-server/middleware/mwauth"
	"meetbooker/internal/lib/api/response"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/storage"
)

type Response struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventProvider
type EventProvider interface {
	GetEvents(ctx context.Context, userID primitive.ObjectID) ([]models.Event, error)
	GetEventsByUsername(ctx context.Context, username string) ([]models.Event, error)
}

// New lists the authenticated user's own event templates.
func New(log *slog.Logger, meetings EventProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.getEvents.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		events, err := meetings.GetEvents(r.Context(), userID)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))

			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Events:   events,
		})
	}
}

// NewByUsername lists a user's event templates for their public booking page.
func NewByUsername(log *slog.Logger, meetings EventProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.getEvents.NewByUsername"

		log = log.With(slog.String("op", op))

		username := chi.URLParam(r, "username")
		if username == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("username is required"))

			return
		}

		events, err := meetings.GetEventsByUsername(r.Context(), username)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))

			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Events:   events,
		})
	}
}

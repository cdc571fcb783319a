package deleteEvent

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
	Event *models.Event `json:"event,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, userID, eventID primitive.ObjectID) (*models.Event, error)
}

func New(log *slog.Logger, meetings EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.deleteEvent.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		eventID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "eventId"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))

			return
		}

		event, err := meetings.DeleteEvent(r.Context(), userID, eventID)
		if err != nil {
			log.Error("failed to delete event", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))

			return
		}

		log.Info("event deleted", slog.String("event_id", eventID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    event,
		})
	}
}

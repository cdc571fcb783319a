package listMeetings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

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
	Meetings []models.Booking `json:"meetings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetingLister
type MeetingLister interface {
	ListScheduledMeetings(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
}

func New(log *slog.Logger, meetings MeetingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.listMeetings.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		bookings, err := meetings.ListScheduledMeetings(r.Context(), userID)
		if err != nil {
			log.Error("failed to list meetings", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list meetings"))

			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Meetings: bookings,
		})
	}
}

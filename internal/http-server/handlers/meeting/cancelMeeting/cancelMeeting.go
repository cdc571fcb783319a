package cancelMeeting

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/http-server/middleware/mwauth"
	"meetbooker/internal/lib/api/response"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetingCanceler
type MeetingCanceler interface {
	CancelScheduledMeeting(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error)
}

func New(log *slog.Logger, meetings MeetingCanceler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.cancelMeeting.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		bookingID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "meetingId"))
		if err != nil {
			log.Error("invalid meeting id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid meeting id format"))

			return
		}

		booking, err := meetings.CancelScheduledMeeting(r.Context(), userID, bookingID)
		if err != nil {
			log.Error("failed to cancel meeting", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("meeting not found"))
			case errors.Is(err, calendar.ErrReauthRequired):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("calendar authorization required, please sync with Google"))
			case errors.Is(err, service.ErrInconsistentState):
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("meeting partially cancelled, please retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel meeting"))
			}

			return
		}

		log.Info("meeting cancelled", slog.String("booking_id", bookingID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}

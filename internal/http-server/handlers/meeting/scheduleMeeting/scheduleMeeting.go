package scheduleMeeting

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/lib/api/response"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

type Request struct {
	Username       string `json:"username" validate:"required"`
	EventID        string `json:"event_id" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Date           string `json:"date" validate:"required"`
	StartTime      string `json:"start_time" validate:"required"`
	EndTime        string `json:"end_time" validate:"required"`
	AdditionalInfo string `json:"additional_info"`
}

type Response struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetingScheduler
type MeetingScheduler interface {
	ScheduleMeeting(ctx context.Context, in service.ScheduleMeetingInput) (*models.Booking, []string, error)
}

func New(log *slog.Logger, meetings MeetingScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.scheduleMeeting.New"

		log = log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		eventID, err := primitive.ObjectIDFromHex(req.EventID)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))

			return
		}

		booking, warnings, err := meetings.ScheduleMeeting(r.Context(), service.ScheduleMeetingInput{
			Username:       req.Username,
			EventID:        eventID,
			Name:           req.Name,
			Email:          req.Email,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			AdditionalInfo: req.AdditionalInfo,
		})
		if err != nil {
			log.Error("failed to schedule meeting", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound), errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event or user not found"))
			case errors.Is(err, service.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("time slot overlaps an existing meeting"))
			case errors.Is(err, calendar.ErrReauthRequired):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("calendar authorization required, please sync with Google"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to schedule meeting"))
			}

			return
		}

		log.Info("meeting scheduled", slog.String("booking_id", booking.ID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OKWithWarnings(warnings),
			Booking:  booking,
		})
	}
}

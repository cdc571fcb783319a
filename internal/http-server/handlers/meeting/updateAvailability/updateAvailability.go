package updateAvailability

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/http-server/middleware/mwauth"
	"meetbooker/internal/lib/api/response"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

type DayAvailability struct {
	Day     string `json:"day" validate:"required"`
	Start   string `json:"start_time"`
	End     string `json:"end_time"`
	Enabled bool   `json:"enabled"`
}

type Request struct {
	DayAvailability []DayAvailability `json:"day_availability" validate:"required,dive"`
	MinimumGap      int               `json:"minimum_gap" validate:"gte=0"`
}

type Response struct {
	response.Response
	Availability *models.Availability `json:"availability,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AvailabilityUpdater
type AvailabilityUpdater interface {
	UpdateAvailability(ctx context.Context, userID primitive.ObjectID, in service.AvailabilityInput) (*models.Availability, error)
}

func New(log *slog.Logger, meetings AvailabilityUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.updateAvailability.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		in := service.AvailabilityInput{MinimumGap: req.MinimumGap}
		for _, day := range req.DayAvailability {
			in.DayAvailability = append(in.DayAvailability, service.DayAvailabilityInput{
				Day:     day.Day,
				Start:   day.Start,
				End:     day.End,
				Enabled: day.Enabled,
			})
		}

		availability, err := meetings.UpdateAvailability(r.Context(), userID, in)
		if err != nil {
			log.Error("failed to update availability", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update availability"))

			return
		}

		log.Info("availability updated", slog.String("user_id", userID.Hex()))

		render.JSON(w, r, Response{
			Response:     response.OK(),
			Availability: availability,
		})
	}
}

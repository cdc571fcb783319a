package rejectRequest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/lib/api/response"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

type Response struct {
	response.Response
	Schedule *models.Schedule `json:"schedule,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RequestRejecter
type RequestRejecter interface {
	RejectRequest(ctx context.Context, scheduleID, requestID primitive.ObjectID) (*models.Schedule, error)
}

func New(log *slog.Logger, schedules RequestRejecter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.rejectRequest.New"

		log = log.With(slog.String("op", op))

		scheduleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "scheduleId"))
		if err != nil {
			log.Error("invalid schedule id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid schedule id format"))

			return
		}

		requestID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "requestId"))
		if err != nil {
			log.Error("invalid request id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request id format"))

			return
		}

		schedule, err := schedules.RejectRequest(r.Context(), scheduleID, requestID)
		if err != nil {
			log.Error("failed to reject request", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrScheduleNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("slot not found"))
			case errors.Is(err, service.ErrRequestNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("request not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to reject request"))
			}

			return
		}

		log.Info("request rejected",
			slog.String("schedule_id", scheduleID.Hex()),
			slog.String("request_id", requestID.Hex()),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Schedule: schedule,
		})
	}
}

package deleteSlot

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
	Schedule *models.Schedule `json:"schedule,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotDeleter
type SlotDeleter interface {
	DeleteSlot(ctx context.Context, userID, scheduleID primitive.ObjectID) (*models.Schedule, error)
}

func New(log *slog.Logger, schedules SlotDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.deleteSlot.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		scheduleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "scheduleId"))
		if err != nil {
			log.Error("invalid schedule id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid schedule id format"))

			return
		}

		schedule, err := schedules.DeleteSlot(r.Context(), userID, scheduleID)
		if err != nil {
			log.Error("failed to delete slot", sl.Err(err))

			if errors.Is(err, storage.ErrScheduleNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("slot not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete slot"))

			return
		}

		log.Info("slot deleted", slog.String("schedule_id", scheduleID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Schedule: schedule,
		})
	}
}

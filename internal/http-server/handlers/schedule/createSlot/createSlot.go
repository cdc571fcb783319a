package createSlot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/http-server/middleware/mwauth"
	"meetbooker/internal/lib/api/response"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

type Request struct {
	OneLinkID string `json:"one_link_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Agenda    string `json:"agenda"`
	Doc       string `json:"doc"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type Response struct {
	response.Response
	Schedule *models.Schedule `json:"schedule,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotCreator
type SlotCreator interface {
	CreateSlot(ctx context.Context, requesterID primitive.ObjectID, in service.SlotInput) (*models.Schedule, []string, error)
}

func New(log *slog.Logger, schedules SlotCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.createSlot.New"

		log = log.With(slog.String("op", op))

		requesterID, ok := mwauth.UserID(r.Context())
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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		now := time.Now()

		start, err := calendar.ParseSlot(req.Date, req.StartTime, now)
		if err != nil {
			log.Error("invalid start time", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date or start time format"))

			return
		}

		end, err := calendar.ParseSlot(req.Date, req.EndTime, now)
		if err != nil {
			log.Error("invalid end time", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date or end time format"))

			return
		}

		if !start.Before(end) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("start time must be before end time"))

			return
		}

		schedule, warnings, err := schedules.CreateSlot(r.Context(), requesterID, service.SlotInput{
			OneLinkID: req.OneLinkID,
			Title:     req.Title,
			Agenda:    req.Agenda,
			Doc:       req.Doc,
			Start:     start,
			End:       end,
		})
		if err != nil {
			log.Error("failed to create slot", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, service.ErrConflict):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("time slot overlaps an existing slot"))
			case errors.Is(err, calendar.ErrReauthRequired):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("calendar authorization required, please sync with Google"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create slot"))
			}

			return
		}

		log.Info("slot created", slog.String("schedule_id", schedule.ID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OKWithWarnings(warnings),
			Schedule: schedule,
		})
	}
}

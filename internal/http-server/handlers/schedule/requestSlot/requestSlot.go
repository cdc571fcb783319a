package requestSlot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/lib/api/response"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

type Request struct {
	Name        string `json:"name" validate:"required"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	OneLink     string `json:"one_link"`
}

type Response struct {
	response.Response
	Schedule *models.Schedule `json:"schedule,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotRequester
type SlotRequester interface {
	RequestSlot(ctx context.Context, scheduleID primitive.ObjectID, in service.SlotRequestInput) (*models.Schedule, error)
}

func New(log *slog.Logger, schedules SlotRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.requestSlot.New"

		log = log.With(slog.String("op", op))

		scheduleID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "scheduleId"))
		if err != nil {
			log.Error("invalid schedule id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid schedule id format"))

			return
		}

		var req Request

		if err = render.DecodeJSON(r.Body, &req); err != nil {
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

		schedule, err := schedules.RequestSlot(r.Context(), scheduleID, service.SlotRequestInput{
			Name:        req.Name,
			CompanyName: req.CompanyName,
			Email:       req.Email,
			Phone:       req.Phone,
			Description: req.Description,
			OneLink:     req.OneLink,
		})
		if err != nil {
			log.Error("failed to request slot", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrScheduleNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("slot not found"))
			case errors.Is(err, service.ErrSlotBooked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot is already booked"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to request slot"))
			}

			return
		}

		log.Info("slot requested", slog.String("schedule_id", scheduleID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Schedule: schedule,
		})
	}
}

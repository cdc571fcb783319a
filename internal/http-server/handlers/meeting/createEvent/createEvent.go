package createEvent

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

type Request struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	EventType   string  `json:"event_type"`
	Price       float64 `json:"price" validate:"gte=0"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100"`
}

type Response struct {
	response.Response
	Event *models.Event `json:"event,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, userID primitive.ObjectID, in service.EventInput) (*models.Event, error)
}

func New(log *slog.Logger, meetings EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.createEvent.New"

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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event, err := meetings.CreateEvent(r.Context(), userID, service.EventInput{
			Title:       req.Title,
			Description: req.Description,
			Duration:    req.Duration,
			EventType:   models.EventType(req.EventType),
			Price:       req.Price,
			Discount:    req.Discount,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.String("event_id", event.ID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    event,
		})
	}
}

package createWebinar

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

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
	WebinarType string  `json:"webinar_type"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" validate:"required"`
	StartTime   string  `json:"start_time" validate:"required"`
	EndTime     string  `json:"end_time" validate:"required"`
	Duration    int     `json:"duration" validate:"gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	Discount    float64 `json:"discount" validate:"gte=0,lte=100"`
}

type Response struct {
	response.Response
	Webinar *models.Webinar `json:"webinar,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarCreator
type WebinarCreator interface {
	CreateWebinar(ctx context.Context, userID primitive.ObjectID, in service.WebinarInput) (*models.Webinar, []string, error)
}

func New(log *slog.Logger, webinars WebinarCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.createWebinar.New"

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

		webinar, warnings, err := webinars.CreateWebinar(r.Context(), userID, service.WebinarInput{
			WebinarType: models.EventType(req.WebinarType),
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Duration:    req.Duration,
			Price:       req.Price,
			Discount:    req.Discount,
		})
		if err != nil {
			log.Error("failed to create webinar", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, calendar.ErrReauthRequired):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("calendar authorization required, please sync with Google"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create webinar"))
			}

			return
		}

		log.Info("webinar created", slog.String("webinar_id", webinar.ID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OKWithWarnings(warnings),
			Webinar:  webinar,
		})
	}
}

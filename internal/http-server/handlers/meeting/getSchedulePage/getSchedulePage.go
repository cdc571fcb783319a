package getSchedulePage

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
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

type Response struct {
	response.Response
	Page *service.SchedulePage `json:"page,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SchedulePageProvider
type SchedulePageProvider interface {
	GetSchedulePageData(ctx context.Context, username string, eventID primitive.ObjectID) (*service.SchedulePage, error)
}

func New(log *slog.Logger, meetings SchedulePageProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meeting.getSchedulePage.New"

		log = log.With(slog.String("op", op))

		username := chi.URLParam(r, "username")
		if username == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("username is required"))

			return
		}

		eventID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "eventId"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))

			return
		}

		page, err := meetings.GetSchedulePageData(r.Context(), username, eventID)
		if err != nil {
			log.Error("failed to get schedule page data", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound),
				errors.Is(err, storage.ErrEventNotFound),
				errors.Is(err, storage.ErrAvailabilityNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking page not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get schedule page data"))
			}

			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Page:     page,
		})
	}
}

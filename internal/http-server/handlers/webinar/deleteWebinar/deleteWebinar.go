package deleteWebinar

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
	Webinar *models.Webinar `json:"webinar,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarDeleter
type WebinarDeleter interface {
	DeleteWebinar(ctx context.Context, userID, webinarID primitive.ObjectID) (*models.Webinar, error)
}

func New(log *slog.Logger, webinars WebinarDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.deleteWebinar.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		webinarID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "webinarId"))
		if err != nil {
			log.Error("invalid webinar id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid webinar id format"))

			return
		}

		webinar, err := webinars.DeleteWebinar(r.Context(), userID, webinarID)
		if err != nil {
			log.Error("failed to delete webinar", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrWebinarNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("webinar not found"))
			case errors.Is(err, calendar.ErrReauthRequired):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("calendar authorization required, please sync with Google"))
			case errors.Is(err, service.ErrInconsistentState):
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("webinar partially deleted, please retry"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete webinar"))
			}

			return
		}

		log.Info("webinar deleted", slog.String("webinar_id", webinarID.Hex()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Webinar:  webinar,
		})
	}
}

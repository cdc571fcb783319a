package getWebinars

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
	Webinars []models.Webinar `json:"webinars"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarProvider
type WebinarProvider interface {
	GetWebinars(ctx context.Context, userID primitive.ObjectID) ([]models.Webinar, error)
	GetWebinarsByOneLink(ctx context.Context, oneLinkID string) ([]models.Webinar, error)
}

// New lists the authenticated user's webinars.
func New(log *slog.Logger, webinars WebinarProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.getWebinars.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		list, err := webinars.GetWebinars(r.Context(), userID)
		if err != nil {
			log.Error("failed to get webinars", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get webinars"))

			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Webinars: list,
		})
	}
}

// NewByOneLink lists a user's pitch day webinars for their public one-link
// page.
func NewByOneLink(log *slog.Logger, webinars WebinarProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.getWebinars.NewByOneLink"

		log = log.With(slog.String("op", op))

		oneLinkID := chi.URLParam(r, "oneLinkId")
		if oneLinkID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("one link id is required"))

			return
		}

		list, err := webinars.GetWebinarsByOneLink(r.Context(), oneLinkID)
		if err != nil {
			log.Error("failed to get webinars", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get webinars"))

			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Webinars: list,
		})
	}
}

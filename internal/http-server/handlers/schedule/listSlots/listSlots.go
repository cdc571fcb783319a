package listSlots

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
	Schedules []models.Schedule `json:"schedules"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SlotProvider
type SlotProvider interface {
	ListSlots(ctx context.Context, oneLinkID string) ([]models.Schedule, error)
	ListRequestsForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Schedule, error)
}

// New lists the slots visible on a one-link page: slots the owner proposed
// and slots proposed to them.
func New(log *slog.Logger, schedules SlotProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.listSlots.New"

		log = log.With(slog.String("op", op))

		oneLinkID := chi.URLParam(r, "oneLinkId")
		if oneLinkID == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("one link id is required"))

			return
		}

		list, err := schedules.ListSlots(r.Context(), oneLinkID)
		if err != nil {
			log.Error("failed to list slots", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list slots"))

			return
		}

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Schedules: list,
		})
	}
}

// NewRequests lists the authenticated user's slots that carry pending
// requests.
func NewRequests(log *slog.Logger, schedules SlotProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.listSlots.NewRequests"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		list, err := schedules.ListRequestsForUser(r.Context(), userID)
		if err != nil {
			log.Error("failed to list slot requests", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list slot requests"))

			return
		}

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Schedules: list,
		})
	}
}

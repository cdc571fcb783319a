package calendarAuth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/http-server/middleware/mwauth"
	"meetbooker/internal/lib/api/response"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/storage"
)

type URLResponse struct {
	response.Response
	AuthURL string `json:"auth_url"`
}

type CallbackResponse struct {
	response.Response
	User *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	AuthURL() string
	HandleAuthCallback(ctx context.Context, code string, userID primitive.ObjectID) (*models.User, error)
}

// NewAuthURL hands out the Google consent page URL for calendar sync.
func NewAuthURL(log *slog.Logger, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, URLResponse{
			Response: response.OK(),
			AuthURL:  auth.AuthURL(),
		})
	}
}

// NewCallback exchanges the consent code and stores the resulting tokens on
// the authenticated user.
func NewCallback(log *slog.Logger, auth Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedule.calendarAuth.NewCallback"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))

			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("code is required"))

			return
		}

		user, err := auth.HandleAuthCallback(r.Context(), code, userID)
		if err != nil {
			log.Error("failed to handle auth callback", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to complete calendar sync"))

			return
		}

		log.Info("calendar synced", slog.String("user_id", userID.Hex()))

		render.JSON(w, r, CallbackResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}

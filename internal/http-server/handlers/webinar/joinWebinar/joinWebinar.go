package joinWebinar

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
	"meetbooker/internal/service"
	"meetbooker/internal/storage"
)

type Request struct {
	PaymentStatus string  `json:"payment_status"`
	PaymentID     string  `json:"payment_id"`
	PaymentAmount float64 `json:"payment_amount" validate:"gte=0"`
}

type Response struct {
	response.Response
	Webinar *models.Webinar `json:"webinar,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WebinarJoiner
type WebinarJoiner interface {
	JoinWebinar(ctx context.Context, webinarID, userID primitive.ObjectID, payment service.PaymentInput) (*models.Webinar, error)
}

func New(log *slog.Logger, webinars WebinarJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webinar.joinWebinar.New"

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

		var req Request

		// The body is optional for free webinars.
		if err = render.DecodeJSON(r.Body, &req); err != nil {
			req = Request{}
		}

		webinar, err := webinars.JoinWebinar(r.Context(), webinarID, userID, service.PaymentInput{
			Status: models.PaymentStatus(req.PaymentStatus),
			ID:     req.PaymentID,
			Amount: req.PaymentAmount,
		})
		if err != nil {
			log.Error("failed to join webinar", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrWebinarNotFound), errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("webinar or user not found"))
			case errors.Is(err, storage.ErrAlreadyJoined):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("already joined this webinar"))
			case errors.Is(err, service.ErrPaymentRequired):
				render.Status(r, http.StatusPaymentRequired)
				render.JSON(w, r, response.Error("payment required to join this webinar"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to join webinar"))
			}

			return
		}

		log.Info("user joined webinar",
			slog.String("webinar_id", webinarID.Hex()),
			slog.String("user_id", userID.Hex()),
		)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Webinar:  webinar,
		})
	}
}

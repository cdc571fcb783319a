package mwauth

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/lib/api/response"
)

// The real authentication layer lives in front of this service; it forwards
// the authenticated user id in this header.
const userIDHeader = "X-User-ID"

type ctxKey struct{}

// New rejects requests without a valid forwarded user id and stores the id in
// the request context.
func New() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			id, err := primitive.ObjectIDFromHex(r.Header.Get(userIDHeader))
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), ctxKey{}, id),
			))
		}

		return http.HandlerFunc(fn)
	}
}

// UserID returns the authenticated user id stored by New.
func UserID(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(ctxKey{}).(primitive.ObjectID)

	return id, ok
}

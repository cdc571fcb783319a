package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
)

// ErrReauthRequired means the stored credentials cannot be repaired by a
// refresh and the user must go through the consent flow again.
var ErrReauthRequired = errors.New("calendar authorization required")

// Access tokens live for about an hour on the provider side; renewing 50
// minutes out keeps a safety margin under that lifetime.
const tokenLifetime = 50 * time.Minute

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Exchanger
type Exchanger interface {
	ExchangeRefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenStore
type TokenStore interface {
	SaveMeetingToken(ctx context.Context, userID primitive.ObjectID, token models.MeetingToken) error
}

// Refresher ensures a valid (non-expired) access token before any calendar
// call, renewing and persisting credentials transparently.
type Refresher struct {
	log       *slog.Logger
	exchanger Exchanger
	store     TokenStore
	now       func() time.Time
}

func NewRefresher(log *slog.Logger, exchanger Exchanger, store TokenStore) *Refresher {
	return &Refresher{
		log:       log,
		exchanger: exchanger,
		store:     store,
		now:       time.Now,
	}
}

// EnsureAccessToken returns the user's stored access token, refreshing it
// first when the stored expiry has passed. The refreshed token and its new
// expiry are persisted onto the user record before returning.
func (r *Refresher) EnsureAccessToken(ctx context.Context, user *models.User) (string, error) {
	const op = "calendar.Refresher.EnsureAccessToken"

	token := user.MeetingToken
	if token == nil || token.RefreshToken == "" {
		return "", fmt.Errorf("%s: %w", op, ErrReauthRequired)
	}

	if !r.expired(token.ExpireIn) {
		return token.AccessToken, nil
	}

	accessToken, err := r.exchanger.ExchangeRefreshToken(ctx, token.RefreshToken)
	if err != nil {
		r.log.Error("refresh token exchange failed",
			slog.String("op", op),
			slog.String("user_id", user.ID.Hex()),
			sl.Err(err),
		)

		return "", fmt.Errorf("%s: %w", op, ErrReauthRequired)
	}

	token.AccessToken = accessToken
	token.ExpireIn = FormatLocal(r.now().Add(tokenLifetime))

	if err := r.store.SaveMeetingToken(ctx, user.ID, *token); err != nil {
		return "", fmt.Errorf("%s: failed to persist refreshed token: %w", op, err)
	}

	return accessToken, nil
}

// expired treats an unparseable expiry as expired; a missing one means the
// provider never sent a lifetime and the stored token is used as-is.
func (r *Refresher) expired(expireIn string) bool {
	if expireIn == "" {
		return false
	}

	expiry, err := ParseLocal(expireIn)
	if err != nil {
		return true
	}

	return r.now().After(expiry)
}

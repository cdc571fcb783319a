package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar/mocks"
	"meetbooker/internal/lib/logger/handlers/slogdiscard"
	"meetbooker/internal/models"
)

func newTestRefresher(t *testing.T, now time.Time) (*Refresher, *mocks.Exchanger, *mocks.TokenStore) {
	t.Helper()

	exchanger := mocks.NewExchanger(t)
	store := mocks.NewTokenStore(t)

	r := NewRefresher(slogdiscard.NewDiscardLogger(), exchanger, store)
	r.now = func() time.Time { return now }

	return r, exchanger, store
}

func TestEnsureAccessTokenNotExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, Location())
	r, _, _ := newTestRefresher(t, now)

	user := &models.User{
		ID: primitive.NewObjectID(),
		MeetingToken: &models.MeetingToken{
			AccessToken:  "stored-token",
			RefreshToken: "refresh-token",
			ExpireIn:     FormatLocal(now.Add(20 * time.Minute)),
		},
	}

	// A valid token is returned unchanged, with no remote call; a second
	// call right after behaves identically.
	for i := 0; i < 2; i++ {
		token, err := r.EnsureAccessToken(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, "stored-token", token)
	}
}

func TestEnsureAccessTokenExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, Location())
	r, exchanger, store := newTestRefresher(t, now)

	userID := primitive.NewObjectID()
	user := &models.User{
		ID: userID,
		MeetingToken: &models.MeetingToken{
			AccessToken:  "stale-token",
			RefreshToken: "refresh-token",
			ExpireIn:     FormatLocal(now.Add(-time.Minute)),
		},
	}

	wantExpiry := FormatLocal(now.Add(50 * time.Minute))

	exchanger.On("ExchangeRefreshToken", mock.Anything, "refresh-token").
		Return("fresh-token", nil).Once()
	store.On("SaveMeetingToken", mock.Anything, userID, models.MeetingToken{
		AccessToken:  "fresh-token",
		RefreshToken: "refresh-token",
		ExpireIn:     wantExpiry,
	}).Return(nil).Once()

	token, err := r.EnsureAccessToken(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.Equal(t, wantExpiry, user.MeetingToken.ExpireIn)

	// The renewed token is reused without another exchange.
	token, err = r.EnsureAccessToken(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

func TestEnsureAccessTokenRefreshFails(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, Location())
	r, exchanger, _ := newTestRefresher(t, now)

	user := &models.User{
		ID: primitive.NewObjectID(),
		MeetingToken: &models.MeetingToken{
			AccessToken:  "stale-token",
			RefreshToken: "revoked-token",
			ExpireIn:     FormatLocal(now.Add(-time.Hour)),
		},
	}

	exchanger.On("ExchangeRefreshToken", mock.Anything, "revoked-token").
		Return("", errors.New("invalid_grant")).Once()

	_, err := r.EnsureAccessToken(context.Background(), user)
	require.ErrorIs(t, err, ErrReauthRequired)
}

func TestEnsureAccessTokenNoToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, Location())

	testCases := []struct {
		name string
		user *models.User
	}{
		{
			name: "No meeting token",
			user: &models.User{ID: primitive.NewObjectID()},
		},
		{
			name: "No refresh token",
			user: &models.User{
				ID:           primitive.NewObjectID(),
				MeetingToken: &models.MeetingToken{AccessToken: "token"},
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, _, _ := newTestRefresher(t, now)

			_, err := r.EnsureAccessToken(context.Background(), tc.user)
			require.ErrorIs(t, err, ErrReauthRequired)
		})
	}
}

func TestEnsureAccessTokenUnparseableExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, Location())
	r, exchanger, store := newTestRefresher(t, now)

	userID := primitive.NewObjectID()
	user := &models.User{
		ID: userID,
		MeetingToken: &models.MeetingToken{
			AccessToken:  "stale-token",
			RefreshToken: "refresh-token",
			ExpireIn:     "not-a-timestamp",
		},
	}

	exchanger.On("ExchangeRefreshToken", mock.Anything, "refresh-token").
		Return("fresh-token", nil).Once()
	store.On("SaveMeetingToken", mock.Anything, userID, mock.AnythingOfType("models.MeetingToken")).
		Return(nil).Once()

	token, err := r.EnsureAccessToken(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/lib/logger/handlers/slogdiscard"
	"meetbooker/internal/models"
	"meetbooker/internal/service/mocks"
)

type webinarFixture struct {
	svc      *WebinarService
	users    *mocks.UserStore
	webinars *mocks.WebinarStore
	tokens   *mocks.TokenEnsurer
	cal      *mocks.CalendarClient
}

func newWebinarFixture(t *testing.T) *webinarFixture {
	t.Helper()

	f := &webinarFixture{
		users:    &mocks.UserStore{},
		webinars: &mocks.WebinarStore{},
		tokens:   &mocks.TokenEnsurer{},
		cal:      &mocks.CalendarClient{},
	}

	f.svc = NewWebinarService(
		slogdiscard.NewDiscardLogger(),
		f.users, f.webinars, f.tokens, f.cal,
	)

	t.Cleanup(func() {
		f.users.AssertExpectations(t)
		f.webinars.AssertExpectations(t)
		f.tokens.AssertExpectations(t)
		f.cal.AssertExpectations(t)
	})

	return f
}

func TestCreateWebinar(t *testing.T) {
	t.Parallel()

	f := newWebinarFixture(t)

	userID := primitive.NewObjectID()
	webinarID := primitive.NewObjectID()
	user := &models.User{ID: userID}

	f.users.On("GetUserByID", mock.Anything, userID).Return(user, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, user).Return("access-token", nil)
	f.cal.On("InsertEvent", mock.Anything, "access-token", calendar.EventPayload{
		Summary:     "Fundraising 101",
		Description: "How to raise a seed round",
		Start:       "2024-06-01T18:00:00",
		End:         "2024-06-01T19:00:00",
	}).Return(calendar.RemoteEvent{ID: "google-web-1", ConferenceLink: "https://meet.google.com/web"}, nil)
	f.webinars.On("CreateWebinar", mock.Anything, mock.AnythingOfType("*models.Webinar")).
		Return(webinarID, nil)
	f.users.On("PushWebinarRef", mock.Anything, userID, webinarID).Return(nil)

	webinar, warnings, err := f.svc.CreateWebinar(context.Background(), userID, WebinarInput{
		Title:       "Fundraising 101",
		Description: "How to raise a seed round",
		Date:        "2024-06-01",
		StartTime:   "2024-06-01T18:00:00",
		EndTime:     "2024-06-01T19:00:00",
		Duration:    60,
	})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "https://meet.google.com/web", webinar.Link)
	assert.Equal(t, "google-web-1", webinar.GoogleWebinarID)
	assert.Equal(t, models.EventTypePublic, webinar.WebinarType)
}

func TestDeleteWebinarCascades(t *testing.T) {
	t.Parallel()

	f := newWebinarFixture(t)

	userID := primitive.NewObjectID()
	webinarID := primitive.NewObjectID()
	user := &models.User{ID: userID}
	webinar := &models.Webinar{ID: webinarID, UserID: userID, GoogleWebinarID: "google-web-9"}

	f.users.On("GetUserByID", mock.Anything, userID).Return(user, nil)
	f.webinars.On("GetWebinarByOwner", mock.Anything, userID, webinarID).Return(webinar, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, user).Return("access-token", nil)
	f.cal.On("DeleteEvent", mock.Anything, "access-token", "google-web-9").Return(nil)
	f.webinars.On("DeleteWebinar", mock.Anything, userID, webinarID).Return(webinar, nil)
	f.users.On("PullWebinarRef", mock.Anything, userID, webinarID).Return(nil)

	deleted, err := f.svc.DeleteWebinar(context.Background(), userID, webinarID)

	require.NoError(t, err)
	assert.Equal(t, webinarID, deleted.ID)
}

func TestGetWebinarsByOneLinkFiltersPitchDay(t *testing.T) {
	t.Parallel()

	f := newWebinarFixture(t)

	userID := primitive.NewObjectID()
	user := &models.User{ID: userID, OneLinkID: "one-link-1"}

	f.users.On("GetUserByOneLink", mock.Anything, "one-link-1").Return(user, nil)
	f.webinars.On("GetWebinarsByUser", mock.Anything, userID).Return([]models.Webinar{
		{Title: "Public session", WebinarType: models.EventTypePublic},
		{Title: "Demo day", WebinarType: models.EventTypePitchDay},
		{Title: "Members only", WebinarType: models.EventTypePrivate},
	}, nil)

	webinars, err := f.svc.GetWebinarsByOneLink(context.Background(), "one-link-1")

	require.NoError(t, err)
	require.Len(t, webinars, 1)
	assert.Equal(t, "Demo day", webinars[0].Title)
}

func TestJoinWebinar(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	webinarID := primitive.NewObjectID()

	testCases := []struct {
		name        string
		webinar     *models.Webinar
		payment     PaymentInput
		wantStatus  models.PaymentStatus
		expectedErr error
	}{
		{
			name:       "Free webinar requires no payment",
			webinar:    &models.Webinar{ID: webinarID, Price: 0},
			payment:    PaymentInput{},
			wantStatus: models.PaymentNotRequired,
		},
		{
			name:       "Fully discounted webinar requires no payment",
			webinar:    &models.Webinar{ID: webinarID, Price: 100, Discount: 100},
			payment:    PaymentInput{},
			wantStatus: models.PaymentNotRequired,
		},
		{
			name:       "Paid webinar with successful payment",
			webinar:    &models.Webinar{ID: webinarID, Price: 100},
			payment:    PaymentInput{Status: models.PaymentPaid, ID: "pay-1", Amount: 100},
			wantStatus: models.PaymentPaid,
		},
		{
			name:        "Paid webinar without payment",
			webinar:     &models.Webinar{ID: webinarID, Price: 100},
			payment:     PaymentInput{},
			expectedErr: ErrPaymentRequired,
		},
		{
			name:        "Paid webinar with failed payment",
			webinar:     &models.Webinar{ID: webinarID, Price: 100},
			payment:     PaymentInput{Status: models.PaymentFailed},
			expectedErr: ErrPaymentRequired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newWebinarFixture(t)

			f.users.On("GetUserByID", mock.Anything, userID).
				Return(&models.User{ID: userID}, nil)
			f.webinars.On("GetWebinar", mock.Anything, webinarID).Return(tc.webinar, nil)

			if tc.expectedErr == nil {
				f.webinars.On("PushJoinedUser", mock.Anything, webinarID,
					mock.MatchedBy(func(j models.JoinedUser) bool {
						return j.UserID == userID && j.PaymentStatus == tc.wantStatus
					})).Return(nil)
				f.webinars.On("GetWebinar", mock.Anything, webinarID).Return(tc.webinar, nil)
			}

			_, err := f.svc.JoinWebinar(context.Background(), webinarID, userID, tc.payment)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

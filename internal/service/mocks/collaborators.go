package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/models"
)

type TokenEnsurer struct {
	mock.Mock
}

func (m *TokenEnsurer) EnsureAccessToken(ctx context.Context, user *models.User) (string, error) {
	ret := m.Called(ctx, user)

	return ret.String(0), ret.Error(1)
}

type CalendarClient struct {
	mock.Mock
}

func (m *CalendarClient) InsertEvent(ctx context.Context, accessToken string, p calendar.EventPayload) (calendar.RemoteEvent, error) {
	ret := m.Called(ctx, accessToken, p)

	return ret.Get(0).(calendar.RemoteEvent), ret.Error(1)
}

func (m *CalendarClient) DeleteEvent(ctx context.Context, accessToken, eventID string) error {
	return m.Called(ctx, accessToken, eventID).Error(0)
}

type Authorizer struct {
	mock.Mock
}

func (m *Authorizer) AuthURL() string {
	return m.Called().String(0)
}

func (m *Authorizer) ExchangeCode(ctx context.Context, code string) (*models.MeetingToken, error) {
	ret := m.Called(ctx, code)

	var r0 *models.MeetingToken
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.MeetingToken)
	}

	return r0, ret.Error(1)
}

type Notifier struct {
	mock.Mock
}

func (m *Notifier) AddNotification(ctx context.Context, recipient primitive.ObjectID, notifType string, ref primitive.ObjectID) error {
	return m.Called(ctx, recipient, notifType, ref).Error(0)
}

func (m *Notifier) DeleteNotification(ctx context.Context, recipient primitive.ObjectID, notifType string, ref primitive.ObjectID) error {
	return m.Called(ctx, recipient, notifType, ref).Error(0)
}

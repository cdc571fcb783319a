package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/lib/logger/handlers/slogdiscard"
	"meetbooker/internal/models"
	"meetbooker/internal/notify"
	"meetbooker/internal/service/mocks"
)

type scheduleFixture struct {
	svc       *ScheduleService
	users     *mocks.UserStore
	schedules *mocks.ScheduleStore
	tokens    *mocks.TokenEnsurer
	cal       *mocks.CalendarClient
	auth      *mocks.Authorizer
	notifier  *mocks.Notifier
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()

	f := &scheduleFixture{
		users:     &mocks.UserStore{},
		schedules: &mocks.ScheduleStore{},
		tokens:    &mocks.TokenEnsurer{},
		cal:       &mocks.CalendarClient{},
		auth:      &mocks.Authorizer{},
		notifier:  &mocks.Notifier{},
	}

	f.svc = NewScheduleService(
		slogdiscard.NewDiscardLogger(),
		f.users, f.schedules, f.tokens, f.cal, f.auth, f.notifier,
	)

	t.Cleanup(func() {
		f.users.AssertExpectations(t)
		f.schedules.AssertExpectations(t)
		f.tokens.AssertExpectations(t)
		f.cal.AssertExpectations(t)
		f.auth.AssertExpectations(t)
		f.notifier.AssertExpectations(t)
	})

	return f
}

func slotAt(hour, min, durMin int) (time.Time, time.Time) {
	start := time.Date(2024, time.June, 1, hour, min, 0, 0, calendar.Location())

	return start, start.Add(time.Duration(durMin) * time.Minute)
}

func TestCreateSlot(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)

	requesterID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()
	scheduleID := primitive.NewObjectID()

	requester := &models.User{ID: requesterID}
	owner := &models.User{ID: ownerID, OneLinkID: "one-link-1"}

	start, end := slotAt(10, 0, 30)

	f.users.On("GetUserByID", mock.Anything, requesterID).Return(requester, nil)
	f.users.On("GetUserByOneLink", mock.Anything, "one-link-1").Return(owner, nil)
	f.schedules.On("GetSchedulesByRequester", mock.Anything, requesterID).Return(nil, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, requester).Return("access-token", nil)
	f.cal.On("InsertEvent", mock.Anything, "access-token", calendar.EventPayload{
		Summary:     "Pitch meeting",
		Description: "Discuss term sheet",
		Start:       "2024-06-01T10:00:00",
		End:         "2024-06-01T10:30:00",
	}).Return(calendar.RemoteEvent{ID: "google-slot-1", ConferenceLink: "https://meet.google.com/slot"}, nil)
	f.schedules.On("CreateSchedule", mock.Anything, mock.AnythingOfType("*models.Schedule")).
		Return(scheduleID, nil)

	schedule, warnings, err := f.svc.CreateSlot(context.Background(), requesterID, SlotInput{
		OneLinkID: "one-link-1",
		Title:     "Pitch meeting",
		Agenda:    "Discuss term sheet",
		Start:     start,
		End:       end,
	})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, ownerID, schedule.UserID)
	assert.Equal(t, requesterID, schedule.RequesterID)
	assert.Equal(t, "https://meet.google.com/slot", schedule.MeetingLink)
	assert.Equal(t, "google-slot-1", schedule.GoogleID)
}

func TestCreateSlotConflict(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)

	requesterID := primitive.NewObjectID()
	requester := &models.User{ID: requesterID}

	existingStart, existingEnd := slotAt(10, 0, 30)
	candidateStart, candidateEnd := slotAt(10, 15, 30)

	f.users.On("GetUserByID", mock.Anything, requesterID).Return(requester, nil)
	f.users.On("GetUserByOneLink", mock.Anything, "one-link-1").
		Return(&models.User{ID: primitive.NewObjectID()}, nil)
	f.schedules.On("GetSchedulesByRequester", mock.Anything, requesterID).Return([]models.Schedule{
		{ID: primitive.NewObjectID(), Start: existingStart, End: existingEnd},
	}, nil)

	_, _, err := f.svc.CreateSlot(context.Background(), requesterID, SlotInput{
		OneLinkID: "one-link-1",
		Start:     candidateStart,
		End:       candidateEnd,
	})

	require.ErrorIs(t, err, ErrConflict)
	f.cal.AssertNotCalled(t, "InsertEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestSlot(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)

	scheduleID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	start, end := slotAt(10, 0, 30)
	schedule := &models.Schedule{ID: scheduleID, UserID: ownerID, Start: start, End: end}

	f.schedules.On("GetSchedule", mock.Anything, scheduleID).Return(schedule, nil)
	f.schedules.On("PushSlotRequest", mock.Anything, scheduleID, mock.MatchedBy(func(r models.SlotRequest) bool {
		return r.Name == "Alice" && r.Start.Equal(start) && r.End.Equal(end) && !r.ID.IsZero()
	})).Return(nil)
	f.notifier.On("AddNotification", mock.Anything, ownerID, notify.TypeMeetingRequest, scheduleID).
		Return(nil)

	updated, err := f.svc.RequestSlot(context.Background(), scheduleID, SlotRequestInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	require.NoError(t, err)
	require.Len(t, updated.RequestedBy, 1)
	assert.Equal(t, "Alice", updated.RequestedBy[0].Name)
}

func TestRequestSlotAlreadyBooked(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)

	scheduleID := primitive.NewObjectID()
	schedule := &models.Schedule{
		ID:       scheduleID,
		BookedBy: &models.SlotRequest{Name: "Bob"},
	}

	f.schedules.On("GetSchedule", mock.Anything, scheduleID).Return(schedule, nil)

	_, err := f.svc.RequestSlot(context.Background(), scheduleID, SlotRequestInput{Name: "Alice"})

	require.ErrorIs(t, err, ErrSlotBooked)
}

func TestAcceptRequestClearsPending(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)

	scheduleID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	requests := []models.SlotRequest{
		{ID: primitive.NewObjectID(), Name: "Alice"},
		{ID: primitive.NewObjectID(), Name: "Bob"},
		{ID: primitive.NewObjectID(), Name: "Carol"},
	}
	accepted := requests[1]

	schedule := &models.Schedule{ID: scheduleID, UserID: ownerID, RequestedBy: requests}

	f.schedules.On("GetSchedule", mock.Anything, scheduleID).Return(schedule, nil)
	f.schedules.On("UpdateScheduleRequests", mock.Anything, scheduleID,
		[]models.SlotRequest(nil), &accepted).Return(nil)
	f.notifier.On("DeleteNotification", mock.Anything, ownerID, notify.TypeMeetingRequest, scheduleID).
		Return(nil)

	updated, err := f.svc.AcceptRequest(context.Background(), scheduleID, accepted.ID)

	require.NoError(t, err)
	assert.Empty(t, updated.RequestedBy)
	require.NotNil(t, updated.BookedBy)
	assert.Equal(t, "Bob", updated.BookedBy.Name)
}

func TestAcceptRequestNotFound(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)

	scheduleID := primitive.NewObjectID()
	schedule := &models.Schedule{
		ID:          scheduleID,
		RequestedBy: []models.SlotRequest{{ID: primitive.NewObjectID(), Name: "Alice"}},
	}

	f.schedules.On("GetSchedule", mock.Anything, scheduleID).Return(schedule, nil)

	_, err := f.svc.AcceptRequest(context.Background(), scheduleID, primitive.NewObjectID())

	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRejectRequestRemovesOne(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)

	scheduleID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	requests := []models.SlotRequest{
		{ID: primitive.NewObjectID(), Name: "Alice"},
		{ID: primitive.NewObjectID(), Name: "Bob"},
		{ID: primitive.NewObjectID(), Name: "Carol"},
	}
	rejected := requests[1]

	schedule := &models.Schedule{ID: scheduleID, UserID: ownerID, RequestedBy: requests}

	f.schedules.On("GetSchedule", mock.Anything, scheduleID).Return(schedule, nil)
	f.schedules.On("UpdateScheduleRequests", mock.Anything, scheduleID,
		mock.MatchedBy(func(remaining []models.SlotRequest) bool {
			return len(remaining) == 2 && remaining[0].Name == "Alice" && remaining[1].Name == "Carol"
		}), (*models.SlotRequest)(nil)).Return(nil)
	f.notifier.On("DeleteNotification", mock.Anything, ownerID, notify.TypeMeetingRequest, scheduleID).
		Return(nil)

	updated, err := f.svc.RejectRequest(context.Background(), scheduleID, rejected.ID)

	require.NoError(t, err)
	assert.Len(t, updated.RequestedBy, 2)
	assert.Nil(t, updated.BookedBy)
}

func TestDeleteSlotCascades(t *testing.T) {
	t.Parallel()

	f := newScheduleFixture(t)

	ownerID := primitive.NewObjectID()
	requesterID := primitive.NewObjectID()
	scheduleID := primitive.NewObjectID()

	requester := &models.User{ID: requesterID}
	schedule := &models.Schedule{
		ID:          scheduleID,
		UserID:      ownerID,
		RequesterID: requesterID,
		GoogleID:    "google-slot-9",
	}

	f.schedules.On("DeleteSchedule", mock.Anything, ownerID, scheduleID).Return(schedule, nil)
	f.users.On("GetUserByID", mock.Anything, requesterID).Return(requester, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, requester).Return("access-token", nil)
	f.cal.On("DeleteEvent", mock.Anything, "access-token", "google-slot-9").Return(nil)
	f.notifier.On("DeleteNotification", mock.Anything, ownerID, notify.TypeMeetingRequest, scheduleID).
		Return(nil)

	deleted, err := f.svc.DeleteSlot(context.Background(), ownerID, scheduleID)

	require.NoError(t, err)
	assert.Equal(t, scheduleID, deleted.ID)
}

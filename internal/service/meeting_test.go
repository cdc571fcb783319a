package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/lib/logger/handlers/slogdiscard"
	"meetbooker/internal/models"
	"meetbooker/internal/service/mocks"
	"meetbooker/internal/storage"
)

type meetingFixture struct {
	svc            *MeetingService
	users          *mocks.UserStore
	events         *mocks.EventStore
	bookings       *mocks.BookingStore
	availabilities *mocks.AvailabilityStore
	tokens         *mocks.TokenEnsurer
	cal            *mocks.CalendarClient
}

func newMeetingFixture(t *testing.T) *meetingFixture {
	t.Helper()

	f := &meetingFixture{
		users:          &mocks.UserStore{},
		events:         &mocks.EventStore{},
		bookings:       &mocks.BookingStore{},
		availabilities: &mocks.AvailabilityStore{},
		tokens:         &mocks.TokenEnsurer{},
		cal:            &mocks.CalendarClient{},
	}

	f.svc = NewMeetingService(
		slogdiscard.NewDiscardLogger(),
		f.users, f.events, f.bookings, f.availabilities, f.tokens, f.cal,
	)
	f.svc.now = func() time.Time {
		return time.Date(2024, time.March, 10, 12, 0, 0, 0, calendar.Location())
	}

	t.Cleanup(func() {
		f.users.AssertExpectations(t)
		f.events.AssertExpectations(t)
		f.bookings.AssertExpectations(t)
		f.availabilities.AssertExpectations(t)
		f.tokens.AssertExpectations(t)
		f.cal.AssertExpectations(t)
	})

	return f
}

func TestScheduleMeeting(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	ownerID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	owner := &models.User{ID: ownerID, UserName: "founder"}
	event := &models.Event{ID: eventID, UserID: ownerID, Title: "Intro call", Duration: 30}

	f.events.On("GetEvent", mock.Anything, eventID).Return(event, nil)
	f.users.On("GetUserByUsername", mock.Anything, "founder").Return(owner, nil)
	f.bookings.On("GetBookingsByUser", mock.Anything, ownerID).Return(nil, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, owner).Return("access-token", nil)
	f.cal.On("InsertEvent", mock.Anything, "access-token", calendar.EventPayload{
		Summary:     "Intro call",
		Description: "Seed round pitch",
		Start:       "2024-06-01T10:00:00",
		End:         "2024-06-01T10:30:00",
	}).Return(calendar.RemoteEvent{ID: "google-ev-1", ConferenceLink: "https://meet.google.com/abc"}, nil)
	f.bookings.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Booking).ID = bookingID
		}).
		Return(bookingID, nil)
	f.events.On("PushBookingRef", mock.Anything, eventID, bookingID).Return(nil)

	booking, warnings, err := f.svc.ScheduleMeeting(context.Background(), ScheduleMeetingInput{
		Username:       "founder",
		EventID:        eventID,
		Name:           "Alice",
		Email:          "alice@example.com",
		Date:           "June 01",
		StartTime:      "10:00",
		EndTime:        "10:30",
		AdditionalInfo: "Seed round pitch",
	})

	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "https://meet.google.com/abc", booking.MeetingLink)
	assert.Equal(t, "google-ev-1", booking.GoogleEventID)
	assert.Equal(t, "2024-06-01T10:00:00", booking.Start)
	assert.Equal(t, "2024-06-01T10:30:00", booking.End)
	assert.Equal(t, "June 01", booking.Date)
	assert.Equal(t, "Intro call", booking.Title)
}

func TestScheduleMeetingConflict(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	ownerID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()

	owner := &models.User{ID: ownerID, UserName: "founder"}
	event := &models.Event{ID: eventID, UserID: ownerID, Title: "Intro call"}

	existing := []models.Booking{{
		ID:    primitive.NewObjectID(),
		Start: "2024-06-01T10:00:00",
		End:   "2024-06-01T10:30:00",
	}}

	f.events.On("GetEvent", mock.Anything, eventID).Return(event, nil)
	f.users.On("GetUserByUsername", mock.Anything, "founder").Return(owner, nil)
	f.bookings.On("GetBookingsByUser", mock.Anything, ownerID).Return(existing, nil)

	_, _, err := f.svc.ScheduleMeeting(context.Background(), ScheduleMeetingInput{
		Username:  "founder",
		EventID:   eventID,
		Date:      "June 01",
		StartTime: "10:15",
		EndTime:   "10:45",
	})

	require.ErrorIs(t, err, ErrConflict)
}

func TestScheduleMeetingBackToBackAllowed(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	ownerID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	owner := &models.User{ID: ownerID, UserName: "founder"}
	event := &models.Event{ID: eventID, UserID: ownerID, Title: "Intro call"}

	existing := []models.Booking{{
		ID:    primitive.NewObjectID(),
		Start: "2024-06-01T10:00:00",
		End:   "2024-06-01T10:30:00",
	}}

	f.events.On("GetEvent", mock.Anything, eventID).Return(event, nil)
	f.users.On("GetUserByUsername", mock.Anything, "founder").Return(owner, nil)
	f.bookings.On("GetBookingsByUser", mock.Anything, ownerID).Return(existing, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, owner).Return("access-token", nil)
	f.cal.On("InsertEvent", mock.Anything, "access-token", mock.AnythingOfType("calendar.EventPayload")).
		Return(calendar.RemoteEvent{ID: "google-ev-2", ConferenceLink: "https://meet.google.com/def"}, nil)
	f.bookings.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(bookingID, nil)
	f.events.On("PushBookingRef", mock.Anything, eventID, bookingID).Return(nil)

	_, _, err := f.svc.ScheduleMeeting(context.Background(), ScheduleMeetingInput{
		Username:  "founder",
		EventID:   eventID,
		Date:      "June 01",
		StartTime: "10:30",
		EndTime:   "11:00",
	})

	require.NoError(t, err)
}

func TestScheduleMeetingMissingConferenceLink(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	ownerID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	owner := &models.User{ID: ownerID, UserName: "founder"}
	event := &models.Event{ID: eventID, UserID: ownerID, Title: "Intro call"}

	f.events.On("GetEvent", mock.Anything, eventID).Return(event, nil)
	f.users.On("GetUserByUsername", mock.Anything, "founder").Return(owner, nil)
	f.bookings.On("GetBookingsByUser", mock.Anything, ownerID).Return(nil, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, owner).Return("access-token", nil)
	f.cal.On("InsertEvent", mock.Anything, "access-token", mock.AnythingOfType("calendar.EventPayload")).
		Return(calendar.RemoteEvent{ID: "google-ev-3"}, nil)
	f.bookings.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(bookingID, nil)
	f.events.On("PushBookingRef", mock.Anything, eventID, bookingID).Return(nil)

	booking, warnings, err := f.svc.ScheduleMeeting(context.Background(), ScheduleMeetingInput{
		Username:  "founder",
		EventID:   eventID,
		Date:      "June 01",
		StartTime: "10:00",
		EndTime:   "10:30",
	})

	require.NoError(t, err)
	assert.Empty(t, booking.MeetingLink)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "conference link")
}

func TestScheduleMeetingUpstreamFailure(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	ownerID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()

	owner := &models.User{ID: ownerID, UserName: "founder"}
	event := &models.Event{ID: eventID, UserID: ownerID, Title: "Intro call"}

	f.events.On("GetEvent", mock.Anything, eventID).Return(event, nil)
	f.users.On("GetUserByUsername", mock.Anything, "founder").Return(owner, nil)
	f.bookings.On("GetBookingsByUser", mock.Anything, ownerID).Return(nil, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, owner).Return("access-token", nil)
	f.cal.On("InsertEvent", mock.Anything, "access-token", mock.AnythingOfType("calendar.EventPayload")).
		Return(calendar.RemoteEvent{}, errors.New("quota exceeded"))

	_, _, err := f.svc.ScheduleMeeting(context.Background(), ScheduleMeetingInput{
		Username:  "founder",
		EventID:   eventID,
		Date:      "June 01",
		StartTime: "10:00",
		EndTime:   "10:30",
	})

	require.Error(t, err)
	// No booking is persisted when the remote insert failed.
	f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCancelScheduledMeeting(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	userID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	user := &models.User{ID: userID}
	booking := &models.Booking{ID: bookingID, UserID: userID, GoogleEventID: "google-ev-9"}
	event := &models.Event{ID: eventID, UserID: userID, BookingIDs: []primitive.ObjectID{bookingID}}

	f.users.On("GetUserByID", mock.Anything, userID).Return(user, nil)
	f.bookings.On("GetBooking", mock.Anything, userID, bookingID).Return(booking, nil)
	f.events.On("FindEventByBooking", mock.Anything, userID, bookingID).Return(event, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, user).Return("access-token", nil)
	f.cal.On("DeleteEvent", mock.Anything, "access-token", "google-ev-9").Return(nil)
	f.events.On("PullBookingRef", mock.Anything, eventID, bookingID).Return(nil)
	f.bookings.On("DeleteBooking", mock.Anything, userID, bookingID).Return(booking, nil)

	deleted, err := f.svc.CancelScheduledMeeting(context.Background(), userID, bookingID)

	require.NoError(t, err)
	assert.Equal(t, bookingID, deleted.ID)
}

func TestCancelScheduledMeetingLocalCleanupFails(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	userID := primitive.NewObjectID()
	eventID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	user := &models.User{ID: userID}
	booking := &models.Booking{ID: bookingID, UserID: userID, GoogleEventID: "google-ev-9"}
	event := &models.Event{ID: eventID, UserID: userID}

	f.users.On("GetUserByID", mock.Anything, userID).Return(user, nil)
	f.bookings.On("GetBooking", mock.Anything, userID, bookingID).Return(booking, nil)
	f.events.On("FindEventByBooking", mock.Anything, userID, bookingID).Return(event, nil)
	f.tokens.On("EnsureAccessToken", mock.Anything, user).Return("access-token", nil)
	f.cal.On("DeleteEvent", mock.Anything, "access-token", "google-ev-9").Return(nil)
	f.events.On("PullBookingRef", mock.Anything, eventID, bookingID).Return(errors.New("write failed"))

	_, err := f.svc.CancelScheduledMeeting(context.Background(), userID, bookingID)

	require.ErrorIs(t, err, ErrInconsistentState)
}

func TestCancelScheduledMeetingNotFound(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	userID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	f.users.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil)
	f.bookings.On("GetBooking", mock.Anything, userID, bookingID).
		Return(nil, storage.ErrBookingNotFound)

	_, err := f.svc.CancelScheduledMeeting(context.Background(), userID, bookingID)

	require.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestUpdateAvailabilityNormalizesDays(t *testing.T) {
	t.Parallel()

	f := newMeetingFixture(t)

	userID := primitive.NewObjectID()
	user := &models.User{ID: userID}

	f.users.On("GetUserByID", mock.Anything, userID).Return(user, nil)
	f.availabilities.On("UpsertAvailability", mock.Anything, mock.MatchedBy(func(a *models.Availability) bool {
		return len(a.DayAvailability) == 1 && a.DayAvailability[0].Day == "monday"
	})).Return(&models.Availability{UserID: userID}, nil)

	_, err := f.svc.UpdateAvailability(context.Background(), userID, AvailabilityInput{
		DayAvailability: []DayAvailabilityInput{
			{Day: "Monday", Start: "09:00", End: "17:00", Enabled: true},
		},
		MinimumGap: 15,
	})

	require.NoError(t, err)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/models"
)

type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ret := m.Called(ctx, id)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	return r0, ret.Error(1)
}

func (m *UserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ret := m.Called(ctx, username)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	return r0, ret.Error(1)
}

func (m *UserStore) GetUserByOneLink(ctx context.Context, oneLinkID string) (*models.User, error) {
	ret := m.Called(ctx, oneLinkID)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	return r0, ret.Error(1)
}

func (m *UserStore) SaveMeetingToken(ctx context.Context, userID primitive.ObjectID, token models.MeetingToken) error {
	return m.Called(ctx, userID, token).Error(0)
}

func (m *UserStore) PushEventRef(ctx context.Context, userID, eventID primitive.ObjectID) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *UserStore) PullEventRef(ctx context.Context, userID, eventID primitive.ObjectID) error {
	return m.Called(ctx, userID, eventID).Error(0)
}

func (m *UserStore) PushWebinarRef(ctx context.Context, userID, webinarID primitive.ObjectID) error {
	return m.Called(ctx, userID, webinarID).Error(0)
}

func (m *UserStore) PullWebinarRef(ctx context.Context, userID, webinarID primitive.ObjectID) error {
	return m.Called(ctx, userID, webinarID).Error(0)
}

type EventStore struct {
	mock.Mock
}

func (m *EventStore) CreateEvent(ctx context.Context, event *models.Event) (primitive.ObjectID, error) {
	ret := m.Called(ctx, event)

	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

func (m *EventStore) GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	ret := m.Called(ctx, id)

	var r0 *models.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Event)
	}

	return r0, ret.Error(1)
}

func (m *EventStore) GetEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Event, error) {
	ret := m.Called(ctx, userID)

	var r0 []models.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Event)
	}

	return r0, ret.Error(1)
}

func (m *EventStore) DeleteEvent(ctx context.Context, userID, eventID primitive.ObjectID) (*models.Event, error) {
	ret := m.Called(ctx, userID, eventID)

	var r0 *models.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Event)
	}

	return r0, ret.Error(1)
}

func (m *EventStore) FindEventByBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Event, error) {
	ret := m.Called(ctx, userID, bookingID)

	var r0 *models.Event
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Event)
	}

	return r0, ret.Error(1)
}

func (m *EventStore) PushBookingRef(ctx context.Context, eventID, bookingID primitive.ObjectID) error {
	return m.Called(ctx, eventID, bookingID).Error(0)
}

func (m *EventStore) PullBookingRef(ctx context.Context, eventID, bookingID primitive.ObjectID) error {
	return m.Called(ctx, eventID, bookingID).Error(0)
}

type BookingStore struct {
	mock.Mock
}

func (m *BookingStore) CreateBooking(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	ret := m.Called(ctx, booking)

	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

func (m *BookingStore) GetBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error) {
	ret := m.Called(ctx, userID, bookingID)

	var r0 *models.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Booking)
	}

	return r0, ret.Error(1)
}

func (m *BookingStore) GetBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	ret := m.Called(ctx, userID)

	var r0 []models.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Booking)
	}

	return r0, ret.Error(1)
}

func (m *BookingStore) DeleteBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error) {
	ret := m.Called(ctx, userID, bookingID)

	var r0 *models.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Booking)
	}

	return r0, ret.Error(1)
}

type WebinarStore struct {
	mock.Mock
}

func (m *WebinarStore) CreateWebinar(ctx context.Context, webinar *models.Webinar) (primitive.ObjectID, error) {
	ret := m.Called(ctx, webinar)

	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

func (m *WebinarStore) GetWebinar(ctx context.Context, webinarID primitive.ObjectID) (*models.Webinar, error) {
	ret := m.Called(ctx, webinarID)

	var r0 *models.Webinar
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Webinar)
	}

	return r0, ret.Error(1)
}

func (m *WebinarStore) GetWebinarByOwner(ctx context.Context, userID, webinarID primitive.ObjectID) (*models.Webinar, error) {
	ret := m.Called(ctx, userID, webinarID)

	var r0 *models.Webinar
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Webinar)
	}

	return r0, ret.Error(1)
}

func (m *WebinarStore) GetWebinarsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Webinar, error) {
	ret := m.Called(ctx, userID)

	var r0 []models.Webinar
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Webinar)
	}

	return r0, ret.Error(1)
}

func (m *WebinarStore) DeleteWebinar(ctx context.Context, userID, webinarID primitive.ObjectID) (*models.Webinar, error) {
	ret := m.Called(ctx, userID, webinarID)

	var r0 *models.Webinar
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Webinar)
	}

	return r0, ret.Error(1)
}

func (m *WebinarStore) PushJoinedUser(ctx context.Context, webinarID primitive.ObjectID, joined models.JoinedUser) error {
	return m.Called(ctx, webinarID, joined).Error(0)
}

type ScheduleStore struct {
	mock.Mock
}

func (m *ScheduleStore) CreateSchedule(ctx context.Context, schedule *models.Schedule) (primitive.ObjectID, error) {
	ret := m.Called(ctx, schedule)

	return ret.Get(0).(primitive.ObjectID), ret.Error(1)
}

func (m *ScheduleStore) GetSchedule(ctx context.Context, scheduleID primitive.ObjectID) (*models.Schedule, error) {
	ret := m.Called(ctx, scheduleID)

	var r0 *models.Schedule
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Schedule)
	}

	return r0, ret.Error(1)
}

func (m *ScheduleStore) GetSchedulesByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Schedule, error) {
	ret := m.Called(ctx, userID)

	var r0 []models.Schedule
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Schedule)
	}

	return r0, ret.Error(1)
}

func (m *ScheduleStore) GetSchedulesByRequester(ctx context.Context, userID primitive.ObjectID) ([]models.Schedule, error) {
	ret := m.Called(ctx, userID)

	var r0 []models.Schedule
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Schedule)
	}

	return r0, ret.Error(1)
}

func (m *ScheduleStore) DeleteSchedule(ctx context.Context, userID, scheduleID primitive.ObjectID) (*models.Schedule, error) {
	ret := m.Called(ctx, userID, scheduleID)

	var r0 *models.Schedule
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Schedule)
	}

	return r0, ret.Error(1)
}

func (m *ScheduleStore) UpdateScheduleRequests(ctx context.Context, scheduleID primitive.ObjectID, requestedBy []models.SlotRequest, bookedBy *models.SlotRequest) error {
	return m.Called(ctx, scheduleID, requestedBy, bookedBy).Error(0)
}

func (m *ScheduleStore) PushSlotRequest(ctx context.Context, scheduleID primitive.ObjectID, request models.SlotRequest) error {
	return m.Called(ctx, scheduleID, request).Error(0)
}

type AvailabilityStore struct {
	mock.Mock
}

func (m *AvailabilityStore) UpsertAvailability(ctx context.Context, availability *models.Availability) (*models.Availability, error) {
	ret := m.Called(ctx, availability)

	var r0 *models.Availability
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Availability)
	}

	return r0, ret.Error(1)
}

func (m *AvailabilityStore) GetAvailabilityByUser(ctx context.Context, userID primitive.ObjectID) (*models.Availability, error) {
	ret := m.Called(ctx, userID)

	var r0 *models.Availability
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Availability)
	}

	return r0, ret.Error(1)
}

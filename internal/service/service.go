package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/models"
)

var (
	// ErrConflict means a proposed interval overlaps an existing one for
	// the same owner.
	ErrConflict = errors.New("time slot overlaps an existing meeting")

	// ErrSlotBooked means a schedule slot already has an accepted request.
	ErrSlotBooked = errors.New("meeting is already booked")

	// ErrRequestNotFound means no pending request matches the given id.
	ErrRequestNotFound = errors.New("request not found")

	// ErrPaymentRequired means a paid webinar was joined without a
	// successful payment.
	ErrPaymentRequired = errors.New("payment required to join webinar")

	// ErrInconsistentState means local cleanup failed after the remote
	// calendar mutation succeeded; the operation is safe to retry because
	// remote deletes treat "already gone" as success.
	ErrInconsistentState = errors.New("local state inconsistent with remote calendar, retry the operation")
)

// TokenEnsurer yields a valid access token for the user, refreshing the
// stored credentials when expired.
type TokenEnsurer interface {
	EnsureAccessToken(ctx context.Context, user *models.User) (string, error)
}

// CalendarClient is the remote calendar side of the booking lifecycle.
type CalendarClient interface {
	InsertEvent(ctx context.Context, accessToken string, p calendar.EventPayload) (calendar.RemoteEvent, error)
	DeleteEvent(ctx context.Context, accessToken, eventID string) error
}

type UserStore interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByOneLink(ctx context.Context, oneLinkID string) (*models.User, error)
	SaveMeetingToken(ctx context.Context, userID primitive.ObjectID, token models.MeetingToken) error
	PushEventRef(ctx context.Context, userID, eventID primitive.ObjectID) error
	PullEventRef(ctx context.Context, userID, eventID primitive.ObjectID) error
	PushWebinarRef(ctx context.Context, userID, webinarID primitive.ObjectID) error
	PullWebinarRef(ctx context.Context, userID, webinarID primitive.ObjectID) error
}

type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) (primitive.ObjectID, error)
	GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	GetEventsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Event, error)
	DeleteEvent(ctx context.Context, userID, eventID primitive.ObjectID) (*models.Event, error)
	FindEventByBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Event, error)
	PushBookingRef(ctx context.Context, eventID, bookingID primitive.ObjectID) error
	PullBookingRef(ctx context.Context, eventID, bookingID primitive.ObjectID) error
}

type BookingStore interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	GetBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error)
	GetBookingsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error)
}

type WebinarStore interface {
	CreateWebinar(ctx context.Context, webinar *models.Webinar) (primitive.ObjectID, error)
	GetWebinar(ctx context.Context, webinarID primitive.ObjectID) (*models.Webinar, error)
	GetWebinarByOwner(ctx context.Context, userID, webinarID primitive.ObjectID) (*models.Webinar, error)
	GetWebinarsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Webinar, error)
	DeleteWebinar(ctx context.Context, userID, webinarID primitive.ObjectID) (*models.Webinar, error)
	PushJoinedUser(ctx context.Context, webinarID primitive.ObjectID, joined models.JoinedUser) error
}

type ScheduleStore interface {
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (primitive.ObjectID, error)
	GetSchedule(ctx context.Context, scheduleID primitive.ObjectID) (*models.Schedule, error)
	GetSchedulesByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Schedule, error)
	GetSchedulesByRequester(ctx context.Context, userID primitive.ObjectID) ([]models.Schedule, error)
	DeleteSchedule(ctx context.Context, userID, scheduleID primitive.ObjectID) (*models.Schedule, error)
	UpdateScheduleRequests(ctx context.Context, scheduleID primitive.ObjectID, requestedBy []models.SlotRequest, bookedBy *models.SlotRequest) error
	PushSlotRequest(ctx context.Context, scheduleID primitive.ObjectID, request models.SlotRequest) error
}

type AvailabilityStore interface {
	UpsertAvailability(ctx context.Context, availability *models.Availability) (*models.Availability, error)
	GetAvailabilityByUser(ctx context.Context, userID primitive.ObjectID) (*models.Availability, error)
}

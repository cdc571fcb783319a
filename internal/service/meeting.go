package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/lib/interval"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
)

// warnNoConferenceLink is attached to otherwise successful responses when the
// provider did not allocate a conference link.
const warnNoConferenceLink = "conference link was not allocated by the calendar provider"

// MeetingService implements the Event/Booking lifecycle: owner-defined event
// templates, visitor bookings backed by remote calendar events, and the
// cancel cascade.
type MeetingService struct {
	log            *slog.Logger
	users          UserStore
	events         EventStore
	bookings       BookingStore
	availabilities AvailabilityStore
	tokens         TokenEnsurer
	cal            CalendarClient
	now            func() time.Time
}

func NewMeetingService(
	log *slog.Logger,
	users UserStore,
	events EventStore,
	bookings BookingStore,
	availabilities AvailabilityStore,
	tokens TokenEnsurer,
	cal CalendarClient,
) *MeetingService {
	return &MeetingService{
		log:            log,
		users:          users,
		events:         events,
		bookings:       bookings,
		availabilities: availabilities,
		tokens:         tokens,
		cal:            cal,
		now:            time.Now,
	}
}

type DayAvailabilityInput struct {
	Day     string
	Start   string
	End     string
	Enabled bool
}

type AvailabilityInput struct {
	DayAvailability []DayAvailabilityInput
	MinimumGap      int
}

func (s *MeetingService) UpdateAvailability(ctx context.Context, userID primitive.ObjectID, in AvailabilityInput) (*models.Availability, error) {
	const op = "service.MeetingService.UpdateAvailability"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	days := make([]models.DayAvailability, 0, len(in.DayAvailability))
	for _, d := range in.DayAvailability {
		days = append(days, models.DayAvailability{
			Day:       strings.ToLower(d.Day),
			StartTime: d.Start,
			EndTime:   d.End,
			Enabled:   d.Enabled,
		})
	}

	availability, err := s.availabilities.UpsertAvailability(ctx, &models.Availability{
		UserID:          user.ID,
		DayAvailability: days,
		MinimumGap:      in.MinimumGap,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return availability, nil
}

type EventInput struct {
	Title       string
	Description string
	Duration    int
	EventType   models.EventType
	Price       float64
	Discount    float64
}

func (s *MeetingService) CreateEvent(ctx context.Context, userID primitive.ObjectID, in EventInput) (*models.Event, error) {
	const op = "service.MeetingService.CreateEvent"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	eventType := in.EventType
	if eventType == "" {
		eventType = models.EventTypePublic
	}

	event := &models.Event{
		UserID:      user.ID,
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
		EventType:   eventType,
		Price:       in.Price,
		Discount:    in.Discount,
	}

	eventID, err := s.events.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.users.PushEventRef(ctx, user.ID, eventID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (s *MeetingService) GetEvents(ctx context.Context, userID primitive.ObjectID) ([]models.Event, error) {
	const op = "service.MeetingService.GetEvents"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events, err := s.events.GetEventsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *MeetingService) GetEventsByUsername(ctx context.Context, username string) ([]models.Event, error) {
	const op = "service.MeetingService.GetEventsByUsername"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events, err := s.events.GetEventsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *MeetingService) DeleteEvent(ctx context.Context, userID, eventID primitive.ObjectID) (*models.Event, error) {
	const op = "service.MeetingService.DeleteEvent"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.users.PullEventRef(ctx, user.ID, eventID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event, err := s.events.DeleteEvent(ctx, user.ID, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

// SchedulePage is the public data shown to a visitor booking against an
// event: the owner, their weekly availability and the event template.
type SchedulePage struct {
	User         *models.User         `json:"user"`
	Availability *models.Availability `json:"availability"`
	Event        *models.Event        `json:"event"`
}

func (s *MeetingService) GetSchedulePageData(ctx context.Context, username string, eventID primitive.ObjectID) (*SchedulePage, error) {
	const op = "service.MeetingService.GetSchedulePageData"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	availability, err := s.availabilities.GetAvailabilityByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &SchedulePage{
		User:         user,
		Availability: availability,
		Event:        event,
	}, nil
}

// ScheduleMeetingInput is a visitor's booking request against an event,
// carrying the booking page's wall-clock strings ("June 01", "10:00").
type ScheduleMeetingInput struct {
	Username       string
	EventID        primitive.ObjectID
	Name           string
	Email          string
	Date           string
	StartTime      string
	EndTime        string
	AdditionalInfo string
}

// ScheduleMeeting books a visitor against an event: credentials are renewed,
// the slot is checked against the owner's existing bookings, the remote event
// is created and the booking persisted with a back-reference on the event.
func (s *MeetingService) ScheduleMeeting(ctx context.Context, in ScheduleMeetingInput) (*models.Booking, []string, error) {
	const op = "service.MeetingService.ScheduleMeeting"

	event, err := s.events.GetEvent(ctx, in.EventID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.GetUserByUsername(ctx, in.Username)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	start, err := calendar.ParseSlot(in.Date, in.StartTime, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	end, err := calendar.ParseSlot(in.Date, in.EndTime, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.checkBookingConflict(ctx, user.ID, start, end); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	accessToken, err := s.tokens.EnsureAccessToken(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	startLocal := calendar.FormatLocal(start)
	endLocal := calendar.FormatLocal(end)

	remote, err := s.cal.InsertEvent(ctx, accessToken, calendar.EventPayload{
		Summary:     event.Title,
		Description: in.AdditionalInfo,
		Start:       startLocal,
		End:         endLocal,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	booking := &models.Booking{
		UserID:         user.ID,
		EventID:        event.ID,
		Name:           in.Name,
		Email:          in.Email,
		Title:          event.Title,
		Date:           in.Date,
		Start:          startLocal,
		End:            endLocal,
		AdditionalInfo: in.AdditionalInfo,
		MeetingLink:    remote.ConferenceLink,
		GoogleEventID:  remote.ID,
	}

	bookingID, err := s.bookings.CreateBooking(ctx, booking)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.events.PushBookingRef(ctx, event.ID, bookingID); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	var warnings []string
	if remote.ConferenceLink == "" {
		warnings = append(warnings, warnNoConferenceLink)
	}

	return booking, warnings, nil
}

// checkBookingConflict guards every booking path against double-booking the
// owner, using half-open interval semantics.
func (s *MeetingService) checkBookingConflict(ctx context.Context, ownerID primitive.ObjectID, start, end time.Time) error {
	existing, err := s.bookings.GetBookingsByUser(ctx, ownerID)
	if err != nil {
		return err
	}

	intervals := make([]interval.Interval, 0, len(existing))

	for _, b := range existing {
		bStart, err := calendar.ParseLocal(b.Start)
		if err != nil {
			s.log.Warn("skipping booking with unparseable start",
				slog.String("booking_id", b.ID.Hex()), sl.Err(err))

			continue
		}

		bEnd, err := calendar.ParseLocal(b.End)
		if err != nil {
			s.log.Warn("skipping booking with unparseable end",
				slog.String("booking_id", b.ID.Hex()), sl.Err(err))

			continue
		}

		intervals = append(intervals, interval.Interval{Start: bStart, End: bEnd})
	}

	if interval.HasOverlap(intervals, start, end) {
		return ErrConflict
	}

	return nil
}

// CancelScheduledMeeting deletes the remote event and then the local booking
// record and its back-reference. Local failures after the remote delete are
// surfaced as ErrInconsistentState so callers retry instead of silently
// dropping the cleanup.
func (s *MeetingService) CancelScheduledMeeting(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Booking, error) {
	const op = "service.MeetingService.CancelScheduledMeeting"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booking, err := s.bookings.GetBooking(ctx, user.ID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event, err := s.events.FindEventByBooking(ctx, user.ID, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	accessToken, err := s.tokens.EnsureAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.cal.DeleteEvent(ctx, accessToken, booking.GoogleEventID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.events.PullBookingRef(ctx, event.ID, bookingID); err != nil {
		s.log.Error("remote event deleted but booking reference removal failed",
			slog.String("op", op),
			slog.String("booking_id", bookingID.Hex()),
			slog.String("event_id", event.ID.Hex()),
			sl.Err(err),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInconsistentState)
	}

	deleted, err := s.bookings.DeleteBooking(ctx, user.ID, bookingID)
	if err != nil {
		s.log.Error("remote event deleted but booking removal failed",
			slog.String("op", op),
			slog.String("booking_id", bookingID.Hex()),
			sl.Err(err),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInconsistentState)
	}

	return deleted, nil
}

func (s *MeetingService) ListScheduledMeetings(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	const op = "service.MeetingService.ListScheduledMeetings"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.bookings.GetBookingsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

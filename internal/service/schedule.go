package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/lib/interval"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
	"meetbooker/internal/notify"
)

// Authorizer is the consent-flow side of the calendar provider.
type Authorizer interface {
	AuthURL() string
	ExchangeCode(ctx context.Context, code string) (*models.MeetingToken, error)
}

// ScheduleService implements the propose-a-slot flow: a requester proposes an
// open window against another user's one-link page, competing requests pile
// up, and the owner accepts exactly one.
type ScheduleService struct {
	log       *slog.Logger
	users     UserStore
	schedules ScheduleStore
	tokens    TokenEnsurer
	cal       CalendarClient
	auth      Authorizer
	notifier  notify.Notifier
}

func NewScheduleService(
	log *slog.Logger,
	users UserStore,
	schedules ScheduleStore,
	tokens TokenEnsurer,
	cal CalendarClient,
	auth Authorizer,
	notifier notify.Notifier,
) *ScheduleService {
	return &ScheduleService{
		log:       log,
		users:     users,
		schedules: schedules,
		tokens:    tokens,
		cal:       cal,
		auth:      auth,
		notifier:  notifier,
	}
}

// AuthURL returns the provider consent URL for connecting a calendar.
func (s *ScheduleService) AuthURL() string {
	return s.auth.AuthURL()
}

// HandleAuthCallback trades the authorization code for a token set and
// persists it on the user.
func (s *ScheduleService) HandleAuthCallback(ctx context.Context, code string, userID primitive.ObjectID) (*models.User, error) {
	const op = "service.ScheduleService.HandleAuthCallback"

	token, err := s.auth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.users.SaveMeetingToken(ctx, userID, *token); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

type SlotInput struct {
	OneLinkID string
	Title     string
	Agenda    string
	Doc       string
	Start     time.Time
	End       time.Time
}

// CreateSlot proposes an open slot against the one-link owner's page. The
// interval is rejected when it overlaps any of the requester's existing
// slots; the remote event is created with the requester's credentials.
func (s *ScheduleService) CreateSlot(ctx context.Context, requesterID primitive.ObjectID, in SlotInput) (*models.Schedule, []string, error) {
	const op = "service.ScheduleService.CreateSlot"

	requester, err := s.users.GetUserByID(ctx, requesterID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	owner, err := s.users.GetUserByOneLink(ctx, in.OneLinkID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	existing, err := s.schedules.GetSchedulesByRequester(ctx, requester.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	intervals := make([]interval.Interval, 0, len(existing))
	for _, sched := range existing {
		intervals = append(intervals, interval.Interval{Start: sched.Start, End: sched.End})
	}

	if interval.HasOverlap(intervals, in.Start, in.End) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrConflict)
	}

	accessToken, err := s.tokens.EnsureAccessToken(ctx, requester)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	remote, err := s.cal.InsertEvent(ctx, accessToken, calendar.EventPayload{
		Summary:     in.Title,
		Description: in.Agenda,
		Start:       calendar.FormatLocal(in.Start),
		End:         calendar.FormatLocal(in.End),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	schedule := &models.Schedule{
		UserID:      owner.ID,
		RequesterID: requester.ID,
		Title:       in.Title,
		Agenda:      in.Agenda,
		Doc:         in.Doc,
		Start:       in.Start,
		End:         in.End,
		MeetingLink: remote.ConferenceLink,
		GoogleID:    remote.ID,
	}

	if _, err = s.schedules.CreateSchedule(ctx, schedule); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	var warnings []string
	if remote.ConferenceLink == "" {
		warnings = append(warnings, warnNoConferenceLink)
	}

	return schedule, warnings, nil
}

// ListSlots returns slots owned by and requested by the one-link user.
func (s *ScheduleService) ListSlots(ctx context.Context, oneLinkID string) ([]models.Schedule, error) {
	const op = "service.ScheduleService.ListSlots"

	user, err := s.users.GetUserByOneLink(ctx, oneLinkID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.slotsForUser(ctx, op, user.ID)
}

// ListRequestsForUser returns every slot the user owns or requested, with
// their pending request lists.
func (s *ScheduleService) ListRequestsForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Schedule, error) {
	const op = "service.ScheduleService.ListRequestsForUser"

	return s.slotsForUser(ctx, op, userID)
}

func (s *ScheduleService) slotsForUser(ctx context.Context, op string, userID primitive.ObjectID) ([]models.Schedule, error) {
	owned, err := s.schedules.GetSchedulesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	requested, err := s.schedules.GetSchedulesByRequester(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return append(owned, requested...), nil
}

type SlotRequestInput struct {
	Name        string
	CompanyName string
	Email       string
	Phone       string
	Description string
	OneLink     string
}

// RequestSlot files a competing request against an open slot. The requested
// interval is always the slot's own window.
func (s *ScheduleService) RequestSlot(ctx context.Context, scheduleID primitive.ObjectID, in SlotRequestInput) (*models.Schedule, error) {
	const op = "service.ScheduleService.RequestSlot"

	schedule, err := s.schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if schedule.Booked() {
		return nil, fmt.Errorf("%s: %w", op, ErrSlotBooked)
	}

	request := models.SlotRequest{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		CompanyName: in.CompanyName,
		Email:       in.Email,
		Phone:       in.Phone,
		Description: in.Description,
		OneLink:     in.OneLink,
		Start:       schedule.Start,
		End:         schedule.End,
	}

	if err = s.schedules.PushSlotRequest(ctx, scheduleID, request); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schedule.RequestedBy = append(schedule.RequestedBy, request)

	if err = s.notifier.AddNotification(ctx, schedule.UserID, notify.TypeMeetingRequest, scheduleID); err != nil {
		s.log.Warn("failed to add meeting request notification",
			slog.String("op", op), sl.Err(err))
	}

	return schedule, nil
}

// AcceptRequest books the slot with one pending request and clears the rest.
func (s *ScheduleService) AcceptRequest(ctx context.Context, scheduleID, requestID primitive.ObjectID) (*models.Schedule, error) {
	const op = "service.ScheduleService.AcceptRequest"

	schedule, err := s.schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var accepted *models.SlotRequest

	for i := range schedule.RequestedBy {
		if schedule.RequestedBy[i].ID == requestID {
			accepted = &schedule.RequestedBy[i]
			break
		}
	}

	if accepted == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrRequestNotFound)
	}

	booked := *accepted

	if err = s.schedules.UpdateScheduleRequests(ctx, scheduleID, nil, &booked); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schedule.RequestedBy = nil
	schedule.BookedBy = &booked

	if err = s.notifier.DeleteNotification(ctx, schedule.UserID, notify.TypeMeetingRequest, scheduleID); err != nil {
		s.log.Warn("failed to delete meeting request notification",
			slog.String("op", op), sl.Err(err))
	}

	return schedule, nil
}

// RejectRequest removes a single pending request, leaving the rest intact.
func (s *ScheduleService) RejectRequest(ctx context.Context, scheduleID, requestID primitive.ObjectID) (*models.Schedule, error) {
	const op = "service.ScheduleService.RejectRequest"

	schedule, err := s.schedules.GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := -1

	for i := range schedule.RequestedBy {
		if schedule.RequestedBy[i].ID == requestID {
			idx = i
			break
		}
	}

	if idx == -1 {
		return nil, fmt.Errorf("%s: %w", op, ErrRequestNotFound)
	}

	remaining := append(schedule.RequestedBy[:idx:idx], schedule.RequestedBy[idx+1:]...)

	if err = s.schedules.UpdateScheduleRequests(ctx, scheduleID, remaining, schedule.BookedBy); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schedule.RequestedBy = remaining

	if err = s.notifier.DeleteNotification(ctx, schedule.UserID, notify.TypeMeetingRequest, scheduleID); err != nil {
		s.log.Warn("failed to delete meeting request notification",
			slog.String("op", op), sl.Err(err))
	}

	return schedule, nil
}

// DeleteSlot removes the slot and its notification, and best-effort deletes
// the remote event with the requester's credentials. Local deletion proceeds
// even when the remote side fails.
func (s *ScheduleService) DeleteSlot(ctx context.Context, userID, scheduleID primitive.ObjectID) (*models.Schedule, error) {
	const op = "service.ScheduleService.DeleteSlot"

	schedule, err := s.schedules.DeleteSchedule(ctx, userID, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if schedule.GoogleID != "" {
		s.deleteRemoteEvent(ctx, op, schedule)
	}

	if err = s.notifier.DeleteNotification(ctx, schedule.UserID, notify.TypeMeetingRequest, scheduleID); err != nil {
		s.log.Warn("failed to delete meeting request notification",
			slog.String("op", op), sl.Err(err))
	}

	return schedule, nil
}

func (s *ScheduleService) deleteRemoteEvent(ctx context.Context, op string, schedule *models.Schedule) {
	requester, err := s.users.GetUserByID(ctx, schedule.RequesterID)
	if err != nil {
		s.log.Warn("failed to load requester for remote event cleanup",
			slog.String("op", op), sl.Err(err))

		return
	}

	accessToken, err := s.tokens.EnsureAccessToken(ctx, requester)
	if err != nil {
		s.log.Warn("failed to authorize remote event cleanup",
			slog.String("op", op), sl.Err(err))

		return
	}

	if err = s.cal.DeleteEvent(ctx, accessToken, schedule.GoogleID); err != nil {
		s.log.Warn("failed to delete remote event for schedule slot",
			slog.String("op", op),
			slog.String("schedule_id", schedule.ID.Hex()),
			sl.Err(err),
		)
	}
}

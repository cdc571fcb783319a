package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"meetbooker/internal/calendar"
	"meetbooker/internal/lib/logger/sl"
	"meetbooker/internal/models"
)

// WebinarService mirrors the booking lifecycle for broadcast-style sessions,
// with an attendance list gated on payment status.
type WebinarService struct {
	log      *slog.Logger
	users    UserStore
	webinars WebinarStore
	tokens   TokenEnsurer
	cal      CalendarClient
}

func NewWebinarService(
	log *slog.Logger,
	users UserStore,
	webinars WebinarStore,
	tokens TokenEnsurer,
	cal CalendarClient,
) *WebinarService {
	return &WebinarService{
		log:      log,
		users:    users,
		webinars: webinars,
		tokens:   tokens,
		cal:      cal,
	}
}

// WebinarInput carries wall-clock start/end strings ("2006-01-02T15:04:05")
// in the fixed timezone, as submitted by the webinar form.
type WebinarInput struct {
	WebinarType models.EventType
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Duration    int
	Price       float64
	Discount    float64
}

func (s *WebinarService) CreateWebinar(ctx context.Context, userID primitive.ObjectID, in WebinarInput) (*models.Webinar, []string, error) {
	const op = "service.WebinarService.CreateWebinar"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	accessToken, err := s.tokens.EnsureAccessToken(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	remote, err := s.cal.InsertEvent(ctx, accessToken, calendar.EventPayload{
		Summary:     in.Title,
		Description: in.Description,
		Start:       in.StartTime,
		End:         in.EndTime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	webinarType := in.WebinarType
	if webinarType == "" {
		webinarType = models.EventTypePublic
	}

	webinar := &models.Webinar{
		UserID:          user.ID,
		WebinarType:     webinarType,
		Title:           in.Title,
		Description:     in.Description,
		Date:            in.Date,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		Duration:        in.Duration,
		Link:            remote.ConferenceLink,
		GoogleWebinarID: remote.ID,
		Price:           in.Price,
		Discount:        in.Discount,
	}

	webinarID, err := s.webinars.CreateWebinar(ctx, webinar)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.users.PushWebinarRef(ctx, user.ID, webinarID); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	var warnings []string
	if remote.ConferenceLink == "" {
		warnings = append(warnings, warnNoConferenceLink)
	}

	return webinar, warnings, nil
}

func (s *WebinarService) GetWebinars(ctx context.Context, userID primitive.ObjectID) ([]models.Webinar, error) {
	const op = "service.WebinarService.GetWebinars"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	webinars, err := s.webinars.GetWebinarsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return webinars, nil
}

// GetWebinarsByOneLink returns the user's public Pitch Day sessions shown on
// their one-link page.
func (s *WebinarService) GetWebinarsByOneLink(ctx context.Context, oneLinkID string) ([]models.Webinar, error) {
	const op = "service.WebinarService.GetWebinarsByOneLink"

	user, err := s.users.GetUserByOneLink(ctx, oneLinkID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	webinars, err := s.webinars.GetWebinarsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pitchDays := make([]models.Webinar, 0, len(webinars))
	for _, w := range webinars {
		if w.WebinarType == models.EventTypePitchDay {
			pitchDays = append(pitchDays, w)
		}
	}

	return pitchDays, nil
}

// DeleteWebinar removes the remote calendar event, the webinar document and
// the owner's back-reference.
func (s *WebinarService) DeleteWebinar(ctx context.Context, userID, webinarID primitive.ObjectID) (*models.Webinar, error) {
	const op = "service.WebinarService.DeleteWebinar"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	webinar, err := s.webinars.GetWebinarByOwner(ctx, user.ID, webinarID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	accessToken, err := s.tokens.EnsureAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = s.cal.DeleteEvent(ctx, accessToken, webinar.GoogleWebinarID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	deleted, err := s.webinars.DeleteWebinar(ctx, user.ID, webinarID)
	if err != nil {
		s.log.Error("remote event deleted but webinar removal failed",
			slog.String("op", op),
			slog.String("webinar_id", webinarID.Hex()),
			sl.Err(err),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInconsistentState)
	}

	if err = s.users.PullWebinarRef(ctx, user.ID, webinarID); err != nil {
		s.log.Error("webinar deleted but user reference removal failed",
			slog.String("op", op),
			slog.String("webinar_id", webinarID.Hex()),
			sl.Err(err),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInconsistentState)
	}

	return deleted, nil
}

type PaymentInput struct {
	Status PaymentStatusInput
	ID     string
	Amount float64
}

type PaymentStatusInput = models.PaymentStatus

// JoinWebinar records an attendee. A user only counts as attending when the
// webinar is free or their payment succeeded.
func (s *WebinarService) JoinWebinar(ctx context.Context, webinarID, userID primitive.ObjectID, payment PaymentInput) (*models.Webinar, error) {
	const op = "service.WebinarService.JoinWebinar"

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	webinar, err := s.webinars.GetWebinar(ctx, webinarID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	joined := models.JoinedUser{
		UserID:        user.ID,
		PaymentStatus: payment.Status,
		PaymentID:     payment.ID,
		PaymentAmount: payment.Amount,
	}

	if webinar.Free() {
		joined.PaymentStatus = models.PaymentNotRequired
	} else if payment.Status != models.PaymentPaid {
		return nil, fmt.Errorf("%s: %w", op, ErrPaymentRequired)
	}

	if err = s.webinars.PushJoinedUser(ctx, webinarID, joined); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := s.webinars.GetWebinar(ctx, webinarID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

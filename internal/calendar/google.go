package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"meetbooker/internal/config"
	"meetbooker/internal/models"
)

const (
	calendarID = "primary"

	eventsScope = "https://www.googleapis.com/auth/calendar.events"
)

// NewOAuthConfig creates the OAuth2 config used both for the consent flow and
// for refresh-token exchanges.
func NewOAuthConfig(cfg config.Google) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       []string{eventsScope},
		Endpoint:     google.Endpoint,
	}
}

// Auth implements the consent flow and refresh-token exchange against
// Google's OAuth endpoints.
type Auth struct {
	cfg *oauth2.Config
}

func NewAuth(cfg config.Google) *Auth {
	return &Auth{cfg: NewOAuthConfig(cfg)}
}

// AuthURL returns the consent URL. Offline access with forced consent is
// required to receive a refresh token.
func (a *Auth) AuthURL() string {
	return a.cfg.AuthCodeURL("state-token",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// ExchangeCode trades an authorization code for a full token set.
func (a *Auth) ExchangeCode(ctx context.Context, code string) (*models.MeetingToken, error) {
	tok, err := a.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	idToken, _ := tok.Extra("id_token").(string)

	return &models.MeetingToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		IDToken:      idToken,
		ExpireIn:     FormatLocal(tok.Expiry),
	}, nil
}

// ExchangeRefreshToken implements Exchanger.
func (a *Auth) ExchangeRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	ts := a.cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	tok, err := ts.Token()
	if err != nil {
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}

	return tok.AccessToken, nil
}

// EventPayload describes the remote event to create. Start and End are
// wall-clock strings in the fixed timezone.
type EventPayload struct {
	Summary     string
	Description string
	Start       string
	End         string
}

// RemoteEvent is the provider-side resource backing a booking or webinar.
// ConferenceLink may be empty when the provider failed to allocate one.
type RemoteEvent struct {
	ID             string
	ConferenceLink string
}

// Client inserts and deletes events on the authenticated user's primary
// calendar.
type Client struct {
	log *slog.Logger
}

func NewClient(log *slog.Logger) *Client {
	return &Client{log: log}
}

func (c *Client) service(ctx context.Context, accessToken string) (*gcal.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return svc, nil
}

// InsertEvent creates a remote event with a generated conference link. A
// missing link in the response is logged but does not fail the call; the
// caller decides how to surface the degradation.
func (c *Client) InsertEvent(ctx context.Context, accessToken string, p EventPayload) (RemoteEvent, error) {
	const op = "calendar.Client.InsertEvent"

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return RemoteEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	event := buildEvent(p, uuid.NewString())

	resp, err := svc.Events.Insert(calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return RemoteEvent{}, fmt.Errorf("%s: %w", op, mapGoogleError(err))
	}

	if resp.HangoutLink == "" {
		c.log.Error("conference link not found in calendar response",
			slog.String("op", op),
			slog.String("remote_event_id", resp.Id),
		)
	}

	return RemoteEvent{
		ID:             resp.Id,
		ConferenceLink: resp.HangoutLink,
	}, nil
}

// DeleteEvent removes a remote event. Provider-side "not found" and "gone"
// are non-fatal: the event may have been removed out-of-band.
func (c *Client) DeleteEvent(ctx context.Context, accessToken, eventID string) error {
	const op = "calendar.Client.DeleteEvent"

	svc, err := c.service(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = svc.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) &&
			(gErr.Code == http.StatusNotFound || gErr.Code == http.StatusGone) {
			c.log.Warn("remote event already deleted",
				slog.String("op", op),
				slog.String("remote_event_id", eventID),
			)

			return nil
		}

		return fmt.Errorf("%s: %w", op, mapGoogleError(err))
	}

	return nil
}

// buildEvent assembles the provider payload, including the conference
// creation request with its per-request idempotency token.
func buildEvent(p EventPayload, requestID string) *gcal.Event {
	return &gcal.Event{
		Summary:     p.Summary,
		Description: p.Description,
		Start: &gcal.EventDateTime{
			DateTime: p.Start,
			TimeZone: TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: p.End,
			TimeZone: TimeZone,
		},
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId: requestID,
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}
}

func mapGoogleError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) && gErr.Code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", ErrReauthRequired, gErr.Message)
	}

	return err
}

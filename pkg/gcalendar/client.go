package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultTokenPath = "token.json"

type client struct {
	service *calendar.Service
}

// NewFromCredentialsJSON accepts Service Account JSON, or installed-app OAuth
// JSON together with a stored token at tokenPath.
func NewFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (ICalendar, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope); err == nil {
		return newService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &oauthCreds); err != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("gcalendar: unsupported credentials format")
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: installed-app credentials need a stored token at %s: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: failed to parse token: %w", err)
	}

	return newService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewFromHTTP creates a client from a pre-configured HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client) (ICalendar, error) {
	return newService(ctx, option.WithHTTPClient(httpClient))
}

func newService(ctx context.Context, opts ...option.ClientOption) (*client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create calendar service: %w", err)
	}
	return &client{service: svc}, nil
}

// CreateEvent inserts a timed event.
func (c *client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to create event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

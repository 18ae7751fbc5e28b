package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Authorizer runs the installed-app consent flow that produces the token
// NewFromCredentialsJSON reads.
type Authorizer struct {
	cfg *oauth2.Config
}

// NewAuthorizer parses OAuth installed-app credentials.
func NewAuthorizer(credentialsJSON []byte) (*Authorizer, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: credentials are not an OAuth desktop app file: %w", err)
	}
	return &Authorizer{cfg: cfg}, nil
}

// AuthCodeURL is the consent page the user opens in a browser.
func (a *Authorizer) AuthCodeURL(state string) string {
	return a.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the pasted authorization code for a token and writes it
// to tokenPath with owner-only permissions.
func (a *Authorizer) Exchange(ctx context.Context, code, tokenPath string) error {
	tok, err := a.cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("gcalendar: failed to exchange authorization code: %w", err)
	}
	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("gcalendar: failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("gcalendar: failed to write token file: %w", err)
	}
	return nil
}

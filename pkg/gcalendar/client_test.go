package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"focusflow/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func testClient(t *testing.T, h http.HandlerFunc) gcalendar.ICalendar {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &rewriteTransport{Transport: hc.Transport, Host: strings.TrimPrefix(ts.URL, "http://")}

	c, err := gcalendar.NewFromHTTP(context.Background(), hc)
	if err != nil {
		t.Fatalf("NewFromHTTP: %v", err)
	}
	return c
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewFromCredentialsJSON(t *testing.T) {
	dir := t.TempDir()
	goodToken := filepath.Join(dir, "good.json")
	badToken := filepath.Join(dir, "bad.json")
	os.WriteFile(goodToken, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600)
	os.WriteFile(badToken, []byte(`{"broken": true`), 0o600)

	tests := []struct {
		name    string
		creds   string
		token   string
		wantErr bool
	}{
		{name: "unknown format", creds: `{"broken":true}`, token: goodToken, wantErr: true},
		{name: "installed app with token", creds: installedCreds, token: goodToken},
		{name: "installed app with bad token", creds: installedCreds, token: badToken, wantErr: true},
		{name: "installed app without token", creds: installedCreds, token: filepath.Join(dir, "missing.json"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gcalendar.NewFromCredentialsJSON(context.Background(), []byte(tt.creds), tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: filepath.Join(t.TempDir(), "nope.json")})
	if err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2024, 5, 2, 13, 0, 0, 0, time.UTC)

	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["summary"] != "Finish report" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"id":"event-123","summary":"Finish report","htmlLink":"https://calendar.google.com/event-uri"}`))
	})

	event, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Finish report",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/event-uri" || event.ID != "event-123" {
		t.Errorf("unexpected event %+v", event)
	}
}

func TestCreateEventError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "x",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})
	if err == nil {
		t.Fatal("expected error on 500")
	}
}

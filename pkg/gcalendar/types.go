package gcalendar

import "time"

// DefaultCalendarID is the authenticated account's main calendar.
const DefaultCalendarID = "primary"

// Config locates credentials for New.
type Config struct {
	// CredentialsPath points to a Service Account or OAuth installed-app JSON file.
	CredentialsPath string
	// TokenPath holds a stored OAuth token; only read for installed-app credentials.
	TokenPath string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}

package gcalendar

import (
	"context"
	"fmt"
	"os"
)

// ICalendar creates calendar events. Implementations are safe for concurrent use.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

// New builds a client from the credentials file named in cfg.
func New(ctx context.Context, cfg Config) (ICalendar, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: failed to read credentials file: %w", err)
	}
	return NewFromCredentialsJSON(ctx, data, cfg.TokenPath)
}

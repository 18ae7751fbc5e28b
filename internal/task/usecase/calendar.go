package usecase

import (
	"context"
	"fmt"
	"time"

	"focusflow/internal/model"
	"focusflow/pkg/gcalendar"
)

// tryCreateCalendarEvent blocks the estimated duration right before the due time.
// Returns the event HTML link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueAt == nil {
		return ""
	}

	end := t.DueAt.In(uc.cfg.Location)
	start := end.Add(-time.Duration(t.EstimatedDurationMinutes) * time.Minute)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     t.Title,
		Description: fmt.Sprintf("%s\n\nPriority: %s | Type: %s", t.Description, t.Priority, t.TaskType),
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.cfg.Location.String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}
	return event.HtmlLink
}

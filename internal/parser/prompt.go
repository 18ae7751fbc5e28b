package parser

import "fmt"

// systemPrompt instructs the language service to answer with a single TaskDraft object.
const systemPrompt = `You are a task parsing assistant. Extract ONE structured task from the user's text.

Respond with a single JSON object and nothing else:
{
  "title": "short task title without date, time or priority words",
  "due_at": "RFC3339 date-time, or empty string when no due date is mentioned",
  "priority": "one of: low, medium, high, urgent",
  "task_type": "deep for cognitively demanding work (writing, coding, design, analysis, planning, reports, study), otherwise shallow",
  "estimated_duration_minutes": positive integer (default 60 for deep, 15 for shallow)
}

If a date is mentioned without a time, use 23:59 of that date in the user's timezone.`

// buildUserPrompt embeds the reference time so relative phrases resolve consistently.
func buildUserPrompt(rawText, nowRFC3339 string) string {
	return fmt.Sprintf("Current time: %s\n\nTask text:\n%s", nowRFC3339, rawText)
}

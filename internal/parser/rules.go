package parser

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"focusflow/internal/model"
	"focusflow/pkg/datemath"
)

const (
	DefaultDeepMinutes    = 60
	DefaultShallowMinutes = 15
	// MaxDurationMinutes bounds an explicit estimate; anything longer is
	// treated as noise.
	MaxDurationMinutes = 24 * 60
)

var (
	urgentRe = regexp.MustCompile(`(?i)\b(urgent|asap|critical|emergency)\b`)
	lowRe    = regexp.MustCompile(`(?i)\b(low\s+priority|whenever|no\s+rush)\b`)
	highRe   = regexp.MustCompile(`(?i)\b(important|high\s+priority|soon)\b`)

	dateRe = regexp.MustCompile(`(?i)(?:\b(?:by|on|due|before|until)\s+)?\b(today|tonight|tomorrow|in\s+\d+\s+(?:days?|weeks?|months?)|(?:next\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`)
	clockRe = regexp.MustCompile(`(?i)(?:\b(?:at|by|before|until)\s+)?\b(\d{1,2}(?::\d{2})?\s*(?:am|pm)|\d{1,2}:\d{2})\b`)

	durationRe = regexp.MustCompile(`(?i)(?:\bfor\s+)?\b(\d+(?:\.\d+)?)\s*(hours?|hrs?|h|minutes?|mins?|m)\b`)

	deepRe = regexp.MustCompile(`(?i)\b(writ(?:e|es|ing|ten)?|cod(?:e|es|ed|ing)|design\w*|analy[sz]\w*|plan(?:s|ned|ning)?|report\w*|stud(?:y|ies|ied|ying))\b`)

	emptyBracketsRe = regexp.MustCompile(`\(\s*\)|\[\s*\]`)
	spaceBeforeRe   = regexp.MustCompile(`\s+([,.;:!?])`)
)

const titleTrimSet = " \t-\u2013\u2014,:;|"

// Rules is the deterministic drafter. It never fails.
type Rules struct {
	dateMath *datemath.Parser
}

// NewRules creates a rule-based drafter resolving dates in dateMath's timezone.
func NewRules(dateMath *datemath.Parser) *Rules {
	return &Rules{dateMath: dateMath}
}

// Draft implements Drafter. The error is always nil.
func (r *Rules) Draft(_ context.Context, rawText string, now time.Time) (model.TaskDraft, error) {
	return r.Parse(rawText, now), nil
}

// Parse extracts every field independently, falling back to defaults for
// anything it doesn't recognize.
func (r *Rules) Parse(rawText string, now time.Time) model.TaskDraft {
	var stripped []span

	priority, prioritySpans := detectPriority(rawText)
	stripped = append(stripped, prioritySpans...)

	dueAt, dueSpans := r.detectDue(rawText, now)
	stripped = append(stripped, dueSpans...)

	taskType := detectTaskType(rawText)

	minutes, durationSpans := detectDuration(rawText)
	stripped = append(stripped, durationSpans...)
	if minutes <= 0 {
		minutes = defaultDuration(taskType)
	}

	title := cleanTitle(removeSpans(rawText, stripped))
	if title == "" {
		title = rawText
	}

	return model.TaskDraft{
		Title:                    title,
		DueAt:                    dueAt,
		Priority:                 priority,
		TaskType:                 taskType,
		EstimatedDurationMinutes: minutes,
	}
}

// detectPriority checks urgent, then low, then high markers. Every marker found
// is reported for stripping, not only the winning one.
func detectPriority(text string) (model.Priority, []span) {
	priority := model.PriorityMedium
	var spans []span

	for _, rule := range []struct {
		re *regexp.Regexp
		p  model.Priority
	}{
		{urgentRe, model.PriorityUrgent},
		{lowRe, model.PriorityLow},
		{highRe, model.PriorityHigh},
	} {
		locs := rule.re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		if priority == model.PriorityMedium {
			priority = rule.p
		}
		spans = append(spans, toSpans(locs)...)
	}
	return priority, spans
}

// detectDue resolves the first date phrase and the first valid clock time.
func (r *Rules) detectDue(text string, now time.Time) (*time.Time, []span) {
	var spans []span

	var day time.Time
	hasDate := false
	if loc := dateRe.FindStringSubmatchIndex(text); loc != nil {
		phrase := strings.Join(strings.Fields(strings.ToLower(text[loc[2]:loc[3]])), " ")
		if d, err := r.dateMath.Parse(phrase, now); err == nil {
			day = d
			hasDate = true
			spans = append(spans, span{loc[0], loc[1]})
		}
	}

	hour, minute := 0, 0
	hasClock := false
	for _, loc := range clockRe.FindAllStringSubmatchIndex(text, -1) {
		h, m, err := datemath.ParseClock(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		hour, minute = h, m
		hasClock = true
		spans = append(spans, span{loc[0], loc[1]})
		break
	}

	switch {
	case hasDate && hasClock:
		due := r.dateMath.At(day, hour, minute)
		return &due, spans
	case hasDate:
		due := r.dateMath.EndOfDay(day)
		return &due, spans
	case hasClock:
		due := r.dateMath.At(now, hour, minute)
		if due.Before(now) {
			due = r.dateMath.At(r.dateMath.StartOfDay(now).AddDate(0, 0, 1), hour, minute)
		}
		return &due, spans
	}
	return nil, nil
}

func detectTaskType(text string) model.TaskType {
	if deepRe.MatchString(text) {
		return model.TaskTypeDeep
	}
	return model.TaskTypeShallow
}

// detectDuration sums every explicit duration, so "1 hour 30 min" is 90.
// Phrases over MaxDurationMinutes are skipped and an oversized total yields 0.
func detectDuration(text string) (int, []span) {
	var total float64
	var spans []span

	for _, loc := range durationRe.FindAllStringSubmatchIndex(text, -1) {
		value, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
		if err != nil || value <= 0 {
			continue
		}
		unit := strings.ToLower(text[loc[4]:loc[5]])
		if strings.HasPrefix(unit, "h") {
			value *= 60
		}
		if value > MaxDurationMinutes {
			continue
		}
		total += value
		spans = append(spans, span{loc[0], loc[1]})
	}
	if total > MaxDurationMinutes {
		return 0, nil
	}
	return int(math.Round(total)), spans
}

func defaultDuration(tt model.TaskType) int {
	if tt == model.TaskTypeDeep {
		return DefaultDeepMinutes
	}
	return DefaultShallowMinutes
}

func toSpans(locs [][]int) []span {
	out := make([]span, len(locs))
	for i, l := range locs {
		out[i] = span{l[0], l[1]}
	}
	return out
}

// removeSpans drops the (possibly overlapping) byte ranges from text.
func removeSpans(text string, spans []span) string {
	if len(spans) == 0 {
		return text
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var sb strings.Builder
	cursor := 0
	for _, s := range spans {
		if s.start > cursor {
			sb.WriteString(text[cursor:s.start])
			sb.WriteByte(' ')
		}
		if s.end > cursor {
			cursor = s.end
		}
	}
	if cursor < len(text) {
		sb.WriteString(text[cursor:])
	}
	return sb.String()
}

func cleanTitle(s string) string {
	s = emptyBracketsRe.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	s = spaceBeforeRe.ReplaceAllString(s, "$1")
	return strings.Trim(s, titleTrimSet)
}

package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var (
	inDurationRe = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
	clock12Re    = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
	clock24Re    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
// Day arithmetic runs in the parser's timezone.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	baseTime = baseTime.In(p.location)
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today", "tonight":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.NextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}

	if _, ok := weekdays[relative]; ok {
		return p.NextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.StartOfDay(baseTime), nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// NextWeekday returns the start of the next day named dayName strictly after
// baseTime's day, e.g. "friday" on a Friday resolves to the following week.
func (p *Parser) NextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[strings.ToLower(strings.TrimSpace(dayName))]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	baseTime = baseTime.In(p.location)
	currentWeekday := baseTime.Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// IsWeekday reports whether word names a day of the week.
func IsWeekday(word string) bool {
	_, ok := weekdays[strings.ToLower(word)]
	return ok
}

// ParseClock parses "2pm", "2:30 pm", "12am" and "14:00" into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if m := clock12Re.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, fmt.Errorf("invalid clock time: %q", s)
		}
		hour %= 12
		if m[3] == "pm" {
			hour += 12
		}
		return hour, minute, nil
	}

	if m := clock24Re.FindStringSubmatch(s); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return 0, 0, fmt.Errorf("invalid clock time: %q", s)
		}
		return hour, minute, nil
	}

	return 0, 0, fmt.Errorf("unrecognized clock time: %q", s)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At returns the given wall-clock time on t's day in the parser's timezone.
func (p *Parser) At(t time.Time, hour, minute int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, p.location)
}

// EndOfDay returns 23:59 on the day of startOfDay.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return p.At(startOfDay, 23, 59)
}

package datemath_test

import (
	"testing"
	"time"

	"focusflow/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Tonight", relative: "Tonight", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "In 2 weeks", relative: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{name: "Next Monday (from Wed)", relative: "next monday", want: startOfBase.AddDate(0, 0, 5)},
		{name: "Next Wednesday (from Wed)", relative: "next wednesday", want: startOfBase.AddDate(0, 0, 7)},
		{name: "Bare Friday (from Wed)", relative: "friday", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Unknown fallback", relative: "some random day", want: startOfBase},
		{name: "Invalid Next Weekday", relative: "next funday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in       string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{in: "2pm", wantHour: 14},
		{in: "2 PM", wantHour: 14},
		{in: "2:30pm", wantHour: 14, wantMin: 30},
		{in: "12am", wantHour: 0},
		{in: "12pm", wantHour: 12},
		{in: "9am", wantHour: 9},
		{in: "14:00", wantHour: 14},
		{in: "07:45", wantHour: 7, wantMin: 45},
		{in: "13pm", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "noonish", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, m, err := datemath.ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if h != tt.wantHour || m != tt.wantMin {
				t.Errorf("ParseClock(%q) = %02d:%02d, want %02d:%02d", tt.in, h, m, tt.wantHour, tt.wantMin)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestAtUsesParserTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	// 20:00 UTC on May 1 is already May 2 in UTC+7.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	got := parser.At(base, 9, 0)
	if got.Day() != 2 || got.Hour() != 9 {
		t.Errorf("At() = %v, want May 2 09:00 local", got)
	}
}

func TestParseAcrossDSTChange(t *testing.T) {
	parser, err := datemath.NewParser("America/Los_Angeles")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	la, _ := time.LoadLocation("America/Los_Angeles")
	// 00:30 PDT on Sunday Nov 1, the night clocks fall back.
	base := time.Date(2026, 11, 1, 7, 30, 0, 0, time.UTC)

	tests := []struct {
		relative string
		want     time.Time
	}{
		{"today", time.Date(2026, 11, 1, 0, 0, 0, 0, la)},
		{"tomorrow", time.Date(2026, 11, 2, 0, 0, 0, 0, la)},
		{"in 2 days", time.Date(2026, 11, 3, 0, 0, 0, 0, la)},
		{"monday", time.Date(2026, 11, 2, 0, 0, 0, 0, la)},
	}

	for _, tt := range tests {
		t.Run(tt.relative, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, base)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}

	tomorrow, _ := parser.Parse("tomorrow", base)
	end := parser.EndOfDay(tomorrow)
	if want := time.Date(2026, 11, 2, 23, 59, 0, 0, la); !end.Equal(want) {
		t.Errorf("EndOfDay(tomorrow) = %v, want %v", end, want)
	}
	if _, offset := end.Zone(); offset != -8*3600 {
		t.Errorf("offset = %d, want PST", offset)
	}

	next, err := parser.NextWeekday("monday", base)
	if err != nil || !next.Equal(time.Date(2026, 11, 2, 0, 0, 0, 0, la)) {
		t.Errorf("NextWeekday(monday) = %v err=%v", next, err)
	}
}

func TestIsWeekday(t *testing.T) {
	if !datemath.IsWeekday("Monday") {
		t.Error("Monday should be a weekday name")
	}
	if datemath.IsWeekday("someday") {
		t.Error("someday is not a weekday name")
	}
}

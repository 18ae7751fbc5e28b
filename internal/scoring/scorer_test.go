package scoring_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"focusflow/internal/model"
	"focusflow/internal/scoring"
)

func ptr(t time.Time) *time.Time { return &t }

func newScorer(t *testing.T) *scoring.Scorer {
	t.Helper()
	s, err := scoring.New(scoring.Config{})
	if err != nil {
		t.Fatalf("scoring.New: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     scoring.Config
		wantErr error
	}{
		{name: "defaults", cfg: scoring.Config{}},
		{name: "custom weights", cfg: scoring.Config{Weights: scoring.Weights{Urgency: 2, Priority: 1, Focus: 1}}},
		{name: "negative weight", cfg: scoring.Config{Weights: scoring.Weights{Urgency: -1, Priority: 1, Focus: 1}}, wantErr: scoring.ErrNegativeWeight},
		{name: "negative horizon", cfg: scoring.Config{Horizon: -time.Hour}, wantErr: scoring.ErrInvalidHorizon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scoring.New(tt.cfg)
			if err != tt.wantErr {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWeightsNormalize(t *testing.T) {
	w, err := scoring.Weights{Urgency: 2, Priority: 1, Focus: 1}.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if w.Urgency != 0.5 || w.Priority != 0.25 || w.Focus != 0.25 {
		t.Errorf("unexpected normalized weights %+v", w)
	}
	if _, err := (scoring.Weights{}).Normalize(); err != scoring.ErrZeroWeights {
		t.Errorf("expected ErrZeroWeights, got %v", err)
	}
}

func TestUrgency(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  *time.Time
		want float64
	}{
		{name: "no due date", due: nil, want: 0},
		{name: "due now", due: ptr(now), want: 1},
		{name: "overdue", due: ptr(now.Add(-5 * time.Hour)), want: 1},
		{name: "due in 36h", due: ptr(now.Add(36 * time.Hour)), want: 0.5},
		{name: "due in 72h", due: ptr(now.Add(72 * time.Hour)), want: 0},
		{name: "due in a week", due: ptr(now.Add(7 * 24 * time.Hour)), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.Urgency(tt.due, now, scoring.DefaultHorizon)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Urgency() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriorityWeight(t *testing.T) {
	tests := map[model.Priority]float64{
		model.PriorityUrgent: 1.0,
		model.PriorityHigh:   0.75,
		model.PriorityMedium: 0.5,
		model.PriorityLow:    0.25,
		"unknown":            0.5,
	}
	for p, want := range tests {
		if got := scoring.PriorityWeight(p); got != want {
			t.Errorf("PriorityWeight(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestFocusAlignment(t *testing.T) {
	profile := model.NewFocusProfile("u1")
	profile.Morning = 0.9
	profile.Evening = 0.1

	if got := scoring.FocusAlignment(model.TaskTypeDeep, profile, model.WindowMorning); got != 0.9 {
		t.Errorf("deep morning = %v, want 0.9", got)
	}
	if got := scoring.FocusAlignment(model.TaskTypeDeep, profile, model.WindowEvening); got != 0.1 {
		t.Errorf("deep evening = %v, want 0.1", got)
	}
	if got := scoring.FocusAlignment(model.TaskTypeShallow, profile, model.WindowMorning); got != 0.5 {
		t.Errorf("shallow = %v, want flat 0.5", got)
	}
}

func TestScoreKnownValue(t *testing.T) {
	s := newScorer(t)
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) // morning
	profile := model.NewFocusProfile("u1")
	profile.Morning = 0.8

	task := model.Task{
		Priority: model.PriorityHigh,
		TaskType: model.TaskTypeDeep,
		DueAt:    ptr(now.Add(36 * time.Hour)),
	}

	// 0.4*0.5 + 0.35*0.75 + 0.25*0.8
	want := 0.2 + 0.2625 + 0.2
	if got := s.Score(task, profile, now); math.Abs(got-want) > 1e-9 {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestScoreUsesConfiguredTimezone(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	s, err := scoring.New(scoring.Config{Location: loc})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	profile := model.NewFocusProfile("u1")
	profile.Morning = 1
	profile.Evening = 0

	// 02:00 UTC is 09:00 in UTC+7, which is morning.
	now := time.Date(2024, 5, 1, 2, 0, 0, 0, time.UTC)
	b := s.Breakdown(model.Task{TaskType: model.TaskTypeDeep, Priority: model.PriorityLow}, profile, now)
	if b.FocusAlignment != 1 {
		t.Errorf("expected morning alignment in local time, got %v", b.FocusAlignment)
	}
}

func TestScoreIsPureAndBounded(t *testing.T) {
	s := newScorer(t)
	rng := rand.New(rand.NewSource(42))
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	priorities := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent}
	types := []model.TaskType{model.TaskTypeDeep, model.TaskTypeShallow}

	for i := 0; i < 500; i++ {
		now := base.Add(time.Duration(rng.Intn(24*60)) * time.Minute)
		task := model.Task{
			Priority: priorities[rng.Intn(len(priorities))],
			TaskType: types[rng.Intn(len(types))],
		}
		if rng.Intn(3) > 0 {
			task.DueAt = ptr(now.Add(time.Duration(rng.Intn(400)-100) * time.Hour))
		}
		profile := model.FocusProfile{Morning: rng.Float64(), Afternoon: rng.Float64(), Evening: rng.Float64()}

		first := s.Score(task, profile, now)
		second := s.Score(task, profile, now)
		if math.Float64bits(first) != math.Float64bits(second) {
			t.Fatalf("Score not bit-exact: %v vs %v", first, second)
		}
		if first < 0 || first > 1 {
			t.Fatalf("Score out of range: %v", first)
		}
	}
}

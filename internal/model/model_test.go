package model_test

import (
	"testing"
	"time"

	"focusflow/internal/model"
)

func TestWindowOf(t *testing.T) {
	day := func(h, m int) time.Time { return time.Date(2024, 5, 1, h, m, 0, 0, time.UTC) }

	tests := []struct {
		at   time.Time
		want model.Window
	}{
		{at: day(4, 59), want: model.WindowEvening},
		{at: day(5, 0), want: model.WindowMorning},
		{at: day(11, 59), want: model.WindowMorning},
		{at: day(12, 0), want: model.WindowAfternoon},
		{at: day(17, 59), want: model.WindowAfternoon},
		{at: day(18, 0), want: model.WindowEvening},
		{at: day(0, 0), want: model.WindowEvening},
	}

	for _, tt := range tests {
		if got := model.WindowOf(tt.at); got != tt.want {
			t.Errorf("WindowOf(%s) = %s, want %s", tt.at.Format("15:04"), got, tt.want)
		}
	}
}

func TestNewFocusProfileIsNeutral(t *testing.T) {
	p := model.NewFocusProfile("u1")
	if p.Morning != 0.5 || p.Afternoon != 0.5 || p.Evening != 0.5 {
		t.Errorf("expected neutral profile, got %+v", p)
	}
	if p.Peak() != model.WindowMorning {
		t.Errorf("ties should resolve to morning, got %s", p.Peak())
	}
}

func TestFocusProfilePeak(t *testing.T) {
	p := model.NewFocusProfile("u1")
	p.Set(model.WindowEvening, 0.9)
	if p.Peak() != model.WindowEvening {
		t.Errorf("Peak() = %s, want evening", p.Peak())
	}
	if p.Get(model.WindowEvening) != 0.9 {
		t.Errorf("Get(evening) = %v", p.Get(model.WindowEvening))
	}
}

func TestParseEnums(t *testing.T) {
	if p, ok := model.ParsePriority(" URGENT "); !ok || p != model.PriorityUrgent {
		t.Errorf("ParsePriority = %q, %v", p, ok)
	}
	if _, ok := model.ParsePriority("p0"); ok {
		t.Error("p0 is not a valid priority")
	}
	if tt, ok := model.ParseTaskType("Deep"); !ok || tt != model.TaskTypeDeep {
		t.Errorf("ParseTaskType = %q, %v", tt, ok)
	}
	if _, ok := model.ParseTaskStatus("in_progress"); ok {
		t.Error("in_progress is not a valid status")
	}
}

func TestTaskComplete(t *testing.T) {
	task := model.Task{Status: model.TaskStatusPending}
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	task.Complete(at)

	if task.IsPending() {
		t.Error("completed task should not be pending")
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(at) {
		t.Errorf("CompletedAt = %v, want %v", task.CompletedAt, at)
	}
}

func TestTaskDraftValid(t *testing.T) {
	valid := model.TaskDraft{Title: "Call client", Priority: model.PriorityMedium, TaskType: model.TaskTypeShallow, EstimatedDurationMinutes: 15}
	if !valid.Valid() {
		t.Error("expected draft to be valid")
	}

	invalid := valid
	invalid.Priority = "p1"
	if invalid.Valid() {
		t.Error("expected draft with unknown priority to be invalid")
	}

	invalid = valid
	invalid.EstimatedDurationMinutes = 0
	if invalid.Valid() {
		t.Error("expected draft with zero duration to be invalid")
	}
}

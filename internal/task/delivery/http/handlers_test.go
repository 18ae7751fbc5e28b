package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"focusflow/internal/middleware"
	"focusflow/internal/model"
	"focusflow/internal/task"
	"focusflow/pkg/log"
)

type fakeUseCase struct {
	err        error
	lastScope  model.Scope
	lastUpdate task.UpdateInput
	lastLimit  int
	lastList   task.ListInput
}

var fixedTask = model.Task{
	ID:                       "t1",
	Owner:                    "alice",
	Title:                    "Finish report",
	Priority:                 model.PriorityUrgent,
	TaskType:                 model.TaskTypeDeep,
	EstimatedDurationMinutes: 60,
	Status:                   model.TaskStatusPending,
	FocusScore:               0.82,
	CreatedAt:                time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	UpdatedAt:                time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
}

func (f *fakeUseCase) output(sc model.Scope) (task.TaskOutput, error) {
	f.lastScope = sc
	if f.err != nil {
		return task.TaskOutput{}, f.err
	}
	return task.TaskOutput{Task: fixedTask, Schedule: model.Schedule{Owner: sc.UserID, Tasks: []model.Task{fixedTask}}}, nil
}

func (f *fakeUseCase) Create(_ context.Context, sc model.Scope, _ task.CreateInput) (task.TaskOutput, error) {
	return f.output(sc)
}

func (f *fakeUseCase) Update(_ context.Context, sc model.Scope, in task.UpdateInput) (task.TaskOutput, error) {
	f.lastUpdate = in
	return f.output(sc)
}

func (f *fakeUseCase) Complete(_ context.Context, sc model.Scope, _ string) (task.TaskOutput, error) {
	return f.output(sc)
}

func (f *fakeUseCase) Delete(_ context.Context, sc model.Scope, _ string) (model.Schedule, error) {
	out, err := f.output(sc)
	return out.Schedule, err
}

func (f *fakeUseCase) Detail(_ context.Context, sc model.Scope, _ string) (model.Task, error) {
	out, err := f.output(sc)
	return out.Task, err
}

func (f *fakeUseCase) List(_ context.Context, sc model.Scope, in task.ListInput) ([]model.Task, error) {
	f.lastList = in
	out, err := f.output(sc)
	return out.Schedule.Tasks, err
}

func (f *fakeUseCase) GetSchedule(_ context.Context, sc model.Scope) (model.Schedule, error) {
	out, err := f.output(sc)
	return out.Schedule, err
}

func (f *fakeUseCase) OptimizeSchedule(_ context.Context, sc model.Scope, in task.OptimizeInput) (task.OptimizeOutput, error) {
	f.lastLimit = in.Limit
	out, err := f.output(sc)
	return task.OptimizeOutput{Tasks: out.Schedule.Tasks, TotalPending: 1, Profile: model.NewFocusProfile(sc.UserID)}, err
}

func (f *fakeUseCase) ParsePreview(_ context.Context, sc model.Scope, in task.ParseInput) (task.ParseOutput, error) {
	f.lastScope = sc
	return task.ParseOutput{Draft: model.TaskDraft{Title: in.RawText, Priority: model.PriorityMedium, TaskType: model.TaskTypeShallow, EstimatedDurationMinutes: 15}, Source: "rules"}, f.err
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := log.NewNop()
	RegisterRoutes(r.Group("/api/v1"), New(l, uc), middleware.New(l))
	return r
}

func doRequest(r http.Handler, method, path, body, user string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutesStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		user       string
		ucErr      error
		wantStatus int
	}{
		{"create ok", http.MethodPost, "/api/v1/tasks", `{"raw_text":"Finish report by tomorrow 2pm - urgent"}`, "alice", nil, http.StatusOK},
		{"missing user", http.MethodPost, "/api/v1/tasks", `{"raw_text":"x"}`, "", nil, http.StatusUnauthorized},
		{"missing raw_text", http.MethodPost, "/api/v1/tasks", `{}`, "alice", nil, http.StatusBadRequest},
		{"blank raw_text", http.MethodPost, "/api/v1/tasks", `{"raw_text":"   "}`, "alice", nil, http.StatusBadRequest},
		{"detail not found", http.MethodGet, "/api/v1/tasks/nope", "", "alice", task.ErrTaskNotFound, http.StatusNotFound},
		{"update invalid priority", http.MethodPatch, "/api/v1/tasks/t1", `{"priority":"critical"}`, "alice", task.ErrInvalidPriority, http.StatusBadRequest},
		{"update empty body", http.MethodPatch, "/api/v1/tasks/t1", `{}`, "alice", nil, http.StatusBadRequest},
		{"update bad due_at", http.MethodPatch, "/api/v1/tasks/t1", `{"due_at":"tomorrow"}`, "alice", nil, http.StatusBadRequest},
		{"update completed task", http.MethodPatch, "/api/v1/tasks/t1", `{"title":"x"}`, "alice", task.ErrTaskCompleted, http.StatusConflict},
		{"complete ok", http.MethodPost, "/api/v1/tasks/t1/complete", "", "alice", nil, http.StatusOK},
		{"delete storage failure", http.MethodDelete, "/api/v1/tasks/t1", "", "alice", errors.New("disk full"), http.StatusInternalServerError},
		{"schedule ok", http.MethodGet, "/api/v1/schedule", "", "alice", nil, http.StatusOK},
		{"optimize bad limit", http.MethodGet, "/api/v1/schedule/optimize?limit=-1", "", "alice", nil, http.StatusBadRequest},
		{"list ok", http.MethodGet, "/api/v1/tasks", "", "alice", nil, http.StatusOK},
		{"list by status", http.MethodGet, "/api/v1/tasks?status=completed", "", "alice", nil, http.StatusOK},
		{"list bad status", http.MethodGet, "/api/v1/tasks?status=archived", "", "alice", nil, http.StatusBadRequest},
		{"list missing user", http.MethodGet, "/api/v1/tasks", "", "", nil, http.StatusUnauthorized},
		{"list storage failure", http.MethodGet, "/api/v1/tasks", "", "alice", errors.New("disk full"), http.StatusInternalServerError},
		{"parse ok", http.MethodPost, "/api/v1/tasks/parse", `{"raw_text":"Call client"}`, "alice", nil, http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{err: tc.ucErr})
			w := doRequest(r, tc.method, tc.path, tc.body, tc.user)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d, body=%s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestCreateResponseBody(t *testing.T) {
	uc := &fakeUseCase{}
	w := doRequest(newTestRouter(uc), http.MethodPost, "/api/v1/tasks", `{"raw_text":"Finish report"}`, "alice")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.lastScope.UserID != "alice" {
		t.Errorf("scope = %+v", uc.lastScope)
	}

	var body struct {
		Data struct {
			Task struct {
				ID         string  `json:"id"`
				FocusScore float64 `json:"focus_score"`
				CreatedAt  string  `json:"created_at"`
			} `json:"task"`
			Schedule struct {
				Tasks []json.RawMessage `json:"tasks"`
			} `json:"schedule"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.Task.ID != "t1" || body.Data.Task.FocusScore != 0.82 {
		t.Errorf("task = %+v", body.Data.Task)
	}
	if body.Data.Task.CreatedAt != "2024-05-01T09:00:00Z" {
		t.Errorf("created_at = %q", body.Data.Task.CreatedAt)
	}
	if len(body.Data.Schedule.Tasks) != 1 {
		t.Errorf("schedule tasks = %d", len(body.Data.Schedule.Tasks))
	}
}

func TestUpdateRequestMapping(t *testing.T) {
	uc := &fakeUseCase{}
	w := doRequest(newTestRouter(uc), http.MethodPatch, "/api/v1/tasks/t1",
		`{"due_at":"2024-05-03T10:00:00+02:00","estimated_duration_minutes":90}`, "alice")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", w.Code, w.Body.String())
	}

	in := uc.lastUpdate
	if in.ID != "t1" {
		t.Errorf("ID = %q", in.ID)
	}
	want := time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC)
	if in.DueAt == nil || !in.DueAt.Equal(want) {
		t.Errorf("DueAt = %v, want %v", in.DueAt, want)
	}
	if in.EstimatedDurationMinutes == nil || *in.EstimatedDurationMinutes != 90 {
		t.Errorf("EstimatedDurationMinutes = %v", in.EstimatedDurationMinutes)
	}
	if in.Priority != nil || in.ClearDueAt {
		t.Errorf("unexpected fields set: %+v", in)
	}
}

func TestOptimizeLimitQuery(t *testing.T) {
	uc := &fakeUseCase{}
	w := doRequest(newTestRouter(uc), http.MethodGet, "/api/v1/schedule/optimize?limit=3", "", "alice")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.lastLimit != 3 {
		t.Errorf("limit = %d, want 3", uc.lastLimit)
	}
	if !strings.Contains(w.Body.String(), `"focus_patterns"`) {
		t.Errorf("body missing focus_patterns: %s", w.Body.String())
	}
}

func TestListBody(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := doRequest(r, http.MethodGet, "/api/v1/tasks?status=pending", "", "alice")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body=%s", w.Code, w.Body.String())
	}
	if uc.lastList.Status != "pending" || uc.lastScope.UserID != "alice" {
		t.Errorf("use case got %+v scope %+v", uc.lastList, uc.lastScope)
	}

	var body struct {
		Data struct {
			Tasks []struct {
				ID         string  `json:"id"`
				FocusScore float64 `json:"focus_score"`
			} `json:"tasks"`
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.Total != 1 || len(body.Data.Tasks) != 1 || body.Data.Tasks[0].ID != "t1" || body.Data.Tasks[0].FocusScore != 0.82 {
		t.Errorf("data = %+v", body.Data)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

func TestTaskHandler_Create_ResolvesLegacyStatus(t *testing.T) {
	e := newEcho()
	stub := &stubScheduleService{
		createTaskFn: func(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
			// Clients that read "Scheduled" from old records echo it back;
			// the handler resolves the alias before the vocabulary check.
			if in.Status != domain.TaskStatusBooked {
				t.Fatalf("expected Booked after alias resolution, got %q", in.Status)
			}
			if in.CompanyID != "co-1" {
				t.Fatalf("company must come from claims, got %q", in.CompanyID)
			}
			return &domain.Task{ID: "t-9", ProjectID: in.ProjectID, Status: in.Status}, nil
		},
	}
	handler := NewTaskHandler(stub)

	body := strings.NewReader(`{"project_id":"p-1","status":"Scheduled"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/tasks", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "officeCrew")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTaskHandler_Create_EmptyStatusLeftToService(t *testing.T) {
	e := newEcho()
	stub := &stubScheduleService{
		createTaskFn: func(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
			if in.Status != "" {
				t.Fatalf("the Booked default belongs to the service, got %q", in.Status)
			}
			return &domain.Task{ID: "t-9", ProjectID: in.ProjectID, Status: domain.TaskStatusBooked}, nil
		},
	}
	handler := NewTaskHandler(stub)

	body := strings.NewReader(`{"project_id":"p-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/tasks", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "officeCrew")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTaskHandler_Create_MissingProject(t *testing.T) {
	e := newEcho()
	handler := NewTaskHandler(&stubScheduleService{
		createTaskFn: func(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/tasks", strings.NewReader(`{"notes":"pour footings"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setClaims(c, "officeCrew")

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestTaskHandler_ChangeStatus_ResolvesLegacyStatus(t *testing.T) {
	e := newEcho()
	stub := &stubScheduleService{
		changeTaskStatusFn: func(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
			if id != "t-1" || status != domain.TaskStatusBooked {
				t.Fatalf("unexpected args: %s %s", id, status)
			}
			return &domain.Task{ID: id, Status: status}, nil
		},
	}
	handler := NewTaskHandler(stub)

	body := strings.NewReader(`{"status":"Scheduled"}`)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/tasks/:id/status")
	c.SetParamNames("id")
	c.SetParamValues("t-1")

	if err := handler.ChangeStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "Booked" {
		t.Fatalf("expected canonical status in response, got %v", resp["status"])
	}
}

func TestTaskHandler_Update_PartialFields(t *testing.T) {
	e := newEcho()
	stub := &stubScheduleService{
		updateTaskFn: func(ctx context.Context, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
			if in.Notes == nil || *in.Notes != "rebar inspection booked" {
				t.Fatalf("notes not carried through: %v", in.Notes)
			}
			if in.Color != nil || in.TaskIndex != nil || in.TeamMemberIDs != nil {
				t.Fatalf("absent fields must stay nil")
			}
			return &domain.Task{ID: id, Notes: *in.Notes}, nil
		},
	}
	handler := NewTaskHandler(stub)

	body := strings.NewReader(`{"notes":"rebar inspection booked"}`)
	req := httptest.NewRequest(http.MethodPatch, "/", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/tasks/:id")
	c.SetParamNames("id")
	c.SetParamValues("t-1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_ListForProject(t *testing.T) {
	e := newEcho()
	stub := &stubScheduleService{
		listProjectTasksFn: func(ctx context.Context, projectID string) ([]*domain.Task, error) {
			if projectID != "p-1" {
				t.Fatalf("expected project p-1, got %q", projectID)
			}
			return []*domain.Task{
				{ID: "t-1", ProjectID: projectID, Status: domain.TaskStatusBooked},
				{ID: "t-2", ProjectID: projectID, Status: domain.TaskStatusCompleted},
			}, nil
		},
	}
	handler := NewTaskHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/projects/:id/tasks")
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	if err := handler.ListForProject(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", resp["count"])
	}
}

package ports

import (
	"context"
	"time"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// CreateTaskInput carries all data needed to add a task to a project.
type CreateTaskInput struct {
	ProjectID       string
	CompanyID       string
	Status          domain.TaskStatus // empty = Booked
	Color           string            // empty = inherited from the task type
	TaskIndex       int
	Notes           string
	TeamMemberIDs   []string
	TaskTypeID      string
	CalendarEventID string
}

// UpdateTaskInput is a partial update; nil fields are left untouched.
// A nil TeamMemberIDs slice leaves the assignment unchanged.
type UpdateTaskInput struct {
	Color           *string
	TaskIndex       *int
	Notes           *string
	TeamMemberIDs   []string
	TaskTypeID      *string
	CalendarEventID *string
}

// CreateEventInput carries all data needed to put an event on the calendar.
type CreateEventInput struct {
	Title         string
	Color         string // empty = company default project colour
	CompanyID     string
	ProjectID     string
	TaskID        string
	Duration      int
	StartDate     time.Time
	EndDate       time.Time
	TeamMemberIDs []string
}

// UpdateEventInput is a partial update; nil fields are left untouched.
type UpdateEventInput struct {
	Title         *string
	Color         *string
	StartDate     *time.Time
	EndDate       *time.Time
	Duration      *int
	TeamMemberIDs []string
}

// ScheduleService covers the scheduling side of the dashboard: tasks and
// the company calendar.
type ScheduleService interface {
	ListProjectTasks(ctx context.Context, projectID string) ([]*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, in UpdateTaskInput) (*domain.Task, error)
	ChangeTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListEvents(ctx context.Context, companyID string, from, to time.Time) ([]*domain.CalendarEvent, error)
	GetEvent(ctx context.Context, id string) (*domain.CalendarEvent, error)
	CreateEvent(ctx context.Context, in CreateEventInput) (*domain.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id string, in UpdateEventInput) (*domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

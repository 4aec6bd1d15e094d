package ports

import (
	"context"
	"time"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// TaskRepository defines remote-store operations for tasks.
type TaskRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, in CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, id string, in UpdateTaskInput) (*domain.Task, error)
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	SoftDelete(ctx context.Context, id string) error
}

// CalendarEventRepository defines remote-store operations for calendar
// events.
type CalendarEventRepository interface {
	// ListRange returns a company's live events overlapping [from, to).
	// Zero bounds disable the corresponding constraint.
	ListRange(ctx context.Context, companyID string, from, to time.Time) ([]*domain.CalendarEvent, error)
	Get(ctx context.Context, id string) (*domain.CalendarEvent, error)
	Create(ctx context.Context, in CreateEventInput) (*domain.CalendarEvent, error)
	Update(ctx context.Context, id string, in UpdateEventInput) (*domain.CalendarEvent, error)
	SoftDelete(ctx context.Context, id string) error
}

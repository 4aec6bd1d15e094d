package remote

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

const objTask = "obj/task"

// TaskDTO is a task as stored remotely.
type TaskDTO struct {
	ID            string   `json:"_id"`
	Project       Ref      `json:"project"`
	CalendarEvent Ref      `json:"calendar_event"`
	Company       Ref      `json:"company"`
	Status        string   `json:"status"`
	Color         string   `json:"color"`
	TaskIndex     float64  `json:"taskIndex"`
	Notes         string   `json:"notes"`
	TeamMembers   []string `json:"team_members"`
	TaskType      Ref      `json:"task_type"`
	DeletedAt     FlexTime `json:"deletedAt"`
}

// ToModel converts the DTO to the canonical model, mapping legacy status
// names onto current ones. Returns nil when the record has no id.
func (d *TaskDTO) ToModel() *domain.Task {
	if d.ID == "" {
		return nil
	}
	return &domain.Task{
		ID:              d.ID,
		ProjectID:       d.Project.ID,
		CalendarEventID: d.CalendarEvent.ID,
		CompanyID:       d.Company.ID,
		Status:          domain.ParseTaskStatus(d.Status),
		Color:           normalizeColor(d.Color),
		TaskIndex:       int(d.TaskIndex),
		Notes:           d.Notes,
		TeamMemberIDs:   orEmpty(d.TeamMembers),
		TaskTypeID:      d.TaskType.ID,
		DeletedAt:       d.DeletedAt.Time(),
	}
}

type createTaskPayload struct {
	Project       string   `json:"project" validate:"required"`
	CalendarEvent string   `json:"calendar_event,omitempty"`
	Company       string   `json:"company" validate:"required"`
	Status        string   `json:"status" validate:"required"`
	Color         string   `json:"color,omitempty"`
	TaskIndex     int      `json:"taskIndex"`
	Notes         string   `json:"notes,omitempty"`
	TeamMembers   []string `json:"team_members,omitempty"`
	TaskType      string   `json:"task_type,omitempty"`
}

type updateTaskPayload struct {
	CalendarEvent *string  `json:"calendar_event,omitempty"`
	Color         *string  `json:"color,omitempty"`
	TaskIndex     *int     `json:"taskIndex,omitempty" validate:"omitempty,min=0"`
	Notes         *string  `json:"notes,omitempty"`
	TeamMembers   []string `json:"team_members,omitempty"`
	TaskType      *string  `json:"task_type,omitempty"`
}

type taskStatusAction struct {
	TaskID string `json:"task_id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type taskIDAction struct {
	TaskID string `json:"task_id" validate:"required"`
}

// TaskRepository reads and mutates tasks through the remote store.
type TaskRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewTaskRepository(client *Client, logger zerolog.Logger) *TaskRepository {
	return &TaskRepository{
		client: client,
		logger: logger.With().Str("component", "task_repository").Logger(),
	}
}

// ListByProject returns the live tasks of one project.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	cons := []Constraint{
		IsEmpty("deletedAt"),
		Eq("project", projectID),
	}
	raws, err := r.client.fetchAll(ctx, objTask, cons)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	tasks, skipped := decodeBatch(raws, (*TaskDTO).ToModel)
	reportSkips(r.logger, "task", skipped)
	return tasks, nil
}

// Get retrieves a single task by id.
func (r *TaskRepository) Get(ctx context.Context, id string) (*domain.Task, error) {
	var dto TaskDTO
	if err := r.client.Get(ctx, objTask+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, notFound(err, domain.ErrTaskNotFound)
	}
	t := dto.ToModel()
	if t == nil {
		reportSkips(r.logger, "task", 1)
		return nil, domain.ErrTaskNotFound
	}
	return t, nil
}

// Create adds a task and returns it freshly converted.
func (r *TaskRepository) Create(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
	payload := createTaskPayload{
		Project:       in.ProjectID,
		CalendarEvent: in.CalendarEventID,
		Company:       in.CompanyID,
		Status:        string(in.Status),
		Color:         in.Color,
		TaskIndex:     in.TaskIndex,
		Notes:         in.Notes,
		TeamMembers:   in.TeamMemberIDs,
		TaskType:      in.TaskTypeID,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	var created createdPayload
	if err := r.client.Post(ctx, objTask, payload, &created); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return r.Get(ctx, created.ID)
}

// Update applies a partial update and returns the refreshed task.
func (r *TaskRepository) Update(ctx context.Context, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
	payload := updateTaskPayload{
		CalendarEvent: in.CalendarEventID,
		Color:         in.Color,
		TaskIndex:     in.TaskIndex,
		Notes:         in.Notes,
		TeamMembers:   in.TeamMemberIDs,
		TaskType:      in.TaskTypeID,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	if err := r.client.Patch(ctx, objTask+"/"+url.PathEscape(id), payload, nil); err != nil {
		return nil, notFound(err, domain.ErrTaskNotFound)
	}
	return r.Get(ctx, id)
}

// SetStatus runs the store's task status workflow action.
func (r *TaskRepository) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	action := taskStatusAction{TaskID: id, Status: string(status)}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/update-task-status", action, nil); err != nil {
		return notFound(err, domain.ErrTaskNotFound)
	}
	return nil
}

// SoftDelete marks the task deleted through the delete workflow.
func (r *TaskRepository) SoftDelete(ctx context.Context, id string) error {
	action := taskIDAction{TaskID: id}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/delete-task", action, nil); err != nil {
		return notFound(err, domain.ErrTaskNotFound)
	}
	return nil
}

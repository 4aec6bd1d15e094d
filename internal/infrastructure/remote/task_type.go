package remote

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

const objTaskType = "obj/task_type"

// TaskTypeDTO is a task category as stored remotely.
type TaskTypeDTO struct {
	ID        string   `json:"_id"`
	Company   Ref      `json:"company"`
	Label     string   `json:"label"`
	Color     string   `json:"color"`
	IsDefault bool     `json:"is_default"`
	DeletedAt FlexTime `json:"deletedAt"`
}

func (d *TaskTypeDTO) ToModel() *domain.TaskType {
	if d.ID == "" {
		return nil
	}
	return &domain.TaskType{
		ID:        d.ID,
		CompanyID: d.Company.ID,
		Label:     d.Label,
		Color:     normalizeColor(d.Color),
		IsDefault: d.IsDefault,
		DeletedAt: d.DeletedAt.Time(),
	}
}

type createTaskTypePayload struct {
	Company   string `json:"company" validate:"required"`
	Label     string `json:"label" validate:"required"`
	Color     string `json:"color,omitempty"`
	IsDefault bool   `json:"is_default"`
}

type taskTypeIDAction struct {
	TaskTypeID string `json:"task_type_id" validate:"required"`
}

// TaskTypeRepository reads and mutates task categories through the
// remote store.
type TaskTypeRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewTaskTypeRepository(client *Client, logger zerolog.Logger) *TaskTypeRepository {
	return &TaskTypeRepository{
		client: client,
		logger: logger.With().Str("component", "task_type_repository").Logger(),
	}
}

// ListByCompany returns a company's live task types.
func (r *TaskTypeRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.TaskType, error) {
	cons := []Constraint{
		IsEmpty("deletedAt"),
		Eq("company", companyID),
	}
	raws, err := r.client.fetchAll(ctx, objTaskType, cons)
	if err != nil {
		return nil, fmt.Errorf("list task types: %w", err)
	}
	types, skipped := decodeBatch(raws, (*TaskTypeDTO).ToModel)
	reportSkips(r.logger, "task_type", skipped)
	return types, nil
}

// Get retrieves a single task type by id.
func (r *TaskTypeRepository) Get(ctx context.Context, id string) (*domain.TaskType, error) {
	var dto TaskTypeDTO
	if err := r.client.Get(ctx, objTaskType+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, notFound(err, domain.ErrTaskTypeNotFound)
	}
	tt := dto.ToModel()
	if tt == nil {
		reportSkips(r.logger, "task_type", 1)
		return nil, domain.ErrTaskTypeNotFound
	}
	return tt, nil
}

// Create adds a task type and returns it freshly converted.
func (r *TaskTypeRepository) Create(ctx context.Context, in ports.CreateTaskTypeInput) (*domain.TaskType, error) {
	payload := createTaskTypePayload{
		Company:   in.CompanyID,
		Label:     in.Label,
		Color:     in.Color,
		IsDefault: in.IsDefault,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	var created createdPayload
	if err := r.client.Post(ctx, objTaskType, payload, &created); err != nil {
		return nil, fmt.Errorf("create task type: %w", err)
	}
	return r.Get(ctx, created.ID)
}

// SoftDelete marks the task type deleted through the delete workflow.
func (r *TaskTypeRepository) SoftDelete(ctx context.Context, id string) error {
	action := taskTypeIDAction{TaskTypeID: id}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/delete-task-type", action, nil); err != nil {
		return notFound(err, domain.ErrTaskTypeNotFound)
	}
	return nil
}

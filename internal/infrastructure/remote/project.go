package remote

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

const objProject = "obj/project"

// ProjectDTO is a project exactly as the remote store returns it. Field
// names and encodings are the store's, inconsistencies included.
type ProjectDTO struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Client         Ref      `json:"client"`
	ClientName     string   `json:"client_name"`
	Company        Ref      `json:"company"`
	Status         string   `json:"status"`
	StartDate      FlexTime `json:"startDate"`
	Completion     float64  `json:"completion"`
	Tasks          []string `json:"tasks"`
	CalendarEvents []string `json:"calendar_events"`
	Images         []string `json:"images"`
	AllDay         bool     `json:"all_day"`
	Duration       float64  `json:"duration"`
	DeletedAt      FlexTime `json:"deletedAt"`
}

// ToModel converts the DTO to the canonical model, or nil when the record
// is structurally unusable (no id).
func (d *ProjectDTO) ToModel() *domain.Project {
	if d.ID == "" {
		return nil
	}
	return &domain.Project{
		ID:               d.ID,
		Name:             d.Name,
		Address:          d.Address,
		ClientID:         d.Client.ID,
		ClientName:       d.ClientName,
		CompanyID:        d.Company.ID,
		Status:           domain.ProjectStatus(d.Status),
		StartDate:        d.StartDate.Time(),
		Completion:       clampPercent(d.Completion),
		TaskIDs:          orEmpty(d.Tasks),
		CalendarEventIDs: orEmpty(d.CalendarEvents),
		ImageURLs:        orEmpty(d.Images),
		AllDay:           d.AllDay,
		Duration:         int(d.Duration),
		DeletedAt:        d.DeletedAt.Time(),
	}
}

// createProjectPayload is the write shape obj/project accepts.
type createProjectPayload struct {
	Name       string     `json:"name" validate:"required"`
	Address    string     `json:"address,omitempty"`
	Client     string     `json:"client,omitempty"`
	ClientName string     `json:"client_name,omitempty"`
	Company    string     `json:"company" validate:"required"`
	Status     string     `json:"status" validate:"required"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	AllDay     bool       `json:"all_day"`
	Duration   int        `json:"duration,omitempty" validate:"min=0"`
}

// updateProjectPayload is a partial PATCH body; absent fields stay as they
// are on the store side. Status is deliberately missing: status moves only
// through the workflow action.
type updateProjectPayload struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Address    *string    `json:"address,omitempty"`
	ClientName *string    `json:"client_name,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	Completion *int       `json:"completion,omitempty" validate:"omitempty,min=0,max=100"`
	AllDay     *bool      `json:"all_day,omitempty"`
	Duration   *int       `json:"duration,omitempty" validate:"omitempty,min=0"`
}

type projectStatusAction struct {
	ProjectID string `json:"project_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

type projectIDAction struct {
	ProjectID string `json:"project_id" validate:"required"`
}

// ProjectRepository reads and mutates projects through the store's object
// and workflow endpoints.
type ProjectRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewProjectRepository(client *Client, logger zerolog.Logger) *ProjectRepository {
	return &ProjectRepository{
		client: client,
		logger: logger.With().Str("component", "project_repository").Logger(),
	}
}

// List returns every live project, scoped to a company when companyID is
// non-empty. Records failing conversion are dropped and counted.
func (r *ProjectRepository) List(ctx context.Context, companyID string) ([]*domain.Project, error) {
	cons := []Constraint{IsEmpty("deletedAt")}
	if companyID != "" {
		cons = append(cons, Eq("company", companyID))
	}
	raws, err := r.client.fetchAll(ctx, objProject, cons)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects, skipped := decodeBatch(raws, (*ProjectDTO).ToModel)
	reportSkips(r.logger, "project", skipped)
	return projects, nil
}

// Get retrieves a single project by id.
func (r *ProjectRepository) Get(ctx context.Context, id string) (*domain.Project, error) {
	var dto ProjectDTO
	if err := r.client.Get(ctx, objProject+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, notFound(err, domain.ErrProjectNotFound)
	}
	p := dto.ToModel()
	if p == nil {
		reportSkips(r.logger, "project", 1)
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

// Create opens a new project and returns it freshly converted; the store
// answers creates with just the new id.
func (r *ProjectRepository) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	payload := createProjectPayload{
		Name:       in.Name,
		Address:    in.Address,
		Client:     in.ClientID,
		ClientName: in.ClientName,
		Company:    in.CompanyID,
		Status:     string(in.Status),
		StartDate:  in.StartDate,
		AllDay:     in.AllDay,
		Duration:   in.Duration,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	var created createdPayload
	if err := r.client.Post(ctx, objProject, payload, &created); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return r.Get(ctx, created.ID)
}

// Update applies a partial update and returns the refreshed project.
func (r *ProjectRepository) Update(ctx context.Context, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	payload := updateProjectPayload{
		Name:       in.Name,
		Address:    in.Address,
		ClientName: in.ClientName,
		StartDate:  in.StartDate,
		Completion: in.Completion,
		AllDay:     in.AllDay,
		Duration:   in.Duration,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	if err := r.client.Patch(ctx, objProject+"/"+url.PathEscape(id), payload, nil); err != nil {
		return nil, notFound(err, domain.ErrProjectNotFound)
	}
	return r.Get(ctx, id)
}

// SetStatus runs the store's status workflow action.
func (r *ProjectRepository) SetStatus(ctx context.Context, id string, status domain.ProjectStatus) error {
	action := projectStatusAction{ProjectID: id, Status: string(status)}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/update-project-status", action, nil); err != nil {
		return notFound(err, domain.ErrProjectNotFound)
	}
	return nil
}

// Archive runs the store's archive workflow action.
func (r *ProjectRepository) Archive(ctx context.Context, id string) error {
	action := projectIDAction{ProjectID: id}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/archive-project", action, nil); err != nil {
		return notFound(err, domain.ErrProjectNotFound)
	}
	return nil
}

// SoftDelete marks the project deleted through the store's delete
// workflow; nothing is physically removed.
func (r *ProjectRepository) SoftDelete(ctx context.Context, id string) error {
	action := projectIDAction{ProjectID: id}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/delete-project", action, nil); err != nil {
		return notFound(err, domain.ErrProjectNotFound)
	}
	return nil
}

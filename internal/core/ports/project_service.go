package ports

import (
	"context"
	"time"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// CreateProjectInput carries all data needed to open a new project.
type CreateProjectInput struct {
	Name       string
	Address    string
	ClientID   string
	ClientName string
	CompanyID  string
	Status     domain.ProjectStatus // empty = RFQ
	StartDate  *time.Time
	AllDay     bool
	Duration   int
}

// UpdateProjectInput is a partial update; nil fields are left untouched.
type UpdateProjectInput struct {
	Name       *string
	Address    *string
	ClientName *string
	StartDate  *time.Time
	Completion *int
	AllDay     *bool
	Duration   *int
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	List(ctx context.Context, companyID string) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, in UpdateProjectInput) (*domain.Project, error)
	// ChangeStatus runs the store's status workflow and returns the
	// refreshed project.
	ChangeStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

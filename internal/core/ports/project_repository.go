package ports

import (
	"context"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// ProjectRepository defines remote-store operations for projects. Listing
// excludes soft-deleted records; status changes, archival and deletion go
// through the store's named workflow actions rather than plain updates.
type ProjectRepository interface {
	// List returns every live project, scoped to a company when companyID
	// is non-empty.
	List(ctx context.Context, companyID string) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, in UpdateProjectInput) (*domain.Project, error)
	SetStatus(ctx context.Context, id string, status domain.ProjectStatus) error
	Archive(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
}

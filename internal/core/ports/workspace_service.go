package ports

import (
	"context"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// UpdateCompanyInput is a partial update of the tenant's settings; nil
// fields are left untouched. A nil AdminIDs slice leaves the admin list
// unchanged.
type UpdateCompanyInput struct {
	Name                *string
	Location            *string
	LogoURL             *string
	DefaultProjectColor *string
	AdminIDs            []string
}

// CreateTaskTypeInput carries a new task category.
type CreateTaskTypeInput struct {
	CompanyID string
	Label     string
	Color     string
	IsDefault bool
}

// WorkspaceService covers the tenant itself: company settings, the team
// roster with derived roles, and task types.
type WorkspaceService interface {
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	UpdateCompany(ctx context.Context, id string, in UpdateCompanyInput) (*domain.Company, error)

	// ListTeam resolves every member's role against the company admin
	// list before returning.
	ListTeam(ctx context.Context, companyID string) ([]*domain.User, error)
	GetTeamMember(ctx context.Context, companyID, userID string) (*domain.User, error)

	ListTaskTypes(ctx context.Context, companyID string) ([]*domain.TaskType, error)
	CreateTaskType(ctx context.Context, in CreateTaskTypeInput) (*domain.TaskType, error)
	DeleteTaskType(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// UserRepository defines remote-store operations for team members. Role
// derivation needs the company's admin list, so the caller supplies
// adminIDs with every read.
type UserRepository interface {
	ListByCompany(ctx context.Context, companyID string, adminIDs []string) ([]*domain.User, error)
	Get(ctx context.Context, id string, adminIDs []string) (*domain.User, error)
}

// CompanyRepository defines remote-store operations for the tenant record.
type CompanyRepository interface {
	Get(ctx context.Context, id string) (*domain.Company, error)
	Update(ctx context.Context, id string, in UpdateCompanyInput) (*domain.Company, error)
}

// TaskTypeRepository defines remote-store operations for task types.
type TaskTypeRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*domain.TaskType, error)
	Get(ctx context.Context, id string) (*domain.TaskType, error)
	Create(ctx context.Context, in CreateTaskTypeInput) (*domain.TaskType, error)
	SoftDelete(ctx context.Context, id string) error
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

type workspaceService struct {
	companies ports.CompanyRepository
	users     ports.UserRepository
	taskTypes ports.TaskTypeRepository
	log       zerolog.Logger
}

// NewWorkspaceService returns a WorkspaceService implementation.
func NewWorkspaceService(
	companies ports.CompanyRepository,
	users ports.UserRepository,
	taskTypes ports.TaskTypeRepository,
	log zerolog.Logger,
) ports.WorkspaceService {
	return &workspaceService{
		companies: companies,
		users:     users,
		taskTypes: taskTypes,
		log:       log,
	}
}

func (s *workspaceService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.companies.Get(ctx, id)
}

func (s *workspaceService) UpdateCompany(ctx context.Context, id string, in ports.UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.companies.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("company_id", id).Msg("company settings updated")
	return company, nil
}

// ListTeam returns the company roster. Roles are derived against the
// company's admin list, so the company record is loaded first.
func (s *workspaceService) ListTeam(ctx context.Context, companyID string) ([]*domain.User, error) {
	company, err := s.companies.Get(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return s.users.ListByCompany(ctx, companyID, company.AdminIDs)
}

func (s *workspaceService) GetTeamMember(ctx context.Context, companyID, userID string) (*domain.User, error) {
	company, err := s.companies.Get(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return s.users.Get(ctx, userID, company.AdminIDs)
}

func (s *workspaceService) ListTaskTypes(ctx context.Context, companyID string) ([]*domain.TaskType, error) {
	return s.taskTypes.ListByCompany(ctx, companyID)
}

func (s *workspaceService) CreateTaskType(ctx context.Context, in ports.CreateTaskTypeInput) (*domain.TaskType, error) {
	taskType, err := s.taskTypes.Create(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Str("company_id", in.CompanyID).Msg("failed to create task type")
		return nil, err
	}
	s.log.Info().Str("task_type_id", taskType.ID).Str("label", taskType.Label).Msg("task type created")
	return taskType, nil
}

func (s *workspaceService) DeleteTaskType(ctx context.Context, id string) error {
	if err := s.taskTypes.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("task_type_id", id).Msg("task type deleted")
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) List(ctx context.Context, companyID string) ([]*domain.Project, error) {
	return s.repo.List(ctx, companyID)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Create opens a new project. A missing status means the project starts at
// the top of the pipeline, as a request for quote.
func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if in.Status == "" {
		in.Status = domain.ProjectStatusRFQ
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("create project: %w (%s)", domain.ErrInvalidStatus, in.Status)
	}

	project, err := s.repo.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Str("company_id", in.CompanyID).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", project.ID).Str("company_id", project.CompanyID).Msg("project created")
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in ports.UpdateProjectInput) (*domain.Project, error) {
	return s.repo.Update(ctx, id, in)
}

// ChangeStatus moves a project through its pipeline and returns the
// refreshed record.
func (s *ProjectService) ChangeStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("change project status: %w (%s)", domain.ErrInvalidStatus, status)
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", id).Str("status", string(status)).Msg("project status changed")
	return s.repo.Get(ctx, id)
}

func (s *ProjectService) Archive(ctx context.Context, id string) error {
	if err := s.repo.Archive(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project archived")
	return nil
}

// Delete soft-deletes a project; the record stays in the store and simply
// stops appearing in listings.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}

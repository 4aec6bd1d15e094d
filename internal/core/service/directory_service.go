package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

type DirectoryService struct {
	clients    ports.ClientRepository
	subClients ports.SubClientRepository
	logger     zerolog.Logger
}

func NewDirectoryService(clients ports.ClientRepository, subClients ports.SubClientRepository, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{clients: clients, subClients: subClients, logger: logger}
}

func (s *DirectoryService) ListClients(ctx context.Context, companyID string) ([]*domain.Client, error) {
	return s.clients.ListByCompany(ctx, companyID)
}

func (s *DirectoryService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.Get(ctx, id)
}

func (s *DirectoryService) CreateClient(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	client, err := s.clients.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Str("company_id", in.CompanyID).Msg("failed to create client")
		return nil, err
	}
	s.logger.Info().Str("client_id", client.ID).Msg("client created")
	return client, nil
}

func (s *DirectoryService) UpdateClient(ctx context.Context, id string, in ports.UpdateClientInput) (*domain.Client, error) {
	return s.clients.Update(ctx, id, in)
}

func (s *DirectoryService) DeleteClient(ctx context.Context, id string) error {
	if err := s.clients.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("client_id", id).Msg("client deleted")
	return nil
}

func (s *DirectoryService) ListSubClients(ctx context.Context, clientID string) ([]*domain.SubClient, error) {
	return s.subClients.ListByClient(ctx, clientID)
}

// CreateSubClient adds a contact under an existing client. The parent is
// checked first so a typo'd id fails as not-found instead of silently
// creating an orphan.
func (s *DirectoryService) CreateSubClient(ctx context.Context, in ports.CreateSubClientInput) (*domain.SubClient, error) {
	if _, err := s.clients.Get(ctx, in.ClientID); err != nil {
		return nil, fmt.Errorf("create sub-client: %w", err)
	}

	subClient, err := s.subClients.Create(ctx, in)
	if err != nil {
		s.logger.Error().Err(err).Str("client_id", in.ClientID).Msg("failed to create sub-client")
		return nil, err
	}
	s.logger.Info().Str("sub_client_id", subClient.ID).Str("client_id", in.ClientID).Msg("sub-client created")
	return subClient, nil
}

func (s *DirectoryService) UpdateSubClient(ctx context.Context, id string, in ports.UpdateSubClientInput) (*domain.SubClient, error) {
	return s.subClients.Update(ctx, id, in)
}

func (s *DirectoryService) DeleteSubClient(ctx context.Context, id string) error {
	if err := s.subClients.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("sub_client_id", id).Msg("sub-client deleted")
	return nil
}

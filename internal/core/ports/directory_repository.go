package ports

import (
	"context"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// ClientRepository defines remote-store operations for clients.
type ClientRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id string, in UpdateClientInput) (*domain.Client, error)
	SoftDelete(ctx context.Context, id string) error
}

// SubClientRepository defines remote-store operations for sub-clients.
type SubClientRepository interface {
	ListByClient(ctx context.Context, clientID string) ([]*domain.SubClient, error)
	Get(ctx context.Context, id string) (*domain.SubClient, error)
	Create(ctx context.Context, in CreateSubClientInput) (*domain.SubClient, error)
	Update(ctx context.Context, id string, in UpdateSubClientInput) (*domain.SubClient, error)
	SoftDelete(ctx context.Context, id string) error
}

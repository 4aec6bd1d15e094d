package ports

import (
	"context"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// CreateClientInput carries the contact card for a new client.
type CreateClientInput struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	CompanyID string
}

// UpdateClientInput is a partial update; nil fields are left untouched.
type UpdateClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// CreateSubClientInput carries the contact card for a new sub-client.
type CreateSubClientInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	ClientID string
}

// UpdateSubClientInput is a partial update; nil fields are left untouched.
type UpdateSubClientInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// DirectoryService covers the client book: clients and their sub-clients.
type DirectoryService interface {
	ListClients(ctx context.Context, companyID string) ([]*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	CreateClient(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id string, in UpdateClientInput) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error

	ListSubClients(ctx context.Context, clientID string) ([]*domain.SubClient, error)
	CreateSubClient(ctx context.Context, in CreateSubClientInput) (*domain.SubClient, error)
	UpdateSubClient(ctx context.Context, id string, in UpdateSubClientInput) (*domain.SubClient, error)
	DeleteSubClient(ctx context.Context, id string) error
}

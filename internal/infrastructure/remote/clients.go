package remote

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

const (
	objClient    = "obj/client"
	objSubClient = "obj/sub_client"
)

// ClientDTO is a client contact as stored remotely. Phone numbers come
// back as strings or bare numbers depending on how the record was entered.
type ClientDTO struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     FlexString `json:"phone"`
	Address   string     `json:"address"`
	Company   Ref        `json:"company"`
	DeletedAt FlexTime   `json:"deletedAt"`
}

func (d *ClientDTO) ToModel() *domain.Client {
	if d.ID == "" {
		return nil
	}
	return &domain.Client{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone.String(),
		Address:   d.Address,
		CompanyID: d.Company.ID,
		DeletedAt: d.DeletedAt.Time(),
	}
}

// SubClientDTO is a sub-client contact as stored remotely.
type SubClientDTO struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     FlexString `json:"phone"`
	Address   string     `json:"address"`
	Client    Ref        `json:"client"`
	DeletedAt FlexTime   `json:"deletedAt"`
}

func (d *SubClientDTO) ToModel() *domain.SubClient {
	if d.ID == "" {
		return nil
	}
	return &domain.SubClient{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone.String(),
		Address:   d.Address,
		ClientID:  d.Client.ID,
		DeletedAt: d.DeletedAt.Time(),
	}
}

type createClientPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Company string `json:"company" validate:"required"`
}

type updateClientPayload struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type createSubClientPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Client  string `json:"client" validate:"required"`
}

type clientIDAction struct {
	ClientID string `json:"client_id" validate:"required"`
}

type subClientIDAction struct {
	SubClientID string `json:"sub_client_id" validate:"required"`
}

// ClientRepository reads and mutates client contacts through the remote
// store.
type ClientRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewClientRepository(client *Client, logger zerolog.Logger) *ClientRepository {
	return &ClientRepository{
		client: client,
		logger: logger.With().Str("component", "client_repository").Logger(),
	}
}

// ListByCompany returns a company's live clients.
func (r *ClientRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Client, error) {
	cons := []Constraint{
		IsEmpty("deletedAt"),
		Eq("company", companyID),
	}
	raws, err := r.client.fetchAll(ctx, objClient, cons)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	clients, skipped := decodeBatch(raws, (*ClientDTO).ToModel)
	reportSkips(r.logger, "client", skipped)
	return clients, nil
}

// Get retrieves a single client by id.
func (r *ClientRepository) Get(ctx context.Context, id string) (*domain.Client, error) {
	var dto ClientDTO
	if err := r.client.Get(ctx, objClient+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, notFound(err, domain.ErrClientNotFound)
	}
	cl := dto.ToModel()
	if cl == nil {
		reportSkips(r.logger, "client", 1)
		return nil, domain.ErrClientNotFound
	}
	return cl, nil
}

// Create adds a client and returns it freshly converted.
func (r *ClientRepository) Create(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	payload := createClientPayload{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Company: in.CompanyID,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	var created createdPayload
	if err := r.client.Post(ctx, objClient, payload, &created); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return r.Get(ctx, created.ID)
}

// Update applies a partial update and returns the refreshed client.
func (r *ClientRepository) Update(ctx context.Context, id string, in ports.UpdateClientInput) (*domain.Client, error) {
	payload := updateClientPayload{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	if err := r.client.Patch(ctx, objClient+"/"+url.PathEscape(id), payload, nil); err != nil {
		return nil, notFound(err, domain.ErrClientNotFound)
	}
	return r.Get(ctx, id)
}

// SoftDelete marks the client deleted through the delete workflow.
func (r *ClientRepository) SoftDelete(ctx context.Context, id string) error {
	action := clientIDAction{ClientID: id}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/delete-client", action, nil); err != nil {
		return notFound(err, domain.ErrClientNotFound)
	}
	return nil
}

// SubClientRepository reads and mutates sub-client contacts through the
// remote store.
type SubClientRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewSubClientRepository(client *Client, logger zerolog.Logger) *SubClientRepository {
	return &SubClientRepository{
		client: client,
		logger: logger.With().Str("component", "sub_client_repository").Logger(),
	}
}

// ListByClient returns the live sub-clients under one client.
func (r *SubClientRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.SubClient, error) {
	cons := []Constraint{
		IsEmpty("deletedAt"),
		Eq("client", clientID),
	}
	raws, err := r.client.fetchAll(ctx, objSubClient, cons)
	if err != nil {
		return nil, fmt.Errorf("list sub-clients: %w", err)
	}
	subs, skipped := decodeBatch(raws, (*SubClientDTO).ToModel)
	reportSkips(r.logger, "sub_client", skipped)
	return subs, nil
}

// Get retrieves a single sub-client by id.
func (r *SubClientRepository) Get(ctx context.Context, id string) (*domain.SubClient, error) {
	var dto SubClientDTO
	if err := r.client.Get(ctx, objSubClient+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, notFound(err, domain.ErrSubClientNotFound)
	}
	sc := dto.ToModel()
	if sc == nil {
		reportSkips(r.logger, "sub_client", 1)
		return nil, domain.ErrSubClientNotFound
	}
	return sc, nil
}

// Create adds a sub-client and returns it freshly converted.
func (r *SubClientRepository) Create(ctx context.Context, in ports.CreateSubClientInput) (*domain.SubClient, error) {
	payload := createSubClientPayload{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Client:  in.ClientID,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	var created createdPayload
	if err := r.client.Post(ctx, objSubClient, payload, &created); err != nil {
		return nil, fmt.Errorf("create sub-client: %w", err)
	}
	return r.Get(ctx, created.ID)
}

// Update applies a partial update and returns the refreshed sub-client.
func (r *SubClientRepository) Update(ctx context.Context, id string, in ports.UpdateSubClientInput) (*domain.SubClient, error) {
	payload := updateClientPayload{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	if err := r.client.Patch(ctx, objSubClient+"/"+url.PathEscape(id), payload, nil); err != nil {
		return nil, notFound(err, domain.ErrSubClientNotFound)
	}
	return r.Get(ctx, id)
}

// SoftDelete marks the sub-client deleted through the delete workflow.
func (r *SubClientRepository) SoftDelete(ctx context.Context, id string) error {
	action := subClientIDAction{SubClientID: id}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/delete-sub-client", action, nil); err != nil {
		return notFound(err, domain.ErrSubClientNotFound)
	}
	return nil
}

package remote

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

const objCompany = "obj/company"

// CompanyDTO is the tenant record as stored remotely.
type CompanyDTO struct {
	ID                  string     `json:"_id"`
	Name                string     `json:"name"`
	ExternalID          FlexString `json:"external_id"`
	Location            string     `json:"location"`
	Logo                string     `json:"logo"`
	DefaultProjectColor string     `json:"default_project_color"`
	Admins              []string   `json:"admins"`
	SubscriptionStatus  string     `json:"subscription_status"`
	SubscriptionPlan    string     `json:"subscription_plan"`
	DeletedAt           FlexTime   `json:"deletedAt"`
}

// ToModel converts the DTO to the canonical model. A company that never
// configured a project colour gets the stock one. Subscription fields come
// back with whatever casing the billing side wrote, so they are lowered
// here once instead of at every comparison site.
func (d *CompanyDTO) ToModel() *domain.Company {
	if d.ID == "" {
		return nil
	}
	color := domain.DefaultProjectColor
	if d.DefaultProjectColor != "" {
		color = normalizeColor(d.DefaultProjectColor)
	}
	return &domain.Company{
		ID:                  d.ID,
		Name:                d.Name,
		ExternalID:          d.ExternalID.String(),
		Location:            d.Location,
		LogoURL:             d.Logo,
		DefaultProjectColor: color,
		AdminIDs:            orEmpty(d.Admins),
		SubscriptionStatus:  strings.ToLower(d.SubscriptionStatus),
		SubscriptionPlan:    strings.ToLower(d.SubscriptionPlan),
		DeletedAt:           d.DeletedAt.Time(),
	}
}

type updateCompanyPayload struct {
	Name                *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Location            *string  `json:"location,omitempty"`
	Logo                *string  `json:"logo,omitempty"`
	DefaultProjectColor *string  `json:"default_project_color,omitempty"`
	Admins              []string `json:"admins,omitempty"`
}

// CompanyRepository reads and mutates the tenant record through the
// remote store. Companies are provisioned upstream, so there is no
// create or delete here.
type CompanyRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewCompanyRepository(client *Client, logger zerolog.Logger) *CompanyRepository {
	return &CompanyRepository{
		client: client,
		logger: logger.With().Str("component", "company_repository").Logger(),
	}
}

// Get retrieves the tenant record by id.
func (r *CompanyRepository) Get(ctx context.Context, id string) (*domain.Company, error) {
	var dto CompanyDTO
	if err := r.client.Get(ctx, objCompany+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, notFound(err, domain.ErrCompanyNotFound)
	}
	co := dto.ToModel()
	if co == nil {
		reportSkips(r.logger, "company", 1)
		return nil, domain.ErrCompanyNotFound
	}
	return co, nil
}

// Update applies a partial update and returns the refreshed record.
func (r *CompanyRepository) Update(ctx context.Context, id string, in ports.UpdateCompanyInput) (*domain.Company, error) {
	payload := updateCompanyPayload{
		Name:                in.Name,
		Location:            in.Location,
		Logo:                in.LogoURL,
		DefaultProjectColor: in.DefaultProjectColor,
		Admins:              in.AdminIDs,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	if err := r.client.Patch(ctx, objCompany+"/"+url.PathEscape(id), payload, nil); err != nil {
		return nil, notFound(err, domain.ErrCompanyNotFound)
	}
	return r.Get(ctx, id)
}

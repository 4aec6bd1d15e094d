package remote

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
)

const objUser = "obj/user"

// employeeTypeRoles maps the store's free-text employee types onto
// canonical roles. Anything not listed falls back to field crew, the
// least-privileged role.
var employeeTypeRoles = map[string]domain.Role{
	"Admin":       domain.RoleAdmin,
	"Office Crew": domain.RoleOfficeCrew,
	"Field Crew":  domain.RoleFieldCrew,
}

// deriveRole resolves a user's role. Membership in the company's admin
// list wins over whatever employee type the record carries.
func deriveRole(userID, employeeType string, adminIDs []string) domain.Role {
	for _, id := range adminIDs {
		if id != "" && id == userID {
			return domain.RoleAdmin
		}
	}
	if role, ok := employeeTypeRoles[employeeType]; ok {
		return role
	}
	return domain.RoleFieldCrew
}

// UserDTO is a team member as stored remotely.
type UserDTO struct {
	ID           string     `json:"_id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email"`
	Phone        FlexString `json:"phone"`
	Company      Ref        `json:"company"`
	EmployeeType string     `json:"employee_type"`
	Avatar       string     `json:"avatar"`
	DeletedAt    FlexTime   `json:"deletedAt"`
}

// ToModel converts the DTO to the canonical model, deriving the role from
// the company's admin list and the record's employee type. Returns nil
// when the record has no id.
func (d *UserDTO) ToModel(adminIDs []string) *domain.User {
	if d.ID == "" {
		return nil
	}
	role := deriveRole(d.ID, d.EmployeeType, adminIDs)
	return &domain.User{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone.String(),
		CompanyID: d.Company.ID,
		Role:      role,
		IsAdmin:   role == domain.RoleAdmin,
		AvatarURL: d.Avatar,
		DeletedAt: d.DeletedAt.Time(),
	}
}

// UserRepository reads team members through the remote store. Users are
// managed by the upstream account system, so there are no writes here.
type UserRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewUserRepository(client *Client, logger zerolog.Logger) *UserRepository {
	return &UserRepository{
		client: client,
		logger: logger.With().Str("component", "user_repository").Logger(),
	}
}

// ListByCompany returns a company's live team members with roles derived
// against the supplied admin list.
func (r *UserRepository) ListByCompany(ctx context.Context, companyID string, adminIDs []string) ([]*domain.User, error) {
	cons := []Constraint{
		IsEmpty("deletedAt"),
		Eq("company", companyID),
	}
	raws, err := r.client.fetchAll(ctx, objUser, cons)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users, skipped := decodeBatch(raws, func(d *UserDTO) *domain.User {
		return d.ToModel(adminIDs)
	})
	reportSkips(r.logger, "user", skipped)
	return users, nil
}

// Get retrieves a single team member by id.
func (r *UserRepository) Get(ctx context.Context, id string, adminIDs []string) (*domain.User, error) {
	var dto UserDTO
	if err := r.client.Get(ctx, objUser+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	u := dto.ToModel(adminIDs)
	if u == nil {
		reportSkips(r.logger, "user", 1)
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

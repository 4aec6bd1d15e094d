package domain

import "time"

// DefaultProjectColor is the project colour applied when a company has not
// configured one of its own.
const DefaultProjectColor = "#546e7a"

// Company is the tenant record every other entity hangs off.
type Company struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	ExternalID          string     `json:"external_id,omitempty"`
	Location            string     `json:"location,omitempty"`
	LogoURL             string     `json:"logo_url,omitempty"`
	DefaultProjectColor string     `json:"default_project_color"`
	AdminIDs            []string   `json:"admin_ids"`
	SubscriptionStatus  string     `json:"subscription_status,omitempty"`
	SubscriptionPlan    string     `json:"subscription_plan,omitempty"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty"`
}

// IsAdminUser reports whether the given user id is in the company's admin
// list, the authoritative source for role derivation.
func (c *Company) IsAdminUser(id string) bool {
	for _, adminID := range c.AdminIDs {
		if adminID == id {
			return true
		}
	}
	return false
}

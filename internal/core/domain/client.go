package domain

import "time"

// Client is a customer of a company.
type Client struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	CompanyID string     `json:"company_id"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// SubClient is a secondary contact or site under a client, e.g. a property
// manager's individual buildings.
type SubClient struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	ClientID  string     `json:"client_id"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

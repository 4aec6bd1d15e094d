package domain

import "time"

// TaskType is a company-defined category for tasks. New tasks of a type
// inherit its colour unless one is set explicitly.
type TaskType struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Label     string     `json:"label"`
	Color     string     `json:"color"`
	IsDefault bool       `json:"is_default"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

package domain

import "time"

// ProjectStatus represents the lifecycle state of a project, from first
// request for quote through archival.
type ProjectStatus string

const (
	ProjectStatusRFQ        ProjectStatus = "RFQ"
	ProjectStatusEstimated  ProjectStatus = "Estimated"
	ProjectStatusAccepted   ProjectStatus = "Accepted"
	ProjectStatusInProgress ProjectStatus = "InProgress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusClosed     ProjectStatus = "Closed"
	ProjectStatusArchived   ProjectStatus = "Archived"
)

// Valid reports whether s is one of the canonical project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusRFQ, ProjectStatusEstimated, ProjectStatusAccepted,
		ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusClosed,
		ProjectStatusArchived:
		return true
	}
	return false
}

// Project is a job a company runs for a client. It is the unit the
// dashboard's boards, cards and calendars are built around.
type Project struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Address          string        `json:"address,omitempty"`
	ClientID         string        `json:"client_id,omitempty"`
	ClientName       string        `json:"client_name,omitempty"`
	CompanyID        string        `json:"company_id"`
	Status           ProjectStatus `json:"status"`
	StartDate        *time.Time    `json:"start_date,omitempty"`
	Completion       int           `json:"completion"`
	TaskIDs          []string      `json:"task_ids"`
	CalendarEventIDs []string      `json:"calendar_event_ids"`
	ImageURLs        []string      `json:"image_urls"`
	AllDay           bool          `json:"all_day"`
	Duration         int           `json:"duration"`
	DeletedAt        *time.Time    `json:"deleted_at,omitempty"`
}

// Deleted reports whether the project carries a soft-delete marker.
func (p *Project) Deleted() bool {
	return p.DeletedAt != nil
}

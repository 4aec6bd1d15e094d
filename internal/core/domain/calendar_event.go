package domain

import "time"

// DefaultEventTitle is applied when a calendar record arrives without one.
const DefaultEventTitle = "Untitled event"

// CalendarEvent is a scheduled block on the company calendar. StartDate and
// EndDate are always set, and StartDate <= EndDate holds for every event
// that passed conversion.
type CalendarEvent struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Color         string     `json:"color"`
	CompanyID     string     `json:"company_id"`
	ProjectID     string     `json:"project_id,omitempty"`
	TaskID        string     `json:"task_id,omitempty"`
	Duration      int        `json:"duration"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       time.Time  `json:"end_date"`
	TeamMemberIDs []string   `json:"team_member_ids"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

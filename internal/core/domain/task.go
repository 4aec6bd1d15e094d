package domain

import "time"

// TaskStatus represents the scheduling state of a task.
type TaskStatus string

const (
	TaskStatusBooked     TaskStatus = "Booked"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusCancelled  TaskStatus = "Cancelled"
)

// taskStatusAliases maps legacy statuses the remote store still emits onto
// their canonical replacement. Kept as data so a new alias is a one-line
// addition, not a code change.
var taskStatusAliases = map[string]TaskStatus{
	"Scheduled": TaskStatusBooked,
}

// ParseTaskStatus resolves a raw status string through the alias table.
// Statuses without an alias pass through unchanged.
func ParseTaskStatus(raw string) TaskStatus {
	if canonical, ok := taskStatusAliases[raw]; ok {
		return canonical
	}
	return TaskStatus(raw)
}

// Valid reports whether s is one of the canonical task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusBooked, TaskStatusInProgress, TaskStatusCompleted,
		TaskStatusCancelled:
		return true
	}
	return false
}

// Task is a unit of scheduled work inside a project. Its colour is either
// set directly or inherited from its task type at creation.
type Task struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"project_id"`
	CalendarEventID string     `json:"calendar_event_id,omitempty"`
	CompanyID       string     `json:"company_id"`
	Status          TaskStatus `json:"status"`
	Color           string     `json:"color,omitempty"`
	TaskIndex       int        `json:"task_index"`
	Notes           string     `json:"notes,omitempty"`
	TeamMemberIDs   []string   `json:"team_member_ids"`
	TaskTypeID      string     `json:"task_type_id,omitempty"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

package handler

import "github.com/crewbase/opsdash/internal/core/domain"

// --- Request / Response types ---

type createTaskRequest struct {
	ProjectID       string   `json:"project_id" validate:"required"`
	Status          string   `json:"status"`
	Color           string   `json:"color"`
	TaskIndex       int      `json:"task_index" validate:"omitempty,min=0"`
	Notes           string   `json:"notes"`
	TeamMemberIDs   []string `json:"team_member_ids"`
	TaskTypeID      string   `json:"task_type_id"`
	CalendarEventID string   `json:"calendar_event_id"`
}

type updateTaskRequest struct {
	Color           *string  `json:"color"`
	TaskIndex       *int     `json:"task_index" validate:"omitempty,min=0"`
	Notes           *string  `json:"notes"`
	TeamMemberIDs   []string `json:"team_member_ids"`
	TaskTypeID      *string  `json:"task_type_id"`
	CalendarEventID *string  `json:"calendar_event_id"`
}

type taskListResponse struct {
	Data  []*domain.Task `json:"data"`
	Count int            `json:"count"`
}

package handler

import (
	"time"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// --- Request / Response types ---

type createEventRequest struct {
	Title         string    `json:"title"      validate:"required"`
	Color         string    `json:"color"`
	ProjectID     string    `json:"project_id"`
	TaskID        string    `json:"task_id"`
	Duration      int       `json:"duration"   validate:"omitempty,min=0"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date"   validate:"required"`
	TeamMemberIDs []string  `json:"team_member_ids"`
}

type updateEventRequest struct {
	Title         *string    `json:"title"`
	Color         *string    `json:"color"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Duration      *int       `json:"duration" validate:"omitempty,min=0"`
	TeamMemberIDs []string   `json:"team_member_ids"`
}

// eventResponse decorates an event with the display fields the dashboard
// derives from the schedule. Overdue is keyed off EndDate, so an event
// still in progress is not overdue.
type eventResponse struct {
	*domain.CalendarEvent
	RelativeStart string `json:"relative_start"`
	Overdue       bool   `json:"overdue"`
}

type eventListResponse struct {
	Data  []eventResponse `json:"data"`
	Count int             `json:"count"`
}

func newEventResponse(event *domain.CalendarEvent, now time.Time) eventResponse {
	return eventResponse{
		CalendarEvent: event,
		RelativeStart: domain.FormatRelativeTime(event.StartDate, now),
		Overdue:       domain.IsOverdue(event.EndDate, now),
	}
}

func newEventListResponse(events []*domain.CalendarEvent, now time.Time) eventListResponse {
	data := make([]eventResponse, 0, len(events))
	for _, event := range events {
		data = append(data, newEventResponse(event, now))
	}
	return eventListResponse{Data: data, Count: len(data)}
}

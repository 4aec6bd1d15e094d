package handler

import (
	"time"

	"github.com/crewbase/opsdash/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type createProjectRequest struct {
	Name       string     `json:"name"        validate:"required"`
	Address    string     `json:"address"`
	ClientID   string     `json:"client_id"`
	ClientName string     `json:"client_name"`
	Status     string     `json:"status"`
	StartDate  *time.Time `json:"start_date"`
	AllDay     bool       `json:"all_day"`
	Duration   int        `json:"duration"    validate:"omitempty,min=0"`
}

type updateProjectRequest struct {
	Name       *string    `json:"name"`
	Address    *string    `json:"address"`
	ClientName *string    `json:"client_name"`
	StartDate  *time.Time `json:"start_date"`
	Completion *int       `json:"completion" validate:"omitempty,min=0,max=100"`
	AllDay     *bool      `json:"all_day"`
	Duration   *int       `json:"duration"   validate:"omitempty,min=0"`
}

// changeStatusRequest is shared by the project and task status endpoints.
// The status vocabulary is checked by the service, not here, so the two
// enumerations stay defined in exactly one place each.
type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Domain models carry the dashboard's JSON contract directly; list
// endpoints only add a thin envelope around them.

type projectListResponse struct {
	Data  []*domain.Project `json:"data"`
	Count int               `json:"count"`
}

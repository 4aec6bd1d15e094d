package handler

import "github.com/crewbase/opsdash/internal/core/domain"

// --- Request / Response types ---

type updateCompanyRequest struct {
	Name                *string  `json:"name"`
	Location            *string  `json:"location"`
	LogoURL             *string  `json:"logo_url"`
	DefaultProjectColor *string  `json:"default_project_color"`
	AdminIDs            []string `json:"admin_ids"`
}

type createTaskTypeRequest struct {
	Label     string `json:"label" validate:"required"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
}

type teamListResponse struct {
	Data  []*domain.User `json:"data"`
	Count int            `json:"count"`
}

type taskTypeListResponse struct {
	Data  []*domain.TaskType `json:"data"`
	Count int                `json:"count"`
}

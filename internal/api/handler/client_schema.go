package handler

import "github.com/crewbase/opsdash/internal/core/domain"

// --- Request / Response types ---

type createClientRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// updateContactRequest is shared by client and sub-client updates; the two
// records carry the same contact card.
type updateContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type createSubClientRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type clientListResponse struct {
	Data  []*domain.Client `json:"data"`
	Count int              `json:"count"`
}

type subClientListResponse struct {
	Data  []*domain.SubClient `json:"data"`
	Count int                 `json:"count"`
}

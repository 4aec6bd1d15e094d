package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/opsdash/internal/core/ports"
)

// ClientHandler handles the client book: clients and the sub-clients
// nested under them.
type ClientHandler struct {
	service ports.DirectoryService
}

// NewClientHandler creates a ClientHandler backed by the given service.
func NewClientHandler(service ports.DirectoryService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /v1/clients — every live client of the caller's company.
//
// @Summary      List the company's clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clientListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	clients, err := h.service.ListClients(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientListResponse{Data: clients, Count: len(clients)})
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /v1/clients.
//
// @Summary      Add a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Contact card"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		CompanyID: companyID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update handles PATCH /v1/clients/:id.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Client id"
// @Param        body  body      updateContactRequest  true  "Fields to change"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  errorResponse
// @Router       /v1/clients/{id} [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	client, err := h.service.UpdateClient(c.Request().Context(), c.Param("id"), ports.UpdateClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /v1/clients/:id — a soft delete.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSubClients handles GET /v1/clients/:id/sub-clients.
//
// @Summary      List a client's sub-clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  subClientListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/clients/{id}/sub-clients [get]
func (h *ClientHandler) ListSubClients(c echo.Context) error {
	subClients, err := h.service.ListSubClients(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subClientListResponse{Data: subClients, Count: len(subClients)})
}

// CreateSubClient handles POST /v1/clients/:id/sub-clients. The parent
// client is checked before the record is created, so a typo'd id comes
// back as 404 instead of a silent orphan.
//
// @Summary      Add a sub-client under a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Parent client id"
// @Param        body  body      createSubClientRequest  true  "Contact card"
// @Success      201   {object}  domain.SubClient
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id}/sub-clients [post]
func (h *ClientHandler) CreateSubClient(c echo.Context) error {
	var req createSubClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	subClient, err := h.service.CreateSubClient(c.Request().Context(), ports.CreateSubClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		ClientID: c.Param("id"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, subClient)
}

// UpdateSubClient handles PATCH /v1/sub-clients/:id.
//
// @Summary      Update a sub-client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Sub-client id"
// @Param        body  body      updateContactRequest  true  "Fields to change"
// @Success      200   {object}  domain.SubClient
// @Failure      404   {object}  errorResponse
// @Router       /v1/sub-clients/{id} [patch]
func (h *ClientHandler) UpdateSubClient(c echo.Context) error {
	var req updateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	subClient, err := h.service.UpdateSubClient(c.Request().Context(), c.Param("id"), ports.UpdateSubClientInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subClient)
}

// DeleteSubClient handles DELETE /v1/sub-clients/:id — a soft delete.
//
// @Summary      Delete a sub-client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Sub-client id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/sub-clients/{id} [delete]
func (h *ClientHandler) DeleteSubClient(c echo.Context) error {
	if err := h.service.DeleteSubClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/opsdash/internal/core/ports"
)

// WorkspaceHandler handles the tenant's own surface: company settings, the
// team roster and task types. All routes here are scoped to the caller's
// company; there is no cross-tenant access.
type WorkspaceHandler struct {
	service ports.WorkspaceService
}

// NewWorkspaceHandler creates a WorkspaceHandler backed by the given service.
func NewWorkspaceHandler(service ports.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// GetCompany handles GET /v1/company — the caller's own company record.
//
// @Summary      Get the caller's company
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Company
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/company [get]
func (h *WorkspaceHandler) GetCompany(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	company, err := h.service.GetCompany(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// UpdateCompany handles PATCH /v1/company. The router restricts this to
// admins; changing the admin list or the default colour reshapes the
// whole workspace.
//
// @Summary      Update company settings
// @Tags         workspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCompanyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Company
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/company [patch]
func (h *WorkspaceHandler) UpdateCompany(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	company, err := h.service.UpdateCompany(c.Request().Context(), companyID, ports.UpdateCompanyInput{
		Name:                req.Name,
		Location:            req.Location,
		LogoURL:             req.LogoURL,
		DefaultProjectColor: req.DefaultProjectColor,
		AdminIDs:            req.AdminIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// ListTeam handles GET /v1/team — the company roster with each member's
// role already resolved against the admin list.
//
// @Summary      List the company's team
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  teamListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/team [get]
func (h *WorkspaceHandler) ListTeam(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	team, err := h.service.ListTeam(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teamListResponse{Data: team, Count: len(team)})
}

// GetTeamMember handles GET /v1/team/:id.
//
// @Summary      Get a team member by id
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /v1/team/{id} [get]
func (h *WorkspaceHandler) GetTeamMember(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	member, err := h.service.GetTeamMember(c.Request().Context(), companyID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// ListTaskTypes handles GET /v1/task-types.
//
// @Summary      List the company's task types
// @Tags         workspace
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  taskTypeListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/task-types [get]
func (h *WorkspaceHandler) ListTaskTypes(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	taskTypes, err := h.service.ListTaskTypes(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskTypeListResponse{Data: taskTypes, Count: len(taskTypes)})
}

// CreateTaskType handles POST /v1/task-types.
//
// @Summary      Add a task type
// @Tags         workspace
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskTypeRequest  true  "Task type details"
// @Success      201   {object}  domain.TaskType
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/task-types [post]
func (h *WorkspaceHandler) CreateTaskType(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createTaskTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	taskType, err := h.service.CreateTaskType(c.Request().Context(), ports.CreateTaskTypeInput{
		CompanyID: companyID,
		Label:     req.Label,
		Color:     req.Color,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, taskType)
}

// DeleteTaskType handles DELETE /v1/task-types/:id — a soft delete.
// Existing tasks keep the colour they inherited.
//
// @Summary      Delete a task type
// @Tags         workspace
// @Security     BearerAuth
// @Param        id  path  string  true  "Task type id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/task-types/{id} [delete]
func (h *WorkspaceHandler) DeleteTaskType(c echo.Context) error {
	if err := h.service.DeleteTaskType(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

// ProjectHandler handles project CRUD and lifecycle endpoints.
type ProjectHandler struct {
	service ports.ProjectService
}

// NewProjectHandler creates a ProjectHandler backed by the given service.
func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /v1/projects — every live project in the caller's company.
//
// @Summary      List the company's projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  projectListResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), companyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectListResponse{Data: projects, Count: len(projects)})
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  domain.Project
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Create handles POST /v1/projects.
//
// @Summary      Open a new project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:       req.Name,
		Address:    req.Address,
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		CompanyID:  companyID,
		Status:     domain.ProjectStatus(req.Status),
		StartDate:  req.StartDate,
		AllDay:     req.AllDay,
		Duration:   req.Duration,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Update handles PATCH /v1/projects/:id — a partial update; absent fields
// are left untouched. Status is deliberately not accepted here, it only
// moves through the status endpoint.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to change"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/projects/{id} [patch]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Name:       req.Name,
		Address:    req.Address,
		ClientName: req.ClientName,
		StartDate:  req.StartDate,
		Completion: req.Completion,
		AllDay:     req.AllDay,
		Duration:   req.Duration,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// ChangeStatus handles POST /v1/projects/:id/status and returns the
// refreshed project after the store has run its workflow.
//
// @Summary      Move a project through its lifecycle
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Project id"
// @Param        body  body      changeStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/projects/{id}/status [post]
func (h *ProjectHandler) ChangeStatus(c echo.Context) error {
	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	project, err := h.service.ChangeStatus(c.Request().Context(), c.Param("id"), domain.ProjectStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Archive handles POST /v1/projects/:id/archive.
//
// @Summary      Archive a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id}/archive [post]
func (h *ProjectHandler) Archive(c echo.Context) error {
	if err := h.service.Archive(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/projects/:id — a soft delete; the record stays
// in the store with a deletion marker.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  string  true  "Project id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

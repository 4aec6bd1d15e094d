package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

// TaskHandler handles task endpoints. Tasks always live under a project,
// which is why the list route hangs off the projects resource.
type TaskHandler struct {
	service ports.ScheduleService
}

// NewTaskHandler creates a TaskHandler backed by the given service.
func NewTaskHandler(service ports.ScheduleService) *TaskHandler {
	return &TaskHandler{service: service}
}

// ListForProject handles GET /v1/projects/:id/tasks.
//
// @Summary      List a project's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  taskListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/projects/{id}/tasks [get]
func (h *TaskHandler) ListForProject(c echo.Context) error {
	tasks, err := h.service.ListProjectTasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskListResponse{Data: tasks, Count: len(tasks)})
}

// Get handles GET /v1/tasks/:id.
//
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task id"
// @Success      200  {object}  domain.Task
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.service.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Create handles POST /v1/tasks.
//
// @Summary      Add a task to a project
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		ProjectID:       req.ProjectID,
		CompanyID:       companyID,
		Status:          domain.ParseTaskStatus(req.Status),
		Color:           req.Color,
		TaskIndex:       req.TaskIndex,
		Notes:           req.Notes,
		TeamMemberIDs:   req.TeamMemberIDs,
		TaskTypeID:      req.TaskTypeID,
		CalendarEventID: req.CalendarEventID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// Update handles PATCH /v1/tasks/:id — a partial update; absent fields are
// left untouched.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task id"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.UpdateTask(c.Request().Context(), c.Param("id"), ports.UpdateTaskInput{
		Color:           req.Color,
		TaskIndex:       req.TaskIndex,
		Notes:           req.Notes,
		TeamMemberIDs:   req.TeamMemberIDs,
		TaskTypeID:      req.TaskTypeID,
		CalendarEventID: req.CalendarEventID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// ChangeStatus handles POST /v1/tasks/:id/status and returns the refreshed
// task after the store has run its workflow.
//
// @Summary      Move a task through its lifecycle
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Task id"
// @Param        body  body      changeStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks/{id}/status [post]
func (h *TaskHandler) ChangeStatus(c echo.Context) error {
	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	task, err := h.service.ChangeTaskStatus(c.Request().Context(), c.Param("id"), domain.ParseTaskStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /v1/tasks/:id — a soft delete.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

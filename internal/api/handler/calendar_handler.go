package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/opsdash/internal/core/ports"
)

// CalendarHandler handles calendar event endpoints.
type CalendarHandler struct {
	service ports.ScheduleService
}

// NewCalendarHandler creates a CalendarHandler backed by the given service.
func NewCalendarHandler(service ports.ScheduleService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// List handles GET /v1/calendar?from=&to= and returns every event of the
// caller's company that overlaps the window. Either bound may be omitted
// for an open-ended window.
//
// @Summary      List calendar events in a window
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        to    query     string  false  "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success      200   {object}  eventListResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/calendar [get]
func (h *CalendarHandler) List(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	from, err := parseTimeParam(c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid 'from' parameter")
	}
	to, err := parseTimeParam(c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid 'to' parameter")
	}

	events, err := h.service.ListEvents(c.Request().Context(), companyID, from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newEventListResponse(events, time.Now()))
}

// Get handles GET /v1/calendar/:id.
//
// @Summary      Get a calendar event by id
// @Tags         calendar
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  eventResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/calendar/{id} [get]
func (h *CalendarHandler) Get(c echo.Context) error {
	event, err := h.service.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newEventResponse(event, time.Now()))
}

// Create handles POST /v1/calendar.
//
// @Summary      Put an event on the calendar
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  eventResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/calendar [post]
func (h *CalendarHandler) Create(c echo.Context) error {
	_, companyID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.CreateEvent(c.Request().Context(), ports.CreateEventInput{
		Title:         req.Title,
		Color:         req.Color,
		CompanyID:     companyID,
		ProjectID:     req.ProjectID,
		TaskID:        req.TaskID,
		Duration:      req.Duration,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TeamMemberIDs: req.TeamMemberIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newEventResponse(event, time.Now()))
}

// Update handles PATCH /v1/calendar/:id — a partial update; absent fields
// are left untouched.
//
// @Summary      Update a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event id"
// @Param        body  body      updateEventRequest  true  "Fields to change"
// @Success      200   {object}  eventResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/calendar/{id} [patch]
func (h *CalendarHandler) Update(c echo.Context) error {
	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.service.UpdateEvent(c.Request().Context(), c.Param("id"), ports.UpdateEventInput{
		Title:         req.Title,
		Color:         req.Color,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Duration:      req.Duration,
		TeamMemberIDs: req.TeamMemberIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newEventResponse(event, time.Now()))
}

// Delete handles DELETE /v1/calendar/:id — a soft delete.
//
// @Summary      Delete a calendar event
// @Tags         calendar
// @Security     BearerAuth
// @Param        id  path  string  true  "Event id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/calendar/{id} [delete]
func (h *CalendarHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// parseTimeParam parses an optional RFC 3339 or date-only query parameter.
// An absent value yields the zero time, which the service treats as an
// open edge of the window.
func parseTimeParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

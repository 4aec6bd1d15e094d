package remote

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

const objCalendarEvent = "obj/calendar_event"

// CalendarEventDTO is a calendar event as stored remotely. The date keys
// carry spaces; that is how the store spells them.
type CalendarEventDTO struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Color       string   `json:"color"`
	Company     Ref      `json:"company"`
	Project     Ref      `json:"project"`
	Task        Ref      `json:"task"`
	Duration    float64  `json:"duration"`
	StartDate   FlexTime `json:"Start Date"`
	EndDate     FlexTime `json:"End Date"`
	TeamMembers []string `json:"team_members"`
	DeletedAt   FlexTime `json:"deletedAt"`
}

// ToModel converts the DTO to the canonical model. Events are only usable
// when they can be placed on a calendar, so a missing id or an unparseable
// start or end drops the whole record. Inverted ranges are swapped rather
// than dropped.
func (d *CalendarEventDTO) ToModel() *domain.CalendarEvent {
	if d.ID == "" {
		return nil
	}
	start, end := d.StartDate.Time(), d.EndDate.Time()
	if start == nil || end == nil {
		return nil
	}
	if end.Before(*start) {
		start, end = end, start
	}
	title := d.Title
	if title == "" {
		title = domain.DefaultEventTitle
	}
	return &domain.CalendarEvent{
		ID:            d.ID,
		Title:         title,
		Color:         normalizeColor(d.Color),
		CompanyID:     d.Company.ID,
		ProjectID:     d.Project.ID,
		TaskID:        d.Task.ID,
		Duration:      int(d.Duration),
		StartDate:     *start,
		EndDate:       *end,
		TeamMemberIDs: orEmpty(d.TeamMembers),
		DeletedAt:     d.DeletedAt.Time(),
	}
}

type createEventPayload struct {
	Title       string    `json:"title" validate:"required"`
	Color       string    `json:"color,omitempty"`
	Company     string    `json:"company" validate:"required"`
	Project     string    `json:"project,omitempty"`
	Task        string    `json:"task,omitempty"`
	Duration    int       `json:"duration,omitempty" validate:"omitempty,min=0"`
	StartDate   time.Time `json:"Start Date" validate:"required"`
	EndDate     time.Time `json:"End Date" validate:"required,gtefield=StartDate"`
	TeamMembers []string  `json:"team_members,omitempty"`
}

type updateEventPayload struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Color       *string    `json:"color,omitempty"`
	Duration    *int       `json:"duration,omitempty" validate:"omitempty,min=0"`
	StartDate   *time.Time `json:"Start Date,omitempty"`
	EndDate     *time.Time `json:"End Date,omitempty"`
	TeamMembers []string   `json:"team_members,omitempty"`
}

type eventIDAction struct {
	EventID string `json:"event_id" validate:"required"`
}

// CalendarEventRepository reads and mutates calendar events through the
// remote store.
type CalendarEventRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewCalendarEventRepository(client *Client, logger zerolog.Logger) *CalendarEventRepository {
	return &CalendarEventRepository{
		client: client,
		logger: logger.With().Str("component", "calendar_event_repository").Logger(),
	}
}

// ListRange returns live events overlapping the [from, to) window. A zero
// bound leaves that side of the window open.
func (r *CalendarEventRepository) ListRange(ctx context.Context, companyID string, from, to time.Time) ([]*domain.CalendarEvent, error) {
	cons := []Constraint{IsEmpty("deletedAt")}
	if companyID != "" {
		cons = append(cons, Eq("company", companyID))
	}
	if !from.IsZero() {
		cons = append(cons, GreaterThan("End Date", from))
	}
	if !to.IsZero() {
		cons = append(cons, LessThan("Start Date", to))
	}
	raws, err := r.client.fetchAll(ctx, objCalendarEvent, cons)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	events, skipped := decodeBatch(raws, (*CalendarEventDTO).ToModel)
	reportSkips(r.logger, "calendar_event", skipped)
	return events, nil
}

// Get retrieves a single event by id.
func (r *CalendarEventRepository) Get(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	var dto CalendarEventDTO
	if err := r.client.Get(ctx, objCalendarEvent+"/"+url.PathEscape(id), &dto); err != nil {
		return nil, notFound(err, domain.ErrEventNotFound)
	}
	ev := dto.ToModel()
	if ev == nil {
		reportSkips(r.logger, "calendar_event", 1)
		return nil, domain.ErrEventNotFound
	}
	return ev, nil
}

// Create schedules a new event and returns it freshly converted.
func (r *CalendarEventRepository) Create(ctx context.Context, in ports.CreateEventInput) (*domain.CalendarEvent, error) {
	payload := createEventPayload{
		Title:       in.Title,
		Color:       in.Color,
		Company:     in.CompanyID,
		Project:     in.ProjectID,
		Task:        in.TaskID,
		Duration:    in.Duration,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TeamMembers: in.TeamMemberIDs,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	var created createdPayload
	if err := r.client.Post(ctx, objCalendarEvent, payload, &created); err != nil {
		return nil, fmt.Errorf("create calendar event: %w", err)
	}
	return r.Get(ctx, created.ID)
}

// Update applies a partial update and returns the refreshed event.
func (r *CalendarEventRepository) Update(ctx context.Context, id string, in ports.UpdateEventInput) (*domain.CalendarEvent, error) {
	payload := updateEventPayload{
		Title:       in.Title,
		Color:       in.Color,
		Duration:    in.Duration,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		TeamMembers: in.TeamMemberIDs,
	}
	if err := checkPayload(payload); err != nil {
		return nil, err
	}
	if err := r.client.Patch(ctx, objCalendarEvent+"/"+url.PathEscape(id), payload, nil); err != nil {
		return nil, notFound(err, domain.ErrEventNotFound)
	}
	return r.Get(ctx, id)
}

// SoftDelete marks the event deleted through the delete workflow.
func (r *CalendarEventRepository) SoftDelete(ctx context.Context, id string) error {
	action := eventIDAction{EventID: id}
	if err := checkPayload(action); err != nil {
		return err
	}
	if err := r.client.Post(ctx, "wf/delete-calendar-event", action, nil); err != nil {
		return notFound(err, domain.ErrEventNotFound)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/ports"
)

type scheduleService struct {
	tasks     ports.TaskRepository
	events    ports.CalendarEventRepository
	taskTypes ports.TaskTypeRepository
	companies ports.CompanyRepository
	log       zerolog.Logger
}

// NewScheduleService returns a ScheduleService implementation. Task types
// and the company record are consulted for colour defaults on creation.
func NewScheduleService(
	tasks ports.TaskRepository,
	events ports.CalendarEventRepository,
	taskTypes ports.TaskTypeRepository,
	companies ports.CompanyRepository,
	log zerolog.Logger,
) ports.ScheduleService {
	return &scheduleService{
		tasks:     tasks,
		events:    events,
		taskTypes: taskTypes,
		companies: companies,
		log:       log,
	}
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

func (s *scheduleService) ListProjectTasks(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *scheduleService) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.Get(ctx, id)
}

// CreateTask adds a task to a project. A missing status means Booked, and
// a missing colour is inherited from the task type when one is set.
func (s *scheduleService) CreateTask(ctx context.Context, in ports.CreateTaskInput) (*domain.Task, error) {
	if in.Status == "" {
		in.Status = domain.TaskStatusBooked
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("create task: %w (%s)", domain.ErrInvalidStatus, in.Status)
	}

	if in.Color == "" && in.TaskTypeID != "" {
		taskType, err := s.taskTypes.Get(ctx, in.TaskTypeID)
		if err != nil {
			// Colour is cosmetic; a vanished task type must not block
			// the task itself.
			s.log.Warn().Err(err).Str("task_type_id", in.TaskTypeID).Msg("could not inherit task type colour")
		} else {
			in.Color = taskType.Color
		}
	}

	task, err := s.tasks.Create(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", in.ProjectID).Msg("failed to create task")
		return nil, err
	}

	s.log.Info().Str("task_id", task.ID).Str("project_id", task.ProjectID).Msg("task created")
	return task, nil
}

func (s *scheduleService) UpdateTask(ctx context.Context, id string, in ports.UpdateTaskInput) (*domain.Task, error) {
	return s.tasks.Update(ctx, id, in)
}

func (s *scheduleService) ChangeTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("change task status: %w (%s)", domain.ErrInvalidStatus, status)
	}
	if err := s.tasks.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", id).Str("status", string(status)).Msg("task status changed")
	return s.tasks.Get(ctx, id)
}

func (s *scheduleService) DeleteTask(ctx context.Context, id string) error {
	if err := s.tasks.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

// ---------------------------------------------------------------------------
// Calendar events
// ---------------------------------------------------------------------------

func (s *scheduleService) ListEvents(ctx context.Context, companyID string, from, to time.Time) ([]*domain.CalendarEvent, error) {
	return s.events.ListRange(ctx, companyID, from, to)
}

func (s *scheduleService) GetEvent(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	return s.events.Get(ctx, id)
}

// CreateEvent puts an event on the calendar. A missing colour falls back
// to the company's default project colour.
func (s *scheduleService) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*domain.CalendarEvent, error) {
	if in.Color == "" && in.CompanyID != "" {
		company, err := s.companies.Get(ctx, in.CompanyID)
		if err != nil {
			s.log.Warn().Err(err).Str("company_id", in.CompanyID).Msg("could not load company colour default")
		} else {
			in.Color = company.DefaultProjectColor
		}
	}

	event, err := s.events.Create(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Str("company_id", in.CompanyID).Msg("failed to create calendar event")
		return nil, err
	}

	s.log.Info().Str("event_id", event.ID).Str("company_id", event.CompanyID).Msg("calendar event created")
	return event, nil
}

func (s *scheduleService) UpdateEvent(ctx context.Context, id string, in ports.UpdateEventInput) (*domain.CalendarEvent, error) {
	return s.events.Update(ctx, id, in)
}

func (s *scheduleService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.events.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("event_id", id).Msg("calendar event deleted")
	return nil
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/api/handler"
	"github.com/crewbase/opsdash/internal/api/middleware"
	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/core/service"
	"github.com/crewbase/opsdash/internal/infrastructure/remote"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every repository shares the one remote client so its rate limiting and
// breaker state hold across the whole API surface.
func NewRouter(store *remote.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddleware("opsdash"))

	// --- Dependencies ---
	projectRepo := remote.NewProjectRepository(store, log)
	taskRepo := remote.NewTaskRepository(store, log)
	eventRepo := remote.NewCalendarEventRepository(store, log)
	clientRepo := remote.NewClientRepository(store, log)
	subClientRepo := remote.NewSubClientRepository(store, log)
	userRepo := remote.NewUserRepository(store, log)
	companyRepo := remote.NewCompanyRepository(store, log)
	taskTypeRepo := remote.NewTaskTypeRepository(store, log)

	scheduleService := service.NewScheduleService(taskRepo, eventRepo, taskTypeRepo, companyRepo, log)

	projectHandler := handler.NewProjectHandler(service.NewProjectService(projectRepo, log))
	taskHandler := handler.NewTaskHandler(scheduleService)
	calendarHandler := handler.NewCalendarHandler(scheduleService)
	clientHandler := handler.NewClientHandler(service.NewDirectoryService(clientRepo, subClientRepo, log))
	workspaceHandler := handler.NewWorkspaceHandler(service.NewWorkspaceService(companyRepo, userRepo, taskTypeRepo, log))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(store)

	e.GET("/health", healthHandler.Liveness)            // liveness  - is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness - is the remote store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(jwtSecret))
	write := middleware.Writers()
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create, write)
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PATCH("/projects/:id", projectHandler.Update, write)
	v1.DELETE("/projects/:id", projectHandler.Delete, write)
	v1.POST("/projects/:id/status", projectHandler.ChangeStatus, write)
	v1.POST("/projects/:id/archive", projectHandler.Archive, write)
	v1.GET("/projects/:id/tasks", taskHandler.ListForProject)

	v1.POST("/tasks", taskHandler.Create, write)
	v1.GET("/tasks/:id", taskHandler.Get)
	v1.PATCH("/tasks/:id", taskHandler.Update, write)
	v1.DELETE("/tasks/:id", taskHandler.Delete, write)
	v1.POST("/tasks/:id/status", taskHandler.ChangeStatus, write)

	v1.GET("/calendar", calendarHandler.List)
	v1.POST("/calendar", calendarHandler.Create, write)
	v1.GET("/calendar/:id", calendarHandler.Get)
	v1.PATCH("/calendar/:id", calendarHandler.Update, write)
	v1.DELETE("/calendar/:id", calendarHandler.Delete, write)

	v1.GET("/clients", clientHandler.List)
	v1.POST("/clients", clientHandler.Create, write)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.PATCH("/clients/:id", clientHandler.Update, write)
	v1.DELETE("/clients/:id", clientHandler.Delete, write)
	v1.GET("/clients/:id/sub-clients", clientHandler.ListSubClients)
	v1.POST("/clients/:id/sub-clients", clientHandler.CreateSubClient, write)
	v1.PATCH("/sub-clients/:id", clientHandler.UpdateSubClient, write)
	v1.DELETE("/sub-clients/:id", clientHandler.DeleteSubClient, write)

	v1.GET("/company", workspaceHandler.GetCompany)
	v1.PATCH("/company", workspaceHandler.UpdateCompany, adminOnly)
	v1.GET("/team", workspaceHandler.ListTeam)
	v1.GET("/team/:id", workspaceHandler.GetTeamMember)
	v1.GET("/task-types", workspaceHandler.ListTaskTypes)
	v1.POST("/task-types", workspaceHandler.CreateTaskType, write)
	v1.DELETE("/task-types/:id", workspaceHandler.DeleteTaskType, write)

	return e
}

// requestLogger emits one structured line per request through the
// application logger, so API traffic and remote-store traffic end up in
// the same stream.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

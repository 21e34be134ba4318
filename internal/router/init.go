package router

import (
	app "github.com/miftad456/task-management-sub001/internal/application"
	"github.com/miftad456/task-management-sub001/internal/container"
	pginfra "github.com/miftad456/task-management-sub001/internal/infrastructure/postgres"
	handlers "github.com/miftad456/task-management-sub001/internal/interface/http"
	"github.com/miftad456/task-management-sub001/internal/router/modules"
)

type moduleDeps struct {
	Sessions      *handlers.SessionHandler
	Tasks         *handlers.TaskHandler
	Teams         *handlers.TeamHandler
	Leaves        *handlers.LeaveHandler
	Notifications *handlers.NotificationHandler
}

func buildDeps() moduleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	teams := pginfra.NewTeamRepository(pool)
	leaves := pginfra.NewLeaveRequestRepository(pool)
	notifications := pginfra.NewNotificationRepository(pool)

	dispatcher := app.NewDispatcher(notifications, users, container.GetRabbitPub(), logger)

	sessionSvc := app.NewSessionService(users, container.GetJWT(), container.GetRedis(), logger, container.GetGCS(), cfg.GCSBucket)
	taskSvc := app.NewTaskService(tasks, comments, teams, dispatcher, logger, container.GetES(), cfg.ESTasksIndex)
	teamSvc := app.NewTeamService(teams, users, logger)
	leaveSvc := app.NewLeaveService(leaves, teams, dispatcher, logger)
	notifSvc := app.NewNotificationService(notifications)

	return moduleDeps{
		Sessions:      handlers.NewSessionHandler(sessionSvc, logger, cfg.CookieDomain, cfg.CookieSecure),
		Tasks:         handlers.NewTaskHandler(taskSvc, logger),
		Teams:         handlers.NewTeamHandler(teamSvc, logger),
		Leaves:        handlers.NewLeaveHandler(leaveSvc, logger),
		Notifications: handlers.NewNotificationHandler(notifSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewSessionModule(deps.Sessions, jwt))
	r.Add(modules.NewTaskModule(deps.Tasks, jwt))
	r.Add(modules.NewTeamModule(deps.Teams, jwt))
	r.Add(modules.NewLeaveModule(deps.Leaves, jwt))
	r.Add(modules.NewNotificationModule(deps.Notifications, jwt))
}

package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miftad456/task-management-sub001/internal/container"
	handlers "github.com/miftad456/task-management-sub001/internal/interface/http"
	"github.com/miftad456/task-management-sub001/internal/interface/middleware"
	"github.com/miftad456/task-management-sub001/pkg/helpers"
)

type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.POST("/tasks", m.Handler.Create)
		auth.GET("/tasks", m.Handler.List)
		auth.GET("/tasks/search", m.Handler.Search)
		auth.GET("/tasks/:id", m.Handler.Get)
		auth.DELETE("/tasks/:id", m.Handler.Delete)
		auth.PATCH("/tasks/:id/status", m.Handler.UpdateStatus)
		auth.PATCH("/tasks/:id/priority", m.Handler.UpdatePriority)
		auth.POST("/tasks/:id/time", m.Handler.TrackTime)
		auth.GET("/tasks/:id/time", m.Handler.ListTimeLogs)
		auth.POST("/tasks/:id/assign", m.Handler.Assign)
		auth.POST("/tasks/:id/submit", m.Handler.Submit)
		auth.POST("/tasks/:id/review", m.Handler.Review)
		auth.POST("/tasks/:id/comments", m.Handler.AddComment)
		auth.GET("/tasks/:id/comments", m.Handler.ListComments)
		auth.PUT("/comments/:commentID", m.Handler.EditComment)
		auth.DELETE("/comments/:commentID", m.Handler.DeleteComment)
	}
}

package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miftad456/task-management-sub001/internal/container"
	handlers "github.com/miftad456/task-management-sub001/internal/interface/http"
	"github.com/miftad456/task-management-sub001/internal/interface/middleware"
	"github.com/miftad456/task-management-sub001/pkg/helpers"
)

type NotificationModule struct {
	Handler *handlers.NotificationHandler
	JWT     *helpers.JWTManager
}

func NewNotificationModule(h *handlers.NotificationHandler, jwt *helpers.JWTManager) *NotificationModule {
	return &NotificationModule{Handler: h, JWT: jwt}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/notifications", m.Handler.List)
		auth.POST("/notifications/read-all", m.Handler.MarkAllAsRead)
		auth.POST("/notifications/:id/read", m.Handler.MarkAsRead)
	}
}

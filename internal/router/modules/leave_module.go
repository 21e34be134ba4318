package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miftad456/task-management-sub001/internal/container"
	handlers "github.com/miftad456/task-management-sub001/internal/interface/http"
	"github.com/miftad456/task-management-sub001/internal/interface/middleware"
	"github.com/miftad456/task-management-sub001/pkg/helpers"
)

type LeaveModule struct {
	Handler *handlers.LeaveHandler
	JWT     *helpers.JWTManager
}

func NewLeaveModule(h *handlers.LeaveHandler, jwt *helpers.JWTManager) *LeaveModule {
	return &LeaveModule{Handler: h, JWT: jwt}
}

func (m *LeaveModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/leave-requests", m.Handler.Create)
		auth.POST("/leave-requests/:id/approve", m.Handler.Approve)
		auth.POST("/leave-requests/:id/reject", m.Handler.Reject)
		auth.GET("/teams/:id/leave-requests", m.Handler.ListByTeam)
	}
}

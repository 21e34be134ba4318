package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miftad456/task-management-sub001/internal/container"
	handlers "github.com/miftad456/task-management-sub001/internal/interface/http"
	"github.com/miftad456/task-management-sub001/internal/interface/middleware"
	"github.com/miftad456/task-management-sub001/pkg/helpers"
)

type TeamModule struct {
	Handler *handlers.TeamHandler
	JWT     *helpers.JWTManager
}

func NewTeamModule(h *handlers.TeamHandler, jwt *helpers.JWTManager) *TeamModule {
	return &TeamModule{Handler: h, JWT: jwt}
}

func (m *TeamModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/teams", m.Handler.Create)
		auth.GET("/teams", m.Handler.List)
		auth.GET("/teams/:id", m.Handler.Get)
		auth.POST("/teams/:id/members", m.Handler.AddMember)
		auth.DELETE("/teams/:id/members/:userID", m.Handler.RemoveMember)
	}
}

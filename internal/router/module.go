package router

import "github.com/gin-gonic/gin"

// Module is a feature slice (sessions, tasks, teams, leave, notifications)
// that knows how to mount its own routes on the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}

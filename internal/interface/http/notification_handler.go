package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/miftad456/task-management-sub001/internal/application"
	"github.com/miftad456/task-management-sub001/internal/interface/middleware"
	"github.com/miftad456/task-management-sub001/pkg/response"
)

type NotificationHandler struct {
	Svc    *app.NotificationService
	Logger *logrus.Logger
}

func NewNotificationHandler(svc *app.NotificationService, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

func (h *NotificationHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	list, err := h.Svc.List(uid)
	if err != nil {
		fail(c, err)
		return
	}
	unread, err := h.Svc.CountUnread(uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, "notifications", map[string]any{
		"count":  len(list),
		"unread": unread,
	})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.MarkAsRead(c.Param("id"), uid); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"read": true}, "notification read", nil)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.MarkAllAsRead(uid); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"read": true}, "all notifications read", nil)
}

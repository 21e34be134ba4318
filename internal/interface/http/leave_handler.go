package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/miftad456/task-management-sub001/internal/application"
	"github.com/miftad456/task-management-sub001/internal/interface/middleware"
	"github.com/miftad456/task-management-sub001/pkg/response"
	"github.com/miftad456/task-management-sub001/pkg/validation"
)

type LeaveHandler struct {
	Svc    *app.LeaveService
	Logger *logrus.Logger
}

func NewLeaveHandler(svc *app.LeaveService, logger *logrus.Logger) *LeaveHandler {
	return &LeaveHandler{Svc: svc, Logger: logger}
}

type createLeaveRequest struct {
	TeamID string `json:"team_id" binding:"required,uuid"`
	Reason string `json:"reason" binding:"required"`
}

func (h *LeaveHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	lr, err := h.Svc.Create(c.Request.Context(), req.TeamID, uid, req.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, lr, "leave request created", nil)
}

func (h *LeaveHandler) Approve(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	lr, err := h.Svc.Approve(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, lr, "leave request approved", nil)
}

func (h *LeaveHandler) Reject(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	lr, err := h.Svc.Reject(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, lr, "leave request rejected", nil)
}

func (h *LeaveHandler) ListByTeam(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	filter := c.Query("status")
	list, err := h.Svc.ListByTeam(c.Request.Context(), c.Param("id"), uid, filter)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, "leave requests", map[string]any{"count": len(list)})
}

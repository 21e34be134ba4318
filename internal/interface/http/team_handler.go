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

type TeamHandler struct {
	Svc    *app.TeamService
	Logger *logrus.Logger
}

func NewTeamHandler(svc *app.TeamService, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{Svc: svc, Logger: logger}
}

type createTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

type memberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

func (h *TeamHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), req.Name, uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "team created", nil)
}

func (h *TeamHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "team", nil)
}

func (h *TeamHandler) AddMember(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.AddMember(c.Request.Context(), c.Param("id"), req.UserID, uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "member added", nil)
}

func (h *TeamHandler) RemoveMember(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("userID"), uid); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"removed": true}, "member removed", nil)
}

func (h *TeamHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	managed, err := h.Svc.ListByManager(uid)
	if err != nil {
		fail(c, err)
		return
	}
	joined, err := h.Svc.ListByMember(uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{
		"managed": managed,
		"joined":  joined,
	}, "teams", nil)
}

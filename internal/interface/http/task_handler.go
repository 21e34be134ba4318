package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/miftad456/task-management-sub001/internal/application"
	"github.com/miftad456/task-management-sub001/internal/interface/middleware"
	"github.com/miftad456/task-management-sub001/pkg/response"
	"github.com/miftad456/task-management-sub001/pkg/validation"
)

type TaskHandler struct {
	Svc    *app.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *app.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	Deadline    *time.Time `json:"deadline"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updatePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type trackTimeRequest struct {
	Minutes int `json:"minutes" binding:"required"`
}

type assignTaskRequest struct {
	TeamID string `json:"team_id" binding:"required,uuid"`
	UserID string `json:"user_id" binding:"required,uuid"`
}

type reviewTaskRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}

type commentRequest struct {
	Body string `json:"body" binding:"required"`
}

func (h *TaskHandler) Create(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), app.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
	}, uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "task created", nil)
}

func (h *TaskHandler) Get(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.Get(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task", nil)
}

func (h *TaskHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Svc.ListByUser(uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks", map[string]any{"count": len(tasks)})
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "status updated", nil)
}

func (h *TaskHandler) UpdatePriority(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.UpdatePriority(c.Request.Context(), c.Param("id"), req.Priority, uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "priority updated", nil)
}

func (h *TaskHandler) TrackTime(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req trackTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.TrackTime(c.Request.Context(), c.Param("id"), req.Minutes, uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "time logged", nil)
}

func (h *TaskHandler) ListTimeLogs(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	logs, err := h.Svc.ListTimeLogs(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, logs, "time logs", map[string]any{"count": len(logs)})
}

func (h *TaskHandler) Delete(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), uid); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "task deleted", nil)
}

func (h *TaskHandler) Assign(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Assign(c.Request.Context(), c.Param("id"), req.TeamID, req.UserID, uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task assigned", nil)
}

func (h *TaskHandler) Submit(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.Submit(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task submitted for review", nil)
}

func (h *TaskHandler) Review(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req reviewTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Review(c.Request.Context(), c.Param("id"), req.Action, uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task reviewed", nil)
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.AddComment(c.Request.Context(), c.Param("id"), uid, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cm, "comment added", nil)
}

func (h *TaskHandler) ListComments(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	comments, err := h.Svc.ListComments(c.Request.Context(), c.Param("id"), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comments", map[string]any{"count": len(comments)})
}

func (h *TaskHandler) EditComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cm, err := h.Svc.EditComment(c.Request.Context(), c.Param("commentID"), uid, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, cm, "comment updated", nil)
}

func (h *TaskHandler) DeleteComment(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.DeleteComment(c.Request.Context(), c.Param("commentID"), uid); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "comment deleted", nil)
}

func (h *TaskHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size := 10
	if s := c.Query("size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 50 {
			size = n
		}
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

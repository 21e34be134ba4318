package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	"github.com/miftad456/task-management-sub001/internal/domain/policy"
	repo "github.com/miftad456/task-management-sub001/internal/domain/repository"
	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

// TaskService drives the task state machine: status, priority and
// time-tracking updates, owner deletion, the manager assignment flow, and
// the submit/review sub-workflow. Every mutation consults the policy
// predicates first; a deny is a ForbiddenError, never a silent no-op.
type TaskService struct {
	Tasks        repo.TaskRepository
	Comments     repo.CommentRepository
	Teams        repo.TeamRepository
	Dispatcher   *Dispatcher
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESTasksIndex string
}

func NewTaskService(tasks repo.TaskRepository, comments repo.CommentRepository, teams repo.TeamRepository, dispatcher *Dispatcher, logger *logrus.Logger, es *elasticsearch.Client, esTasksIndex string) *TaskService {
	return &TaskService{
		Tasks:        tasks,
		Comments:     comments,
		Teams:        teams,
		Dispatcher:   dispatcher,
		Logger:       logger,
		ES:           es,
		ESTasksIndex: esTasksIndex,
	}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	Deadline    *time.Time
}

func (s *TaskService) Create(ctx context.Context, in CreateTaskInput, ownerID string) (entity.Task, error) {
	t, err := entity.NewTask(in.Title, in.Description, in.Deadline, ownerID)
	if err != nil {
		return entity.Task{}, err
	}
	if in.Priority != "" {
		p, perr := entity.ParseTaskPriority(in.Priority)
		if perr != nil {
			return entity.Task{}, perr
		}
		t.Priority = p
	}
	if err := s.Tasks.Create(&t); err != nil {
		return entity.Task{}, apperr.Internal("create task", err)
	}
	s.indexTask(ctx, t)
	return t, nil
}

func (s *TaskService) Get(ctx context.Context, taskID, actorID string) (entity.Task, error) {
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return entity.Task{}, apperr.NotFound("task not found")
	}
	team := s.teamFor(*cur)
	if !policy.CanModerateTask(actorID, *cur, team) && !policy.CanViewComments(actorID, *cur, team) {
		return entity.Task{}, apperr.Forbidden("not allowed to view this task")
	}
	return *cur, nil
}

func (s *TaskService) ListByUser(userID string) ([]entity.Task, error) {
	list, err := s.Tasks.ListByUser(userID)
	if err != nil {
		return nil, apperr.Internal("list tasks", err)
	}
	return list, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, taskID, newStatus, actorID string) (entity.Task, error) {
	st, err := entity.ParseTaskStatus(newStatus)
	if err != nil {
		return entity.Task{}, err
	}
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return entity.Task{}, apperr.NotFound("task not found")
	}
	team := s.teamFor(*cur)
	if !policy.CanModerateTask(actorID, *cur, team) {
		return entity.Task{}, apperr.Forbidden("not allowed to update this task")
	}
	next, err := cur.WithStatus(st)
	if err != nil {
		return entity.Task{}, err
	}
	if err := s.Tasks.Update(&next); err != nil {
		return entity.Task{}, apperr.Internal("update task", err)
	}
	s.indexTask(ctx, next)
	return next, nil
}

func (s *TaskService) UpdatePriority(ctx context.Context, taskID, newPriority, actorID string) (entity.Task, error) {
	p, err := entity.ParseTaskPriority(newPriority)
	if err != nil {
		return entity.Task{}, err
	}
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return entity.Task{}, apperr.NotFound("task not found")
	}
	team := s.teamFor(*cur)
	if !policy.CanModerateTask(actorID, *cur, team) {
		return entity.Task{}, apperr.Forbidden("not allowed to update this task")
	}
	next, err := cur.WithPriority(p)
	if err != nil {
		return entity.Task{}, err
	}
	if err := s.Tasks.Update(&next); err != nil {
		return entity.Task{}, apperr.Internal("update task", err)
	}
	s.indexTask(ctx, next)
	return next, nil
}

// TrackTime appends an immutable time-log entry and accumulates the task's
// TimeSpent. On a validation failure nothing is persisted.
func (s *TaskService) TrackTime(ctx context.Context, taskID string, minutes int, actorID string) (entity.Task, error) {
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return entity.Task{}, apperr.NotFound("task not found")
	}
	team := s.teamFor(*cur)
	if !policy.CanModerateTask(actorID, *cur, team) {
		return entity.Task{}, apperr.Forbidden("not allowed to update this task")
	}
	next, entry, err := cur.WithLoggedTime(minutes, actorID, time.Now().UTC())
	if err != nil {
		return entity.Task{}, err
	}
	if err := s.Tasks.AddTimeLog(&entry); err != nil {
		return entity.Task{}, apperr.Internal("append time log", err)
	}
	if err := s.Tasks.Update(&next); err != nil {
		return entity.Task{}, apperr.Internal("update task", err)
	}
	return next, nil
}

func (s *TaskService) ListTimeLogs(ctx context.Context, taskID, actorID string) ([]entity.TimeLog, error) {
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return nil, apperr.NotFound("task not found")
	}
	team := s.teamFor(*cur)
	if !policy.CanModerateTask(actorID, *cur, team) {
		return nil, apperr.Forbidden("not allowed to view this task")
	}
	logs, err := s.Tasks.ListTimeLogs(taskID)
	if err != nil {
		return nil, apperr.Internal("list time logs", err)
	}
	return logs, nil
}

// Delete removes a task; only the owner may do so.
func (s *TaskService) Delete(ctx context.Context, taskID, actorID string) error {
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return apperr.NotFound("task not found")
	}
	if !policy.IsOwner(actorID, *cur) {
		return apperr.Forbidden("only the owner can delete a task")
	}
	if err := s.Tasks.Delete(taskID); err != nil {
		return apperr.Internal("delete task", err)
	}
	return nil
}

// Assign binds a task to a team member and starts the review sub-workflow.
// Only the team's manager may assign; the target must be a member.
func (s *TaskService) Assign(ctx context.Context, taskID, teamID, targetUserID, actorID string) (entity.Task, error) {
	team, err := s.Teams.GetByID(teamID)
	if err != nil || team == nil {
		return entity.Task{}, apperr.NotFound("team not found")
	}
	if !policy.IsTeamManager(actorID, team) {
		return entity.Task{}, apperr.Forbidden("only the team manager can assign tasks")
	}
	if !policy.IsTeamMember(targetUserID, team) {
		return entity.Task{}, apperr.NotFound("user is not a member of the team")
	}
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return entity.Task{}, apperr.NotFound("task not found")
	}
	next := cur.Assigned(teamID, targetUserID)
	if err := s.Tasks.Update(&next); err != nil {
		return entity.Task{}, apperr.Internal("update task", err)
	}
	s.indexTask(ctx, next)
	s.Dispatcher.Dispatch(ctx, Event{
		Kind:        entity.NotifyTaskAssigned,
		RecipientID: targetUserID,
		TaskID:      next.ID,
		Message:     "you have been assigned a task: " + next.Title,
	})
	return next, nil
}

// Submit moves an assigned task to submitted. Only the assignee may submit;
// the team manager is notified.
func (s *TaskService) Submit(ctx context.Context, taskID, actorID string) (entity.Task, error) {
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return entity.Task{}, apperr.NotFound("task not found")
	}
	if !policy.IsAssignee(actorID, *cur) {
		return entity.Task{}, apperr.Forbidden("only the assignee can submit a task")
	}
	next, err := cur.Submitted()
	if err != nil {
		return entity.Task{}, err
	}
	if err := s.Tasks.Update(&next); err != nil {
		return entity.Task{}, apperr.Internal("update task", err)
	}
	if team := s.teamFor(next); team != nil {
		s.Dispatcher.Dispatch(ctx, Event{
			Kind:        entity.NotifyTaskSubmitted,
			RecipientID: team.ManagerID,
			TaskID:      next.ID,
			Message:     "a task was submitted for review: " + next.Title,
		})
	}
	return next, nil
}

// Review resolves a submitted task. Only the team manager may review.
// Rejection returns the task to in-progress so the assignee can retry.
func (s *TaskService) Review(ctx context.Context, taskID, action, actorID string) (entity.Task, error) {
	act, err := entity.ParseReviewAction(action)
	if err != nil {
		return entity.Task{}, err
	}
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return entity.Task{}, apperr.NotFound("task not found")
	}
	team := s.teamFor(*cur)
	if !policy.IsTeamManager(actorID, team) {
		return entity.Task{}, apperr.Forbidden("only the team manager can review a task")
	}
	next, err := cur.Reviewed(act)
	if err != nil {
		return entity.Task{}, err
	}
	if err := s.Tasks.Update(&next); err != nil {
		return entity.Task{}, apperr.Internal("update task", err)
	}
	s.indexTask(ctx, next)

	kind := entity.NotifyTaskApproved
	msg := "your submission was approved: " + next.Title
	if act == entity.ReviewReject {
		kind = entity.NotifyTaskRejected
		msg = "your submission was rejected: " + next.Title
	}
	s.Dispatcher.Dispatch(ctx, Event{
		Kind:        kind,
		RecipientID: next.AssigneeID,
		TaskID:      next.ID,
		Message:     msg,
	})
	return next, nil
}

// AddComment posts a comment on a task the actor may see: personal tasks
// are owner-only, team tasks open to the manager and any member.
func (s *TaskService) AddComment(ctx context.Context, taskID, actorID, body string) (entity.Comment, error) {
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return entity.Comment{}, apperr.NotFound("task not found")
	}
	team := s.teamFor(*cur)
	if !policy.CanViewComments(actorID, *cur, team) {
		return entity.Comment{}, apperr.Forbidden("not allowed to comment on this task")
	}
	cm, err := entity.NewComment(taskID, actorID, body)
	if err != nil {
		return entity.Comment{}, err
	}
	if err := s.Comments.Create(&cm); err != nil {
		return entity.Comment{}, apperr.Internal("create comment", err)
	}
	return cm, nil
}

func (s *TaskService) ListComments(ctx context.Context, taskID, actorID string) ([]entity.Comment, error) {
	cur, err := s.Tasks.GetByID(taskID)
	if err != nil || cur == nil {
		return nil, apperr.NotFound("task not found")
	}
	team := s.teamFor(*cur)
	if !policy.CanViewComments(actorID, *cur, team) {
		return nil, apperr.Forbidden("not allowed to view comments on this task")
	}
	list, err := s.Comments.ListByTask(taskID)
	if err != nil {
		return nil, apperr.Internal("list comments", err)
	}
	return list, nil
}

// EditComment is restricted to the comment's author, regardless of who owns
// the task.
func (s *TaskService) EditComment(ctx context.Context, commentID, actorID, body string) (entity.Comment, error) {
	if body == "" {
		return entity.Comment{}, apperr.Validation("comment body is required")
	}
	cm, err := s.Comments.GetByID(commentID)
	if err != nil || cm == nil {
		return entity.Comment{}, apperr.NotFound("comment not found")
	}
	if !policy.CanEditComment(actorID, *cm) {
		return entity.Comment{}, apperr.Forbidden("only the author can edit a comment")
	}
	cm.Body = body
	if err := s.Comments.Update(cm); err != nil {
		return entity.Comment{}, apperr.Internal("update comment", err)
	}
	return *cm, nil
}

func (s *TaskService) DeleteComment(ctx context.Context, commentID, actorID string) error {
	cm, err := s.Comments.GetByID(commentID)
	if err != nil || cm == nil {
		return apperr.NotFound("comment not found")
	}
	if !policy.CanEditComment(actorID, *cm) {
		return apperr.Forbidden("only the author can delete a comment")
	}
	if err := s.Comments.Delete(commentID); err != nil {
		return apperr.Internal("delete comment", err)
	}
	return nil
}

// teamFor resolves the managing team, or nil for a personal task.
func (s *TaskService) teamFor(t entity.Task) *entity.Team {
	if t.TeamID == "" {
		return nil
	}
	team, err := s.Teams.GetByID(t.TeamID)
	if err != nil {
		return nil
	}
	return team
}

// indexTask mirrors the task into Elasticsearch. Best-effort: search lags
// rather than failing the workflow.
func (s *TaskService) indexTask(ctx context.Context, t entity.Task) {
	if s.ES == nil || s.ESTasksIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"priority":    t.Priority,
		"status":      t.Status,
		"owner_id":    t.OwnerID,
		"assignee_id": t.AssigneeID,
		"team_id":     t.TeamID,
		"created_at":  t.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":  t.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESTasksIndex, DocumentID: t.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("task_id", t.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("task_id", t.ID).Warn("es index response error")
	}
}

// Search performs a multi_match query on title and description.
func (s *TaskService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESTasksIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESTasksIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, apperr.Internal("search tasks", err)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, apperr.Internal("decode search response", err)
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

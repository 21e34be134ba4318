package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	repo "github.com/miftad456/task-management-sub001/internal/domain/repository"
)

// In-memory repositories backing the service tests. They mirror the
// conditional-update semantics of the postgres implementations, most
// importantly the pending-only guard on leave resolution.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) Update(u *entity.User) error {
	cur, ok := r.users[u.ID]
	if !ok {
		return repo.ErrNotFound
	}
	u.RefreshToken = cur.RefreshToken
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	cp.RefreshToken = cur.RefreshToken
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) SaveRefreshToken(userID, token string) error {
	u, ok := r.users[userID]
	if !ok {
		return repo.ErrNotFound
	}
	u.RefreshToken = token
	return nil
}

func (r *memUserRepo) GetByRefreshToken(token string) (*entity.User, error) {
	if token == "" {
		return nil, repo.ErrNotFound
	}
	for _, u := range r.users {
		if u.RefreshToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) RevokeRefreshToken(userID string) error {
	if u, ok := r.users[userID]; ok {
		u.RefreshToken = ""
	}
	return nil
}

type memTaskRepo struct {
	tasks map[string]*entity.Task
	logs  []entity.TimeLog
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *memTaskRepo) Create(t *entity.Task) error {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByID(id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) ListByUser(userID string) ([]entity.Task, error) {
	var out []entity.Task
	for _, t := range r.tasks {
		if t.OwnerID == userID || t.AssigneeID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) Update(t *entity.Task) error {
	if _, ok := r.tasks[t.ID]; !ok {
		return repo.ErrNotFound
	}
	t.UpdatedAt = time.Now().UTC()
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) Delete(id string) error {
	if _, ok := r.tasks[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) AddTimeLog(l *entity.TimeLog) error {
	l.ID = uuid.NewString()
	r.logs = append(r.logs, *l)
	return nil
}

func (r *memTaskRepo) ListTimeLogs(taskID string) ([]entity.TimeLog, error) {
	var out []entity.TimeLog
	for _, l := range r.logs {
		if l.TaskID == taskID {
			out = append(out, l)
		}
	}
	return out, nil
}

type memCommentRepo struct {
	comments map[string]*entity.Comment
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[string]*entity.Comment{}}
}

func (r *memCommentRepo) Create(c *entity.Comment) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *memCommentRepo) GetByID(id string) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCommentRepo) ListByTask(taskID string) ([]entity.Comment, error) {
	var out []entity.Comment
	for _, c := range r.comments {
		if c.TaskID == taskID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCommentRepo) Update(c *entity.Comment) error {
	if _, ok := r.comments[c.ID]; !ok {
		return repo.ErrNotFound
	}
	c.UpdatedAt = time.Now().UTC()
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *memCommentRepo) Delete(id string) error {
	delete(r.comments, id)
	return nil
}

type memTeamRepo struct {
	teams map[string]*entity.Team
}

func newMemTeamRepo() *memTeamRepo {
	return &memTeamRepo{teams: map[string]*entity.Team{}}
}

func (r *memTeamRepo) Create(t *entity.Team) error {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now().UTC()
	cp := *t
	cp.MemberIDs = append([]string(nil), t.MemberIDs...)
	r.teams[t.ID] = &cp
	return nil
}

func (r *memTeamRepo) GetByID(id string) (*entity.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	cp.MemberIDs = append([]string(nil), t.MemberIDs...)
	return &cp, nil
}

func (r *memTeamRepo) ListByManager(managerID string) ([]entity.Team, error) {
	var out []entity.Team
	for _, t := range r.teams {
		if t.ManagerID == managerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTeamRepo) ListByMember(userID string) ([]entity.Team, error) {
	var out []entity.Team
	for _, t := range r.teams {
		if t.HasMember(userID) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTeamRepo) AddMember(teamID, userID string) error {
	t, ok := r.teams[teamID]
	if !ok {
		return repo.ErrNotFound
	}
	if !t.HasMember(userID) {
		t.MemberIDs = append(t.MemberIDs, userID)
	}
	return nil
}

func (r *memTeamRepo) RemoveMember(teamID, userID string) error {
	t, ok := r.teams[teamID]
	if !ok {
		return repo.ErrNotFound
	}
	for i, id := range t.MemberIDs {
		if id == userID {
			t.MemberIDs = append(t.MemberIDs[:i], t.MemberIDs[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type memLeaveRepo struct {
	requests map[string]*entity.LeaveRequest
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{requests: map[string]*entity.LeaveRequest{}}
}

func (r *memLeaveRepo) Create(lr *entity.LeaveRequest) error {
	lr.ID = uuid.NewString()
	lr.CreatedAt = time.Now().UTC()
	lr.UpdatedAt = lr.CreatedAt
	cp := *lr
	r.requests[lr.ID] = &cp
	return nil
}

func (r *memLeaveRepo) GetByID(id string) (*entity.LeaveRequest, error) {
	lr, ok := r.requests[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *lr
	return &cp, nil
}

func (r *memLeaveRepo) ListByTeam(teamID string, status entity.LeaveStatus) ([]entity.LeaveRequest, error) {
	var out []entity.LeaveRequest
	for _, lr := range r.requests {
		if lr.TeamID != teamID {
			continue
		}
		if status != "" && lr.Status != status {
			continue
		}
		out = append(out, *lr)
	}
	return out, nil
}

func (r *memLeaveRepo) UpdateStatus(lr *entity.LeaveRequest) error {
	cur, ok := r.requests[lr.ID]
	if !ok {
		return repo.ErrNotFound
	}
	if cur.Status != entity.LeavePending {
		return repo.ErrConflict
	}
	cur.Status = lr.Status
	cur.UpdatedAt = time.Now().UTC()
	return nil
}

type memNotificationRepo struct {
	notifications []*entity.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{}
}

func (r *memNotificationRepo) Create(n *entity.Notification) error {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return nil
}

func (r *memNotificationRepo) ListByRecipient(userID string) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range r.notifications {
		if n.RecipientID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) CountUnread(userID string) (int, error) {
	count := 0
	for _, n := range r.notifications {
		if n.RecipientID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *memNotificationRepo) MarkAsRead(id, userID string) error {
	for _, n := range r.notifications {
		if n.ID == id && n.RecipientID == userID {
			n.Read = true
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *memNotificationRepo) MarkAllAsRead(userID string) error {
	for _, n := range r.notifications {
		if n.RecipientID == userID {
			n.Read = true
		}
	}
	return nil
}

var (
	_ repo.UserRepository         = (*memUserRepo)(nil)
	_ repo.TaskRepository         = (*memTaskRepo)(nil)
	_ repo.CommentRepository      = (*memCommentRepo)(nil)
	_ repo.TeamRepository         = (*memTeamRepo)(nil)
	_ repo.LeaveRequestRepository = (*memLeaveRepo)(nil)
	_ repo.NotificationRepository = (*memNotificationRepo)(nil)
)

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	"github.com/miftad456/task-management-sub001/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `id, title, description, priority, status, stage, deadline, time_spent,
	owner_id, COALESCE(assignee_id::text, ''), COALESCE(team_id::text, ''), created_at, updated_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	t := &entity.Task{}
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.Stage,
		&t.Deadline, &t.TimeSpent, &t.OwnerID, &t.AssigneeID, &t.TeamID,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Create(t *entity.Task) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, priority, status, stage, deadline, time_spent, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, t.Title, t.Description, t.Priority, t.Status, t.Stage, t.Deadline, t.TimeSpent, t.OwnerID)

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) GetByID(id string) (*entity.Task, error) {
	ctx := context.Background()
	return scanTask(r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+` FROM tasks WHERE id = $1
	`, id))
}

func (r *TaskRepository) ListByUser(userID string) ([]entity.Task, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE owner_id = $1 OR assignee_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *TaskRepository) Update(t *entity.Task) error {
	ctx := context.Background()
	t.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, status = $4, stage = $5,
			deadline = $6, time_spent = $7, assignee_id = NULLIF($8, '')::uuid,
			team_id = NULLIF($9, '')::uuid, updated_at = $10
		WHERE id = $11
	`, t.Title, t.Description, t.Priority, t.Status, t.Stage, t.Deadline, t.TimeSpent,
		t.AssigneeID, t.TeamID, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AddTimeLog inserts into an append-only table; entries are never updated
// or deleted.
func (r *TaskRepository) AddTimeLog(l *entity.TimeLog) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO time_logs (task_id, actor_id, minutes, logged_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, l.TaskID, l.ActorID, l.Minutes, l.LoggedAt)

	return row.Scan(&l.ID)
}

func (r *TaskRepository) ListTimeLogs(taskID string) ([]entity.TimeLog, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, task_id, actor_id, minutes, logged_at
		FROM time_logs WHERE task_id = $1
		ORDER BY logged_at ASC
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.TimeLog
	for rows.Next() {
		var l entity.TimeLog
		if err := rows.Scan(&l.ID, &l.TaskID, &l.ActorID, &l.Minutes, &l.LoggedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

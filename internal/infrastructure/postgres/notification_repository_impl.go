package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	"github.com/miftad456/task-management-sub001/internal/domain/repository"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notifications (recipient_id, kind, message, task_id, leave_request_id)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, NULLIF($5, '')::uuid)
		RETURNING id, created_at
	`, n.RecipientID, n.Kind, n.Message, n.TaskID, n.LeaveRequestID)

	return row.Scan(&n.ID, &n.CreatedAt)
}

func (r *NotificationRepository) ListByRecipient(userID string) ([]entity.Notification, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT id, recipient_id, kind, message,
			COALESCE(task_id::text, ''), COALESCE(leave_request_id::text, ''), read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Kind, &n.Message,
			&n.TaskID, &n.LeaveRequestID, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationRepository) CountUnread(userID string) (int, error) {
	ctx := context.Background()
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM notifications WHERE recipient_id = $1 AND NOT read
	`, userID).Scan(&n)
	return n, err
}

// MarkAsRead is scoped to the recipient so one user cannot acknowledge
// another's notifications.
func (r *NotificationRepository) MarkAsRead(id, userID string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read = true WHERE id = $1 AND recipient_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllAsRead(userID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read = true WHERE recipient_id = $1 AND NOT read
	`, userID)
	return err
}

var _ repository.NotificationRepository = (*NotificationRepository)(nil)

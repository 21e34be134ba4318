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

type LeaveRequestRepository struct {
	pool *pgxpool.Pool
}

func NewLeaveRequestRepository(pool *pgxpool.Pool) *LeaveRequestRepository {
	return &LeaveRequestRepository{pool: pool}
}

const leaveColumns = `id, team_id, user_id, status, reason, created_at, updated_at`

func scanLeave(row pgx.Row) (*entity.LeaveRequest, error) {
	r := &entity.LeaveRequest{}
	if err := row.Scan(&r.ID, &r.TeamID, &r.UserID, &r.Status, &r.Reason, &r.CreatedAt, &r.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (r *LeaveRequestRepository) Create(lr *entity.LeaveRequest) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO leave_requests (team_id, user_id, status, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, lr.TeamID, lr.UserID, lr.Status, lr.Reason)

	return row.Scan(&lr.ID, &lr.CreatedAt, &lr.UpdatedAt)
}

func (r *LeaveRequestRepository) GetByID(id string) (*entity.LeaveRequest, error) {
	ctx := context.Background()
	return scanLeave(r.pool.QueryRow(ctx, `
		SELECT `+leaveColumns+` FROM leave_requests WHERE id = $1
	`, id))
}

func (r *LeaveRequestRepository) ListByTeam(teamID string, status entity.LeaveStatus) ([]entity.LeaveRequest, error) {
	ctx := context.Background()
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE team_id = $1`
	args := []any{teamID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.LeaveRequest
	for rows.Next() {
		lr, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *lr)
	}
	return out, rows.Err()
}

// UpdateStatus is a conditional write: it only resolves rows still pending.
// Losing the race to a concurrent resolution returns ErrConflict.
func (r *LeaveRequestRepository) UpdateStatus(lr *entity.LeaveRequest) error {
	ctx := context.Background()
	lr.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE leave_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = 'pending'
	`, lr.Status, lr.UpdatedAt, lr.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrConflict
	}
	return nil
}

var _ repository.LeaveRequestRepository = (*LeaveRequestRepository)(nil)

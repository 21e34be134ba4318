package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	"github.com/miftad456/task-management-sub001/internal/domain/repository"
)

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) Create(t *entity.Team) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO teams (name, manager_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, t.Name, t.ManagerID)

	return row.Scan(&t.ID, &t.CreatedAt)
}

func (r *TeamRepository) GetByID(id string) (*entity.Team, error) {
	ctx := context.Background()
	t := &entity.Team{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, manager_id, created_at FROM teams WHERE id = $1
	`, id)
	if err := row.Scan(&t.ID, &t.Name, &t.ManagerID, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT user_id FROM team_members WHERE team_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, err
		}
		t.MemberIDs = append(t.MemberIDs, uid)
	}
	return t, rows.Err()
}

func (r *TeamRepository) ListByManager(managerID string) ([]entity.Team, error) {
	ctx := context.Background()
	return r.list(ctx, `
		SELECT id, name, manager_id, created_at FROM teams
		WHERE manager_id = $1 ORDER BY created_at
	`, managerID)
}

func (r *TeamRepository) ListByMember(userID string) ([]entity.Team, error) {
	ctx := context.Background()
	return r.list(ctx, `
		SELECT t.id, t.name, t.manager_id, t.created_at
		FROM teams t JOIN team_members m ON m.team_id = t.id
		WHERE m.user_id = $1 ORDER BY t.created_at
	`, userID)
}

func (r *TeamRepository) list(ctx context.Context, query string, arg any) ([]entity.Team, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Team
	for rows.Next() {
		var t entity.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.ManagerID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// AddMember relies on the primary key (team_id, user_id) for uniqueness.
func (r *TeamRepository) AddMember(teamID, userID string) error {
	ctx := context.Background()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO team_members (team_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (team_id, user_id) DO NOTHING
	`, teamID, userID)
	return err
}

func (r *TeamRepository) RemoveMember(teamID, userID string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		DELETE FROM team_members WHERE team_id = $1 AND user_id = $2
	`, teamID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TeamRepository = (*TeamRepository)(nil)

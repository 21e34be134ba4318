package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/miftad456/task-management-sub001/internal/domain/entity"
	"github.com/miftad456/task-management-sub001/internal/domain/policy"
	repo "github.com/miftad456/task-management-sub001/internal/domain/repository"
	"github.com/miftad456/task-management-sub001/pkg/apperr"
)

// TeamService manages teams and their membership. The creating user becomes
// the manager; membership mutations are manager-only.
type TeamService struct {
	Teams  repo.TeamRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewTeamService(teams repo.TeamRepository, users repo.UserRepository, logger *logrus.Logger) *TeamService {
	return &TeamService{Teams: teams, Users: users, Logger: logger}
}

func (s *TeamService) Create(ctx context.Context, name, managerID string) (entity.Team, error) {
	t, err := entity.NewTeam(name, managerID)
	if err != nil {
		return entity.Team{}, err
	}
	if err := s.Teams.Create(&t); err != nil {
		return entity.Team{}, apperr.Internal("create team", err)
	}
	return t, nil
}

func (s *TeamService) Get(ctx context.Context, teamID, actorID string) (entity.Team, error) {
	team, err := s.Teams.GetByID(teamID)
	if err != nil || team == nil {
		return entity.Team{}, apperr.NotFound("team not found")
	}
	if !policy.IsTeamManager(actorID, team) && !policy.IsTeamMember(actorID, team) {
		return entity.Team{}, apperr.Forbidden("not allowed to view this team")
	}
	return *team, nil
}

func (s *TeamService) AddMember(ctx context.Context, teamID, userID, actorID string) (entity.Team, error) {
	team, err := s.Teams.GetByID(teamID)
	if err != nil || team == nil {
		return entity.Team{}, apperr.NotFound("team not found")
	}
	if !policy.IsTeamManager(actorID, team) {
		return entity.Team{}, apperr.Forbidden("only the team manager can add members")
	}
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return entity.Team{}, apperr.NotFound("user not found")
	}
	if team.HasMember(userID) {
		return entity.Team{}, apperr.Conflict("user is already a member")
	}
	if err := s.Teams.AddMember(teamID, userID); err != nil {
		return entity.Team{}, apperr.Internal("add member", err)
	}
	team.MemberIDs = append(team.MemberIDs, userID)
	return *team, nil
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID, actorID string) error {
	team, err := s.Teams.GetByID(teamID)
	if err != nil || team == nil {
		return apperr.NotFound("team not found")
	}
	if !policy.IsTeamManager(actorID, team) {
		return apperr.Forbidden("only the team manager can remove members")
	}
	if !team.HasMember(userID) {
		return apperr.NotFound("user is not a member of the team")
	}
	if err := s.Teams.RemoveMember(teamID, userID); err != nil {
		return apperr.Internal("remove member", err)
	}
	return nil
}

func (s *TeamService) ListByManager(managerID string) ([]entity.Team, error) {
	list, err := s.Teams.ListByManager(managerID)
	if err != nil {
		return nil, apperr.Internal("list teams", err)
	}
	return list, nil
}

func (s *TeamService) ListByMember(userID string) ([]entity.Team, error) {
	list, err := s.Teams.ListByMember(userID)
	if err != nil {
		return nil, apperr.Internal("list teams", err)
	}
	return list, nil
}

package service

import (
	"context"

	"wastetrack/internal/authz"
	"wastetrack/internal/cache"
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"
	"wastetrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamService handles business logic for team operations.
type TeamService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	cache    cache.Cache
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo repository.TeamRepository, userRepo repository.UserRepository, cache cache.Cache) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// CreateTeam creates a new team.
func (s *TeamService) CreateTeam(ctx context.Context, p authz.Principal, req *models.CreateTeamRequest) (*models.Team, error) {
	if err := authz.Require(p, authz.ActionTeamCreate); err != nil {
		return nil, err
	}

	team := &models.Team{Name: req.Name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// ListTeams lists teams visible to the principal: admins see every team,
// everyone else sees only their own. A user with no team gets an empty list,
// not an error.
func (s *TeamService) ListTeams(ctx context.Context, p authz.Principal, page, limit int) (*models.TeamListResponse, error) {
	if p.IsAdmin() {
		teams, total, err := s.teamRepo.FindAll(ctx, page, limit)
		if err != nil {
			return nil, err
		}
		return &models.TeamListResponse{
			Items:      teams,
			Pagination: models.NewPagination(page, limit, total),
		}, nil
	}

	if p.TeamID == nil {
		return &models.TeamListResponse{
			Items:      []models.Team{},
			Pagination: models.NewPagination(page, limit, 0),
		}, nil
	}

	team, err := s.teamRepo.FindByID(ctx, *p.TeamID)
	if err != nil {
		return nil, err
	}

	return &models.TeamListResponse{
		Items:      []models.Team{*team},
		Pagination: models.NewPagination(page, limit, 1),
	}, nil
}

// GetTeam retrieves a single team.
func (s *TeamService) GetTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Team, error) {
	if !authz.CanViewTeam(p, id) {
		return nil, apperrors.ErrForbidden
	}
	return s.teamRepo.FindByID(ctx, id)
}

// UpdateTeam applies a partial update to a team.
func (s *TeamService) UpdateTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	if err := authz.Require(p, authz.ActionTeamUpdate); err != nil {
		return nil, err
	}
	return s.teamRepo.Update(ctx, id, req)
}

// DeleteTeam removes a team. A team with assigned users cannot be deleted;
// its members must be reassigned first.
func (s *TeamService) DeleteTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
	if err := authz.Require(p, authz.ActionTeamDelete); err != nil {
		return err
	}

	if _, err := s.teamRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.userRepo.CountByTeamID(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrTeamHasUsers
	}

	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.TeamSummaryCacheKey(id.Hex()))

	return nil
}

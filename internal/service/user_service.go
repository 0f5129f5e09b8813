package service

import (
	"context"
	"time"

	"wastetrack/internal/authz"
	"wastetrack/internal/cache"
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"
	"wastetrack/internal/repository"
	"wastetrack/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	userRepo repository.UserRepository
	teamRepo repository.TeamRepository
	cache    cache.Cache
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, teamRepo repository.TeamRepository, cache cache.Cache) *UserService {
	return &UserService{
		userRepo: userRepo,
		teamRepo: teamRepo,
		cache:    cache,
	}
}

// CreateUser creates a new user. The role/team pairing is validated before
// anything is written: admins carry no team, everyone else needs one.
func (s *UserService) CreateUser(ctx context.Context, p authz.Principal, req *models.CreateUserRequest) (*models.User, error) {
	if err := authz.Require(p, authz.ActionUserCreate); err != nil {
		return nil, err
	}

	var teamID *primitive.ObjectID
	if req.TeamID != nil {
		id, err := primitive.ObjectIDFromHex(*req.TeamID)
		if err != nil {
			return nil, apperrors.ErrTeamNotFound
		}
		teamID = &id
	}

	if err := authz.ValidateNewAssignment(req.Role, teamID); err != nil {
		return nil, err
	}

	if teamID != nil {
		if _, err := s.teamRepo.FindByID(ctx, *teamID); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashedPassword,
		Role:           req.Role,
		TeamID:         teamID,
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID (with caching). Admins can read anyone,
// everyone else only themselves.
func (s *UserService) GetUser(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.User, error) {
	if !authz.CanViewUser(p, id) {
		return nil, apperrors.ErrForbidden
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(id.Hex())
	var cached models.User
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, user, userCacheTTL)

	return user, nil
}

// ListUsers retrieves all users, paginated.
func (s *UserService) ListUsers(ctx context.Context, p authz.Principal, page, limit int) (*models.UserListResponse, error) {
	if err := authz.Require(p, authz.ActionUserList); err != nil {
		return nil, err
	}

	users, total, err := s.userRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.UserListResponse{
		Items:      users,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// UpdateUser applies a partial update to a user. When the role or team
// changes, the resulting pairing is re-validated against the assignment
// rules; a promotion to admin silently clears the team.
func (s *UserService) UpdateUser(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if err := authz.Require(p, authz.ActionUserUpdate); err != nil {
		return nil, err
	}

	current, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := &models.UserPatch{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}

	if req.Password != nil {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		patch.HashedPassword = &hashedPassword
	}

	if req.Role != nil || req.TeamID.Set {
		role, teamID, err := authz.ResolveUpdatedAssignment(current, req.Role, req.TeamID)
		if err != nil {
			return nil, err
		}

		newTeam := teamID != nil && (current.TeamID == nil || *current.TeamID != *teamID)
		if newTeam {
			if _, err := s.teamRepo.FindByID(ctx, *teamID); err != nil {
				return nil, err
			}
		}

		patch.Role = &role
		patch.SetTeam = true
		patch.TeamID = teamID
	}

	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
	if err := authz.Require(p, authz.ActionUserDelete); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return nil
}

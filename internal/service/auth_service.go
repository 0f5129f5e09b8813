// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"

	"wastetrack/internal/authz"
	"wastetrack/internal/cache"
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"
	"wastetrack/internal/repository"
	"wastetrack/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles authentication business logic. Each user carries at
// most one recognized session token: logging in overwrites the previous one,
// so older tokens stop validating.
type AuthService struct {
	userRepo   repository.UserRepository
	cache      cache.Cache
	jwtManager auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, cache cache.Cache, jwtManager auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		cache:      cache,
		jwtManager: jwtManager,
	}
}

// Login authenticates a user and issues a fresh session token. The token is
// stored on the user record, replacing any previously issued one.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			return nil, err
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.HashedPassword); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID.Hex(), user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	// Overwrite in a single update so concurrent logins leave exactly one
	// recognized token: last writer wins.
	if err := s.userRepo.SetAuthToken(ctx, user.ID, token); err != nil {
		return nil, err
	}
	user.AuthToken = token

	// Invalidate cached user so stale session state is never served
	_ = s.cache.Delete(ctx, cache.UserCacheKey(user.ID.Hex()))

	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *user,
	}, nil
}

// ValidateSession checks a session token against the user's stored token and
// returns the authenticated principal. A well-formed token that no longer
// matches the stored one means a newer login replaced it.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (authz.Principal, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return authz.Principal{}, apperrors.ErrInvalidToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return authz.Principal{}, apperrors.ErrInvalidToken
	}

	// Always read the stored token from the database: session revocation
	// must take effect immediately, never from a stale cache.
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			return authz.Principal{}, err
		}
		return authz.Principal{}, apperrors.ErrInvalidToken
	}

	if !user.IsActive {
		return authz.Principal{}, apperrors.ErrInvalidToken
	}

	if user.AuthToken != token {
		return authz.Principal{}, apperrors.ErrSessionExpired
	}

	return authz.PrincipalFromUser(user), nil
}

// InvalidateToken clears a user's stored session token, forcing a new login.
func (s *AuthService) InvalidateToken(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.userRepo.SetAuthToken(ctx, userID, ""); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, cache.UserCacheKey(userID.Hex()))
	return nil
}

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

// WasteLogService handles business logic for waste log operations.
type WasteLogService struct {
	logRepo  repository.WasteLogRepository
	teamRepo repository.TeamRepository
	cache    cache.Cache
}

// NewWasteLogService creates a new WasteLogService.
func NewWasteLogService(logRepo repository.WasteLogRepository, teamRepo repository.TeamRepository, cache cache.Cache) *WasteLogService {
	return &WasteLogService{
		logRepo:  logRepo,
		teamRepo: teamRepo,
		cache:    cache,
	}
}

// CreateWasteLog records a new waste log. The owning team is resolved from
// the requested team and the principal's own membership; the author is
// always the principal, never taken from the request.
func (s *WasteLogService) CreateWasteLog(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID, req *models.CreateWasteLogRequest) (*models.WasteLog, error) {
	if err := authz.Require(p, authz.ActionLogCreate); err != nil {
		return nil, err
	}

	teamID, err := authz.ResolveTeamScope(requestedTeam, p)
	if err != nil {
		return nil, err
	}
	// Scope resolution only picks the team; it must still exist.
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	log := &models.WasteLog{
		WasteType:   req.WasteType,
		WeightKg:    req.WeightKg,
		Description: req.Description,
		TeamID:      teamID,
		CreatedByID: p.ID,
	}

	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, teamID)

	return log, nil
}

// GetWasteLog retrieves a single waste log, subject to the visibility chain:
// admins see everything, managers their team's logs, employees their own.
func (s *WasteLogService) GetWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.WasteLog, error) {
	log, err := s.logRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanViewWasteLog(p, log) {
		return nil, apperrors.ErrForbidden
	}

	return log, nil
}

// ListWasteLogs lists logs across all teams, newest first. Admin only.
func (s *WasteLogService) ListWasteLogs(ctx context.Context, p authz.Principal, page, limit int) (*models.WasteLogListResponse, error) {
	if err := authz.Require(p, authz.ActionLogListAll); err != nil {
		return nil, err
	}

	logs, total, err := s.logRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.WasteLogListResponse{
		Items:      logs,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// UpdateWasteLog applies a partial update to a log's own fields. The owning
// team and author are fixed at creation and never patched.
func (s *WasteLogService) UpdateWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateWasteLogRequest) (*models.WasteLog, error) {
	if err := authz.Require(p, authz.ActionLogUpdate); err != nil {
		return nil, err
	}

	log, err := s.logRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, log.TeamID)

	return log, nil
}

// DeleteWasteLog removes a log.
func (s *WasteLogService) DeleteWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
	if err := authz.Require(p, authz.ActionLogDelete); err != nil {
		return err
	}

	log, err := s.logRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.logRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateSummary(ctx, log.TeamID)

	return nil
}

// invalidateSummary drops the cached analytics summary for a team after its
// logs change. Best effort.
func (s *WasteLogService) invalidateSummary(ctx context.Context, teamID primitive.ObjectID) {
	_ = s.cache.Delete(ctx, cache.TeamSummaryCacheKey(teamID.Hex()))
}

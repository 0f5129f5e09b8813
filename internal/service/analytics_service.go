package service

import (
	"context"
	"time"

	"wastetrack/internal/authz"
	"wastetrack/internal/cache"
	"wastetrack/internal/models"
	"wastetrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	summaryCacheTTL = 5 * time.Minute
	// recentEntryLimit bounds the recent-entries section of a summary.
	recentEntryLimit = 10
)

// AnalyticsService computes per-team waste statistics. Both operations are
// team-scoped: managers see their own team, admins name any team.
type AnalyticsService struct {
	logRepo  repository.WasteLogRepository
	teamRepo repository.TeamRepository
	cache    cache.Cache
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(logRepo repository.WasteLogRepository, teamRepo repository.TeamRepository, cache cache.Cache) *AnalyticsService {
	return &AnalyticsService{
		logRepo:  logRepo,
		teamRepo: teamRepo,
		cache:    cache,
	}
}

// TeamLogs lists a team's waste logs, newest first.
func (s *AnalyticsService) TeamLogs(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID, page, limit int) (*models.WasteLogListResponse, error) {
	if err := authz.Require(p, authz.ActionTeamLogs); err != nil {
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

	logs, total, err := s.logRepo.FindByTeamID(ctx, teamID, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.WasteLogListResponse{
		Items:      logs,
		Pagination: models.NewPagination(page, limit, total),
	}, nil
}

// TeamSummary aggregates a team's waste logs: entry count, total weight,
// per-type weights (zero-filled for types with no entries) and the most
// recent entries. Results are cached briefly; log writes invalidate them.
func (s *AnalyticsService) TeamSummary(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID) (*models.TeamWasteSummary, error) {
	if err := authz.Require(p, authz.ActionTeamSummary); err != nil {
		return nil, err
	}

	teamID, err := authz.ResolveTeamScope(requestedTeam, p)
	if err != nil {
		return nil, err
	}
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	cacheKey := cache.TeamSummaryCacheKey(teamID.Hex())
	var cached models.TeamWasteSummary
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	totalEntries, err := s.logRepo.CountByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	totalWeight, err := s.logRepo.SumWeightByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	byType, err := s.logRepo.SumWeightByType(ctx, teamID)
	if err != nil {
		return nil, err
	}

	recent, err := s.logRepo.FindRecentByTeamID(ctx, teamID, recentEntryLimit)
	if err != nil {
		return nil, err
	}

	summary := &models.TeamWasteSummary{
		TotalEntries:  totalEntries,
		TotalWasteKg:  totalWeight,
		WasteByType:   byType,
		RecentEntries: recent,
	}

	_ = s.cache.Set(ctx, cacheKey, summary, summaryCacheTTL)

	return summary, nil
}

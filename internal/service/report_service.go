package service

import (
	"context"
	"errors"
	"log"
	"time"

	"wastetrack/internal/authz"
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"
	"wastetrack/internal/queue"
	"wastetrack/internal/repository"
	"wastetrack/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// downloadURLExpiry is how long a report's pre-signed download URL stays
// valid.
const downloadURLExpiry = 15 * time.Minute

// ReportService handles CSV export requests. Generation is asynchronous: a
// request enqueues a job and returns a pending report, a background worker
// uploads the file and flips the report to ready.
type ReportService struct {
	reportRepo repository.ReportRepository
	teamRepo   repository.TeamRepository
	queue      queue.Queue
	storage    storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository, teamRepo repository.TeamRepository, q queue.Queue, store storage.Storage) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		teamRepo:   teamRepo,
		queue:      q,
		storage:    store,
	}
}

// RequestReport creates a pending report for a team's logs and enqueues the
// export job. If the queue is full the report is marked failed immediately.
func (s *ReportService) RequestReport(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID) (*models.Report, error) {
	if err := authz.Require(p, authz.ActionReportCreate); err != nil {
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

	report := &models.Report{
		TeamID:      teamID,
		RequestedBy: p.ID,
		Status:      models.ReportPending,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	job := queue.ExportJob{
		ReportID: report.ID,
		TeamID:   teamID,
	}
	if err := s.queue.Enqueue(job); err != nil {
		if updateErr := s.reportRepo.UpdateStatus(ctx, report.ID, models.ReportFailed); updateErr != nil {
			log.Printf("Failed to mark report %s as failed: %v", report.ID.Hex(), updateErr)
		}
		if errors.Is(err, queue.ErrQueueFull) {
			return nil, apperrors.ErrReportQueueFull
		}
		return nil, err
	}

	return report, nil
}

// GetReport retrieves a report, attaching a pre-signed download URL once the
// file is ready. Visible to admins, the requester, and managers of the
// report's team.
func (s *ReportService) GetReport(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.canViewReport(p, report) {
		return nil, apperrors.ErrForbidden
	}

	if report.Status == models.ReportReady && report.FileKey != "" {
		url, err := s.storage.GetPresignedURL(ctx, report.FileKey, downloadURLExpiry)
		if err != nil {
			return nil, err
		}
		report.DownloadURL = url
	}

	return report, nil
}

func (s *ReportService) canViewReport(p authz.Principal, report *models.Report) bool {
	if p.IsAdmin() {
		return true
	}
	if p.ID == report.RequestedBy {
		return true
	}
	return p.Role == models.RoleManager && p.OnTeam(report.TeamID)
}

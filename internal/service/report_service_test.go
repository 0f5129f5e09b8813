package service

import (
	"context"
	"testing"
	"time"

	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"
	"wastetrack/internal/queue"
	repomocks "wastetrack/internal/repository/mocks"
	storagemocks "wastetrack/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestReportService_RequestReport(t *testing.T) {
	teamID := primitive.NewObjectID()

	t.Run("manager enqueues an export for their team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		var createdID primitive.ObjectID
		mockReportRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, report *models.Report) error {
				report.ID = primitive.NewObjectID()
				createdID = report.ID
				return nil
			})

		service := NewReportService(mockReportRepo, knownTeamRepo(ctrl, teamID), q, mockStorage)
		report, err := service.RequestReport(context.Background(), memberPrincipal(models.RoleManager, teamID), nil)

		require.NoError(t, err)
		assert.Equal(t, models.ReportPending, report.Status)
		assert.Equal(t, teamID, report.TeamID)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		job, err := q.Dequeue(ctx)
		require.NoError(t, err)
		assert.Equal(t, createdID, job.ReportID)
		assert.Equal(t, teamID, job.TeamID)
	})

	t.Run("marks the report failed when the queue is full", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(1)
		defer q.Close()
		require.NoError(t, q.Enqueue(queue.ExportJob{ReportID: primitive.NewObjectID(), TeamID: teamID}))

		mockReportRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, report *models.Report) error {
				report.ID = primitive.NewObjectID()
				return nil
			})
		mockReportRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), models.ReportFailed).
			Return(nil)

		service := NewReportService(mockReportRepo, knownTeamRepo(ctrl, teamID), q, mockStorage)
		_, err := service.RequestReport(context.Background(), memberPrincipal(models.RoleManager, teamID), nil)

		assert.Equal(t, apperrors.ErrReportQueueFull, err)
	})

	t.Run("admin must name a team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		service := NewReportService(mockReportRepo, knownTeamRepo(ctrl, teamID), q, mockStorage)
		_, err := service.RequestReport(context.Background(), adminPrincipal(), nil)

		assert.Equal(t, apperrors.ErrAdminTeamRequired, err)
	})

	t.Run("forbids employees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		service := NewReportService(mockReportRepo, knownTeamRepo(ctrl, teamID), q, mockStorage)
		_, err := service.RequestReport(context.Background(), memberPrincipal(models.RoleEmployee, teamID), nil)

		assert.Equal(t, apperrors.ErrForbidden, err)
	})

	t.Run("manager cannot export another team", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		otherTeam := primitive.NewObjectID()
		service := NewReportService(mockReportRepo, knownTeamRepo(ctrl, teamID), q, mockStorage)
		_, err := service.RequestReport(context.Background(), memberPrincipal(models.RoleManager, teamID), &otherTeam)

		assert.Equal(t, apperrors.ErrNotTeamMember, err)
	})

	t.Run("admin naming a missing team gets not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		ghostTeam := primitive.NewObjectID()
		service := NewReportService(mockReportRepo, missingTeamRepo(ctrl), q, mockStorage)
		_, err := service.RequestReport(context.Background(), adminPrincipal(), &ghostTeam)

		assert.Equal(t, apperrors.ErrTeamNotFound, err)
		assert.Equal(t, 0, q.Len())
	})
}

func TestReportService_GetReport(t *testing.T) {
	teamID := primitive.NewObjectID()
	reportID := primitive.NewObjectID()

	t.Run("attaches a download URL once ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		p := memberPrincipal(models.RoleManager, teamID)
		fileKey := "reports/" + teamID.Hex() + "/" + reportID.Hex() + ".csv"

		mockReportRepo.EXPECT().
			FindByID(gomock.Any(), reportID).
			Return(&models.Report{
				ID:          reportID,
				TeamID:      teamID,
				RequestedBy: p.ID,
				Status:      models.ReportReady,
				FileKey:     fileKey,
				EntryCount:  42,
			}, nil)
		mockStorage.EXPECT().
			GetPresignedURL(gomock.Any(), fileKey, 15*time.Minute).
			Return("https://example.com/signed", nil)

		service := NewReportService(mockReportRepo, repomocks.NewMockTeamRepository(ctrl), q, mockStorage)
		report, err := service.GetReport(context.Background(), p, reportID)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/signed", report.DownloadURL)
		assert.Equal(t, 42, report.EntryCount)
	})

	t.Run("pending report has no download URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		p := memberPrincipal(models.RoleManager, teamID)
		mockReportRepo.EXPECT().
			FindByID(gomock.Any(), reportID).
			Return(&models.Report{
				ID:          reportID,
				TeamID:      teamID,
				RequestedBy: p.ID,
				Status:      models.ReportPending,
			}, nil)

		service := NewReportService(mockReportRepo, repomocks.NewMockTeamRepository(ctrl), q, mockStorage)
		report, err := service.GetReport(context.Background(), p, reportID)

		require.NoError(t, err)
		assert.Empty(t, report.DownloadURL)
	})

	t.Run("manager of the report's team may read it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		mockReportRepo.EXPECT().
			FindByID(gomock.Any(), reportID).
			Return(&models.Report{
				ID:          reportID,
				TeamID:      teamID,
				RequestedBy: primitive.NewObjectID(),
				Status:      models.ReportProcessing,
			}, nil)

		service := NewReportService(mockReportRepo, repomocks.NewMockTeamRepository(ctrl), q, mockStorage)
		_, err := service.GetReport(context.Background(), memberPrincipal(models.RoleManager, teamID), reportID)

		assert.NoError(t, err)
	})

	t.Run("employee cannot read someone else's report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		mockReportRepo.EXPECT().
			FindByID(gomock.Any(), reportID).
			Return(&models.Report{
				ID:          reportID,
				TeamID:      teamID,
				RequestedBy: primitive.NewObjectID(),
			}, nil)

		service := NewReportService(mockReportRepo, repomocks.NewMockTeamRepository(ctrl), q, mockStorage)
		_, err := service.GetReport(context.Background(), memberPrincipal(models.RoleEmployee, teamID), reportID)

		assert.Equal(t, apperrors.ErrForbidden, err)
	})

	t.Run("reports a missing report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockReportRepo := repomocks.NewMockReportRepository(ctrl)
		mockStorage := storagemocks.NewMockStorage(ctrl)
		q := queue.NewMemoryQueue(10)
		defer q.Close()

		mockReportRepo.EXPECT().
			FindByID(gomock.Any(), reportID).
			Return(nil, apperrors.ErrReportNotFound)

		service := NewReportService(mockReportRepo, repomocks.NewMockTeamRepository(ctrl), q, mockStorage)
		_, err := service.GetReport(context.Background(), adminPrincipal(), reportID)

		assert.Equal(t, apperrors.ErrReportNotFound, err)
	})
}

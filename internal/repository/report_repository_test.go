package repository

import (
	"context"
	"testing"

	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReportRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewReportRepository(tdb.Database)
	ctx := context.Background()

	t.Run("lifecycle pending to ready", func(t *testing.T) {
		tdb.ClearCollection(t, "reports")

		report := &models.Report{
			TeamID:      primitive.NewObjectID(),
			RequestedBy: primitive.NewObjectID(),
		}
		require.NoError(t, repo.Create(ctx, report))
		assert.Equal(t, models.ReportPending, report.Status)

		require.NoError(t, repo.UpdateStatus(ctx, report.ID, models.ReportProcessing))

		require.NoError(t, repo.MarkReady(ctx, report.ID, "reports/abc.csv", 42))

		found, err := repo.FindByID(ctx, report.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReportReady, found.Status)
		assert.Equal(t, "reports/abc.csv", found.FileKey)
		assert.Equal(t, 42, found.EntryCount)
	})

	t.Run("status update on missing report", func(t *testing.T) {
		err := repo.UpdateStatus(ctx, primitive.NewObjectID(), models.ReportFailed)
		assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, apperrors.ErrReportNotFound)
	})
}

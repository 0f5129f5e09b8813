package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"testing"
	"time"

	"wastetrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeLogRepo serves a fixed set of logs through the paginated finder.
type fakeLogRepo struct {
	logs []models.WasteLog
	err  error
}

func (f *fakeLogRepo) Create(ctx context.Context, log *models.WasteLog) error { return nil }
func (f *fakeLogRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.WasteLog, error) {
	return nil, nil
}
func (f *fakeLogRepo) FindAll(ctx context.Context, page, limit int) ([]models.WasteLog, int, error) {
	return nil, 0, nil
}
func (f *fakeLogRepo) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, page, limit int) ([]models.WasteLog, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	start := (page - 1) * limit
	if start >= len(f.logs) {
		return nil, len(f.logs), nil
	}
	end := start + limit
	if end > len(f.logs) {
		end = len(f.logs)
	}
	return f.logs[start:end], len(f.logs), nil
}
func (f *fakeLogRepo) FindRecentByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int) ([]models.WasteLog, error) {
	return nil, nil
}
func (f *fakeLogRepo) CountByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error) {
	return 0, nil
}
func (f *fakeLogRepo) SumWeightByTeamID(ctx context.Context, teamID primitive.ObjectID) (float64, error) {
	return 0, nil
}
func (f *fakeLogRepo) SumWeightByType(ctx context.Context, teamID primitive.ObjectID) (map[models.WasteType]float64, error) {
	return nil, nil
}
func (f *fakeLogRepo) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateWasteLogRequest) (*models.WasteLog, error) {
	return nil, nil
}
func (f *fakeLogRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

// fakeStorage captures uploaded objects in memory.
type fakeStorage struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (f *fakeStorage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeStorage) GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://storage.example.com/" + key, nil
}

func sampleLog(teamID primitive.ObjectID, wasteType models.WasteType, weight float64) models.WasteLog {
	return models.WasteLog{
		ID:          primitive.NewObjectID(),
		WasteType:   wasteType,
		WeightKg:    weight,
		Description: "weekly pickup",
		TeamID:      teamID,
		CreatedByID: primitive.NewObjectID(),
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCSVExporter_Export(t *testing.T) {
	t.Run("exports team logs as CSV", func(t *testing.T) {
		teamID := primitive.NewObjectID()
		reportID := primitive.NewObjectID()
		repo := &fakeLogRepo{logs: []models.WasteLog{
			sampleLog(teamID, models.WastePlastic, 12.5),
			sampleLog(teamID, models.WasteGlass, 3),
		}}
		store := newFakeStorage()
		exporter := NewCSVExporter(repo, store)

		key, count, err := exporter.Export(context.Background(), teamID, reportID)

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.Equal(t, "reports/"+teamID.Hex()+"/"+reportID.Hex()+".csv", key)
		assert.Equal(t, "text/csv", store.types[key])

		records, err := csv.NewReader(bytes.NewReader(store.objects[key])).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3) // header + 2 rows
		assert.Equal(t, []string{"id", "wasteType", "weightKg", "description", "createdById", "createdAt"}, records[0])
		assert.Equal(t, "plastic", records[1][1])
		assert.Equal(t, "12.5", records[1][2])
		assert.Equal(t, "glass", records[2][1])
		assert.Equal(t, "2025-06-01T10:00:00Z", records[2][5])
	})

	t.Run("exports header only for empty team", func(t *testing.T) {
		teamID := primitive.NewObjectID()
		store := newFakeStorage()
		exporter := NewCSVExporter(&fakeLogRepo{}, store)

		key, count, err := exporter.Export(context.Background(), teamID, primitive.NewObjectID())

		require.NoError(t, err)
		assert.Equal(t, 0, count)

		records, err := csv.NewReader(bytes.NewReader(store.objects[key])).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("pages through large result sets", func(t *testing.T) {
		teamID := primitive.NewObjectID()
		logs := make([]models.WasteLog, pageSize+10)
		for i := range logs {
			logs[i] = sampleLog(teamID, models.WastePaper, 1)
		}
		store := newFakeStorage()
		exporter := NewCSVExporter(&fakeLogRepo{logs: logs}, store)

		key, count, err := exporter.Export(context.Background(), teamID, primitive.NewObjectID())

		require.NoError(t, err)
		assert.Equal(t, pageSize+10, count)

		records, err := csv.NewReader(bytes.NewReader(store.objects[key])).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, pageSize+11)
	})

	t.Run("returns repository error", func(t *testing.T) {
		exporter := NewCSVExporter(&fakeLogRepo{err: assert.AnError}, newFakeStorage())

		_, _, err := exporter.Export(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())

		assert.Error(t, err)
	})

	t.Run("returns storage error", func(t *testing.T) {
		teamID := primitive.NewObjectID()
		store := newFakeStorage()
		store.putErr = assert.AnError
		repo := &fakeLogRepo{logs: []models.WasteLog{sampleLog(teamID, models.WasteMetal, 2)}}
		exporter := NewCSVExporter(repo, store)

		_, _, err := exporter.Export(context.Background(), teamID, primitive.NewObjectID())

		assert.Error(t, err)
	})
}

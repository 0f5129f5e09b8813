package repository

import (
	"context"
	"errors"
	"time"

	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReportRepository defines the interface for export report data operations.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus) error
	MarkReady(ctx context.Context, id primitive.ObjectID, fileKey string, entryCount int) error
}

// reportRepository implements ReportRepository using MongoDB.
type reportRepository struct {
	collection *mongo.Collection
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *mongo.Database) ReportRepository {
	return &reportRepository{
		collection: db.Collection("reports"),
	}
}

// Create inserts a new report in pending state.
func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	now := time.Now()
	report.ID = primitive.NewObjectID()
	report.Status = models.ReportPending
	report.CreatedAt = now
	report.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, report)
	return mapStoreError(err)
}

// FindByID finds a report by its ID.
func (r *reportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var report models.Report
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, mapStoreError(err)
	}
	return &report, nil
}

// UpdateStatus sets a report's processing status.
func (r *reportRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ReportStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return mapStoreError(err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}

// MarkReady records the uploaded file and flips the report to ready.
func (r *reportRepository) MarkReady(ctx context.Context, id primitive.ObjectID, fileKey string, entryCount int) error {
	update := bson.M{"$set": bson.M{
		"status":     models.ReportReady,
		"fileKey":    fileKey,
		"entryCount": entryCount,
		"updatedAt":  time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return mapStoreError(err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}

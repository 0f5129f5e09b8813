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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WasteLogRepository defines the interface for waste log data operations.
type WasteLogRepository interface {
	Create(ctx context.Context, log *models.WasteLog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.WasteLog, error)
	FindAll(ctx context.Context, page, limit int) ([]models.WasteLog, int, error)
	FindByTeamID(ctx context.Context, teamID primitive.ObjectID, page, limit int) ([]models.WasteLog, int, error)
	FindRecentByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int) ([]models.WasteLog, error)
	CountByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error)
	SumWeightByTeamID(ctx context.Context, teamID primitive.ObjectID) (float64, error)
	SumWeightByType(ctx context.Context, teamID primitive.ObjectID) (map[models.WasteType]float64, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateWasteLogRequest) (*models.WasteLog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// wasteLogRepository implements WasteLogRepository using MongoDB.
type wasteLogRepository struct {
	collection *mongo.Collection
}

// NewWasteLogRepository creates a new WasteLogRepository.
func NewWasteLogRepository(db *mongo.Database) WasteLogRepository {
	return &wasteLogRepository{
		collection: db.Collection("waste_logs"),
	}
}

// Create inserts a new waste log.
func (r *wasteLogRepository) Create(ctx context.Context, log *models.WasteLog) error {
	now := time.Now()
	log.ID = primitive.NewObjectID()
	log.CreatedAt = now
	log.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, log)
	return mapStoreError(err)
}

// FindByID finds a waste log by its ID.
func (r *wasteLogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.WasteLog, error) {
	var log models.WasteLog
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrWasteLogNotFound
		}
		return nil, mapStoreError(err)
	}
	return &log, nil
}

// FindAll returns all waste logs paginated, newest first.
func (r *wasteLogRepository) FindAll(ctx context.Context, page, limit int) ([]models.WasteLog, int, error) {
	return r.findPaginated(ctx, bson.M{}, page, limit)
}

// FindByTeamID returns a team's waste logs paginated, newest first.
func (r *wasteLogRepository) FindByTeamID(ctx context.Context, teamID primitive.ObjectID, page, limit int) ([]models.WasteLog, int, error) {
	return r.findPaginated(ctx, bson.M{"teamId": teamID}, page, limit)
}

func (r *wasteLogRepository) findPaginated(ctx context.Context, filter bson.M, page, limit int) ([]models.WasteLog, int, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, mapStoreError(err)
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, mapStoreError(err)
	}
	defer cursor.Close(ctx)

	var logs []models.WasteLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, 0, mapStoreError(err)
	}
	if logs == nil {
		logs = []models.WasteLog{}
	}

	return logs, int(total), nil
}

// FindRecentByTeamID returns a team's most recent waste logs.
func (r *wasteLogRepository) FindRecentByTeamID(ctx context.Context, teamID primitive.ObjectID, limit int) ([]models.WasteLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"teamId": teamID}, opts)
	if err != nil {
		return nil, mapStoreError(err)
	}
	defer cursor.Close(ctx)

	var logs []models.WasteLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, mapStoreError(err)
	}
	if logs == nil {
		logs = []models.WasteLog{}
	}

	return logs, nil
}

// CountByTeamID counts a team's waste logs.
func (r *wasteLogRepository) CountByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return 0, mapStoreError(err)
	}
	return int(count), nil
}

// SumWeightByTeamID sums the weight of a team's waste logs.
func (r *wasteLogRepository) SumWeightByTeamID(ctx context.Context, teamID primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"teamId": teamID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$weightKg"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, mapStoreError(err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, mapStoreError(err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

// SumWeightByType sums a team's waste weight grouped by waste type. Every
// known type is present in the result, zero-filled when absent.
func (r *wasteLogRepository) SumWeightByType(ctx context.Context, teamID primitive.ObjectID) (map[models.WasteType]float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"teamId": teamID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$wasteType",
			"total": bson.M{"$sum": "$weightKg"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mapStoreError(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		WasteType models.WasteType `bson:"_id"`
		Total     float64          `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, mapStoreError(err)
	}

	byType := make(map[models.WasteType]float64, len(models.WasteTypes))
	for _, wt := range models.WasteTypes {
		byType[wt] = 0
	}
	for _, res := range results {
		byType[res.WasteType] = res.Total
	}

	return byType, nil
}

// Update applies a partial update and returns the updated log. Team and
// author fields are never touched here.
func (r *wasteLogRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateWasteLogRequest) (*models.WasteLog, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.WasteType != nil {
		set["wasteType"] = *update.WasteType
	}
	if update.WeightKg != nil {
		set["weightKg"] = *update.WeightKg
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var log models.WasteLog
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrWasteLogNotFound
		}
		return nil, mapStoreError(err)
	}

	return &log, nil
}

// Delete removes a waste log.
func (r *wasteLogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapStoreError(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrWasteLogNotFound
	}
	return nil
}

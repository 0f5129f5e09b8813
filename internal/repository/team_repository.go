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

// TeamRepository defines the interface for team data operations.
type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Team, int, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTeamRequest) (*models.Team, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// teamRepository implements TeamRepository using MongoDB.
type teamRepository struct {
	collection *mongo.Collection
}

// NewTeamRepository creates a new TeamRepository.
func NewTeamRepository(db *mongo.Database) TeamRepository {
	return &teamRepository{
		collection: db.Collection("teams"),
	}
}

// Create inserts a new team.
func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	now := time.Now()
	team.ID = primitive.NewObjectID()
	team.CreatedAt = now
	team.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, team)
	return mapStoreError(err)
}

// FindByID retrieves a team by ID.
func (r *teamRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, mapStoreError(err)
	}
	return &team, nil
}

// FindAll returns paginated teams sorted by name.
func (r *teamRepository) FindAll(ctx context.Context, page, limit int) ([]models.Team, int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, mapStoreError(err)
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, mapStoreError(err)
	}
	defer cursor.Close(ctx)

	var teams []models.Team
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, 0, mapStoreError(err)
	}
	if teams == nil {
		teams = []models.Team{}
	}

	return teams, int(total), nil
}

// Update applies a partial update and returns the updated team.
func (r *teamRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateTeamRequest) (*models.Team, error) {
	set := bson.M{"updatedAt": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var team models.Team
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&team)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, mapStoreError(err)
	}

	return &team, nil
}

// Delete removes a team. The member check lives in the service layer.
func (r *teamRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapStoreError(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

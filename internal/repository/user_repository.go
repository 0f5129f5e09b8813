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

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks wastetrack/internal/repository UserRepository,TeamRepository,WasteLogRepository,ReportRepository

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]models.User, int, error)
	Update(ctx context.Context, id primitive.ObjectID, patch *models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error)
	SetAuthToken(ctx context.Context, id primitive.ObjectID, token string) error
}

// userRepository implements UserRepository using MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user. Uniqueness of username and email is enforced by
// indexes and surfaces as ErrDuplicateRecord.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return mapStoreError(err)
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, mapStoreError(err)
	}
	return &user, nil
}

// FindByUsername finds a user by their username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, mapStoreError(err)
	}
	return &user, nil
}

// FindAll returns paginated users, newest first.
func (r *userRepository) FindAll(ctx context.Context, page, limit int) ([]models.User, int, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, mapStoreError(err)
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, mapStoreError(err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, mapStoreError(err)
	}
	if users == nil {
		users = []models.User{}
	}

	return users, int(total), nil
}

// Update applies a resolved patch field by field. The team assignment is
// only touched when SetTeam is true; a nil TeamID then unsets it.
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, patch *models.UserPatch) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now()}
	unset := bson.M{}

	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.FullName != nil {
		set["fullName"] = *patch.FullName
	}
	if patch.HashedPassword != nil {
		set["hashedPassword"] = *patch.HashedPassword
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.IsActive != nil {
		set["isActive"] = *patch.IsActive
	}
	if patch.SetTeam {
		if patch.TeamID != nil {
			set["teamId"] = *patch.TeamID
		} else {
			unset["teamId"] = ""
		}
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, mapStoreError(err)
	}

	return &user, nil
}

// Delete removes a user.
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapStoreError(err)
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CountByTeamID counts users assigned to a team.
func (r *userRepository) CountByTeamID(ctx context.Context, teamID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"teamId": teamID})
	if err != nil {
		return 0, mapStoreError(err)
	}
	return int(count), nil
}

// SetAuthToken atomically overwrites the user's single recognized session
// token. With two concurrent logins exactly one write lands last and wins;
// the loser's token is rejected on its next validation. An empty token
// clears the session entirely.
func (r *userRepository) SetAuthToken(ctx context.Context, id primitive.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"updatedAt": time.Now()}}
	if token == "" {
		update["$unset"] = bson.M{"authToken": ""}
	} else {
		update["$set"].(bson.M)["authToken"] = token
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return mapStoreError(err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

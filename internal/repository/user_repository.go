// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"movie-api/internal/database"
	apperrors "movie-api/internal/errors"
	"movie-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_user_repository.go -package=mocks movie-api/internal/repository UserRepository

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindProfile(ctx context.Context, username string) (*models.UserProfile, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (*models.User, error)
	AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	RemoveFavoriteFromAll(ctx context.Context, movieID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, username string) (*models.User, error)
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(database.UsersCollection),
	}
}

// duplicateKeyError maps a unique index violation to the matching domain error
func duplicateKeyError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	if strings.Contains(err.Error(), "username") {
		return apperrors.ErrUsernameTaken
	}
	return apperrors.ErrEmailTaken
}

// Create inserts a new user. Uniqueness is enforced by the users indexes.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []primitive.ObjectID{}
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return duplicateKeyError(err)
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByUsername finds a user by their username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindProfile returns the user with favorite movies expanded to full documents
func (r *userRepository) FindProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": username}}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$lookup", Value: bson.M{
			"from":         database.MoviesCollection,
			"localField":   "favoriteMovies",
			"foreignField": "_id",
			"as":           "favoriteMovies",
		}}},
		{{Key: "$project", Value: bson.M{"password": 0}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrUserNotFound
	}

	var profile models.UserProfile
	if err := cursor.Decode(&profile); err != nil {
		return nil, err
	}
	if profile.FavoriteMovies == nil {
		profile.FavoriteMovies = []models.Movie{}
	}

	return &profile, nil
}

// Update sets the present fields of update and returns the updated user
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (*models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Birthday != nil {
		set["birthday"] = *update.Birthday
	}

	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

// AddFavorite adds movieID to the user's favorites. Adding an existing favorite is a no-op.
func (r *userRepository) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return r.findOneAndUpdate(ctx, bson.M{"username": username}, bson.M{
		"$addToSet": bson.M{"favoriteMovies": movieID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
}

// RemoveFavorite removes movieID from the user's favorites. Removing a non-favorite is a no-op.
func (r *userRepository) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return r.findOneAndUpdate(ctx, bson.M{"username": username}, bson.M{
		"$pull": bson.M{"favoriteMovies": movieID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

// RemoveFavoriteFromAll drops movieID from every user's favorites
func (r *userRepository) RemoveFavoriteFromAll(ctx context.Context, movieID primitive.ObjectID) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"favoriteMovies": movieID},
		bson.M{"$pull": bson.M{"favoriteMovies": movieID}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *userRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.User, error) {
	var user models.User

	err := r.collection.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, duplicateKeyError(err)
	}

	return &user, nil
}

// Delete removes a user by username and returns the removed document
func (r *userRepository) Delete(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOneAndDelete(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

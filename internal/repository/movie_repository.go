package repository

import (
	"context"
	"errors"
	"time"

	"movie-api/internal/database"
	apperrors "movie-api/internal/errors"
	"movie-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -destination=mocks/mock_movie_repository.go -package=mocks movie-api/internal/repository MovieRepository

// MovieRepository defines the interface for movie data operations
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	FindGenreByName(ctx context.Context, name string) (*models.Genre, error)
	FindDirectorByName(ctx context.Context, name string) (*models.Director, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateMovieRequest) (previous, updated *models.Movie, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
}

// movieRepository implements MovieRepository using MongoDB
type movieRepository struct {
	collection *mongo.Collection
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(db *mongo.Database) MovieRepository {
	return &movieRepository{
		collection: db.Collection(database.MoviesCollection),
	}
}

// firstMatch returns options selecting the oldest matching document.
func firstMatch() *options.FindOneOptions {
	return options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
}

// Create inserts a new movie
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	now := time.Now().UTC()
	movie.CreatedAt = now
	movie.UpdatedAt = now
	if movie.Actors == nil {
		movie.Actors = []string{}
	}

	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		return err
	}

	movie.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAll returns all movies ordered by insertion
func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if movies == nil {
		movies = []models.Movie{}
	}

	return movies, nil
}

// FindByID finds a movie by its ID
func (r *movieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByTitle finds the first movie whose title matches exactly
func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *movieRepository) findOne(ctx context.Context, filter bson.M) (*models.Movie, error) {
	var movie models.Movie

	err := r.collection.FindOne(ctx, filter, firstMatch()).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, err
	}

	return &movie, nil
}

// FindGenreByName returns the genre of the first movie whose genre name matches exactly
func (r *movieRepository) FindGenreByName(ctx context.Context, name string) (*models.Genre, error) {
	var doc struct {
		Genre models.Genre `bson:"genre"`
	}

	opts := firstMatch().SetProjection(bson.M{"genre": 1})
	err := r.collection.FindOne(ctx, bson.M{"genre.name": name}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrGenreNotFound
		}
		return nil, err
	}

	return &doc.Genre, nil
}

// FindDirectorByName returns the director of the first movie whose director name matches exactly
func (r *movieRepository) FindDirectorByName(ctx context.Context, name string) (*models.Director, error) {
	var doc struct {
		Director models.Director `bson:"director"`
	}

	opts := firstMatch().SetProjection(bson.M{"director": 1})
	err := r.collection.FindOne(ctx, bson.M{"director.name": name}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrDirectorNotFound
		}
		return nil, err
	}

	return &doc.Director, nil
}

// Exists reports whether a movie with the given ID exists
func (r *movieRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Update applies the present fields of update in one atomic step and returns
// the movie as it was before and after the change.
func (r *movieRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateMovieRequest) (*models.Movie, *models.Movie, error) {
	// BSON dates keep milliseconds; truncate so the returned copy matches the stored one
	now := time.Now().UTC().Truncate(time.Millisecond)
	set := bson.M{"updatedAt": now}

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Genre != nil {
		set["genre"] = *update.Genre
	}
	if update.Director != nil {
		set["director"] = *update.Director
	}
	if update.Actors != nil {
		set["actors"] = update.Actors
	}
	if update.ImagePath != nil {
		set["imagePath"] = *update.ImagePath
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}

	var previous models.Movie
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.Before),
	).Decode(&previous)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, apperrors.ErrMovieNotFound
		}
		return nil, nil, err
	}

	updated := applyMovieUpdate(previous, update)
	updated.UpdatedAt = now
	return &previous, &updated, nil
}

// applyMovieUpdate mirrors the $set built by Update on an in-memory copy.
func applyMovieUpdate(movie models.Movie, update *models.UpdateMovieRequest) models.Movie {
	if update.Title != nil {
		movie.Title = *update.Title
	}
	if update.Description != nil {
		movie.Description = *update.Description
	}
	if update.Genre != nil {
		movie.Genre = *update.Genre
	}
	if update.Director != nil {
		movie.Director = *update.Director
	}
	if update.Actors != nil {
		movie.Actors = update.Actors
	}
	if update.ImagePath != nil {
		movie.ImagePath = *update.ImagePath
	}
	if update.Featured != nil {
		movie.Featured = *update.Featured
	}
	return movie
}

// Delete removes a movie and returns the removed document
func (r *movieRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMovieNotFound
		}
		return nil, err
	}

	return &movie, nil
}

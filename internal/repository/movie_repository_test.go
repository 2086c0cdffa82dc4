package repository

import (
	"context"
	"testing"
	"time"

	"movie-api/internal/database"
	apperrors "movie-api/internal/errors"
	"movie-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestMovie(title, genre, director string) *models.Movie {
	return &models.Movie{
		Title:       title,
		Description: title + " description",
		Genre:       models.Genre{Name: genre, Description: genre + " description"},
		Director:    models.Director{Name: director, Bio: director + " bio"},
		Actors:      []string{"Actor One", "Actor Two"},
	}
}

func TestMovieRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMovieRepository(tdb.Database)
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		tdb.ClearCollection(t, database.MoviesCollection)

		movie := newTestMovie("Inception", "Science Fiction", "Christopher Nolan")
		err := repo.Create(ctx, movie)

		require.NoError(t, err)
		assert.False(t, movie.ID.IsZero())
		assert.NotZero(t, movie.CreatedAt)
		assert.NotZero(t, movie.UpdatedAt)
	})

	t.Run("create then find returns the draft", func(t *testing.T) {
		tdb.ClearCollection(t, database.MoviesCollection)

		movie := newTestMovie("Fight Club", "Drama", "David Fincher")
		movie.Featured = true
		require.NoError(t, repo.Create(ctx, movie))

		found, err := repo.FindByID(ctx, movie.ID)

		require.NoError(t, err)
		assert.Equal(t, movie.Title, found.Title)
		assert.Equal(t, movie.Description, found.Description)
		assert.Equal(t, movie.Genre, found.Genre)
		assert.Equal(t, movie.Director, found.Director)
		assert.Equal(t, movie.Actors, found.Actors)
		assert.True(t, found.Featured)
		assert.WithinDuration(t, movie.CreatedAt, found.CreatedAt, time.Millisecond)
	})

	t.Run("stores empty actor list instead of null", func(t *testing.T) {
		tdb.ClearCollection(t, database.MoviesCollection)

		movie := newTestMovie("Solo", "Drama", "Someone")
		movie.Actors = nil
		require.NoError(t, repo.Create(ctx, movie))

		found, err := repo.FindByID(ctx, movie.ID)

		require.NoError(t, err)
		assert.NotNil(t, found.Actors)
		assert.Empty(t, found.Actors)
	})
}

func TestMovieRepository_FindAll(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMovieRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns empty slice when no movies", func(t *testing.T) {
		tdb.ClearCollection(t, database.MoviesCollection)

		movies, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, movies)
		assert.Empty(t, movies)
	})

	t.Run("returns movies in insertion order", func(t *testing.T) {
		tdb.ClearCollection(t, database.MoviesCollection)

		for _, title := range []string{"The Matrix", "Pulp Fiction", "Forrest Gump"} {
			require.NoError(t, repo.Create(ctx, newTestMovie(title, "Drama", "Director")))
		}

		movies, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, movies, 3)
		assert.Equal(t, "The Matrix", movies[0].Title)
		assert.Equal(t, "Forrest Gump", movies[2].Title)
	})
}

func TestMovieRepository_FindByTitle(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMovieRepository(tdb.Database)
	ctx := context.Background()
	tdb.ClearCollection(t, database.MoviesCollection)

	first := newTestMovie("The Matrix", "Science Fiction", "Lana Wachowski")
	require.NoError(t, repo.Create(ctx, first))
	second := newTestMovie("The Matrix", "Action", "Someone Else")
	require.NoError(t, repo.Create(ctx, second))

	t.Run("returns first match for exact title", func(t *testing.T) {
		found, err := repo.FindByTitle(ctx, "The Matrix")

		require.NoError(t, err)
		assert.Equal(t, first.ID, found.ID)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		found, err := repo.FindByTitle(ctx, "the matrix")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})

	t.Run("no partial match", func(t *testing.T) {
		found, err := repo.FindByTitle(ctx, "Matrix")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})
}

func TestMovieRepository_FindGenreAndDirector(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMovieRepository(tdb.Database)
	ctx := context.Background()
	tdb.ClearCollection(t, database.MoviesCollection)

	require.NoError(t, repo.Create(ctx, newTestMovie("Inception", "Science Fiction", "Christopher Nolan")))
	require.NoError(t, repo.Create(ctx, newTestMovie("The Dark Knight", "Action", "Christopher Nolan")))

	t.Run("finds genre by exact name", func(t *testing.T) {
		genre, err := repo.FindGenreByName(ctx, "Science Fiction")

		require.NoError(t, err)
		assert.Equal(t, &models.Genre{Name: "Science Fiction", Description: "Science Fiction description"}, genre)
	})

	t.Run("unknown genre", func(t *testing.T) {
		genre, err := repo.FindGenreByName(ctx, "science fiction")

		assert.Nil(t, genre)
		assert.Equal(t, apperrors.ErrGenreNotFound, err)
	})

	t.Run("finds director by exact name", func(t *testing.T) {
		director, err := repo.FindDirectorByName(ctx, "Christopher Nolan")

		require.NoError(t, err)
		assert.Equal(t, "Christopher Nolan bio", director.Bio)
	})

	t.Run("unknown director", func(t *testing.T) {
		director, err := repo.FindDirectorByName(ctx, "Nolan")

		assert.Nil(t, director)
		assert.Equal(t, apperrors.ErrDirectorNotFound, err)
	})
}

func TestMovieRepository_Exists(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMovieRepository(tdb.Database)
	ctx := context.Background()

	movie := newTestMovie("Inception", "Science Fiction", "Christopher Nolan")
	require.NoError(t, repo.Create(ctx, movie))

	exists, err := repo.Exists(ctx, movie.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMovieRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMovieRepository(tdb.Database)
	ctx := context.Background()

	t.Run("updates only present fields", func(t *testing.T) {
		tdb.ClearCollection(t, database.MoviesCollection)
		movie := newTestMovie("Inception", "Science Fiction", "Christopher Nolan")
		require.NoError(t, repo.Create(ctx, movie))

		featured := true
		imagePath := "https://example.com/inception.jpg"
		_, updated, err := repo.Update(ctx, movie.ID, &models.UpdateMovieRequest{
			Featured:  &featured,
			ImagePath: &imagePath,
		})

		require.NoError(t, err)
		assert.True(t, updated.Featured)
		assert.Equal(t, imagePath, updated.ImagePath)
		assert.Equal(t, movie.Title, updated.Title)
		assert.Equal(t, movie.Genre, updated.Genre)
		assert.Equal(t, movie.Actors, updated.Actors)
		assert.False(t, updated.UpdatedAt.Before(movie.UpdatedAt.Truncate(time.Millisecond)))
	})

	t.Run("replaces nested documents", func(t *testing.T) {
		tdb.ClearCollection(t, database.MoviesCollection)
		movie := newTestMovie("Inception", "Science Fiction", "Christopher Nolan")
		require.NoError(t, repo.Create(ctx, movie))

		_, updated, err := repo.Update(ctx, movie.ID, &models.UpdateMovieRequest{
			Genre: &models.Genre{Name: "Thriller", Description: "Suspense"},
		})

		require.NoError(t, err)
		assert.Equal(t, models.Genre{Name: "Thriller", Description: "Suspense"}, updated.Genre)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		title := "x"
		previous, updated, err := repo.Update(ctx, primitive.NewObjectID(), &models.UpdateMovieRequest{Title: &title})

		assert.Nil(t, previous)
		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})

	t.Run("returns the document as it was before the change", func(t *testing.T) {
		tdb.ClearCollection(t, database.MoviesCollection)
		movie := newTestMovie("Inception", "Science Fiction", "Christopher Nolan")
		movie.ImagePath = "movies/old/poster.jpg"
		require.NoError(t, repo.Create(ctx, movie))

		newPath := "movies/new/poster.png"
		previous, updated, err := repo.Update(ctx, movie.ID, &models.UpdateMovieRequest{ImagePath: &newPath})

		require.NoError(t, err)
		assert.Equal(t, "movies/old/poster.jpg", previous.ImagePath)
		assert.Equal(t, newPath, updated.ImagePath)
		assert.Equal(t, movie.ID, previous.ID)

		stored, err := repo.FindByID(ctx, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, newPath, stored.ImagePath)
		assert.True(t, stored.UpdatedAt.Equal(updated.UpdatedAt))
	})
}

func TestMovieRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMovieRepository(tdb.Database)
	ctx := context.Background()

	movie := newTestMovie("Inception", "Science Fiction", "Christopher Nolan")
	require.NoError(t, repo.Create(ctx, movie))

	t.Run("deletes existing movie", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, movie.ID)
		require.NoError(t, err)
		assert.Equal(t, movie.ID, deleted.ID)
		assert.Equal(t, movie.Title, deleted.Title)

		_, err = repo.FindByID(ctx, movie.ID)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})

	t.Run("returns not found when already deleted", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, movie.ID)
		assert.Nil(t, deleted)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})
}

// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"movie-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	suffix := primitive.NewObjectID().Hex()[:8]
	return &UserBuilder{
		user: models.User{
			ID:             primitive.NewObjectID(),
			Username:       "user" + suffix,
			Email:          fmt.Sprintf("test-%s@example.com", suffix),
			Password:       "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password123" hashed
			FavoriteMovies: []primitive.ObjectID{},
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(digest string) *UserBuilder {
	b.user.Password = digest
	return b
}

func (b *UserBuilder) WithBirthday(year int, month time.Month, day int) *UserBuilder {
	birthday := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	b.user.Birthday = &birthday
	return b
}

func (b *UserBuilder) WithFavorites(movieIDs ...primitive.ObjectID) *UserBuilder {
	b.user.FavoriteMovies = movieIDs
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Movie Fixtures =====

// MovieBuilder provides fluent API for building test movies.
type MovieBuilder struct {
	movie models.Movie
}

// NewMovie creates a new MovieBuilder with sensible defaults.
func NewMovie() *MovieBuilder {
	return &MovieBuilder{
		movie: models.Movie{
			ID:          primitive.NewObjectID(),
			Title:       fmt.Sprintf("Test Movie %s", primitive.NewObjectID().Hex()[:8]),
			Description: "A test movie.",
			Genre:       models.Genre{Name: "Drama", Description: "Narrative fiction focused on emotional themes."},
			Director:    models.Director{Name: "Test Director", Bio: "Directs test movies."},
			Actors:      []string{"Test Actor"},
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *MovieBuilder) WithID(id primitive.ObjectID) *MovieBuilder {
	b.movie.ID = id
	return b
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.movie.Title = title
	return b
}

func (b *MovieBuilder) WithGenre(name, description string) *MovieBuilder {
	b.movie.Genre = models.Genre{Name: name, Description: description}
	return b
}

func (b *MovieBuilder) WithDirector(name, bio string) *MovieBuilder {
	b.movie.Director = models.Director{Name: name, Bio: bio}
	return b
}

func (b *MovieBuilder) WithActors(actors ...string) *MovieBuilder {
	b.movie.Actors = actors
	return b
}

func (b *MovieBuilder) WithImagePath(path string) *MovieBuilder {
	b.movie.ImagePath = path
	return b
}

func (b *MovieBuilder) Featured() *MovieBuilder {
	b.movie.Featured = true
	return b
}

func (b *MovieBuilder) Build() models.Movie {
	return b.movie
}

func (b *MovieBuilder) BuildPtr() *models.Movie {
	return &b.movie
}

// CreateRequest returns the payload that would create this movie.
func (b *MovieBuilder) CreateRequest() models.CreateMovieRequest {
	return models.CreateMovieRequest{
		Title:       b.movie.Title,
		Description: b.movie.Description,
		Genre:       b.movie.Genre,
		Director:    b.movie.Director,
		Actors:      b.movie.Actors,
		ImagePath:   b.movie.ImagePath,
		Featured:    b.movie.Featured,
	}
}

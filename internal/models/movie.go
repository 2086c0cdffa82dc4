package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genre is embedded in every movie document.
type Genre struct {
	Name        string `json:"name" bson:"name" example:"Drama"`
	Description string `json:"description" bson:"description" example:"Narrative fiction focused on emotional themes."`
}

// Director is embedded in every movie document.
type Director struct {
	Name string `json:"name" bson:"name" example:"Frank Darabont"`
	Bio  string `json:"bio,omitempty" bson:"bio,omitempty" example:"French-American film director and screenwriter."`
}

// Movie represents a catalog movie.
type Movie struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title       string             `json:"title" bson:"title" example:"The Shawshank Redemption"`
	Description string             `json:"description" bson:"description" example:"Two imprisoned men bond over a number of years."`
	Genre       Genre              `json:"genre" bson:"genre"`
	Director    Director           `json:"director" bson:"director"`
	Actors      []string           `json:"actors" bson:"actors" example:"Tim Robbins,Morgan Freeman"`
	ImagePath   string             `json:"imagePath,omitempty" bson:"imagePath,omitempty" example:"movies/507f1f77bcf86cd799439011/poster.jpg"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"-" example:"https://bucket.s3.amazonaws.com/movies/...?X-Amz-Signature=..."` // Resolved at read time, not stored
	Featured    bool               `json:"featured" bson:"featured" example:"false"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// MovieSummary is the reduced view returned by title lookup.
type MovieSummary struct {
	Title       string   `json:"title" example:"The Matrix"`
	Description string   `json:"description" example:"A hacker learns the truth about his reality."`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	ImageURL    string   `json:"imageUrl" example:"https://example.com/matrix.jpg"`
	Featured    bool     `json:"featured" example:"true"`
}

// Summary returns the title lookup view of the movie.
func (m *Movie) Summary() MovieSummary {
	return MovieSummary{
		Title:       m.Title,
		Description: m.Description,
		Genre:       m.Genre,
		Director:    m.Director,
		ImageURL:    m.ImageURL,
		Featured:    m.Featured,
	}
}

// CreateMovieRequest is the payload for creating a movie.
type CreateMovieRequest struct {
	Title       string   `json:"title" example:"The Matrix"`
	Description string   `json:"description" example:"A hacker learns the truth about his reality."`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	Actors      []string `json:"actors" example:"Keanu Reeves,Laurence Fishburne"`
	ImagePath   string   `json:"imagePath,omitempty" example:"https://example.com/matrix.jpg"`
	Featured    bool     `json:"featured" example:"false"`
}

// UpdateMovieRequest is the payload for updating a movie. Nil fields are left unchanged.
type UpdateMovieRequest struct {
	Title       *string   `json:"title" example:"The Matrix Reloaded"`
	Description *string   `json:"description" example:"Neo and the rebel leaders continue the fight."`
	Genre       *Genre    `json:"genre"`
	Director    *Director `json:"director"`
	Actors      []string  `json:"actors" example:"Keanu Reeves"`
	ImagePath   *string   `json:"imagePath" example:"https://example.com/reloaded.jpg"`
	Featured    *bool     `json:"featured" example:"true"`
}

// GenreResponse is returned by genre lookup.
type GenreResponse struct {
	Genre Genre `json:"genre"`
}

// DirectorResponse is returned by director lookup.
type DirectorResponse struct {
	Director Director `json:"director"`
}

// ImageUploadResponse carries the pre-signed upload URL for a movie image.
type ImageUploadResponse struct {
	Movie     Movie  `json:"movie"`
	UploadURL string `json:"uploadUrl" example:"https://s3.amazonaws.com/bucket/movies/...?X-Amz-Algorithm=..."`
}

// ImageUploadRequest describes the image about to be uploaded.
type ImageUploadRequest struct {
	Format string `json:"format" example:"jpg"`
}

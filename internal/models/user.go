// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BirthdayLayout is the accepted birthday format.
const BirthdayLayout = "2006-01-02"

// User represents a registered user.
type User struct {
	ID             primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Username       string               `json:"username" bson:"username" example:"moviefan1"`
	Password       string               `json:"-" bson:"password"` // "-" = never include in JSON response
	Email          string               `json:"email" bson:"email" example:"fan@example.com"`
	Birthday       *time.Time           `json:"birthday,omitempty" bson:"birthday,omitempty" example:"1990-05-17T00:00:00Z"`
	FavoriteMovies []primitive.ObjectID `json:"favoriteMovies" bson:"favoriteMovies" example:"507f1f77bcf86cd799439012"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// UserProfile is a user with favorite movies resolved to full documents.
type UserProfile struct {
	ID             primitive.ObjectID `json:"id" bson:"_id" example:"507f1f77bcf86cd799439011"`
	Username       string             `json:"username" bson:"username" example:"moviefan1"`
	Email          string             `json:"email" bson:"email" example:"fan@example.com"`
	Birthday       *time.Time         `json:"birthday,omitempty" bson:"birthday,omitempty"`
	FavoriteMovies []Movie            `json:"favoriteMovies" bson:"favoriteMovies"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Username string `json:"username" example:"moviefan1"`
	Password string `json:"password" example:"secret123"`
	Email    string `json:"email" example:"fan@example.com"`
	Birthday string `json:"birthday,omitempty" example:"1990-05-17"`
}

// UpdateUserRequest is the payload for updating a user. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username" example:"moviefan2"`
	Password *string `json:"password" example:"newsecret123"`
	Email    *string `json:"email" example:"new@example.com"`
	Birthday *string `json:"birthday" example:"1991-06-01"`
}

// UserUpdate holds already validated and hashed fields to persist.
type UserUpdate struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Password == nil && u.Email == nil && u.Birthday == nil
}

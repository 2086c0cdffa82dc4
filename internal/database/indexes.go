package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec describes one index on a collection.
type IndexSpec struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes returns every index the application relies on.
func Indexes() []IndexSpec {
	return []IndexSpec{
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("username_unique"),
		}},
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("email_unique"),
		}},
		{MoviesCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("title"),
		}},
		{MoviesCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "genre.name", Value: 1}},
			Options: options.Index().SetName("genre_name"),
		}},
		{MoviesCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "director.name", Value: 1}},
			Options: options.Index().SetName("director_name"),
		}},
	}
}

// EnsureIndexes creates all indexes, returning the created names per collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) (map[string][]string, error) {
	created := make(map[string][]string)
	for _, spec := range Indexes() {
		name, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, spec.Model)
		if err != nil {
			return created, fmt.Errorf("create index on %s: %w", spec.Collection, err)
		}
		created[spec.Collection] = append(created[spec.Collection], name)
	}
	return created, nil
}

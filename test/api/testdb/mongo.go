//go:build api

// Package testdb starts the containers backing the API test suite.
package testdb

import (
	"context"
	"time"

	"movie-api/internal/database"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogDB is the MongoDB container holding movies and users.
type CatalogDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupMongoDB starts MongoDB and creates the catalog indexes in dbName.
// Lifecycle is managed by TestMain rather than t.Cleanup.
func SetupMongoDB(ctx context.Context, dbName string) (_ *CatalogDB, err error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = container.Terminate(context.Background())
		}
	}()

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	if err = client.Ping(ctx, nil); err == nil {
		_, err = database.EnsureIndexes(ctx, db)
	}
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &CatalogDB{Container: container, Client: client, Database: db}, nil
}

// Ping reports whether the catalog database answers; it backs the /health check.
func (c *CatalogDB) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, nil)
}

// Cleanup disconnects and terminates the container.
func (c *CatalogDB) Cleanup(ctx context.Context) error {
	if c.Client != nil {
		_ = c.Client.Disconnect(ctx)
	}
	if c.Container == nil {
		return nil
	}
	return c.Container.Terminate(ctx)
}

// ClearCollections empties the movies and users collections and keeps their
// unique indexes.
func (c *CatalogDB) ClearCollections(ctx context.Context) error {
	for _, name := range []string{database.MoviesCollection, database.UsersCollection} {
		if _, err := c.Database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}

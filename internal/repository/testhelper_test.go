package repository

import (
	"context"
	"testing"

	"movie-api/internal/database"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB is a catalog database with the production indexes, backed by a
// throwaway MongoDB container.
type TestDB struct {
	container *mongodb.MongoDBContainer
	client    *mongo.Client
	Database  *mongo.Database
}

// SetupTestDB starts MongoDB, connects and creates the movie and user indexes.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("repository tests need a MongoDB container")
	}

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "start mongodb container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "mongodb connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "connect to mongodb")
	require.NoError(t, client.Ping(ctx, nil), "ping mongodb")

	db := client.Database("movies_test_" + primitive.NewObjectID().Hex())
	_, err = database.EnsureIndexes(ctx, db)
	require.NoError(t, err, "create catalog indexes")

	return &TestDB{container: container, client: client, Database: db}
}

// Cleanup drops the database and stops the container. Safe to call twice.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	if tdb.client != nil {
		_ = tdb.Database.Drop(ctx)
		_ = tdb.client.Disconnect(ctx)
		tdb.client = nil
	}
	if tdb.container != nil {
		_ = tdb.container.Terminate(ctx)
		tdb.container = nil
	}
}

// ClearCollection empties one collection and keeps its indexes.
func (tdb *TestDB) ClearCollection(t *testing.T, name string) {
	t.Helper()

	_, err := tdb.Database.Collection(name).DeleteMany(context.Background(), bson.M{})
	require.NoError(t, err, "clear %s", name)
}

// ClearCatalog empties both the movies and the users collection.
func (tdb *TestDB) ClearCatalog(t *testing.T) {
	t.Helper()

	tdb.ClearCollection(t, database.MoviesCollection)
	tdb.ClearCollection(t, database.UsersCollection)
}

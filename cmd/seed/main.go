package main

import (
	"context"
	"log"
	"time"

	"movie-api/internal/config"
	"movie-api/internal/database"
	"movie-api/internal/models"
	"movie-api/internal/repository"
	"movie-api/pkg/auth"
	"movie-api/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	drama   = models.Genre{Name: "Drama", Description: "Narrative fiction focused on emotional themes and character development."}
	crime   = models.Genre{Name: "Crime", Description: "Stories centred on criminals, detectives and the law."}
	action  = models.Genre{Name: "Action", Description: "High energy films built around physical feats and set pieces."}
	fantasy = models.Genre{Name: "Fantasy", Description: "Stories set in imagined worlds with magical elements."}
	scifi   = models.Genre{Name: "Science Fiction", Description: "Speculative stories exploring science and technology."}
)

var nolan = models.Director{Name: "Christopher Nolan", Bio: "British-American filmmaker known for non-linear storytelling."}

// seedMovies is the initial catalog.
var seedMovies = []models.Movie{
	{
		Title:       "The Shawshank Redemption",
		Description: "Two imprisoned men bond over a number of years, finding solace and eventual redemption through acts of common decency.",
		Genre:       drama,
		Director:    models.Director{Name: "Frank Darabont", Bio: "French-American film director and screenwriter."},
		Actors:      []string{"Tim Robbins", "Morgan Freeman"},
		Featured:    true,
	},
	{
		Title:       "The Godfather",
		Description: "The aging patriarch of an organized crime dynasty transfers control of his empire to his reluctant son.",
		Genre:       crime,
		Director:    models.Director{Name: "Francis Ford Coppola", Bio: "American film director, producer and screenwriter."},
		Actors:      []string{"Marlon Brando", "Al Pacino"},
		Featured:    true,
	},
	{
		Title:       "The Dark Knight",
		Description: "Batman faces the Joker, a criminal mastermind who plunges Gotham into anarchy.",
		Genre:       action,
		Director:    nolan,
		Actors:      []string{"Christian Bale", "Heath Ledger"},
	},
	{
		Title:       "Pulp Fiction",
		Description: "The lives of two mob hitmen, a boxer and a pair of diner bandits intertwine in four tales of violence and redemption.",
		Genre:       crime,
		Director:    models.Director{Name: "Quentin Tarantino", Bio: "American filmmaker known for stylized violence and sharp dialogue."},
		Actors:      []string{"John Travolta", "Uma Thurman", "Samuel L. Jackson"},
	},
	{
		Title:       "Schindler's List",
		Description: "A German industrialist saves the lives of more than a thousand Jewish refugees during the Holocaust.",
		Genre:       drama,
		Director:    models.Director{Name: "Steven Spielberg", Bio: "American filmmaker and one of the founding pioneers of the New Hollywood era."},
		Actors:      []string{"Liam Neeson", "Ben Kingsley"},
	},
	{
		Title:       "The Lord of the Rings: The Return of the King",
		Description: "Gandalf and Aragorn lead the World of Men against Sauron's army while Frodo and Sam approach Mount Doom.",
		Genre:       fantasy,
		Director:    models.Director{Name: "Peter Jackson", Bio: "New Zealand filmmaker best known for the Middle-earth films."},
		Actors:      []string{"Elijah Wood", "Viggo Mortensen", "Ian McKellen"},
	},
	{
		Title:       "Forrest Gump",
		Description: "A kind man with a low IQ witnesses and influences several defining historical events in the United States.",
		Genre:       drama,
		Director:    models.Director{Name: "Robert Zemeckis", Bio: "American filmmaker known for pioneering visual effects."},
		Actors:      []string{"Tom Hanks", "Robin Wright"},
	},
	{
		Title:       "Inception",
		Description: "A thief who steals corporate secrets through dream-sharing is given the task of planting an idea.",
		Genre:       scifi,
		Director:    nolan,
		Actors:      []string{"Leonardo DiCaprio", "Joseph Gordon-Levitt"},
	},
	{
		Title:       "Fight Club",
		Description: "An insomniac office worker and a soap maker form an underground fight club that evolves into something more.",
		Genre:       drama,
		Director:    models.Director{Name: "David Fincher", Bio: "American director known for dark psychological thrillers."},
		Actors:      []string{"Brad Pitt", "Edward Norton"},
	},
	{
		Title:       "The Matrix",
		Description: "A computer hacker learns the true nature of his reality and his role in the war against its controllers.",
		Genre:       scifi,
		Director:    models.Director{Name: "Lana Wachowski, Lilly Wachowski", Bio: "American filmmakers and siblings."},
		Actors:      []string{"Keanu Reeves", "Laurence Fishburne", "Carrie-Anne Moss"},
		Featured:    true,
	},
}

const (
	demoUsername = "moviefan1"
	demoPassword = "password123"
	demoEmail    = "moviefan1@example.com"
)

func main() {
	cfg := config.Load()

	appLog, err := logger.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	mongoDB, err := database.NewMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		appLog.Fatal(ctx, "failed to connect to mongodb", zap.Error(err))
	}
	defer mongoDB.Close()

	if err := clearCollections(ctx, mongoDB.Database); err != nil {
		appLog.Fatal(ctx, "failed to clear collections", zap.Error(err))
	}

	movieIDs, err := seedCatalog(ctx, repository.NewMovieRepository(mongoDB.Database))
	if err != nil {
		appLog.Fatal(ctx, "failed to seed movies", zap.Error(err))
	}
	appLog.Info(ctx, "seeded movies", zap.Int("count", len(movieIDs)))

	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	user, err := seedDemoUser(ctx, repository.NewUserRepository(mongoDB.Database), hasher, movieIDs)
	if err != nil {
		appLog.Fatal(ctx, "failed to seed demo user", zap.Error(err))
	}
	appLog.Info(ctx, "seeded demo user",
		zap.String("username", user.Username),
		zap.Int("favorites", len(user.FavoriteMovies)),
	)

	appLog.Info(ctx, "seed completed successfully")
}

func clearCollections(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{database.MoviesCollection, database.UsersCollection} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}

func seedCatalog(ctx context.Context, repo repository.MovieRepository) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(seedMovies))
	for i := range seedMovies {
		movie := seedMovies[i]
		if err := repo.Create(ctx, &movie); err != nil {
			return ids, err
		}
		ids = append(ids, movie.ID)
	}
	return ids, nil
}

func seedDemoUser(ctx context.Context, repo repository.UserRepository, hasher auth.PasswordHasher, movieIDs []primitive.ObjectID) (*models.User, error) {
	digest, err := hasher.Hash(demoPassword)
	if err != nil {
		return nil, err
	}

	birthday := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)
	user := &models.User{
		Username: demoUsername,
		Password: digest,
		Email:    demoEmail,
		Birthday: &birthday,
	}
	if len(movieIDs) >= 2 {
		user.FavoriteMovies = []primitive.ObjectID{movieIDs[0], movieIDs[len(movieIDs)-1]}
	}

	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

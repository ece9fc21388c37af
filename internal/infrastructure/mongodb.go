package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Agurato/cinelist/internal/model"
)

type MongoDB struct {
	ctx context.Context

	client *mongo.Client

	moviesColl *mongo.Collection
}

// NewMongoDB connects to the database and returns a handle on the movies collection
func NewMongoDB(dbUser, dbPassword, dbURL, dbPort, dbName string) *MongoDB {
	mongoCtx := context.Background()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s@%s:%s", dbUser, dbPassword, dbURL, dbPort)))
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to database")
	}

	mongoDb := mongoClient.Database(dbName)
	return &MongoDB{
		ctx:        mongoCtx,
		client:     mongoClient,
		moviesColl: mongoDb.Collection("movies"),
	}
}

// Close closes the MongoDB connection
func (m MongoDB) Close() {
	m.client.Disconnect(m.ctx)
}

// GetMovies returns the movies in the DB, sorted by title
func (m MongoDB) GetMovies() (movies []model.Movie, err error) {
	findOptions := options.Find()
	findOptions.SetSort(bson.M{"title": 1})
	moviesCur, err := m.moviesColl.Find(m.ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("Error while retrieving movies from DB: %w", err)
	}
	for moviesCur.Next(m.ctx) {
		var movie model.Movie
		err = moviesCur.Decode(&movie)
		if err != nil {
			return nil, fmt.Errorf("Error while decoding movie from DB: %w", err)
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

// GetMovieFromID returns the movie with the given id
func (m MongoDB) GetMovieFromID(id int64) (*model.Movie, error) {
	var movie model.Movie
	err := m.moviesColl.FindOne(m.ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, model.ErrMovieNotFound
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// GetMoviesFromTitle returns the movies whose title matches exactly
func (m MongoDB) GetMoviesFromTitle(title string) (movies []model.Movie, err error) {
	moviesCur, err := m.moviesColl.Find(m.ctx, bson.M{"title": title})
	if err != nil {
		return nil, fmt.Errorf("Error while retrieving movies from DB: %w", err)
	}
	for moviesCur.Next(m.ctx) {
		var movie model.Movie
		err = moviesCur.Decode(&movie)
		if err != nil {
			return nil, fmt.Errorf("Error while decoding movie from DB: %w", err)
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

// GetMoviesFromAgeRating returns the movies whose age rating code matches exactly
func (m MongoDB) GetMoviesFromAgeRating(ageRating string) (movies []model.Movie, err error) {
	moviesCur, err := m.moviesColl.Find(m.ctx, bson.M{"rating.age_rating": ageRating})
	if err != nil {
		return nil, fmt.Errorf("Error while retrieving movies from DB: %w", err)
	}
	for moviesCur.Next(m.ctx) {
		var movie model.Movie
		err = moviesCur.Decode(&movie)
		if err != nil {
			return nil, fmt.Errorf("Error while decoding movie from DB: %w", err)
		}
		movies = append(movies, movie)
	}
	return movies, nil
}

// AddMovie adds a movie to the DB, using its caller-supplied id as document id
func (m MongoDB) AddMovie(movie *model.Movie) error {
	_, err := m.moviesColl.InsertOne(m.ctx, movie)
	return err
}

// SaveMovie replaces the movie with the same id, inserting it if absent
func (m MongoDB) SaveMovie(movie *model.Movie) error {
	_, err := m.moviesColl.UpdateOne(m.ctx, bson.M{"_id": movie.MovieID}, bson.M{"$set": movie}, options.Update().SetUpsert(true))
	return err
}

// DeleteMovie deletes the movie with the given id. Deleting an id that is
// not in the DB is not an error.
func (m MongoDB) DeleteMovie(id int64) error {
	del, err := m.moviesColl.DeleteOne(m.ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if del.DeletedCount == 0 {
		log.Debug().Int64("movieId", id).Msg("No movie to delete")
	}
	return nil
}

package model

import "errors"

// ErrMovieNotFound is returned when a lookup matches no movie document.
var ErrMovieNotFound = errors.New("movie not found")

// Movie statuses. The status field is set by the server on update, never
// by the caller.
const (
	StatusCreated = "Created"
	StatusUpdated = "Updated"
)

// Movie is a document of the movies collection. The id is supplied by the
// caller and immutable once the document exists.
type Movie struct {
	MovieID int64   `json:"movieId" bson:"_id"`
	Title   string  `json:"title" bson:"title"`
	Actors  []Actor `json:"actors" bson:"actors"`
	Year    int     `json:"year" bson:"year"`
	Rating  Rating  `json:"rating" bson:"rating"`
	Status  string  `json:"status" bson:"status"`
}

// Actor is owned by exactly one movie and compared by value.
type Actor struct {
	FirstName   string `json:"firstName" bson:"first_name"`
	LastName    string `json:"lastName" bson:"last_name"`
	DateOfBirth Date   `json:"dateOfBirth" bson:"date_of_birth"`
}

type Rating struct {
	IMDbRating           float32 `json:"imdbRating" bson:"imdb_rating"`
	RottenTomatoesRating int     `json:"rottenTomatoesRating" bson:"rotten_tomatoes_rating"`
	AgeRating            string  `json:"ageRating" bson:"age_rating"`
}

package business

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Agurato/cinelist/internal/model"
)

// MovieStorer is implemented by the document store holding the catalog.
type MovieStorer interface {
	GetMovies() ([]model.Movie, error)
	GetMovieFromID(id int64) (*model.Movie, error)
	GetMoviesFromTitle(title string) ([]model.Movie, error)
	GetMoviesFromAgeRating(ageRating string) ([]model.Movie, error)

	AddMovie(movie *model.Movie) error
	SaveMovie(movie *model.Movie) error
	DeleteMovie(id int64) error
}

// MovieNotifier sends a movie to another web service after it has been
// created. Implementations must be safe to call from a separate goroutine.
type MovieNotifier interface {
	NotifyCreated(movie *model.Movie)
}

type MovieManager interface {
	GetMovies() ([]model.Movie, error)
	GetMovie(id int64) (*model.Movie, error)
	GetMoviesByTitle(title string) ([]model.Movie, error)
	GetMoviesByAgeRating(ageRating string) ([]model.Movie, error)

	CreateMovie(movie *model.Movie) (*model.Movie, error)
	UpdateMovie(id int64, movie *model.Movie) (*model.Movie, error)
	DeleteMovie(id int64) error
}

type MovieManagerWrapper struct {
	MovieStorer
	MovieNotifier
}

func NewMovieManagerWrapper(ms MovieStorer, mn MovieNotifier) *MovieManagerWrapper {
	return &MovieManagerWrapper{
		MovieStorer:   ms,
		MovieNotifier: mn,
	}
}

// GetMovies returns all movies in the catalog, sorted by title
func (mm MovieManagerWrapper) GetMovies() ([]model.Movie, error) {
	movies, err := mm.MovieStorer.GetMovies()
	if err != nil {
		return nil, err
	}
	return orEmpty(movies), nil
}

// GetMovie returns the movie with the given id, or model.ErrMovieNotFound
func (mm MovieManagerWrapper) GetMovie(id int64) (*model.Movie, error) {
	return mm.MovieStorer.GetMovieFromID(id)
}

// GetMoviesByTitle returns the movies matching the title exactly. No match
// is an empty list, not an error.
func (mm MovieManagerWrapper) GetMoviesByTitle(title string) ([]model.Movie, error) {
	movies, err := mm.MovieStorer.GetMoviesFromTitle(title)
	if err != nil {
		return nil, err
	}
	return orEmpty(movies), nil
}

// GetMoviesByAgeRating returns the movies matching the age rating code
// exactly. No match is an empty list, not an error.
func (mm MovieManagerWrapper) GetMoviesByAgeRating(ageRating string) ([]model.Movie, error) {
	movies, err := mm.MovieStorer.GetMoviesFromAgeRating(ageRating)
	if err != nil {
		return nil, err
	}
	return orEmpty(movies), nil
}

// CreateMovie stores the movie exactly as submitted, status included, and
// notifies the downstream service without waiting on it.
func (mm MovieManagerWrapper) CreateMovie(movie *model.Movie) (*model.Movie, error) {
	if err := mm.AddMovie(movie); err != nil {
		return nil, err
	}
	log.Debug().Int64("movieId", movie.MovieID).Msg("Movie added to database")
	go mm.NotifyCreated(movie)
	return movie, nil
}

// UpdateMovie saves the submitted movie under the existing record's id,
// forcing its status to Updated. When no record matches the id, the movie
// is created instead, with the same semantics as CreateMovie.
func (mm MovieManagerWrapper) UpdateMovie(id int64, movie *model.Movie) (*model.Movie, error) {
	existing, err := mm.GetMovieFromID(id)
	if errors.Is(err, model.ErrMovieNotFound) {
		return mm.CreateMovie(movie)
	}
	if err != nil {
		return nil, err
	}

	movie.MovieID = existing.MovieID
	movie.Status = model.StatusUpdated
	if err := mm.SaveMovie(movie); err != nil {
		return nil, err
	}
	log.Debug().Int64("movieId", movie.MovieID).Msg("Movie updated in database")
	return movie, nil
}

// DeleteMovie removes the movie with the given id. Deleting an absent id
// succeeds.
func (mm MovieManagerWrapper) DeleteMovie(id int64) error {
	return mm.MovieStorer.DeleteMovie(id)
}

func orEmpty(movies []model.Movie) []model.Movie {
	return lo.Ternary(movies == nil, []model.Movie{}, movies)
}

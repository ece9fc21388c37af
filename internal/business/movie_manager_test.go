package business_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agurato/cinelist/internal/business"
	"github.com/Agurato/cinelist/internal/model"
)

type fakeStorer struct {
	movies map[int64]model.Movie
}

func newFakeStorer() *fakeStorer {
	return &fakeStorer{movies: make(map[int64]model.Movie)}
}

func (f *fakeStorer) GetMovies() (movies []model.Movie, err error) {
	for _, movie := range f.movies {
		movies = append(movies, movie)
	}
	return movies, nil
}

func (f *fakeStorer) GetMovieFromID(id int64) (*model.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, model.ErrMovieNotFound
	}
	return &movie, nil
}

func (f *fakeStorer) GetMoviesFromTitle(title string) (movies []model.Movie, err error) {
	for _, movie := range f.movies {
		if movie.Title == title {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

func (f *fakeStorer) GetMoviesFromAgeRating(ageRating string) (movies []model.Movie, err error) {
	for _, movie := range f.movies {
		if movie.Rating.AgeRating == ageRating {
			movies = append(movies, movie)
		}
	}
	return movies, nil
}

func (f *fakeStorer) AddMovie(movie *model.Movie) error {
	f.movies[movie.MovieID] = *movie
	return nil
}

func (f *fakeStorer) SaveMovie(movie *model.Movie) error {
	f.movies[movie.MovieID] = *movie
	return nil
}

func (f *fakeStorer) DeleteMovie(id int64) error {
	delete(f.movies, id)
	return nil
}

type fakeNotifier struct {
	created chan *model.Movie
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{created: make(chan *model.Movie, 1)}
}

func (f *fakeNotifier) NotifyCreated(movie *model.Movie) {
	f.created <- movie
}

func (f *fakeNotifier) wait(t *testing.T) *model.Movie {
	t.Helper()
	select {
	case movie := <-f.created:
		return movie
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
		return nil
	}
}

func testMovie(id int64) *model.Movie {
	return &model.Movie{
		MovieID: id,
		Title:   "Mission Impossible",
		Actors: []model.Actor{
			{FirstName: "Tom", LastName: "Cruise", DateOfBirth: model.NewDate(1962, time.July, 3)},
			{FirstName: "Jon", LastName: "Voight", DateOfBirth: model.NewDate(1938, time.December, 29)},
		},
		Year: 1996,
		Rating: model.Rating{
			IMDbRating:           7.1,
			RottenTomatoesRating: 63,
			AgeRating:            "PG-13",
		},
		Status: model.StatusCreated,
	}
}

func TestCreateMovie(t *testing.T) {
	t.Run("StoresMovieAsSubmitted", func(t *testing.T) {
		storer := newFakeStorer()
		mm := business.NewMovieManagerWrapper(storer, newFakeNotifier())
		movie := testMovie(123)
		movie.Status = "SomethingElse"

		created, err := mm.CreateMovie(movie)
		require.NoError(t, err)
		assert.Equal(t, int64(123), created.MovieID)
		assert.Equal(t, "SomethingElse", created.Status)

		stored, err := storer.GetMovieFromID(123)
		require.NoError(t, err)
		assert.Equal(t, "SomethingElse", stored.Status)
	})

	t.Run("NotifiesDownstreamService", func(t *testing.T) {
		notifier := newFakeNotifier()
		mm := business.NewMovieManagerWrapper(newFakeStorer(), notifier)
		movie := testMovie(124)
		_, err := mm.CreateMovie(movie)
		require.NoError(t, err)

		notified := notifier.wait(t)
		assert.Equal(t, int64(124), notified.MovieID)
	})
}

func TestUpdateMovie(t *testing.T) {
	t.Run("ExistingMovie", func(t *testing.T) {
		storer := newFakeStorer()
		mm := business.NewMovieManagerWrapper(storer, newFakeNotifier())
		require.NoError(t, storer.AddMovie(testMovie(123)))

		submitted := testMovie(999)
		submitted.Rating.IMDbRating = 8.2

		updated, err := mm.UpdateMovie(123, submitted)
		require.NoError(t, err)
		assert.Equal(t, int64(123), updated.MovieID, "id in the body must be overwritten by the existing record's id")
		assert.Equal(t, model.StatusUpdated, updated.Status)
		assert.Equal(t, float32(8.2), updated.Rating.IMDbRating)

		stored, err := storer.GetMovieFromID(123)
		require.NoError(t, err)
		assert.Equal(t, model.StatusUpdated, stored.Status)
		_, err = storer.GetMovieFromID(999)
		assert.ErrorIs(t, err, model.ErrMovieNotFound)
	})

	t.Run("UnknownIdFallsThroughToCreate", func(t *testing.T) {
		storer := newFakeStorer()
		notifier := newFakeNotifier()
		mm := business.NewMovieManagerWrapper(storer, notifier)

		submitted := testMovie(555)
		created, err := mm.UpdateMovie(555, submitted)
		require.NoError(t, err)
		assert.Equal(t, int64(555), created.MovieID)
		assert.Equal(t, model.StatusCreated, created.Status, "create path leaves the status untouched")

		notified := notifier.wait(t)
		assert.Equal(t, int64(555), notified.MovieID)

		stored, err := storer.GetMovieFromID(555)
		require.NoError(t, err)
		assert.Equal(t, *submitted, *stored)
	})
}

func TestDeleteMovie(t *testing.T) {
	storer := newFakeStorer()
	mm := business.NewMovieManagerWrapper(storer, newFakeNotifier())
	require.NoError(t, storer.AddMovie(testMovie(123)))

	assert.NoError(t, mm.DeleteMovie(123))
	assert.NoError(t, mm.DeleteMovie(123), "deleting an absent id must succeed")
}

func TestListQueriesNeverReturnNil(t *testing.T) {
	mm := business.NewMovieManagerWrapper(newFakeStorer(), newFakeNotifier())

	movies, err := mm.GetMovies()
	assert.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)

	movies, err = mm.GetMoviesByTitle("Nothing")
	assert.NoError(t, err)
	assert.NotNil(t, movies)

	movies, err = mm.GetMoviesByAgeRating("R")
	assert.NoError(t, err)
	assert.NotNil(t, movies)
}

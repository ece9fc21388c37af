package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Agurato/cinelist/internal/model"
)

// MovieManager handles the catalog operations behind the HTTP surface.
type MovieManager interface {
	GetMovies() ([]model.Movie, error)
	GetMovie(id int64) (*model.Movie, error)
	GetMoviesByTitle(title string) ([]model.Movie, error)
	GetMoviesByAgeRating(ageRating string) ([]model.Movie, error)

	CreateMovie(movie *model.Movie) (*model.Movie, error)
	UpdateMovie(id int64, movie *model.Movie) (*model.Movie, error)
	DeleteMovie(id int64) error
}

type MovieHandler struct {
	MovieManager
}

func NewMovieHandler(mm MovieManager) *MovieHandler {
	return &MovieHandler{
		MovieManager: mm,
	}
}

// GETMovies returns every movie, sorted by title
func (mh MovieHandler) GETMovies(c *gin.Context) {
	movies, err := mh.MovieManager.GetMovies()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GETMovie returns a single movie from its id
func (mh MovieHandler) GETMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	movie, err := mh.MovieManager.GetMovie(id)
	if errors.Is(err, model.ErrMovieNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, movie)
}

// GETMoviesByAgeRating returns the movies with an exact age rating match.
// An empty list is a valid 200, never a 404.
func (mh MovieHandler) GETMoviesByAgeRating(c *gin.Context) {
	movies, err := mh.MovieManager.GetMoviesByAgeRating(c.Param("ageRating"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GETMoviesByTitle returns the movies with an exact title match. An empty
// list is a valid 200, never a 404.
func (mh MovieHandler) GETMoviesByTitle(c *gin.Context) {
	movies, err := mh.MovieManager.GetMoviesByTitle(c.Param("title"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, movies)
}

// POSTMovie creates a movie from the request body. A body that does not
// decode into a movie resolves to a 404 with an empty body.
func (mh MovieHandler) POSTMovie(c *gin.Context) {
	var movie model.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	created, err := mh.MovieManager.CreateMovie(&movie)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, created)
}

// PUTMovie updates the movie with the id taken from the path, creating it
// when no such movie exists. The id in the body is ignored.
func (mh MovieHandler) PUTMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var movie model.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	updated, err := mh.MovieManager.UpdateMovie(id, &movie)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETEMovie deletes a movie from its id. Deletion is idempotent: the
// response is a 200 whether the movie existed or not.
func (mh MovieHandler) DELETEMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := mh.MovieManager.DeleteMovie(id); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

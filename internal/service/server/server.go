package server

import (
	"github.com/gin-gonic/gin"
)

// NewServer initializes the server
func NewServer(movieHandler *MovieHandler) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies(nil)

	movies := router.Group("/movies")
	{
		movies.GET("/", movieHandler.GETMovies)
		movies.GET("/:movieId", movieHandler.GETMovie)
		movies.GET("/ageRating/:ageRating", movieHandler.GETMoviesByAgeRating)
		movies.GET("/title/:title", movieHandler.GETMoviesByTitle)
		movies.POST("/create", movieHandler.POSTMovie)
		movies.PUT("/:movieId", movieHandler.PUTMovie)
		movies.DELETE("/:movieId", movieHandler.DELETEMovie)
	}

	return router
}

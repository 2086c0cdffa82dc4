// Package handler contains HTTP handlers for the API.
package handler

import (
	"movie-api/internal/models"
	"movie-api/internal/service"
	"movie-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service service.MovieServicer
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service service.MovieServicer) *MovieHandler {
	return &MovieHandler{service: service}
}

// ListMovies godoc
// @Summary      List all movies
// @Description  Retrieve every movie in the catalog
// @Tags         movies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Movie}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.service.ListMovies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, movies)
}

// GetMovie godoc
// @Summary      Get movie by ID
// @Description  Retrieve a single movie by its ID
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  response.Response{data=models.Movie}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	movie, err := h.service.GetMovie(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, movie)
}

// GetMovieByTitle godoc
// @Summary      Get movie by title
// @Description  Retrieve the summary of the movie with exactly this title
// @Tags         movies
// @Produce      json
// @Param        title  path      string  true  "Movie title"
// @Success      200    {object}  response.Response{data=models.MovieSummary}
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/title/{title} [get]
func (h *MovieHandler) GetMovieByTitle(c *gin.Context) {
	summary, err := h.service.GetMovieByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, summary)
}

// GetGenre godoc
// @Summary      Get genre by name
// @Description  Retrieve the genre description by exact name
// @Tags         catalog
// @Produce      json
// @Param        name  path      string  true  "Genre name"
// @Success      200   {object}  response.Response{data=models.GenreResponse}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /genres/{name} [get]
func (h *MovieHandler) GetGenre(c *gin.Context) {
	genre, err := h.service.GetGenre(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.GenreResponse{Genre: *genre})
}

// GetDirector godoc
// @Summary      Get director by name
// @Description  Retrieve the director bio by exact name
// @Tags         catalog
// @Produce      json
// @Param        name  path      string  true  "Director name"
// @Success      200   {object}  response.Response{data=models.DirectorResponse}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /directors/{name} [get]
func (h *MovieHandler) GetDirector(c *gin.Context) {
	director, err := h.service.GetDirector(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.DirectorResponse{Director: *director})
}

// CreateMovie godoc
// @Summary      Create movie
// @Description  Add a movie to the catalog (admin only)
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateMovieRequest  true  "Movie details"
// @Success      201      {object}  response.Response{data=models.Movie}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /movies [post]
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req models.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	movie, err := h.service.CreateMovie(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, movie)
}

// UpdateMovie godoc
// @Summary      Update movie
// @Description  Partially update a movie (admin only)
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Movie ID"
// @Param        request  body      models.UpdateMovieRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Movie}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	var req models.UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	movie, err := h.service.UpdateMovie(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, movie)
}

// DeleteMovie godoc
// @Summary      Delete movie
// @Description  Remove a movie from the catalog and from every user's favorites (admin only)
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	if err := h.service.DeleteMovie(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "movie deleted"})
}

// UploadImage godoc
// @Summary      Request image upload URL
// @Description  Assign a new image to a movie and get a pre-signed PUT URL for it (admin only)
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Movie ID"
// @Param        request  body      models.ImageUploadRequest  true  "Image format (jpg, jpeg, png, webp)"
// @Success      200      {object}  response.Response{data=models.ImageUploadResponse}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Security     BearerAuth
// @Router       /movies/{id}/image [post]
func (h *MovieHandler) UploadImage(c *gin.Context) {
	var req models.ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	result, err := h.service.CreateImageUpload(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

package handler

import (
	"movie-api/internal/models"
	"movie-api/internal/service"
	"movie-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a user account with username, password, email and optional birthday
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateUserRequest  true  "User registration details"
// @Success      201      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, user)
}

// GetProfile godoc
// @Summary      Get user profile
// @Description  Retrieve a user with favorite movies resolved
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response{data=models.UserProfile}
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, profile)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Partially update a user; id is an ObjectID or a username
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "User ID or username"
// @Param        request  body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}

// AddFavorite godoc
// @Summary      Add favorite movie
// @Description  Add a movie to the user's favorites; adding twice is a no-op
// @Tags         favorites
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie ID"
// @Success      200       {object}  response.Response{data=models.User}
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username}/movies/{movieId} [post]
func (h *UserHandler) AddFavorite(c *gin.Context) {
	user, err := h.service.AddFavorite(c.Request.Context(), c.Param("username"), c.Param("movieId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}

// RemoveFavorite godoc
// @Summary      Remove favorite movie
// @Description  Remove a movie from the user's favorites; removing a non-favorite is a no-op
// @Tags         favorites
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie ID"
// @Success      200       {object}  response.Response{data=models.User}
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username}/movies/{movieId} [delete]
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	user, err := h.service.RemoveFavorite(c.Request.Context(), c.Param("username"), c.Param("movieId"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Deregister user
// @Description  Delete the account and revoke its tokens
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{username} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	if err := h.service.DeleteUser(c.Request.Context(), username); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, gin.H{"message": username + " was deleted"})
}

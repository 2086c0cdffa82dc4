package handler

import (
	"movie-api/internal/middleware"
	"movie-api/internal/models"
	"movie-api/internal/service"
	"movie-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      User login
// @Description  Verify username and password and issue a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.LoginResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, msgInvalidBody)
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// Logout godoc
// @Summary      User logout
// @Description  Revoke the presented bearer token
// @Tags         auth
// @Produce      json
// @Success      204  "No Content"
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err)
		return
	}

	response.NoContent(c)
}

package handler

import (
	"errors"

	apperrors "movie-api/internal/errors"
	"movie-api/pkg/logger"
	"movie-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInvalidBody = "invalid request body"

// respondError maps a service error to its HTTP response.
// Unexpected errors are logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	if ve, ok := apperrors.AsValidationError(err); ok {
		fields := make([]response.FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			fields = append(fields, response.FieldError{Field: f.Field, Message: f.Message})
		}
		response.ValidationFailed(c, fields)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		response.BadRequest(c, err.Error())
	case apperrors.IsNotFound(err):
		response.NotFound(c, err.Error())
	case apperrors.IsAlreadyExists(err):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, apperrors.ErrStorageDisabled):
		response.ServiceUnavailable(c, err.Error())
	default:
		ctx := c.Request.Context()
		logger.Log(ctx).Error(ctx, "request failed",
			zap.String("route", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		response.InternalError(c)
	}
}

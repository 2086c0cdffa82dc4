package middleware

import (
	"movie-api/internal/authz"
	"movie-api/pkg/logger"
	"movie-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoleKey holds the caller's role relative to the target account.
const RoleKey = "role"

// Authorize returns a middleware that checks the caller may perform action.
// targetParam names the path parameter holding the account acted on; empty for catalog actions.
func Authorize(authorizer authz.Authorizer, action, targetParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get identity from context (set by Auth middleware)
		subject := authz.Subject{UserID: GetUserID(c), Username: GetUsername(c)}
		if subject.UserID == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		var target string
		if targetParam != "" {
			target = c.Param(targetParam)
			if target == "" {
				response.BadRequest(c, targetParam+" is required")
				c.Abort()
				return
			}
		}

		ctx := c.Request.Context()
		allowed, err := authorizer.CanPerform(ctx, subject, target, action)
		if err != nil {
			logger.Log(ctx).Error(ctx, "authorization check failed",
				zap.String("action", action), zap.Error(err))
			response.InternalError(c)
			c.Abort()
			return
		}

		if !allowed {
			response.Forbidden(c, "insufficient permissions")
			c.Abort()
			return
		}

		role, _ := authorizer.Role(ctx, subject, target)
		c.Set(RoleKey, role)

		c.Next()
	}
}

// GetRole retrieves the caller's role from the context.
func GetRole(c *gin.Context) string {
	return c.GetString(RoleKey)
}

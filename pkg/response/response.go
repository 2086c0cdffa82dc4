// Package response writes the JSON envelope shared by every endpoint:
// {"success": bool, "data": ..., "error": "...", "errors": [...]}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgValidationFailed = "validation failed"
	msgInternal         = "internal server error"
)

// Response is the envelope. Data is set on success; Error on failure; Errors
// only on a 422.
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError names one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ok(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

// Success writes data with 200.
func Success(c *gin.Context, data interface{}) { ok(c, http.StatusOK, data) }

// Created writes a newly stored resource with 201.
func Created(c *gin.Context, data interface{}) { ok(c, http.StatusCreated, data) }

// NoContent writes an empty 204, used by logout.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes a failure envelope with an arbitrary status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Error: message})
}

func BadRequest(c *gin.Context, message string)   { Error(c, http.StatusBadRequest, message) }
func Unauthorized(c *gin.Context, message string) { Error(c, http.StatusUnauthorized, message) }
func Forbidden(c *gin.Context, message string)    { Error(c, http.StatusForbidden, message) }
func NotFound(c *gin.Context, message string)     { Error(c, http.StatusNotFound, message) }

// ServiceUnavailable reports a disabled optional backend such as image storage.
func ServiceUnavailable(c *gin.Context, message string) {
	Error(c, http.StatusServiceUnavailable, message)
}

// ValidationFailed writes a 422 listing every rejected field in rule order.
func ValidationFailed(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, Response{Error: msgValidationFailed, Errors: fields})
}

// InternalError writes a 500 without exposing the cause.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, msgInternal)
}

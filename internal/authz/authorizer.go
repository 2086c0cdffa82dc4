// Package authz provides authorization interfaces and implementations.
package authz

import "context"

// Action constants define the authorization actions.
const (
	ActionMovieView      = "movie:view"
	ActionMovieCreate    = "movie:create"
	ActionMovieUpdate    = "movie:update"
	ActionMovieDelete    = "movie:delete"
	ActionUserView       = "user:view"
	ActionUserUpdate     = "user:update"
	ActionUserDelete     = "user:delete"
	ActionFavoriteAdd    = "favorite:add"
	ActionFavoriteRemove = "favorite:remove"
)

// Roles a subject can hold relative to a target account.
const (
	RoleUser  = "user"
	RoleSelf  = "self"
	RoleAdmin = "admin"
)

// Subject identifies the authenticated caller.
type Subject struct {
	UserID   string
	Username string
}

//go:generate mockgen -destination=mocks/mock_authorizer.go -package=mocks movie-api/internal/authz Authorizer

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerform checks if subject can perform action. target is the id or
	// username of the account acted on, empty for catalog actions.
	CanPerform(ctx context.Context, subject Subject, target, action string) (bool, error)

	// Role returns the subject's role relative to target.
	Role(ctx context.Context, subject Subject, target string) (string, error)
}

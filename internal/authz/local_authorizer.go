package authz

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalAuthorizer implements Authorizer from a static admin list.
type LocalAuthorizer struct {
	admins map[string]struct{}
}

// NewLocalAuthorizer creates a new LocalAuthorizer. adminUsernames act as admin on every target.
func NewLocalAuthorizer(adminUsernames []string) *LocalAuthorizer {
	admins := make(map[string]struct{}, len(adminUsernames))
	for _, name := range adminUsernames {
		admins[name] = struct{}{}
	}
	return &LocalAuthorizer{admins: admins}
}

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionMovieView:      {RoleUser, RoleSelf, RoleAdmin},
	ActionMovieCreate:    {RoleAdmin},
	ActionMovieUpdate:    {RoleAdmin},
	ActionMovieDelete:    {RoleAdmin},
	ActionUserView:       {RoleSelf, RoleAdmin},
	ActionUserUpdate:     {RoleSelf, RoleAdmin},
	ActionUserDelete:     {RoleSelf, RoleAdmin},
	ActionFavoriteAdd:    {RoleSelf, RoleAdmin},
	ActionFavoriteRemove: {RoleSelf, RoleAdmin},
}

// IsAdmin reports whether username is configured as admin.
func (a *LocalAuthorizer) IsAdmin(username string) bool {
	_, ok := a.admins[username]
	return ok
}

// CanPerform checks if subject can perform action on target.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, subject Subject, target, action string) (bool, error) {
	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false, nil // Unknown action
	}

	role, err := a.Role(ctx, subject, target)
	if err != nil {
		return false, err
	}

	for _, r := range allowedRoles {
		if r == role {
			return true, nil
		}
	}

	return false, nil
}

// Role returns the subject's role relative to target. A target that parses as
// an ObjectID is compared with the subject's id only, any other target with
// the username only.
func (a *LocalAuthorizer) Role(_ context.Context, subject Subject, target string) (string, error) {
	switch {
	case subject.Username != "" && a.IsAdmin(subject.Username):
		return RoleAdmin, nil
	case target != "" && isSelf(subject, target):
		return RoleSelf, nil
	default:
		return RoleUser, nil
	}
}

func isSelf(subject Subject, target string) bool {
	if _, err := primitive.ObjectIDFromHex(target); err == nil {
		return subject.UserID != "" && target == subject.UserID
	}
	return target == subject.Username
}

// Ensure LocalAuthorizer implements Authorizer
var _ Authorizer = (*LocalAuthorizer)(nil)
